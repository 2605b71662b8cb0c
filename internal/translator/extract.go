package translator

import (
	"encoding/json"
	"fmt"
)

type pathStep struct {
	key   string
	index int
}

// candidateTextPath is candidates[0].content.parts[0].text. A step with an
// empty key is an array index.
var candidateTextPath = []pathStep{
	{key: "candidates"},
	{index: 0},
	{key: "content"},
	{key: "parts"},
	{index: 0},
	{key: "text"},
}

// extractText walks the decoded response along candidateTextPath and reports
// the first structural mismatch with its location.
func extractText(body []byte) (string, error) {
	var node any
	if err := json.Unmarshal(body, &node); err != nil {
		return "", fmt.Errorf("invalid JSON in response: %w", err)
	}

	at := ""
	for _, step := range candidateTextPath {
		if step.key == "" {
			arr, ok := node.([]any)
			if !ok {
				return "", fmt.Errorf("expected array at %s, got %s", location(at), jsonType(node))
			}
			if step.index >= len(arr) {
				return "", fmt.Errorf("index %d out of range for %s (length %d)", step.index, location(at), len(arr))
			}
			node = arr[step.index]
			at = fmt.Sprintf("%s[%d]", at, step.index)
			continue
		}

		obj, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("expected object at %s, got %s", location(at), jsonType(node))
		}
		v, ok := obj[step.key]
		if !ok {
			return "", fmt.Errorf("missing key %q at %s", step.key, location(at))
		}
		node = v
		if at == "" {
			at = step.key
		} else {
			at = at + "." + step.key
		}
	}

	text, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("expected string at %s, got %s", location(at), jsonType(node))
	}
	return text, nil
}

func location(at string) string {
	if at == "" {
		return "response root"
	}
	return at
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
