package translator

import (
	"strings"
	"testing"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr string
	}{
		{
			name: "well formed",
			body: `{"candidates":[{"content":{"parts":[{"text":"Bonjour"}]}}]}`,
			want: "Bonjour",
		},
		{
			name: "uses first candidate and first part",
			body: `{"candidates":[{"content":{"parts":[{"text":"one"},{"text":"two"}]}},{"content":{"parts":[{"text":"three"}]}}]}`,
			want: "one",
		},
		{
			name:    "empty candidates",
			body:    `{"candidates":[]}`,
			wantErr: "index 0 out of range for candidates (length 0)",
		},
		{
			name:    "missing candidates",
			body:    `{"promptFeedback":{"blockReason":"SAFETY"}}`,
			wantErr: `missing key "candidates" at response root`,
		},
		{
			name:    "candidate without content",
			body:    `{"candidates":[{"finishReason":"SAFETY"}]}`,
			wantErr: `missing key "content" at candidates[0]`,
		},
		{
			name:    "empty parts",
			body:    `{"candidates":[{"content":{"parts":[]}}]}`,
			wantErr: "index 0 out of range for candidates[0].content.parts (length 0)",
		},
		{
			name:    "missing text",
			body:    `{"candidates":[{"content":{"parts":[{"inlineData":{}}]}}]}`,
			wantErr: `missing key "text" at candidates[0].content.parts[0]`,
		},
		{
			name:    "text is not a string",
			body:    `{"candidates":[{"content":{"parts":[{"text":42}]}}]}`,
			wantErr: "expected string at candidates[0].content.parts[0].text, got number",
		},
		{
			name:    "candidates is an object",
			body:    `{"candidates":{"content":{}}}`,
			wantErr: "expected array at candidates, got object",
		},
		{
			name:    "root is an array",
			body:    `[]`,
			wantErr: "expected object at response root, got array",
		},
		{
			name:    "invalid json",
			body:    `{"candidates":`,
			wantErr: "invalid JSON in response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractText([]byte(tt.body))

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got text %q", tt.wantErr, got)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
