package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/valpere/gemtran/internal"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		target      string
		expectError bool
		errorMsg    string
	}{
		{
			name:   "valid request",
			text:   "Hello",
			target: "French",
		},
		{
			name:   "text with surrounding whitespace",
			text:   "  Hello  ",
			target: "German",
		},
		{
			name:        "empty text",
			text:        "",
			target:      "French",
			expectError: true,
			errorMsg:    "input text cannot be empty",
		},
		{
			name:        "whitespace-only text",
			text:        " \t\n ",
			target:      "French",
			expectError: true,
			errorMsg:    "input text cannot be empty",
		},
		{
			name:        "unsupported language",
			text:        "Hello",
			target:      "Klingon",
			expectError: true,
			errorMsg:    `target language "Klingon" is not supported. Choose from: Arabic, Spanish, French, Urdu, Chinese (Simplified), German`,
		},
		{
			name:        "language match is case-sensitive",
			text:        "Hello",
			target:      "french",
			expectError: true,
			errorMsg:    `target language "french" is not supported. Choose from: Arabic, Spanish, French, Urdu, Chinese (Simplified), German`,
		},
		{
			name:        "unsupported language with empty text lists supported set",
			text:        "",
			target:      "Klingon",
			expectError: true,
			errorMsg:    `target language "Klingon" is not supported. Choose from: Arabic, Spanish, French, Urdu, Chinese (Simplified), German`,
		},
		{
			name:        "unsupported language with whitespace text lists supported set",
			text:        "  \n",
			target:      "",
			expectError: true,
			errorMsg:    `target language "" is not supported. Choose from: Arabic, Spanish, French, Urdu, Chinese (Simplified), German`,
		},
	}

	v := New(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.text, tt.target)

			if !tt.expectError {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() should have returned error")
			}
			var verr *internal.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *internal.Error, got %T", err)
			}
			if verr.Kind != internal.KindInvalidInput {
				t.Errorf("expected kind %q, got %q", internal.KindInvalidInput, verr.Kind)
			}
			if verr.Message != tt.errorMsg {
				t.Errorf("Validate() message = %q, want %q", verr.Message, tt.errorMsg)
			}
		})
	}
}

func TestValidate_UnsupportedLanguageListsEverySupported(t *testing.T) {
	err := New(nil).Validate("Hello", "Italian")
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}

	for _, name := range []string{"Arabic", "Spanish", "French", "Urdu", "Chinese (Simplified)", "German"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected error to list %q, got %q", name, err.Error())
		}
	}
}
