// Package validator checks translation input before anything is sent upstream.
package validator

import (
	"log/slog"
	"strings"

	"github.com/valpere/gemtran/internal"
	"github.com/valpere/gemtran/internal/languages"
)

// Validator rejects empty text and unsupported target languages.
type Validator struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Validator {
	if log == nil {
		log = slog.Default()
	}
	return &Validator{log: log}
}

// Validate returns an InvalidInput error when targetLanguage is not one of the
// supported languages, or when text is empty or whitespace-only. An unsupported
// language is always reported with the supported set, whatever the text.
func (v *Validator) Validate(text, targetLanguage string) error {
	v.log.Debug("validating translation input", "target", targetLanguage, "length", len(text))

	if !languages.IsSupported(targetLanguage) {
		v.log.Warn("unsupported target language", "target", targetLanguage)
		return internal.NewInvalidInput("target language %q is not supported. Choose from: %s", targetLanguage, languages.List())
	}

	if strings.TrimSpace(text) == "" {
		v.log.Warn("input text is empty")
		return internal.NewInvalidInput("input text cannot be empty")
	}

	return nil
}
