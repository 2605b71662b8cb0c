package web

import (
	"context"
	"errors"
	"strings"

	"github.com/valpere/gemtran/internal"
	"github.com/valpere/gemtran/internal/languages"
	"github.com/valpere/gemtran/internal/translator"
)

type NoticeLevel string

const (
	NoticeNone    NoticeLevel = ""
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
)

const (
	msgEmptyInput    = "Please enter some text to translate."
	msgComplete      = "Translation complete"
	msgFailed        = "Translation failed. Please check your input or try again later."
	msgInvalidPrefix = "Invalid input: "
)

// PageState is everything the form page shows. Handlers build a new value
// per request; nothing is kept between requests.
type PageState struct {
	InputText      string
	TargetLanguage string
	TranslatedText string
	Notice         string
	NoticeLevel    NoticeLevel
	ErrorMessage   string
}

// InitialState is the empty form with the first supported language selected.
func InitialState() PageState {
	return PageState{TargetLanguage: languages.Names()[0]}
}

// Submit is the translate event. It returns the next state; the translator
// call is its only side effect.
func Submit(ctx context.Context, tr translator.Translator, prev PageState) PageState {
	next := PageState{
		InputText:      prev.InputText,
		TargetLanguage: prev.TargetLanguage,
	}

	if strings.TrimSpace(prev.InputText) == "" {
		next.Notice = msgEmptyInput
		next.NoticeLevel = NoticeWarning
		return next
	}

	translated, err := tr.Translate(ctx, prev.InputText, prev.TargetLanguage)
	if err != nil {
		next.ErrorMessage = userMessage(err)
		return next
	}

	next.TranslatedText = translated
	next.Notice = msgComplete
	next.NoticeLevel = NoticeSuccess
	return next
}

// Clear is the clear event.
func Clear(prev PageState) PageState {
	return PageState{TargetLanguage: prev.TargetLanguage}
}

func userMessage(err error) string {
	var terr *internal.Error
	if errors.As(err, &terr) && terr.Kind == internal.KindInvalidInput {
		return msgInvalidPrefix + terr.Message
	}
	return msgFailed
}
