package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/valpere/gemtran/internal"
	"github.com/valpere/gemtran/internal/translator"
)

// Recorder wraps a Translator and logs every attempt to the store. A failed
// write is logged and never changes the translation outcome.
type Recorder struct {
	next  translator.Translator
	store *Store
	model string
	log   *slog.Logger
}

func NewRecorder(next translator.Translator, s *Store, model string, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{next: next, store: s, model: model, log: log}
}

func (r *Recorder) Name() string {
	return r.next.Name()
}

func (r *Recorder) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	start := time.Now()
	translated, err := r.next.Translate(ctx, text, targetLanguage)

	e := Entry{
		InputText:      text,
		TargetLanguage: targetLanguage,
		Status:         StatusSuccess,
		TranslatedText: translated,
		Model:          r.model,
		LatencyMs:      time.Since(start).Milliseconds(),
	}
	if err != nil {
		e.Status = StatusFailed
		e.ErrorKind = string(internal.KindOf(err))
		var terr *internal.Error
		if errors.As(err, &terr) {
			e.ErrorMessage = terr.Message
		} else {
			e.ErrorMessage = err.Error()
		}
	}

	// The caller's context may already be done; the write should still land.
	if _, serr := r.store.SaveEntry(context.WithoutCancel(ctx), e); serr != nil {
		r.log.Warn("failed to record translation attempt", "error", serr)
	}

	return translated, err
}
