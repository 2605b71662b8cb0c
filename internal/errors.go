package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies a translation failure.
type Kind string

const (
	KindInvalidInput Kind = "InvalidInput"
	KindUpstream     Kind = "UpstreamError"
	KindParse        Kind = "ParseError"
	KindNetwork      Kind = "NetworkError"
)

// Sentinel values for errors.Is. Matching is by Kind only.
var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrUpstream     = &Error{Kind: KindUpstream}
	ErrParse        = &Error{Kind: KindParse}
	ErrNetwork      = &Error{Kind: KindNetwork}
)

// Error is the classified error returned by the validator and the translation client.
type Error struct {
	Kind Kind
	// StatusCode is the upstream HTTP status; set only for KindUpstream.
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Timeout reports whether a network error was caused by a deadline.
func (e *Error) Timeout() bool {
	if e.Kind != KindNetwork || e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

func NewInvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NewUpstreamError(statusCode int, message string) *Error {
	return &Error{Kind: KindUpstream, StatusCode: statusCode, Message: message}
}

func NewParseError(err error) *Error {
	return &Error{Kind: KindParse, Message: err.Error(), Err: err}
}

func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
