// Package aierr defines the typed failure kinds of the assistant pipeline.
// Every stage either returns a value or one of these kinds; the HTTP layer
// maps kinds to status codes and the end user only ever sees a generic
// message.
package aierr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindModelUnavailable  Kind = "MODEL_UNAVAILABLE"
	KindRateLimited       Kind = "RATE_LIMITED"
	KindStoreUnavailable  Kind = "STORE_UNAVAILABLE"
	KindGenerationFailed  Kind = "GENERATION_FAILED"
	KindPersistenceFailed Kind = "PERSISTENCE_FAILED"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the pipeline failure kind from an error chain. The second
// return is false for errors that did not originate in the pipeline.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
