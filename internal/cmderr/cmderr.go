// Package cmderr implements common error values and the interfaces the CLI
// uses to render rich errors.
package cmderr

import (
	"context"
	"errors"
)

// ErrAbort is returned when the user cancels an operation.
var ErrAbort = errors.New("abort")

// ErrorDescription is an error with a detailed description that is printed
// before the CLI exits.
type ErrorDescription interface {
	error
	Description() string
}

func GetErrorDescription(err error) string {
	var derr ErrorDescription
	if errors.As(err, &derr) {
		return derr.Description()
	}
	return ""
}

// ErrorSuggestion is an error carrying suggested next steps that are printed
// before the CLI exits.
type ErrorSuggestion interface {
	error
	Suggestion() string
}

func GetErrorSuggestion(err error) string {
	var serr ErrorSuggestion
	if errors.As(err, &serr) {
		return serr.Suggestion()
	}
	return ""
}

// SuggestError pairs an error with a suggestion line.
type SuggestError struct {
	Err     error
	Suggest string
}

func (e SuggestError) Error() string      { return e.Err.Error() }
func (e SuggestError) Suggestion() string { return e.Suggest }
func (e SuggestError) Unwrap() error      { return e.Err }

func IsCancelledError(err error) bool {
	if errors.Is(err, ErrAbort) {
		return true
	}

	return errors.Is(err, context.Canceled)
}
