package property

import (
	"errors"
	"fmt"
)

// ErrorKind tells callers which stage of an operation failed.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindWeatherFetch ErrorKind = "weather_fetch"
	KindCoordinate   ErrorKind = "coordinate"
	KindStorage      ErrorKind = "storage"
	KindNotFound     ErrorKind = "not_found"
)

// Error is returned by Workflow and QueryService. Message is human readable
// and already includes the cause; Err keeps the cause for errors.Is/As.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
