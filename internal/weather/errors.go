package weather

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies why a snapshot could not be obtained.
type FetchErrorKind string

const (
	// KindProvider is an application error with a code the adapter knows.
	KindProvider FetchErrorKind = "provider"
	// KindProviderUnknown is an application error with an unrecognised code.
	KindProviderUnknown FetchErrorKind = "provider_unknown"
	// KindIncomplete means the response lacked the current or location section.
	KindIncomplete FetchErrorKind = "incomplete"
	// KindMalformed means the response body could not be decoded.
	KindMalformed FetchErrorKind = "malformed"
	KindTimeout   FetchErrorKind = "timeout"
	// KindHTTPStatus is a transport error mapped from an HTTP status code.
	KindHTTPStatus FetchErrorKind = "http_status"
	KindTransport  FetchErrorKind = "transport"
	// KindUnavailable means the circuit breaker rejected the call.
	KindUnavailable FetchErrorKind = "unavailable"
)

// FetchError is returned by providers for every failed lookup.
type FetchError struct {
	Kind FetchErrorKind
	// Code is the provider error code or the HTTP status, when there is one.
	Code    int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError builds a FetchError with a formatted message.
func NewFetchError(kind FetchErrorKind, code int, cause error, format string, args ...any) *FetchError {
	return &FetchError{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// IsTransport reports whether err says nothing about the provider's view of
// the request, i.e. the request did not complete.
func IsTransport(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return true
	}
	switch fe.Kind {
	case KindTimeout, KindTransport, KindUnavailable:
		return true
	default:
		return false
	}
}
