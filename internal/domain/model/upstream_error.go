package model

import (
	"errors"
	"fmt"
)

// UpstreamErrorKind tells why a provider call could not produce a record
type UpstreamErrorKind string

const (
	// KindTransport means the provider could not be reached or the call timed out
	KindTransport UpstreamErrorKind = "TRANSPORT"
	// KindStatus means the provider answered with a non-2xx status
	KindStatus UpstreamErrorKind = "STATUS"
	// KindDecode means a 2xx body was not valid JSON of the expected types
	KindDecode UpstreamErrorKind = "DECODE"
	// KindPayload means a decoded body lacked an object the record is built from
	KindPayload UpstreamErrorKind = "PAYLOAD"
)

// UpstreamError is the single failure type of the translators. It is kept for local
// diagnostics only; clients receive a fixed message per endpoint.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	text := fmt.Sprintf("%s: upstream %s failure", e.Operation, e.Kind)
	if e.StatusCode != 0 {
		text += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		text += ": " + e.Message
	}
	if e.Err != nil {
		text += ": " + e.Err.Error()
	}
	return text
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewPayloadError reports a missing object in an otherwise valid provider body
func NewPayloadError(operation, missing string) *UpstreamError {
	return &UpstreamError{
		Kind:      KindPayload,
		Operation: operation,
		Message:   "missing " + missing,
	}
}

// AsUpstreamError extracts the UpstreamError from err. Any other error is
// reported as a transport failure of the given operation.
func AsUpstreamError(operation string, err error) *UpstreamError {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr
	}
	return &UpstreamError{Kind: KindTransport, Operation: operation, Err: err}
}
