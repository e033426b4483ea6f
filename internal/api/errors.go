// Package api is a minimal client for the Intercom REST API: bearer-token
// auth, page-following list operations, and error classification that
// separates "the request failed" from "the response made no sense".
package api

import (
	"errors"
	"fmt"
)

// RequestError reports a transport-level failure: the request never produced
// an HTTP response (DNS, dial, TLS, timeout, canceled context).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError reports a request Intercom answered with a non-2xx status.
// Error() is user-facing; Body is kept for logs only.
type StatusError struct {
	StatusCode int
	Status     string // e.g. "401 Unauthorized"
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Intercom returned status %s", e.Status)
}

// PayloadError reports a 2xx response whose body does not have the envelope
// shape list operations depend on. The reason is user-facing.
type PayloadError struct {
	Reason string
}

func (e *PayloadError) Error() string { return e.Reason }

// IsPayloadError reports whether err means Intercom answered successfully but
// with an unusable body. Callers use it to distinguish "error talking to
// Intercom" from "error understanding Intercom".
func IsPayloadError(err error) bool {
	var pe *PayloadError
	return errors.As(err, &pe)
}
