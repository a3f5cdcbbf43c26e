package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a failure surfaced to the caller. The set is flat and
// stable so it can cross the foreign-function boundary as a plain string.
type ErrorKind string

const (
	// KindTimeout means the request exceeded its deadline.
	KindTimeout ErrorKind = "Timeout"
	// KindConnection means the underlying connection could not be established.
	KindConnection ErrorKind = "Connection"
	// KindDecode means a response body could not be read or decoded.
	KindDecode ErrorKind = "Decode"
	// KindMethod means the request method is not a valid HTTP token.
	KindMethod ErrorKind = "Method"
	// KindURL means a request or base URL could not be parsed or resolved.
	KindURL ErrorKind = "Url"
	// KindJSON means a body failed JSON parsing or validation.
	KindJSON ErrorKind = "Json"
	// KindGeneric covers every other failure.
	KindGeneric ErrorKind = "Generic"
)

// Error is the single error shape returned by every operation, at
// construction time and call time alike. StatusCode is zero unless the
// failure is tied to a received response.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error kinds for errors.Is.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Kind == targetErr.Kind
	}
	return false
}

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// classify maps a transport-layer failure onto the error taxonomy. The
// transport reports every failure wrapped in *url.Error; the interesting
// distinctions are deadline expiry and connect-phase errors.
func classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(KindTimeout, "request timed out", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(KindTimeout, "request timed out", err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return newError(KindConnection, "could not resolve host", err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return newError(KindConnection, "could not connect", err)
	}

	return newError(KindGeneric, "request failed", err)
}
