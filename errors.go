package querit

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates API error categories.
type ErrorKind string

const (
	ErrKindBadRequest   ErrorKind = "bad_request"
	ErrKindUnauthorized ErrorKind = "unauthorized"
	ErrKindForbidden    ErrorKind = "forbidden"
	ErrKindRateLimited  ErrorKind = "rate_limited"
	ErrKindServer       ErrorKind = "server"
)

// APIError captures a failed exchange with the Querit API. Status is the
// HTTP status code, or zero for transport-level failures such as timeouts.
type APIError struct {
	Status  int
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("querit: %s (%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("querit: %s: %s", e.Kind, e.Message)
}

// mapStatus translates a non-200 HTTP outcome into an *APIError. The mapping
// is total: every status code lands in exactly one kind.
func mapStatus(status int, body []byte) error {
	text := string(body)
	switch status {
	case 400:
		return &APIError{Status: status, Kind: ErrKindBadRequest, Message: text}
	case 401:
		return &APIError{Status: status, Kind: ErrKindUnauthorized, Message: text}
	case 403:
		return &APIError{Status: status, Kind: ErrKindForbidden, Message: text}
	case 429:
		return &APIError{Status: status, Kind: ErrKindRateLimited, Message: text}
	default:
		return &APIError{
			Status:  status,
			Kind:    ErrKindServer,
			Message: fmt.Sprintf("Unexpected status: %d, body=%s", status, text),
		}
	}
}

func timeoutError() error {
	return &APIError{Kind: ErrKindServer, Message: "Request timeout"}
}

func hasKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsBadRequest reports whether err is an API error for HTTP 400.
func IsBadRequest(err error) bool { return hasKind(err, ErrKindBadRequest) }

// IsUnauthorized reports whether err is an API error for HTTP 401.
func IsUnauthorized(err error) bool { return hasKind(err, ErrKindUnauthorized) }

// IsForbidden reports whether err is an API error for HTTP 403.
func IsForbidden(err error) bool { return hasKind(err, ErrKindForbidden) }

// IsRateLimited reports whether err is an API error for HTTP 429.
func IsRateLimited(err error) bool { return hasKind(err, ErrKindRateLimited) }

// IsServerError reports whether err is an API error for a timeout or an
// unrecognized status code.
func IsServerError(err error) bool { return hasKind(err, ErrKindServer) }

// ArgumentError reports invalid caller-supplied configuration or request
// fields, detected at construction or serialization time.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("querit: invalid %s: %s", e.Name, e.Reason)
}

// UnsupportedValueError reports a language or country value outside the
// supported vocabulary.
type UnsupportedValueError struct {
	Kind  string
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("querit: unsupported %s: %q", e.Kind, e.Value)
}
