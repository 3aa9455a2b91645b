package client

import (
	"errors"
)

// Kind classifies workflow failures.
type Kind string

const (
	// KindValidation is a local precondition failure; nothing was sent.
	KindValidation Kind = "validation"
	// KindTransport means the request could not complete (no response).
	KindTransport Kind = "transport"
	// KindServerStatus means the API answered with a non-2xx status.
	KindServerStatus Kind = "server_status"
	// KindEmptyResponse means a 2xx answer had a blank body where one was required.
	KindEmptyResponse Kind = "empty_response"
	// KindMalformedResponse means the body could not be parsed.
	KindMalformedResponse Kind = "malformed_response"
	// KindApplication means a well-formed body reported failure.
	KindApplication Kind = "application"
)

// Sentinels matched by errors.Is against *Error values of the same Kind.
var (
	ErrValidation        = errors.New("validation error")
	ErrTransport         = errors.New("transport error")
	ErrServerStatus      = errors.New("server status error")
	ErrEmptyResponse     = errors.New("empty response")
	ErrMalformedResponse = errors.New("malformed response")
	ErrApplication       = errors.New("application error")
)

var sentinels = map[Kind]error{
	KindValidation:        ErrValidation,
	KindTransport:         ErrTransport,
	KindServerStatus:      ErrServerStatus,
	KindEmptyResponse:     ErrEmptyResponse,
	KindMalformedResponse: ErrMalformedResponse,
	KindApplication:       ErrApplication,
}

// Error is a classified workflow failure. Error() is the message shown to
// the user.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

// Unwrap exposes both the underlying cause and the Kind sentinel.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if s, ok := sentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	return errs
}

// NewValidationError reports a local precondition failure for op.
func NewValidationError(op string, cause error) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: cause.Error(), Err: cause}
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
