package api

import (
	"errors"
	"net/http"
	"strconv"
)

// User-facing messages.
const (
	MsgRequestFailed      = "request failed"
	MsgSignInRequired     = "please sign in"
	MsgForbidden          = "not authorized for this action"
	MsgInvalidParams      = "invalid request parameters"
	MsgNetworkFailure     = "network error, please try again later"
	MsgUnexpectedResponse = "unexpected response format"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("server unavailable")
)

type Kind int

const (
	// KindTransport: no response was received (network error, timeout).
	KindTransport Kind = iota + 1
	// KindHTTPStatus: the server answered with a non-2xx status.
	KindHTTPStatus
	// KindBusiness: 2xx answer whose envelope code is not a success code.
	KindBusiness
	// KindDecode: the body could not be decoded into the expected type.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindBusiness:
		return "business"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the application error returned by every API call.
type Error struct {
	Kind    Kind
	Message string
	// Code is the envelope code, nil when the server sent none or it is not
	// a whole number in int32 range.
	Code *int
	// Status is the HTTP status, 0 when no response was received.
	Status int
	Err    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrUnavailable:
		return e.Kind == KindTransport
	}
	return false
}

// CodeValue returns the envelope code and whether one was present.
func (e *Error) CodeValue() (int, bool) {
	if e.Code == nil {
		return 0, false
	}
	return *e.Code, true
}

func (e *Error) logAttrs() []any {
	attrs := []any{"kind", e.Kind.String(), "message", e.Message, "status", e.Status}
	if e.Code != nil {
		attrs = append(attrs, "code", strconv.Itoa(*e.Code))
	}
	if e.Err != nil {
		attrs = append(attrs, "cause", e.Err.Error())
	}
	return attrs
}

// statusMessage is used when a failed response carries no envelope message.
func statusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return MsgSignInRequired
	case http.StatusForbidden:
		return MsgForbidden
	case http.StatusUnprocessableEntity:
		return MsgInvalidParams
	default:
		return MsgNetworkFailure
	}
}
