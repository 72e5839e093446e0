package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsSentinels(t *testing.T) {
	unauthorized := &Error{Kind: KindHTTPStatus, Status: http.StatusUnauthorized, Message: MsgSignInRequired}
	forbidden := &Error{Kind: KindHTTPStatus, Status: http.StatusForbidden, Message: MsgForbidden}
	business := &Error{Kind: KindBusiness, Status: http.StatusOK, Message: "nope"}

	assert.ErrorIs(t, unauthorized, ErrUnauthorized)
	assert.NotErrorIs(t, unauthorized, ErrForbidden)
	assert.ErrorIs(t, forbidden, ErrForbidden)
	assert.NotErrorIs(t, business, ErrUnauthorized)
	assert.NotErrorIs(t, business, ErrUnavailable)

	wrapped := fmt.Errorf("load tasks: %w", forbidden)
	assert.ErrorIs(t, wrapped, ErrForbidden)

	var target *Error
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, MsgForbidden, target.Message)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "http_status", KindHTTPStatus.String())
	assert.Equal(t, "business", KindBusiness.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestError_LogAttrs(t *testing.T) {
	code := 4001
	e := &Error{Kind: KindBusiness, Message: "closed", Code: &code, Status: 200, Err: errors.New("x")}
	assert.Equal(t, []any{"kind", "business", "message", "closed", "status", 200, "code", "4001", "cause", "x"}, e.logAttrs())
}
