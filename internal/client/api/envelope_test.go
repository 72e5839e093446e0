package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func TestNormalize_SuccessCodesReturnData(t *testing.T) {
	for _, body := range []string{
		`{"code":0,"message":"ok","data":{"id":7,"username":"root","role":"ADMIN"}}`,
		`{"code":200,"data":{"id":7,"username":"root","role":"ADMIN"}}`,
	} {
		got, apiErr := normalize[models.AdminProfile](http.StatusOK, []byte(body))
		require.Nil(t, apiErr, body)
		assert.Equal(t, models.AdminProfile{ID: 7, Username: "root", Role: models.RoleAdmin}, got, body)
	}
}

func TestNormalize_SuccessWithNullDataYieldsZero(t *testing.T) {
	got, apiErr := normalize[models.LoginResult](http.StatusOK, []byte(`{"code":0,"data":null}`))
	require.Nil(t, apiErr)
	assert.Equal(t, models.LoginResult{}, got)
}

func TestNormalize_BusinessErrorUsesServerMessage(t *testing.T) {
	_, apiErr := normalize[models.AdminProfile](http.StatusOK, []byte(`{"code":4001,"message":"Task closed","data":null}`))
	require.NotNil(t, apiErr)

	assert.Equal(t, KindBusiness, apiErr.Kind)
	assert.Equal(t, "Task closed", apiErr.Error())
	code, ok := apiErr.CodeValue()
	require.True(t, ok)
	assert.Equal(t, 4001, code)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestNormalize_BusinessErrorFallbackMessage(t *testing.T) {
	for _, body := range []string{`{"code":500}`, `{"code":1,"message":""}`, `{"code":-1,"message":42}`} {
		_, apiErr := normalize[models.Task](http.StatusOK, []byte(body))
		require.NotNil(t, apiErr, body)
		assert.Equal(t, MsgRequestFailed, apiErr.Message, body)
	}
}

func TestNormalize_NonEnvelopeBodyDecodedWhole(t *testing.T) {
	got, apiErr := normalize[[]models.RewardCategory](http.StatusOK, []byte(`[{"id":1,"name":"Books"}]`))
	require.Nil(t, apiErr)
	assert.Equal(t, []models.RewardCategory{{ID: 1, Name: "Books"}}, got)

	// a string code is not an envelope code
	task, apiErr := normalize[models.Task](http.StatusOK, []byte(`{"code":"T-1","taskNo":"T-1","title":"Run"}`))
	require.Nil(t, apiErr)
	assert.Equal(t, "T-1", task.TaskNo)
	assert.Equal(t, "Run", task.Title)
}

func TestNormalize_AnyNumericCodeIsAnEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"fractional", `{"code":1.5,"message":"bad","data":{"x":1}}`},
		{"near success", `{"code":200.5,"message":"bad","data":{"x":1}}`},
		{"out of int range", `{"code":1e40,"message":"bad","data":{"x":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, apiErr := normalize[json.RawMessage](http.StatusOK, []byte(tt.body))
			require.NotNil(t, apiErr)
			assert.Nil(t, got)
			assert.Equal(t, KindBusiness, apiErr.Kind)
			assert.Equal(t, "bad", apiErr.Message)
			assert.Nil(t, apiErr.Code)
		})
	}
}

func TestNormalize_WholeFloatSuccessCode(t *testing.T) {
	got, apiErr := normalize[int](http.StatusOK, []byte(`{"code":200.0,"data":7}`))
	require.Nil(t, apiErr)
	assert.Equal(t, 7, got)
}

func TestNormalize_NonStringMessageIsShown(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"code":1,"message":404}`, "404"},
		{`{"code":1,"message":{"field":"title"}}`, `{"field":"title"}`},
		{`{"code":1,"message":null}`, MsgRequestFailed},
		{`{"code":1,"message":false}`, MsgRequestFailed},
		{`{"code":1,"message":0}`, MsgRequestFailed},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			_, apiErr := normalize[json.RawMessage](http.StatusOK, []byte(tt.body))
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestNormalize_EmptyBody(t *testing.T) {
	got, apiErr := normalize[models.Task](http.StatusNoContent, nil)
	require.Nil(t, apiErr)
	assert.Equal(t, models.Task{}, got)
}

func TestNormalize_DecodeFailure(t *testing.T) {
	_, apiErr := normalize[models.Task](http.StatusOK, []byte(`{"code":0,"data":"not an object"}`))
	require.NotNil(t, apiErr)
	assert.Equal(t, KindDecode, apiErr.Kind)
	assert.Equal(t, MsgUnexpectedResponse, apiErr.Message)
	assert.Error(t, errors.Unwrap(apiErr))
}

func TestTransportError_StatusMessages(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusUnauthorized, MsgSignInRequired},
		{http.StatusForbidden, MsgForbidden},
		{http.StatusUnprocessableEntity, MsgInvalidParams},
		{http.StatusInternalServerError, MsgNetworkFailure},
		{http.StatusNotFound, MsgNetworkFailure},
	}
	for _, tt := range tests {
		e := transportError(tt.status, []byte("<html>oops</html>"), nil)
		assert.Equal(t, tt.want, e.Message, tt.status)
		assert.Equal(t, KindHTTPStatus, e.Kind)
		assert.Nil(t, e.Code)
	}
}

func TestTransportError_EnvelopeMessageWins(t *testing.T) {
	e := transportError(http.StatusUnauthorized, []byte(`{"code":401,"message":"Token expired"}`), nil)

	assert.Equal(t, "Token expired", e.Message)
	code, ok := e.CodeValue()
	require.True(t, ok)
	assert.Equal(t, 401, code)
	assert.True(t, errors.Is(e, ErrUnauthorized))
}

func TestTransportError_NoResponse(t *testing.T) {
	cause := errors.New("connection refused")
	e := transportError(0, nil, cause)

	assert.Equal(t, KindTransport, e.Kind)
	assert.Equal(t, MsgNetworkFailure, e.Message)
	assert.ErrorIs(t, e, cause)
	assert.ErrorIs(t, e, ErrUnavailable)
	assert.NotErrorIs(t, e, ErrUnauthorized)
}
