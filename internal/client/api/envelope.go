package api

import (
	"bytes"
	"encoding/json"
	"math"
)

// Envelope is the uniform response wrapper of the admin API, as written on
// the wire. Callers and fake servers build responses with it; normalize reads
// bodies leniently instead, since real servers send codes and messages that do
// not fit these field types.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func isSuccessCode(code float64) bool {
	return code == 0 || code == 200
}

type rawEnvelope struct {
	Code    json.RawMessage `json:"code"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type envelopeFields struct {
	hasCode bool
	code    float64
	message string
	data    json.RawMessage
}

// intCode returns the code as an int, nil when it is fractional or out of
// range.
func (f envelopeFields) intCode() *int {
	if !f.hasCode || f.code != math.Trunc(f.code) || f.code > math.MaxInt32 || f.code < math.MinInt32 {
		return nil
	}
	c := int(f.code)
	return &c
}

// parseEnvelope reads the envelope fields it can find in body. hasCode is
// false when body is not an object or its code is not a JSON number.
func parseEnvelope(body []byte) envelopeFields {
	var env rawEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelopeFields{}
	}

	f := envelopeFields{data: env.Data, message: messageText(env.Message)}
	if raw := bytes.TrimSpace(env.Code); len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		if err := json.Unmarshal(raw, &f.code); err == nil {
			f.hasCode = true
		}
	}
	return f
}

// messageText renders the envelope message. Non-string values are shown as
// their JSON text; null, false, 0 and "" count as no message.
func messageText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	switch string(raw) {
	case "null", "false", "0":
		return ""
	}
	return string(raw)
}

func isEmptyJSON(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

func decodeInto[T any](b []byte, status int) (T, *Error) {
	var out T
	if isEmptyJSON(b) {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, &Error{Kind: KindDecode, Message: MsgUnexpectedResponse, Status: status, Err: err}
	}
	return out, nil
}

// normalize unwraps a 2xx response body. Success codes yield data; other
// numeric codes, fractional ones included, yield a KindBusiness error; bodies without a numeric code
// are decoded whole into T (zero T for an empty body).
func normalize[T any](status int, body []byte) (T, *Error) {
	env := parseEnvelope(body)
	if !env.hasCode {
		return decodeInto[T](body, status)
	}

	if isSuccessCode(env.code) {
		return decodeInto[T](env.data, status)
	}

	message := env.message
	if message == "" {
		message = MsgRequestFailed
	}
	var zero T
	return zero, &Error{Kind: KindBusiness, Message: message, Code: env.intCode(), Status: status}
}

// transportError builds the error for a request that got no response (cause
// set, status 0) or a non-2xx response. The envelope message wins over the
// status-derived one.
func transportError(status int, body []byte, cause error) *Error {
	e := &Error{Kind: KindHTTPStatus, Status: status, Err: cause}
	if cause != nil {
		e.Kind = KindTransport
	}

	env := parseEnvelope(body)
	e.Code = env.intCode()
	message := env.message
	if message == "" {
		message = statusMessage(status)
	}
	e.Message = message
	return e
}
