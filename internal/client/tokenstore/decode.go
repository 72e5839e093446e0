package tokenstore

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decode returns the claims carried in the payload segment of a JWT. It
// never fails loudly: any malformed input yields ok == false.
func Decode(token string) (claims jwt.MapClaims, ok bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, false
	}

	payload := parts[1]
	if rem := len(payload) % 4; rem != 0 {
		payload += strings.Repeat("=", 4-rem)
	}
	payload = strings.NewReplacer("-", "+", "_", "/").Replace(payload)

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	if err := json.Unmarshal(raw, &claims); err != nil || claims == nil {
		return nil, false
	}
	return claims, true
}

// IsExpiredAt reports whether token had expired at now. Tokens that cannot
// be decoded, or whose "exp" is missing, zero or not a number, never expire.
func IsExpiredAt(token string, now time.Time) bool {
	claims, ok := Decode(token)
	if !ok {
		return false
	}
	exp, ok := expSeconds(claims)
	if !ok || exp == 0 {
		return false
	}
	return exp <= float64(now.UnixNano())/1e9
}

// expSeconds reads "exp" as fractional epoch seconds.
func expSeconds(claims jwt.MapClaims) (float64, bool) {
	switch v := claims["exp"].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
