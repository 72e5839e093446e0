// Package api is the HTTP client for the PointQuest admin REST API.
//
// # Envelope
//
// Every endpoint answers with {code, message, data}. Codes 0 and 200 mean
// success and data is returned as-is; any other numeric code is a business
// failure. Bodies that carry no numeric code are decoded whole into the
// expected type, so non-conforming endpoints keep working.
//
// # Errors
//
// All failures are returned as *Error and are also shown to the user through
// the configured notify.Notifier. Error.Kind tells transport failures (no
// response), HTTP status failures and business failures apart; Error.Code is
// only set when the server sent a numeric envelope code. *Error matches the
// sentinels ErrUnauthorized, ErrForbidden and ErrUnavailable with errors.Is.
//
// # Requests
//
// Requests carry the session token as a bearer token (see UseTokenSource),
// cookies from a per-client jar, and an X-Request-ID header. There are no
// retries: every failure is final for that call.
package api
