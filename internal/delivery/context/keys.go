// Package context carries per-request values between the transports and
// the usecases: the correlation id, a scoped logger and the caller.
package context

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	identityKey
)

// echoRequestIDKey is the echo.Context store slot for the correlation id.
const echoRequestIDKey = "request_id"
