// Package context carries request-scoped values between the delivery
// middlewares, the handlers and the usecases.
package context

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
	keyPrincipal contextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)
