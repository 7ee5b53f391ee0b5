package httpclient

import (
	"context"
	"net/http"
)

// idKey identifies an inbound ID that is forwarded on outbound calls. Its
// value is the header name.
type idKey string

const (
	requestIDKey     idKey = "X-Request-ID"
	correlationIDKey idKey = "X-Correlation-ID"
)

var forwarded = [...]idKey{requestIDKey, correlationIDKey}

// WithRequestID returns a copy of ctx carrying the inbound request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID returns a copy of ctx carrying the inbound correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// forwardIDs copies the non-empty IDs in ctx onto h.
func forwardIDs(ctx context.Context, h http.Header) {
	for _, key := range forwarded {
		if id, _ := ctx.Value(key).(string); id != "" {
			h.Set(string(key), id)
		}
	}
}
