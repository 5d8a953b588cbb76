package shared

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the length of a generated trace ID in hex characters
	TraceIDLength = 32
)

// SetTraceID adds a freshly generated trace ID to the context.
// Trace IDs correlate log lines with the error body returned to the client.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random version 4 UUID as 32 hex characters.
func generateTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
