package utils

import (
	"context"

	"github.com/google/uuid"
)

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceIDFromContextOrNew returns the trace id stored in ctx, or a fresh one.
func TraceIDFromContextOrNew(ctx context.Context) string {
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		return traceID
	}

	return NewTraceID()
}
