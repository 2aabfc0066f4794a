package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	dimensionKey contextKey = "dimension"
)

// WithRunID annotates context with the identifier of one CLI invocation.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithDimension annotates context with the sort dimension being executed.
func WithDimension(ctx context.Context, dimension string) context.Context {
	if dimension == "" {
		return ctx
	}
	return context.WithValue(ctx, dimensionKey, dimension)
}

// DimensionFromContext returns the sort dimension if present.
func DimensionFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(dimensionKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
