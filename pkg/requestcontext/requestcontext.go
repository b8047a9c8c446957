// Package requestcontext carries per-request metadata through context values.
// Middleware writes these once at the edge; handlers and services only read.
package requestcontext

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userAgentKey contextKey = "user_agent"
	deviceKey    contextKey = "device_summary"
)

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID, or "" when none was set.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithUserAgent returns a context carrying the raw User-Agent header.
func WithUserAgent(ctx context.Context, userAgent string) context.Context {
	return context.WithValue(ctx, userAgentKey, userAgent)
}

// UserAgent returns the raw User-Agent header, or "" when none was set.
func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(userAgentKey).(string)
	return v
}

// WithDeviceSummary returns a context carrying a human-readable device label.
func WithDeviceSummary(ctx context.Context, summary string) context.Context {
	return context.WithValue(ctx, deviceKey, summary)
}

// DeviceSummary returns the device label, or "" when none was set.
func DeviceSummary(ctx context.Context) string {
	v, _ := ctx.Value(deviceKey).(string)
	return v
}
