package trace

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id as the request ID that
// Begin/End and the Debug/Info/Warn/Error helpers attach to their log
// lines. Passing "" still marks the ID as present (distinguishable from a
// context with none set) since an empty ID is itself a valid correlation
// value a caller may have chosen deliberately.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom reports the request ID stored in ctx by WithRequestID, if
// any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
