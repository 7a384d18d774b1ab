package task

import "context"

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithHandle embeds h in a derived context so that components receiving the
// context can report progress without threading the handle explicitly.
func WithHandle(ctx context.Context, h Handle) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, h)
}

// FromContext extracts the handle embedded in ctx.  When the context carries
// none it returns a NullTaskHandle, so callers never branch on absence.
func FromContext(ctx context.Context) Handle {
	if ctx == nil {
		return NullTaskHandle{}
	}
	if h, ok := ctx.Value(ctxKey).(Handle); ok && h != nil {
		return h
	}
	return NullTaskHandle{}
}
