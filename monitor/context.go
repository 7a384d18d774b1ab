package monitor

import "context"

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithMonitor embeds m in a derived context so that components receiving the
// context can inspect task progress without a global registry.
func WithMonitor(ctx context.Context, m *Monitor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, m)
}

// FromContext extracts the Monitor from ctx.  The second return value is
// false when the context carries none.
func FromContext(ctx context.Context) (*Monitor, bool) {
	if ctx == nil {
		return nil, false
	}
	m, ok := ctx.Value(ctxKey).(*Monitor)
	return m, ok
}

// GetSnapshot combines FromContext and Snapshot.  The boolean return value
// is false when the context does not carry a monitor.
func GetSnapshot(ctx context.Context) (Snapshot, bool) {
	if m, ok := FromContext(ctx); ok {
		return m.Snapshot(), true
	}
	return Snapshot{}, false
}
