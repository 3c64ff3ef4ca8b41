package link

import "context"

type contextKey struct{}

// NewContext derives a Context that carries resolved from ctx.
func NewContext(ctx context.Context, resolved *Resolved) context.Context {
	return context.WithValue(ctx, contextKey{}, resolved)
}

// FromContext returns the Resolved link ctx carries. It panics in case ctx
// carries none.
func FromContext(ctx context.Context) *Resolved {
	return ctx.Value(contextKey{}).(*Resolved)
}
