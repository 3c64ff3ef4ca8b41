package iostreams

import "context"

type contextKey struct{}

// NewContext derives a Context from ctx that carries the given streams.
func NewContext(ctx context.Context, streams *IOStreams) context.Context {
	return context.WithValue(ctx, contextKey{}, streams)
}

// FromContext returns the IOStreams ctx carries. It panics in case ctx
// carries none.
func FromContext(ctx context.Context) *IOStreams {
	return ctx.Value(contextKey{}).(*IOStreams)
}
