package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span in ctx when parent is empty.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator, _ := ctx.Value(SpanKey).(Span)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", string(creator))
		}
		if parent != "" {
			args = append(args, "parent", string(parent))
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
