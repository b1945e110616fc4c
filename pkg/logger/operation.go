package logger

import (
	"context"
	"log/slog"
)

type operationKey struct{}

// WithOperation stores the name of the slug operation (assign, resolve, save)
// in ctx so every record logged under it carries a slug_op attribute.
func WithOperation(ctx context.Context, op string) context.Context {
	if op == "" {
		return ctx
	}
	return context.WithValue(ctx, operationKey{}, op)
}

// Operation returns the operation stored by WithOperation, or "".
func Operation(ctx context.Context) string {
	op, _ := ctx.Value(operationKey{}).(string)
	return op
}

// OperationExtractor is a ContextExtractor for the slug_op attribute.
func OperationExtractor(ctx context.Context) (slog.Attr, bool) {
	op := Operation(ctx)
	if op == "" {
		return slog.Attr{}, false
	}
	return slog.String("slug_op", op), true
}
