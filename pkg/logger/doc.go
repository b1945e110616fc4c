// Package logger builds the structured loggers used by sluggable.
//
// It extends log/slog with context extraction and optional Sentry reporting.
// Every logger created here tags records with the slug operation in flight
// (assign, resolve, save), taken from the context via [WithOperation].
//
// # Basic Usage
//
//	log := logger.New()
//
//	ctx := logger.WithOperation(context.Background(), "assign")
//	log.DebugContext(ctx, "slug assigned", slog.String("slug", "hello-world"))
//	// Output: {"level":"DEBUG","msg":"slug assigned","slug":"hello-world","slug_op":"assign"}
//
// Additional extractors pull request-scoped values out of the context:
//
//	tenantExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(tenantKey{}).(string); ok && id != "" {
//			return slog.String("tenant_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//	log := logger.New(tenantExtractor)
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	})
//
// Without a DSN the logger falls back to stdout only, so the same code path
// works in development and production.
//
// # Handler Decoration
//
// [LogHandlerDecorator] wraps any slog.Handler and runs the extractors on each call.
// [NewNope] returns a logger that discards everything; it is the default for
// components constructed without a logger.
package logger
