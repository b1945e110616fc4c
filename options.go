package sluggable

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/sluggable/internal"
	"github.com/dmitrymomot/sluggable/pkg/slugcache"
)

// Config options

// WithSlugField sets the field the slug is written to. Defaults to "slug".
func WithSlugField(field string) ConfigOption {
	return internal.WithSlugField(field)
}

// WithTransform selects a named transform: parameterize, upcase, downcase or identity.
func WithTransform(name string) ConfigOption {
	return internal.WithTransform(name)
}

// WithTransformFunc sets a custom transform. It overrides WithTransform.
func WithTransformFunc(fn TransformFunc) ConfigOption {
	return internal.WithTransformFunc(fn)
}

// WithScope makes slugs unique only among documents sharing the field's value.
func WithScope(field string) ConfigOption {
	return internal.WithScope(field)
}

// WithMaxLength caps slug candidates, in runes. Defaults to 256.
// Collision suffixes are appended after the cap.
func WithMaxLength(n int) ConfigOption {
	return internal.WithMaxLength(n)
}

// WithStartSuffix sets the first number tried on a collision. Defaults to 2.
func WithStartSuffix(n int) ConfigOption {
	return internal.WithStartSuffix(n)
}

func WithTrigger(t Trigger) ConfigOption {
	return internal.WithTrigger(t)
}

func WithStage(s Stage) ConfigOption {
	return internal.WithStage(s)
}

func WithPolicy(p Policy) ConfigOption {
	return internal.WithPolicy(p)
}

// WithStripHTML removes markup from the source value before transforming it.
func WithStripHTML() ConfigOption {
	return internal.WithStripHTML()
}

// Assigner options

func WithAssignerLogger(l *slog.Logger) AssignerOption {
	return internal.WithAssignerLogger(l)
}

// WithMaxAttempts caps the store queries of one collision scan. Defaults to 10000.
func WithMaxAttempts(n int) AssignerOption {
	return internal.WithMaxAttempts(n)
}

// Resolver options

// WithCache memoises exact slug matches in c. Cached ids are checked against
// the live slug before use, so renamed documents are never served stale.
func WithCache(c slugcache.Cache, ttl time.Duration) ResolverOption {
	return internal.WithCache(c, ttl)
}

func WithResolverLogger(l *slog.Logger) ResolverOption {
	return internal.WithResolverLogger(l)
}

// Repository options

// WithSaveAttempts sets how often Save regenerates a slug rejected by the store. Defaults to 3.
func WithSaveAttempts(n int) RepositoryOption {
	return internal.WithSaveAttempts(n)
}

// WithLogger sets the logger of a Repository and everything it builds.
func WithLogger(l *slog.Logger) RepositoryOption {
	return internal.WithLogger(l)
}

func WithAssignerOptions(opts ...AssignerOption) RepositoryOption {
	return internal.WithAssignerOptions(opts...)
}

func WithResolverOptions(opts ...ResolverOption) RepositoryOption {
	return internal.WithResolverOptions(opts...)
}
