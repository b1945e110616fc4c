package internal

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/sluggable/pkg/logger"
)

// DefaultMaxAttempts bounds the store queries of one collision scan.
const DefaultMaxAttempts = 10000

// ScopeKey partitions slug uniqueness.
type ScopeKey struct {
	ScopeValue any
	// Owner is the type whose configuration governs the pool.
	Owner      string
	ScopeField string
	Pool       []string
}

// CollisionResolver finds the first free variant of a slug candidate.
type CollisionResolver struct {
	store       Store
	logger      *slog.Logger
	maxAttempts int
}

func NewCollisionResolver(store Store, maxAttempts int, log *slog.Logger) *CollisionResolver {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if log == nil {
		log = logger.NewNope()
	}
	return &CollisionResolver{store: store, maxAttempts: maxAttempts, logger: log}
}

// Resolve returns candidate, or candidate-N with N counting up from
// cfg.StartSuffix, whichever is first unused within scope. The document
// with excludeID is ignored so re-saving it keeps its slug.
func (r *CollisionResolver) Resolve(ctx context.Context, cfg Config, scope ScopeKey, candidate, excludeID string) (string, error) {
	slug := candidate
	for i := range r.maxAttempts {
		f := Filter{
			Types:     scope.Pool,
			Equal:     map[string]any{cfg.SlugField: slug},
			ExcludeID: excludeID,
		}
		if scope.ScopeField != "" {
			f.Equal[scope.ScopeField] = scope.ScopeValue
		}

		_, err := r.store.First(ctx, f)
		if errors.Is(err, ErrNoDocument) {
			if i > 0 {
				r.logger.DebugContext(ctx, "slug suffixed",
					slog.String("type", scope.Owner),
					slog.String("candidate", candidate),
					slog.String("slug", slug),
				)
			}
			return slug, nil
		}
		if err != nil {
			return "", err
		}

		slug = candidate + "-" + strconv.Itoa(cfg.StartSuffix+i)
	}

	r.logger.WarnContext(ctx, "slug collision attempts exhausted",
		slog.String("type", scope.Owner),
		slog.String("candidate", candidate),
		slog.Int("attempts", r.maxAttempts),
	)
	return "", &ConfigError{Type: scope.Owner, Field: cfg.SlugField, Err: ErrCollisionExhausted}
}
