package internal

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sluggable/pkg/logger"
)

// Assigner writes generated slugs into documents.
type Assigner struct {
	registry    *Registry
	store       Store
	collisions  *CollisionResolver
	logger      *slog.Logger
	maxAttempts int
}

// AssignerOption configures an Assigner.
type AssignerOption func(*Assigner)

// WithAssignerLogger sets the logger. Default: discard.
func WithAssignerLogger(l *slog.Logger) AssignerOption {
	return func(a *Assigner) {
		a.logger = l
	}
}

// WithMaxAttempts caps the store queries of one collision scan.
// Default: DefaultMaxAttempts.
func WithMaxAttempts(n int) AssignerOption {
	return func(a *Assigner) {
		a.maxAttempts = n
	}
}

func NewAssigner(registry *Registry, store Store, opts ...AssignerOption) *Assigner {
	a := &Assigner{
		registry:    registry,
		store:       store,
		logger:      logger.NewNope(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.collisions = NewCollisionResolver(store, a.maxAttempts, a.logger)
	return a
}

// Due reports whether the trigger configured for doc's type fires at stage.
// Types that are unknown or not sluggable are never due.
func (a *Assigner) Due(doc *Document, stage Stage) bool {
	cfg, err := a.registry.Config(doc.Type)
	if err != nil || cfg.Stage != stage {
		return false
	}
	switch cfg.Trigger {
	case OnCreate:
		return doc.IsNew()
	case OnCreateOrUpdate:
		return true
	default:
		return false
	}
}

// Assign generates a slug from doc's source field and stores it in the slug field.
// Only the slug field of doc is modified; nothing is persisted.
// It does nothing when the policy forbids regeneration or the source is blank.
func (a *Assigner) Assign(ctx context.Context, doc *Document) error {
	_, err := a.assign(ctx, doc)
	return err
}

// assign reports whether a slug was generated.
func (a *Assigner) assign(ctx context.Context, doc *Document) (bool, error) {
	b, err := a.registry.binding(doc.Type)
	if err != nil {
		return false, err
	}
	cfg := b.config
	ctx = logger.WithOperation(ctx, "assign")

	switch cfg.Policy {
	case PolicyAssignOnce:
		if doc.String(cfg.SlugField) != "" {
			return false, nil
		}
	default:
		if doc.Changed(cfg.SlugField) {
			a.logger.DebugContext(ctx, "slug set explicitly, skipping generation",
				slog.String("type", doc.Type),
				slog.String("slug", doc.String(cfg.SlugField)),
			)
			return false, nil
		}
	}

	candidate := b.candidate(doc)
	if candidate == "" {
		return false, nil
	}

	slug, err := a.collisions.Resolve(ctx, cfg, b.scopeKey(doc), candidate, doc.ID)
	if err != nil {
		return false, err
	}

	doc.Set(cfg.SlugField, slug)
	a.logger.DebugContext(ctx, "slug assigned",
		slog.String("type", doc.Type),
		slog.String("id", doc.ID),
		slog.String("slug", slug),
	)
	return true, nil
}
