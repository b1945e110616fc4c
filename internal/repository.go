package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/sluggable/pkg/logger"
)

// DefaultSaveAttempts bounds how often Save regenerates a slug after a duplicate.
const DefaultSaveAttempts = 3

// Repository saves documents through a Store, assigning slugs and keeping
// slug history along the way, and looks them up through a Resolver.
type Repository struct {
	registry     *Registry
	store        Store
	assigner     *Assigner
	resolver     *Resolver
	logger       *slog.Logger
	assignerOpts []AssignerOption
	resolverOpts []ResolverOption
	attempts     int
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithSaveAttempts sets how many times Save tries a write whose generated slug
// turns out to be taken. Default: DefaultSaveAttempts.
func WithSaveAttempts(n int) RepositoryOption {
	return func(r *Repository) {
		r.attempts = n
	}
}

// WithLogger sets the logger of the repository and of the assigner and resolver it builds.
func WithLogger(l *slog.Logger) RepositoryOption {
	return func(r *Repository) {
		r.logger = l
	}
}

func WithAssignerOptions(opts ...AssignerOption) RepositoryOption {
	return func(r *Repository) {
		r.assignerOpts = append(r.assignerOpts, opts...)
	}
}

func WithResolverOptions(opts ...ResolverOption) RepositoryOption {
	return func(r *Repository) {
		r.resolverOpts = append(r.resolverOpts, opts...)
	}
}

func NewRepository(registry *Registry, store Store, opts ...RepositoryOption) *Repository {
	r := &Repository{
		registry: registry,
		store:    store,
		logger:   logger.NewNope(),
		attempts: DefaultSaveAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.attempts = max(r.attempts, 1)
	r.assigner = NewAssigner(registry, store,
		append([]AssignerOption{WithAssignerLogger(r.logger)}, r.assignerOpts...)...)
	r.resolver = NewResolver(registry, store,
		append([]ResolverOption{WithResolverLogger(r.logger)}, r.resolverOpts...)...)
	return r
}

func (r *Repository) Assigner() *Assigner { return r.assigner }
func (r *Repository) Resolver() *Resolver { return r.resolver }

// Validate runs slug assignment when it is due before validation.
func (r *Repository) Validate(ctx context.Context, doc *Document) error {
	_, err := r.runStage(ctx, doc, BeforeValidation)
	return err
}

// Save validates doc, assigns its slug when due, records a replaced slug in
// its history and writes it. When a generated slug collides at write time the
// slug and history are restored and the whole sequence runs again.
// Slugs set by the caller are never regenerated.
func (r *Repository) Save(ctx context.Context, doc *Document) error {
	if _, ok := r.registry.Def(doc.Type); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownType, doc.Type)
	}
	ctx = logger.WithOperation(ctx, "save")

	slugField := r.registry.SlugField(doc.Type)
	prevSlug, hadSlug := doc.Fields[slugField]
	prevHistory := slices.Clone(doc.PriorSlugs)

	for attempt := 1; ; attempt++ {
		generated, err := r.prepare(ctx, doc)
		if err != nil {
			return err
		}

		err = r.write(ctx, doc)
		if err == nil {
			doc.MarkPersisted()
			return nil
		}
		if !errors.Is(err, ErrDuplicateSlug) || !generated || attempt >= r.attempts {
			return err
		}

		r.logger.WarnContext(ctx, "generated slug taken, retrying",
			slog.String("type", doc.Type),
			slog.String("slug", doc.String(slugField)),
			slog.Int("attempt", attempt),
		)
		if hadSlug {
			doc.Set(slugField, prevSlug)
		} else {
			doc.Unset(slugField)
		}
		doc.PriorSlugs = slices.Clone(prevHistory)
	}
}

// prepare runs the pre-write steps and reports whether a slug was generated.
func (r *Repository) prepare(ctx context.Context, doc *Document) (bool, error) {
	validated, err := r.runStage(ctx, doc, BeforeValidation)
	if err != nil {
		return false, err
	}
	saved, err := r.runStage(ctx, doc, BeforeSave)
	if err != nil {
		return false, err
	}

	cfg, err := r.registry.Config(doc.Type)
	if errors.Is(err, ErrNotSluggable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !doc.IsNew() && cfg.Policy == PolicyTrack && doc.Changed(cfg.SlugField) {
		prev, _ := doc.Was(cfg.SlugField).(string)
		doc.PriorSlugs = UpdateHistory(prev, doc.String(cfg.SlugField), doc.PriorSlugs)
	}
	return validated || saved, nil
}

func (r *Repository) runStage(ctx context.Context, doc *Document, stage Stage) (bool, error) {
	if !r.assigner.Due(doc, stage) {
		return false, nil
	}
	return r.assigner.assign(ctx, doc)
}

func (r *Repository) write(ctx context.Context, doc *Document) error {
	if doc.IsNew() {
		return r.store.Insert(ctx, doc)
	}
	return r.store.Update(ctx, doc)
}

func (r *Repository) FindBySlug(ctx context.Context, docType, value string) (Result, error) {
	return r.resolver.FindBySlug(ctx, docType, value)
}

func (r *Repository) FindBySlugOrFail(ctx context.Context, docType, value string) (Result, error) {
	return r.resolver.FindBySlugOrFail(ctx, docType, value)
}

func (r *Repository) FindBySlugOrID(ctx context.Context, docType, value string) (Result, error) {
	return r.resolver.FindBySlugOrID(ctx, docType, value)
}

func (r *Repository) FindBySlugOrIDOrFail(ctx context.Context, docType, value string) (Result, error) {
	return r.resolver.FindBySlugOrIDOrFail(ctx, docType, value)
}

func (r *Repository) RoutableID(doc *Document) string {
	return r.registry.RoutableID(doc)
}
