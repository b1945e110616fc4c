package internal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sluggable/pkg/logger"
	"github.com/dmitrymomot/sluggable/pkg/slugcache"
)

// Outcome classifies a lookup.
type Outcome int

const (
	NotFound Outcome = iota
	Found
	// Redirect means the value matched an old or differently cased slug.
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Redirect:
		return "redirect"
	default:
		return "not_found"
	}
}

// Result is the outcome of a lookup.
// For Redirect, OldSlug is the queried value and NewSlug the live slug of Document.
type Result struct {
	Document *Document
	OldSlug  string
	NewSlug  string
	Outcome  Outcome
}

// Resolver finds documents by slug or id.
type Resolver struct {
	registry *Registry
	store    Store
	loader   *slugcache.Loader
	logger   *slog.Logger
	cacheTTL time.Duration
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache memoises exact slug matches. A zero ttl uses the cache default.
// Concurrent misses are collapsed per Resolver, never across resolvers.
func WithCache(c slugcache.Cache, ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.loader = nil
		if c != nil {
			r.loader = slugcache.NewLoader(c)
		}
		r.cacheTTL = ttl
	}
}

// WithResolverLogger sets the logger. Default: discard.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = l
	}
}

func NewResolver(registry *Registry, store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: registry,
		store:    store,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindBySlug looks value up among documents of docType and its subtypes:
// live slug first, then slug history, then the live slug ignoring case.
// The last two produce a Redirect. No match is a NotFound result, not an error.
func (r *Resolver) FindBySlug(ctx context.Context, docType, value string) (Result, error) {
	b, err := r.registry.binding(docType)
	if err != nil {
		return Result{}, err
	}
	if value == "" {
		return Result{}, nil
	}
	ctx = logger.WithOperation(ctx, "resolve")
	field := b.config.SlugField

	doc, err := r.exact(ctx, b, value)
	if err != nil {
		return Result{}, err
	}
	if doc != nil {
		return Result{Outcome: Found, Document: doc}, nil
	}

	docs, err := r.store.Find(ctx, Filter{Types: b.subtree, PriorSlug: value})
	if err != nil {
		return Result{}, err
	}
	if len(docs) == 0 {
		docs, err = r.store.Find(ctx, Filter{Types: b.subtree, Fold: map[string]string{field: value}})
		if err != nil {
			return Result{}, err
		}
	}
	if len(docs) == 0 {
		return Result{}, nil
	}
	for _, doc := range docs {
		// Took the slug after the exact lookup ran.
		if doc.String(field) == value {
			return Result{Outcome: Found, Document: doc}, nil
		}
	}
	if len(docs) > 1 {
		r.logger.WarnContext(ctx, "ambiguous slug redirect, using first match",
			slog.String("type", docType),
			slog.String("value", value),
			slog.Int("matches", len(docs)),
		)
	}

	return Result{
		Outcome:  Redirect,
		Document: docs[0],
		OldSlug:  value,
		NewSlug:  docs[0].String(field),
	}, nil
}

// FindBySlugOrFail is FindBySlug with NotFound reported as *NotFoundError.
func (r *Resolver) FindBySlugOrFail(ctx context.Context, docType, value string) (Result, error) {
	res, err := r.FindBySlug(ctx, docType, value)
	if err == nil && res.Outcome == NotFound {
		err = &NotFoundError{Type: docType, Value: value}
	}
	return res, err
}

// FindBySlugOrID falls back to a primary key lookup when no slug matches.
// Values that are not valid ids are simply not found.
func (r *Resolver) FindBySlugOrID(ctx context.Context, docType, value string) (Result, error) {
	res, err := r.FindBySlug(ctx, docType, value)
	if err != nil || res.Outcome != NotFound || value == "" {
		return res, err
	}

	types, err := r.registry.Subtree(docType)
	if err != nil {
		return Result{}, err
	}
	doc, err := r.store.FindByID(ctx, types, value)
	if errors.Is(err, ErrNoDocument) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: Found, Document: doc}, nil
}

// FindBySlugOrIDOrFail is FindBySlugOrID with NotFound reported as *NotFoundError.
func (r *Resolver) FindBySlugOrIDOrFail(ctx context.Context, docType, value string) (Result, error) {
	res, err := r.FindBySlugOrID(ctx, docType, value)
	if err == nil && res.Outcome == NotFound {
		err = &NotFoundError{Type: docType, Value: value, ByID: true}
	}
	return res, err
}

// RoutableID returns the live slug of doc, or its id when the slug is empty.
func (r *Resolver) RoutableID(doc *Document) string {
	return r.registry.RoutableID(doc)
}

// exact returns the document whose live slug is value, or nil.
func (r *Resolver) exact(ctx context.Context, b *binding, value string) (*Document, error) {
	f := Filter{Types: b.subtree, Equal: map[string]any{b.config.SlugField: value}}

	if r.loader == nil {
		return r.first(ctx, f)
	}

	key := slugcache.Key(b.typeName, value)
	var loaded *Document
	id, err := r.loader.GetOrSet(ctx, key, func(ctx context.Context) (string, time.Duration, error) {
		doc, err := r.store.First(ctx, f)
		if err != nil {
			return "", 0, err
		}
		loaded = doc
		return doc.ID, r.cacheTTL, nil
	})
	if errors.Is(err, ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if loaded != nil && loaded.ID == id {
		return loaded, nil
	}

	doc, err := r.store.FindByID(ctx, b.subtree, id)
	if err != nil && !errors.Is(err, ErrNoDocument) {
		return nil, err
	}
	if doc != nil && doc.String(b.config.SlugField) == value {
		return doc, nil
	}

	// The cached id no longer carries this slug.
	r.logger.DebugContext(ctx, "stale slug cache entry", slog.String("key", key))
	_ = r.loader.Cache().Delete(ctx, key)
	return r.first(ctx, f)
}

func (r *Resolver) first(ctx context.Context, f Filter) (*Document, error) {
	doc, err := r.store.First(ctx, f)
	if errors.Is(err, ErrNoDocument) {
		return nil, nil
	}
	return doc, err
}
