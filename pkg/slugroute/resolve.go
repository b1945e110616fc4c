package slugroute

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sluggable"
	"github.com/dmitrymomot/sluggable/pkg/logger"
)

// Finder looks documents up by slug, falling back to id.
// *sluggable.Repository and *sluggable.Resolver implement it.
type Finder interface {
	FindBySlugOrID(ctx context.Context, docType, value string) (sluggable.Result, error)
}

type documentKey struct{}

// DocumentFromContext returns the document stored by Middleware.
func DocumentFromContext(ctx context.Context) (*sluggable.Document, bool) {
	doc, ok := ctx.Value(documentKey{}).(*sluggable.Document)
	return doc, ok
}

// WithDocument stores doc in ctx.
func WithDocument(ctx context.Context, doc *sluggable.Document) context.Context {
	return context.WithValue(ctx, documentKey{}, doc)
}

// Middleware resolves the slug URL parameter to a document of docType.
// A found document is stored in the request context for next.
// An old or differently cased slug is answered with a redirect to the same
// path carrying the live slug; an unknown one with 404.
func Middleware(finder Finder, docType string, opts ...Option) func(http.Handler) http.Handler {
	cfg := newConfig(opts...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if doc, ok := resolve(w, r, finder, docType, cfg); ok {
				next.ServeHTTP(w, r.WithContext(WithDocument(r.Context(), doc)))
			}
		})
	}
}

// Handler serves documents as JSON from a route carrying both the type and
// the slug parameters, e.g. "/{type}/{slug}".
func Handler(finder Finder, opts ...Option) http.Handler {
	cfg := newConfig(opts...)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		docType := chi.URLParam(r, cfg.typeParam)
		doc, ok := resolve(w, r, finder, docType, cfg)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, newDocumentView(doc))
	})
}

// DocumentView is the JSON form of a document.
type DocumentView struct {
	Fields     map[string]any `json:"fields"`
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	PriorSlugs []string       `json:"prior_slugs"`
}

func newDocumentView(doc *sluggable.Document) DocumentView {
	prior := doc.PriorSlugs
	if prior == nil {
		prior = []string{}
	}
	return DocumentView{ID: doc.ID, Type: doc.Type, Fields: doc.Fields, PriorSlugs: prior}
}

func resolve(w http.ResponseWriter, r *http.Request, finder Finder, docType string, cfg *config) (*sluggable.Document, bool) {
	ctx := logger.WithOperation(r.Context(), "resolve")
	value := chi.URLParam(r, cfg.slugParam)

	res, err := finder.FindBySlugOrID(ctx, docType, value)
	switch {
	case errors.Is(err, sluggable.ErrUnknownType), errors.Is(err, sluggable.ErrNotSluggable):
		cfg.errorHandler(w, r, http.StatusNotFound, err)
		return nil, false
	case err != nil:
		cfg.logger.ErrorContext(ctx, "slug lookup failed",
			slog.String("type", docType),
			slog.String("value", value),
			slog.Any("error", err),
		)
		cfg.errorHandler(w, r, http.StatusInternalServerError, err)
		return nil, false
	}

	switch res.Outcome {
	case sluggable.Found:
		return res.Document, true
	case sluggable.Redirect:
		target := canonicalURL(r.URL, value, res.NewSlug)
		cfg.logger.DebugContext(ctx, "redirecting to canonical slug",
			slog.String("type", docType),
			slog.String("from", value),
			slog.String("to", res.NewSlug),
		)
		http.Redirect(w, r, target, cfg.redirectStatus)
		return nil, false
	default:
		cfg.errorHandler(w, r, http.StatusNotFound, &sluggable.NotFoundError{Type: docType, Value: value, ByID: true})
		return nil, false
	}
}

// canonicalURL replaces the last path segment equal to old with live,
// keeping the query string.
func canonicalURL(u *url.URL, old, live string) string {
	if unescaped, err := url.PathUnescape(old); err == nil {
		old = unescaped
	}
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == old {
			segments[i] = live
			break
		}
	}
	target := url.URL{Path: strings.Join(segments, "/"), RawQuery: u.RawQuery}
	return target.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:         logger.NewNope(),
		errorHandler:   defaultErrorHandler,
		slugParam:      DefaultSlugParam,
		typeParam:      DefaultTypeParam,
		redirectStatus: http.StatusMovedPermanently,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
