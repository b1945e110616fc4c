package slugroute

import (
	"log/slog"
	"net/http"
)

const (
	// DefaultSlugParam is the chi URL parameter holding the slug or id.
	DefaultSlugParam = "slug"
	// DefaultTypeParam is the chi URL parameter holding the document type for Handler.
	DefaultTypeParam = "type"
)

// ErrorHandler writes the response for a failed lookup.
// status is http.StatusNotFound for unknown slugs and http.StatusInternalServerError otherwise.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, status int, err error)

type config struct {
	logger         *slog.Logger
	errorHandler   ErrorHandler
	slugParam      string
	typeParam      string
	redirectStatus int
}

// Option configures Middleware and Handler.
type Option func(*config)

// WithSlugParam sets the URL parameter read for the slug. Default: "slug".
func WithSlugParam(name string) Option {
	return func(c *config) {
		c.slugParam = name
	}
}

// WithTypeParam sets the URL parameter read for the type by Handler. Default: "type".
func WithTypeParam(name string) Option {
	return func(c *config) {
		c.typeParam = name
	}
}

// WithRedirectStatus sets the status used for canonical redirects. Default: 301.
func WithRedirectStatus(code int) Option {
	return func(c *config) {
		if code >= 300 && code < 400 {
			c.redirectStatus = code
		}
	}
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, status int, _ error) {
	http.Error(w, http.StatusText(status), status)
}
