package slugcache

import "errors"

var (
	// ErrMiss is returned when a key is absent or expired.
	ErrMiss = errors.New("slugcache: miss")

	// ErrClosed is returned by a Memory cache after Close.
	ErrClosed = errors.New("slugcache: closed")

	ErrEmptyConnectionURL = errors.New("slugcache: empty redis connection URL")
	ErrFailedToParseURL   = errors.New("slugcache: failed to parse redis connection URL")
	ErrConnectionFailed   = errors.New("slugcache: failed to connect to redis")
)

// ErrHealthcheckFailed is returned by Redis.Healthcheck when the cache cannot serve reads.
var ErrHealthcheckFailed = errors.New("slugcache: redis healthcheck failed")
