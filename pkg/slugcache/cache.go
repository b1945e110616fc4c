package slugcache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache maps lookup keys to document ids.
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: entry never expires
type Cache interface {
	// Get returns the cached id or ErrMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores id under key.
	Set(ctx context.Context, key, id string, ttl time.Duration) error

	// Delete drops key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key builds the cache key for a slug of the given document type.
func Key(docType, slug string) string {
	return docType + ":" + slug
}

type loadResult struct {
	id  string
	ttl time.Duration
}

// Loader fills a Cache on misses. Concurrent misses for the same key on one
// Loader share a single load call; separate Loaders never share loads, so
// each one should front exactly one source of truth.
type Loader struct {
	cache Cache
	group singleflight.Group
}

// NewLoader returns a Loader backed by c.
func NewLoader(c Cache) *Loader {
	return &Loader{cache: c}
}

// Cache returns the backing cache.
func (l *Loader) Cache() Cache { return l.cache }

// GetOrSet returns the cached id for key, or calls load on a miss and caches its result.
// Errors from load are returned as is and nothing is cached. Backend errors
// on Get are treated as misses and errors on Set are ignored, so a broken
// cache degrades to direct loads.
//
// The shared load runs detached from the cancellation of whichever caller
// started it. A caller whose own ctx ends stops waiting and gets ctx.Err().
func (l *Loader) GetOrSet(ctx context.Context, key string, load func(ctx context.Context) (string, time.Duration, error)) (string, error) {
	if id, err := l.cache.Get(ctx, key); err == nil {
		return id, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		id, ttl, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		_ = l.cache.Set(loadCtx, key, id, ttl)
		return loadResult{id: id, ttl: ttl}, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(loadResult).id, nil
	}
}
