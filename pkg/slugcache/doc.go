// Package slugcache memoises slug lookups: it maps a "type:slug" key to the id
// of the document currently holding that slug.
//
// Two backends are provided. [Memory] keeps entries in process with TTL
// expiry and optional LRU eviction. [Redis] shares entries between processes:
//
//	client, err := slugcache.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//		return err
//	}
//	c := slugcache.NewRedis(client, slugcache.WithPrefix("slugs"))
//
// Entries are hints, not truth. Callers re-read the document by id and verify
// its live slug before using a cached id, so stale entries left behind by a
// slug change cost one extra query and are never served.
//
// A [Loader] collapses concurrent misses for the same key into a single load
// using golang.org/x/sync/singleflight. Give every data source its own Loader.
package slugcache
