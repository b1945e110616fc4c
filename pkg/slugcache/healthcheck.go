package slugcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const healthKey = "__health__"

// Healthcheck reports whether the cache can serve lookups: Redis answers PING
// and a read under the cache's key prefix goes through. A missing key counts
// as healthy. Suitable for slugroute.Readiness.
func (r *Redis) Healthcheck(ctx context.Context) error {
	if r == nil || r.client == nil {
		return ErrHealthcheckFailed
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	key := r.key(healthKey)
	if err := r.client.Get(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return errors.Join(ErrHealthcheckFailed, fmt.Errorf("read %s: %w", key, err))
	}
	return nil
}
