package cache

import (
	"fmt"
	"strconv"
	"time"

	"aevonx/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoOrderCache keeps recent order-status lookups so the status page
// polling does not hammer the backend. Entries expire on a short TTL because
// order status advances upstream.
type RistrettoOrderCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewOrderCache(maxItems int64, ttl time.Duration) (*RistrettoOrderCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create order cache failed: %w", err)
	}
	return &RistrettoOrderCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoOrderCache) Get(uid int64, secret string) (domain.Order, bool) {
	if v, ok := c.cache.Get(toKey(uid, secret)); ok {
		order, ok := v.(domain.Order)
		return order, ok
	}
	return domain.Order{}, false
}

func (c *RistrettoOrderCache) Set(uid int64, secret string, order domain.Order) {
	c.cache.SetWithTTL(toKey(uid, secret), order, 1, c.ttl)
}

func (c *RistrettoOrderCache) Invalidate(uid int64, secret string) {
	c.cache.Del(toKey(uid, secret))
}

func (c *RistrettoOrderCache) Close() { c.cache.Close() }

func toKey(uid int64, secret string) string {
	return strconv.FormatInt(uid, 10) + ":" + secret
}
