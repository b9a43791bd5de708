package lookup

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// lookuper is satisfied by *Service.
type lookuper interface {
	Lookup(ctx context.Context, literal string) (*Result, error)
}

// Cached memoizes the composite lookup per anchor character with a
// time-bounded expiry, and collapses concurrent lookups for the same
// character into one provider round trip. Failed lookups (including
// not-found) are never cached.
type Cached struct {
	inner lookuper
	cache *expirable.LRU[string, *Result]
	group singleflight.Group
}

// NewCached wraps svc with a memoization layer of the given capacity and
// entry TTL.
func NewCached(svc lookuper, size int, ttl time.Duration) *Cached {
	return &Cached{
		inner: svc,
		cache: expirable.NewLRU[string, *Result](size, nil, ttl),
	}
}

// Lookup returns the memoized result for literal, computing it at most once
// per TTL window regardless of concurrent callers.
func (c *Cached) Lookup(ctx context.Context, literal string) (*Result, error) {
	if res, ok := c.cache.Get(literal); ok {
		return res, nil
	}

	v, err, _ := c.group.Do(literal, func() (any, error) {
		// A concurrent caller may have populated the cache while this
		// call waited on the flight group.
		if res, ok := c.cache.Get(literal); ok {
			return res, nil
		}
		res, err := c.inner.Lookup(ctx, literal)
		if err != nil {
			return nil, err
		}
		c.cache.Add(literal, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// Purge drops all memoized results.
func (c *Cached) Purge() {
	c.cache.Purge()
}
