// Package cache provides the process-wide, time-expiring candidate cache
// keyed by email. It is a thin wrapper around jellydator/ttlcache that pins
// down the semantics the upsert flow relies on: entries are stored by value
// (no aliasing of records the store may still track), every successful
// upsert replaces the entry and restarts its TTL, and hits never extend an
// entry's lifetime.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/tbourn/go-candidate-hub/internal/domain"
)

// DefaultTTL is how long a cached candidate stays authoritative before the
// store must be consulted again.
const DefaultTTL = 10 * time.Minute

// CandidateCache is an in-process read-through cache of persisted candidates.
// The upsert coordinator is the only writer; all access happens under its
// lock, so no additional synchronization is layered on top of the underlying
// cache here.
type CandidateCache struct {
	items *ttlcache.Cache[string, domain.Candidate]
}

// New returns a started cache whose entries expire ttl after each Set.
// A ttl <= 0 falls back to DefaultTTL. Call Stop when done to release the
// expiry goroutine.
func New(ttl time.Duration) *CandidateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	items := ttlcache.New(
		ttlcache.WithTTL[string, domain.Candidate](ttl),
		ttlcache.WithDisableTouchOnHit[string, domain.Candidate](),
	)
	go items.Start()
	return &CandidateCache{items: items}
}

// Get returns the cached candidate for email, if present and not expired.
func (c *CandidateCache) Get(email string) (domain.Candidate, bool) {
	item := c.items.Get(email)
	if item == nil {
		return domain.Candidate{}, false
	}
	return item.Value(), true
}

// Set stores cand under its email, replacing any prior entry and restarting
// the TTL clock.
func (c *CandidateCache) Set(email string, cand domain.Candidate) {
	c.items.Set(email, cand, ttlcache.DefaultTTL)
}

// Len reports the number of live entries; used by tests and diagnostics.
func (c *CandidateCache) Len() int { return c.items.Len() }

// Stop terminates the background expiry loop.
func (c *CandidateCache) Stop() { c.items.Stop() }
