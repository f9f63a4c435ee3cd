package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedReport is a report together with the time it was computed.
type cachedReport struct {
	report *Report
	built  time.Time
}

// DefaultMaxEntries caps how many reports a Cache keeps.
const DefaultMaxEntries = 64

// Cache memoises reports for identical inputs.
// Reports are immutable, so cached values are shared between callers.
type Cache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	mu      sync.RWMutex
	reports map[string]cachedReport
	sf      singleflight.Group
}

// NewCache creates a cache keeping reports for ttl. A zero ttl disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:        ttl,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
		reports: make(map[string]cachedReport),
	}
}

// Digest returns a stable key for the input.
func Digest(in Input) (string, error) {
	// encoding/json sorts map keys, so rows hash deterministically.
	raw, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("failed to encode reconcile input: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func (c *Cache) expired(entry cachedReport) bool {
	return c.now().Sub(entry.built) > c.ttl
}

// GetOrRun returns the cached report for in, or runs the reconciliation.
// Concurrent calls with the same input share one computation.
// The boolean result is true when the report came from the cache.
func (c *Cache) GetOrRun(in Input) (*Report, bool, error) {
	if c == nil || c.ttl == 0 {
		report, err := Run(in)
		return report, false, err
	}

	key, err := Digest(in)
	if err != nil {
		return nil, false, err
	}

	// Fast path: check if a fresh report exists
	c.mu.RLock()
	entry, exists := c.reports[key]
	c.mu.RUnlock()
	if exists && !c.expired(entry) {
		return entry.report, true, nil
	}

	// Slow path: compute once per key
	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, exists := c.reports[key]
		c.mu.RUnlock()
		if exists && !c.expired(entry) {
			return entry.report, nil
		}

		report, err := Run(in)
		if err != nil {
			return nil, err
		}

		c.store(key, report)
		return report, nil
	})
	if err != nil {
		return nil, false, err
	}

	return result.(*Report), false, nil
}

// store adds a report after dropping expired entries. When the cache is still
// full, the oldest entries are evicted.
func (c *Cache) store(key string, report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, entry := range c.reports {
		if c.expired(entry) {
			delete(c.reports, k)
		}
	}

	for c.maxEntries > 0 && len(c.reports) >= c.maxEntries {
		oldestKey := ""
		var oldest time.Time
		for k, entry := range c.reports {
			if oldestKey == "" || entry.built.Before(oldest) {
				oldestKey, oldest = k, entry.built
			}
		}
		delete(c.reports, oldestKey)
	}

	c.reports[key] = cachedReport{report: report, built: c.now()}
}

// Invalidate drops every cached report.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.reports = make(map[string]cachedReport)
	c.mu.Unlock()
}

// Len returns the number of cached reports, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reports)
}
