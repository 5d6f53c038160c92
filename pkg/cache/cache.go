// Package cache is a small in-process TTL store for parsed reports, keyed by
// a digest of the analysis snapshot so repeated runs skip the LLM call.
package cache

import (
	"sync"
	"time"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

type entry struct {
	report  *model.Report
	expires time.Time
}

type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get returns the cached report for key, or nil if absent or expired.
// Expired entries are removed on read.
func (c *Cache) Get(key string) *model.Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil
	}
	return e.report
}

// Put stores a report under key, replacing any previous value.
func (c *Cache) Put(key string, report *model.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{report: report, expires: time.Now().Add(c.ttl)}
}
