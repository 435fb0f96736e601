// Package proccache caches constructed processors by request fingerprint,
// guaranteeing at most one cached instance per distinct key.
package proccache

import (
	"sync"
	"sync/atomic"

	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// Cache is a concurrent map from request keys to processors. Construction
// is never exclusive: two goroutines may build the same processor at the
// same time, but only the first insert survives. Failures (nil handles) are
// never cached, so a later identical request retries construction.
type Cache struct {
	mu    *sync.RWMutex
	procs map[domain.ProcKey]ports.Processor

	requested atomic.Int64
	created   atomic.Int64
}

// New builds a cache guarded by the owning configuration's lock.
func New(mu *sync.RWMutex) *Cache {
	return &Cache{mu: mu, procs: map[domain.ProcKey]ports.Processor{}}
}

// Find returns the cached processor for key, or nil on a miss.
func (c *Cache) Find(key domain.ProcKey) ports.Processor {
	c.requested.Add(1)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.procs[key]
}

// Insert stores proc under key and returns the surviving handle. A nil proc
// is returned unchanged without inserting. If an equal key is already
// present the new handle is discarded and the existing one returned: the
// first successful construction wins.
func (c *Cache) Insert(key domain.ProcKey, proc ports.Processor) ports.Processor {
	if proc == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.procs[key]; ok {
		return existing
	}
	c.procs[key] = proc
	c.created.Add(1)
	return proc
}

// Len reports the number of cached processors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.procs)
}

// Requested counts Find calls since creation.
func (c *Cache) Requested() int64 { return c.requested.Load() }

// Created counts successful first-time insertions since creation.
func (c *Cache) Created() int64 { return c.created.Load() }
