package piececache

import (
	"fmt"
	"sync"

	"github.com/mitchellh/hashstructure"

	"github.com/zayadnimrod/fairychess/movegraph"
	"github.com/zayadnimrod/fairychess/moveexpr"
)

// Cache memoizes Compile by the hashstructure content hash of its
// MoveExpr argument. A zero Cache is not usable; construct one with
// New.
type Cache struct {
	mu    sync.RWMutex
	graphs map[uint64]*movegraph.MoveGraph

	hits   uint64
	misses uint64
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{graphs: make(map[uint64]*movegraph.MoveGraph)}
}

// Compile returns the MoveGraph for e, compiling and caching it on
// first use. Structurally equal MoveExpr trees — even distinct ones
// built from separately parsed notation — share the same compiled
// graph.
func (c *Cache) Compile(e *moveexpr.MoveExpr) (*movegraph.MoveGraph, error) {
	key, err := hashstructure.Hash(e, nil)
	if err != nil {
		return nil, fmt.Errorf("piececache: hashing move expression: %w", err)
	}

	c.mu.RLock()
	g, ok := c.graphs[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return g, nil
	}

	g = movegraph.Compile(e)

	c.mu.Lock()
	c.graphs[key] = g
	c.misses++
	c.mu.Unlock()
	return g, nil
}

// Stats is a point-in-time snapshot of cache hit/miss counts.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Stats returns a snapshot of c's current size and hit/miss counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Entries: len(c.graphs), Hits: c.hits, Misses: c.misses}
}
