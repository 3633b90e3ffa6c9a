package excel

import (
	"sync"
	"time"

	"places/internal/domain/entity"
)

// snapshotCache keeps the last read or written table for a fixed TTL.
// Callers always receive a deep copy.
type snapshotCache struct {
	mu       sync.Mutex
	table    *entity.PlaceTable
	loadedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func newSnapshotCache(ttl time.Duration, now func() time.Time) *snapshotCache {
	return &snapshotCache{ttl: ttl, now: now}
}

// get returns a copy of the cached table while it is younger than the TTL.
func (c *snapshotCache) get() (*entity.PlaceTable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validLocked() {
		return nil, false
	}

	return c.table.Clone(), true
}

func (c *snapshotCache) set(table *entity.PlaceTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = table.Clone()
	c.loadedAt = c.now()
}

func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = nil
	c.loadedAt = time.Time{}
}

// cacheState is a point-in-time view of the cache used by statistics.
type cacheState struct {
	Valid   bool
	Records int
	Age     time.Duration
	Loaded  bool
}

func (c *snapshotCache) state() cacheState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table == nil {
		return cacheState{}
	}

	return cacheState{
		Valid:   c.validLocked(),
		Records: c.table.Len(),
		Age:     c.now().Sub(c.loadedAt),
		Loaded:  true,
	}
}

func (c *snapshotCache) validLocked() bool {
	return c.table != nil && c.now().Sub(c.loadedAt) < c.ttl
}
