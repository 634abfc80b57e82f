package meshcache

import (
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/ristretto/v2"

	"cube-world/internal/mapgen"
)

// DefaultEntries is the number of worlds kept when New is given a non-positive size.
const DefaultEntries = 8

// Cache keeps recently generated worlds keyed by size, so flipping between sizes in the
// viewer or CLI does not regenerate them. Worlds are shared: callers must not modify them.
type Cache struct {
	worlds    *ristretto.Cache[uint64, mapgen.World]
	generated atomic.Uint64
}

// New returns a cache holding up to maxEntries worlds.
func New(maxEntries int) (*Cache, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultEntries
	}
	c, err := ristretto.NewCache(&ristretto.Config[uint64, mapgen.World]{
		NumCounters:        int64(maxEntries) * 10,
		MaxCost:            int64(maxEntries),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("meshcache: %w", err)
	}
	return &Cache{worlds: c}, nil
}

func key(width, depth uint32) uint64 {
	return uint64(width)<<32 | uint64(depth)
}

// Get returns the world of the given size, generating and storing it on a miss.
// Generation errors are returned and not cached.
func (c *Cache) Get(width, depth uint32) (mapgen.World, error) {
	k := key(width, depth)
	if w, ok := c.worlds.Get(k); ok {
		return w, nil
	}
	w, err := mapgen.GenerateFlatWorld(width, depth)
	if err != nil {
		return mapgen.World{}, err
	}
	c.generated.Add(1)
	c.worlds.Set(k, w, 1)
	c.worlds.Wait()
	return w, nil
}

// Generated returns how many worlds this cache has generated on misses.
func (c *Cache) Generated() uint64 {
	return c.generated.Load()
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.worlds.Close()
}
