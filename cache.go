package randomx

import (
	"fmt"

	"github.com/hashbed/randomx/internal/alg"
	"github.com/hashbed/randomx/internal/consts"
	"github.com/hashbed/randomx/internal/mem"
)

// Cache holds the keyed memory that light mode hashes against and dataset
// construction reads from. A cache may be shared read-only by any number
// of VMs; SetKey must not run while any of them is hashing. The cache
// must outlive every dataset build and light-mode VM that references it.
type Cache struct {
	flags  Flags
	region *mem.Region
	key    []byte
	seeded bool
}

// NewCache allocates an unseeded cache. SetKey must run before the cache
// seeds a dataset or backs a VM.
func NewCache(flags Flags) (*Cache, error) {
	if err := flags.checkArgon(); err != nil {
		return nil, err
	}
	region, err := mem.Alloc(consts.CacheSize, flags.Has(FlagLargePages), flags.Has(Flag1GBPages))
	if err != nil {
		return nil, fmt.Errorf("cache: %v: %w", err, ErrAllocation)
	}
	return &Cache{flags: flags, region: region}, nil
}

// NewCacheWithKey allocates and seeds in one step.
func NewCacheWithKey(flags Flags, key []byte) (*Cache, error) {
	c, err := NewCache(flags)
	if err != nil {
		return nil, err
	}
	c.SetKey(key)
	return c, nil
}

// SetKey re-derives the cache contents deterministically from key. Every
// dataset built from this cache and every VM bound to it goes stale; the
// caller rebuilds and rebinds them, the cache does not track dependents.
// An empty key is legal and produces the publicly known degenerate hash
// domain.
func (c *Cache) SetKey(key []byte) {
	buf := c.region.Bytes()
	if buf == nil {
		panic("randomx: SetKey on closed Cache")
	}
	alg.FillCache(buf, key)
	c.key = append(c.key[:0], key...)
	c.seeded = true
}

// Seeded reports whether SetKey has run.
func (c *Cache) Seeded() bool { return c.seeded }

// Key returns a copy of the current key.
func (c *Cache) Key() []byte { return append([]byte(nil), c.key...) }

// Close releases the cache memory. Closing while a dataset build or a
// light-mode VM still references the cache is a caller error.
func (c *Cache) Close() error {
	c.seeded = false
	return c.region.Free()
}
