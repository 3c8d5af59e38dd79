package randomx

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hashbed/randomx/internal/alg"
	"github.com/hashbed/randomx/internal/consts"
	"github.com/hashbed/randomx/internal/mem"
)

// DatasetItemCount returns the fixed number of dataset items. It does not
// depend on flags or the cache key.
func DatasetItemCount() uint64 { return consts.DatasetItems }

// Dataset holds the precomputed items fast mode reads instead of deriving
// them from the cache per hash. Its contents are fully determined by the
// source cache's current key; re-keying that cache makes the dataset
// stale until it is rebuilt. The dataset must outlive every fast-mode VM
// bound to it.
type Dataset struct {
	flags  Flags
	region *mem.Region
}

// NewDataset allocates the dataset buffer, the dominant memory cost of
// fast mode. The buffer is zeroed and holds no valid items until an Init
// pass covers it.
func NewDataset(flags Flags) (*Dataset, error) {
	if err := flags.checkArgon(); err != nil {
		return nil, err
	}
	region, err := mem.Alloc(consts.DatasetSize, flags.Has(FlagLargePages), flags.Has(Flag1GBPages))
	if err != nil {
		return nil, fmt.Errorf("dataset: %v: %w", err, ErrAllocation)
	}
	return &Dataset{flags: flags, region: region}, nil
}

// Init computes items [start, start+count) from cache and writes them at
// their offsets. Calls over disjoint ranges may run concurrently; the
// caller joins all of them before any VM reads the dataset. Partitions
// that overlap or leave gaps are not detected and leave deterministic
// garbage in the buffer.
func (d *Dataset) Init(cache *Cache, start, count uint64) error {
	if cache == nil || !cache.seeded {
		return fmt.Errorf("dataset init: cache is not seeded: %w", ErrProtocolState)
	}
	end := start + count
	if end < start || end > consts.DatasetItems {
		return fmt.Errorf("dataset init: range [%d, %d) out of bounds: %w", start, end, ErrProtocolState)
	}

	buf := d.region.Bytes()
	if buf == nil {
		return fmt.Errorf("dataset init: dataset is closed: %w", ErrProtocolState)
	}

	cbuf := cache.region.Bytes()
	for i := start; i < end; i++ {
		item := alg.Item(cbuf, i)
		copy(buf[i*consts.ItemSize:], item[:])
	}
	return nil
}

// InitFull computes the full item range on the calling goroutine.
func (d *Dataset) InitFull(cache *Cache) error {
	return d.Init(cache, 0, consts.DatasetItems)
}

// InitParallel splits the full item range into workers contiguous chunks
// and computes them concurrently. When it returns nil every chunk has
// been written, so the dataset is ready for VMs. workers <= 0 means
// GOMAXPROCS. ctx is checked only before a chunk starts; a running chunk
// is never interrupted.
func (d *Dataset) InitParallel(ctx context.Context, cache *Cache, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if uint64(workers) > consts.DatasetItems {
		workers = consts.DatasetItems
	}

	per := uint64(consts.DatasetItems) / uint64(workers)
	rem := uint64(consts.DatasetItems) % uint64(workers)

	g, ctx := errgroup.WithContext(ctx)
	var start uint64
	for w := 0; w < workers; w++ {
		count := per
		if uint64(w) < rem {
			count++
		}
		chunkStart, chunkCount := start, count
		start += count

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return d.Init(cache, chunkStart, chunkCount)
		})
	}
	return g.Wait()
}

// Close releases the dataset memory. Closing while a fast-mode VM still
// references the dataset is a caller error.
func (d *Dataset) Close() error {
	return d.region.Free()
}
