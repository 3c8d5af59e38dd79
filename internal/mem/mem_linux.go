package mem

import "golang.org/x/sys/unix"

const (
	hugePageSize = 2 << 20
	gbPageSize   = 1 << 30

	// MAP_HUGE_1GB: log2(1GiB) in the page-size bits of the mmap flags.
	mapHuge1GB = 30 << unix.MAP_HUGE_SHIFT
)

// Alloc returns a region of size bytes. With largePages or gbPages set it
// maps anonymous huge pages (rounding the mapping up to the page size);
// permission or pool exhaustion surfaces as the mmap error.
func Alloc(size int, largePages, gbPages bool) (*Region, error) {
	if !largePages && !gbPages {
		return &Region{data: make([]byte, size), n: size}, nil
	}

	page := hugePageSize
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS | unix.MAP_HUGETLB
	if gbPages {
		page = gbPageSize
		flags |= mapHuge1GB
	}

	full := (size + page - 1) / page * page
	data, err := unix.Mmap(-1, 0, full, unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		return nil, err
	}
	return &Region{data: data, n: size, mapped: true}, nil
}

// Free releases the region. Safe to call twice.
func (r *Region) Free() error {
	if r == nil || r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	if r.mapped {
		return unix.Munmap(data)
	}
	return nil
}
