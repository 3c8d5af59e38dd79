//go:build !linux

package mem

import "errors"

// Alloc returns a region of size bytes. Huge pages are a linux facility;
// requesting them elsewhere is an error rather than a downgrade.
func Alloc(size int, largePages, gbPages bool) (*Region, error) {
	if largePages || gbPages {
		return nil, errors.New("large pages are not supported on this platform")
	}
	return &Region{data: make([]byte, size), n: size}, nil
}

// Free releases the region. Safe to call twice.
func (r *Region) Free() error {
	if r != nil {
		r.data = nil
	}
	return nil
}
