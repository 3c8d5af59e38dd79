// Package mem allocates the engine's large buffers, honoring the
// requested page mode. A requested page mode that cannot be satisfied is
// an error, never a silent downgrade to standard pages.
package mem

// Region is an owned allocation. Free releases it; the byte slice must
// not be referenced afterwards.
type Region struct {
	data   []byte
	n      int
	mapped bool
}

// Bytes returns the allocation, or nil after Free.
func (r *Region) Bytes() []byte {
	if r == nil || r.data == nil {
		return nil
	}
	return r.data[:r.n]
}
