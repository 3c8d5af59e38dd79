package randomx

import "errors"

var (
	// ErrAllocation means a cache, dataset, or scratchpad buffer could
	// not be allocated: out of memory, or the requested page mode is
	// unavailable or unauthorized. Page modes fail hard; they are never
	// silently downgraded.
	ErrAllocation = errors.New("allocation failed")

	// ErrInvalidFlags means the flag set is unsupported by this build or
	// host. Reported when the resource is created, never deferred to the
	// first hash.
	ErrInvalidFlags = errors.New("unsupported flags combination")

	// ErrProtocolState means an operation ran out of order: a pipeline
	// phase without its predecessor, or a source used before it was
	// seeded.
	ErrProtocolState = errors.New("protocol state violation")
)
