package randomx

import (
	"fmt"

	"github.com/hashbed/randomx/internal/alg"
	"github.com/hashbed/randomx/internal/consts"
	"github.com/hashbed/randomx/internal/mem"
)

// VM executes the hash program. A VM binds to exactly one source: a
// seeded Cache in light mode, or a Dataset in fast mode (FlagFullMem).
// Every hash call mutates the VM's scratchpad, so a VM must only ever be
// used from one goroutine at a time; create one VM per worker and share
// the cache or dataset between them.
type VM struct {
	flags   Flags
	cache   *Cache
	dataset *Dataset
	region  *mem.Region
	reg     [alg.RegSize]byte
	primed  bool
}

// NewVM allocates a scratchpad and binds it to its source. Fast mode
// requires a dataset and a nil cache; light mode requires a seeded cache
// and a nil dataset. Binding against a partially initialized dataset is
// not detected and yields wrong but deterministic digests: join every
// Init worker first.
func NewVM(flags Flags, cache *Cache, dataset *Dataset) (*VM, error) {
	if err := checkBinding(flags, cache, dataset); err != nil {
		return nil, err
	}
	region, err := mem.Alloc(consts.ScratchSize, flags.Has(FlagLargePages), flags.Has(Flag1GBPages))
	if err != nil {
		return nil, fmt.Errorf("scratchpad: %v: %w", err, ErrAllocation)
	}
	return &VM{flags: flags, cache: cache, dataset: dataset, region: region}, nil
}

func checkBinding(flags Flags, cache *Cache, dataset *Dataset) error {
	if err := flags.checkArgon(); err != nil {
		return err
	}
	if flags.Has(FlagHardAES) && !consts.HasAES {
		return fmt.Errorf("HARD_AES requested without AES support: %w", ErrInvalidFlags)
	}
	if flags.Has(FlagJIT) && !consts.HasJIT {
		return fmt.Errorf("JIT requested on an unsupported architecture: %w", ErrInvalidFlags)
	}

	if flags.Has(FlagFullMem) {
		if dataset == nil || cache != nil {
			return fmt.Errorf("fast mode binds exactly one dataset: %w", ErrInvalidFlags)
		}
		if dataset.region.Bytes() == nil {
			return fmt.Errorf("fast mode: dataset is closed: %w", ErrProtocolState)
		}
		return nil
	}

	if cache == nil || dataset != nil {
		return fmt.Errorf("light mode binds exactly one cache: %w", ErrInvalidFlags)
	}
	if !cache.seeded {
		return fmt.Errorf("light mode: cache is not seeded: %w", ErrProtocolState)
	}
	return nil
}

func (vm *VM) itemAt(idx uint64) [consts.ItemSize]byte {
	if vm.dataset != nil {
		var item [consts.ItemSize]byte
		copy(item[:], vm.dataset.region.Bytes()[idx*consts.ItemSize:])
		return item
	}
	return alg.Item(vm.cache.region.Bytes(), idx)
}

// Hash computes the digest of input against the bound source: a pure
// function of (source contents, input). It mutates only the VM's own
// scratchpad and discards any in-flight pipeline state.
func (vm *VM) Hash(input []byte) [DigestSize]byte {
	vm.primed = false
	vm.reg = alg.Prime(vm.scratch(), input)
	return alg.Finalize(vm.scratch(), &vm.reg, vm.itemAt)
}

// HashFirst primes the scratchpad for the first input of a batch. With a
// pipeline already in flight it abandons the pending digest and starts
// over.
func (vm *VM) HashFirst(input []byte) {
	vm.reg = alg.Prime(vm.scratch(), input)
	vm.primed = true
}

// HashNext finalizes and returns the digest of the previous pipeline
// input, then primes for input.
func (vm *VM) HashNext(input []byte) ([DigestSize]byte, error) {
	if !vm.primed {
		return [DigestSize]byte{}, fmt.Errorf("HashNext without HashFirst: %w", ErrProtocolState)
	}
	digest := alg.Finalize(vm.scratch(), &vm.reg, vm.itemAt)
	vm.reg = alg.Prime(vm.scratch(), input)
	return digest, nil
}

// HashLast finalizes and returns the digest of the last pipeline input,
// ending the batch.
func (vm *VM) HashLast() ([DigestSize]byte, error) {
	if !vm.primed {
		return [DigestSize]byte{}, fmt.Errorf("HashLast without HashFirst: %w", ErrProtocolState)
	}
	vm.primed = false
	return alg.Finalize(vm.scratch(), &vm.reg, vm.itemAt), nil
}

// HashBatch pushes inputs through the pipeline in order and returns their
// digests, identical to calling Hash on each input independently.
func (vm *VM) HashBatch(inputs ...[]byte) ([][DigestSize]byte, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	digests := make([][DigestSize]byte, 0, len(inputs))

	vm.HashFirst(inputs[0])
	for _, input := range inputs[1:] {
		digest, err := vm.HashNext(input)
		if err != nil {
			return nil, err
		}
		digests = append(digests, digest)
	}
	digest, err := vm.HashLast()
	if err != nil {
		return nil, err
	}
	return append(digests, digest), nil
}

// Rebind switches the VM to a different source and discards any in-flight
// pipeline state. The mode stays fixed by the VM's flags: a fast-mode VM
// rebinds to datasets, a light-mode VM to caches.
func (vm *VM) Rebind(cache *Cache, dataset *Dataset) error {
	if err := checkBinding(vm.flags, cache, dataset); err != nil {
		return err
	}
	vm.cache, vm.dataset = cache, dataset
	vm.primed = false
	return nil
}

// Close releases the scratchpad. The bound cache or dataset is borrowed,
// not owned, and stays alive.
func (vm *VM) Close() error {
	vm.cache, vm.dataset = nil, nil
	vm.primed = false
	return vm.region.Free()
}

func (vm *VM) scratch() []byte {
	buf := vm.region.Bytes()
	if buf == nil {
		panic("randomx: use of closed VM")
	}
	return buf
}
