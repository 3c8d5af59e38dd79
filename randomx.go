// Package randomx implements a RandomX-style memory-hard proof-of-work
// hash behind a memory-safe resource API: a keyed Cache, an optional
// Dataset precomputed from it, and VMs that run the hash program against
// their own scratchpad in either light mode (cache-bound) or fast mode
// (dataset-bound, FlagFullMem).
//
// The usual flow is
//
//	flags := randomx.GetFlags()
//	cache, _ := randomx.NewCacheWithKey(flags, key)
//	vm, _ := randomx.NewVM(flags, cache, nil)
//	digest := vm.Hash(input)
//
// with an optional Dataset between the cache and the VM for fast mode.
// The package does no internal locking: a Cache or Dataset may be read by
// any number of VMs concurrently, but SetKey and Init must be serialized
// against those readers by the caller, and a VM is single-goroutine.
package randomx

import "github.com/hashbed/randomx/internal/consts"

// DigestSize is the size of every digest in bytes.
const DigestSize = consts.DigestSize

// Sum computes a one-shot light-mode digest of input under key using the
// recommended flags. It allocates and releases a cache and a VM per call;
// callers hashing more than once should hold their own.
func Sum(key, input []byte) ([DigestSize]byte, error) {
	flags := GetFlags()

	cache, err := NewCacheWithKey(flags, key)
	if err != nil {
		return [DigestSize]byte{}, err
	}
	defer cache.Close()

	vm, err := NewVM(flags, cache, nil)
	if err != nil {
		return [DigestSize]byte{}, err
	}
	defer vm.Close()

	return vm.Hash(input), nil
}
