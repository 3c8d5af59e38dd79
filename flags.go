package randomx

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashbed/randomx/internal/consts"
)

// Flags select optional engine capabilities for the cache, dataset, and
// VM allocation calls. They are a plain bit set combined with |. No flag
// changes the digests produced; flags only trade memory for speed or pick
// an implementation. Validation happens when a resource is built, not
// here, because legality depends on which resource the flags apply to.
type Flags uint32

const (
	// FlagLargePages allocates buffers in 2 MiB pages.
	FlagLargePages Flags = 1 << iota

	// FlagHardAES uses the CPU's AES instructions.
	FlagHardAES

	// FlagFullMem selects fast mode: the VM reads precomputed items from
	// a Dataset instead of deriving them from the Cache per hash.
	FlagFullMem

	// FlagJIT compiles generated programs instead of interpreting them.
	FlagJIT

	// FlagSecure keeps JIT pages from being writable and executable at
	// the same time. A no-op without FlagJIT.
	FlagSecure

	// FlagArgon2SSSE3 speeds up the cache fill with SSSE3.
	FlagArgon2SSSE3

	// FlagArgon2AVX2 speeds up the cache fill with AVX2.
	FlagArgon2AVX2

	// Flag1GBPages allocates buffers in 1 GiB pages.
	Flag1GBPages
)

// FlagDefault is the empty flag set.
const FlagDefault Flags = 0

// FlagArgon2 masks both cache fill extensions.
const FlagArgon2 = FlagArgon2SSSE3 | FlagArgon2AVX2

// Has reports whether every bit of o is set in f.
func (f Flags) Has(o Flags) bool { return f&o == o }

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagLargePages, "LARGE_PAGES"},
	{FlagHardAES, "HARD_AES"},
	{FlagFullMem, "FULL_MEM"},
	{FlagJIT, "JIT"},
	{FlagSecure, "SECURE"},
	{FlagArgon2SSSE3, "ARGON2_SSSE3"},
	{FlagArgon2AVX2, "ARGON2_AVX2"},
	{Flag1GBPages, "1GB_PAGES"},
}

func (f Flags) String() string {
	if f == 0 {
		return "DEFAULT"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

var recommendedFlags = sync.OnceValue(func() Flags {
	flags := FlagDefault
	if consts.HasAES {
		flags |= FlagHardAES
	}
	if consts.HasSSSE3 {
		flags |= FlagArgon2SSSE3
	}
	if consts.HasAVX2 {
		flags |= FlagArgon2AVX2
	}
	if consts.HasJIT {
		flags |= FlagJIT
	}
	return flags
})

// GetFlags returns the recommended flags for the current machine: every
// safely usable optimization, probed once and cached.
//
// It never includes FlagFullMem (fast mode costs the full dataset
// allocation), FlagLargePages or Flag1GBPages (huge page permission is
// only discoverable by allocating), or FlagSecure. All four are explicit
// opt-ins.
func GetFlags() Flags { return recommendedFlags() }

// checkArgon rejects cache fill extensions the host cannot run.
func (f Flags) checkArgon() error {
	if f.Has(FlagArgon2SSSE3) && !consts.HasSSSE3 {
		return fmt.Errorf("ARGON2_SSSE3 requested without SSSE3 support: %w", ErrInvalidFlags)
	}
	if f.Has(FlagArgon2AVX2) && !consts.HasAVX2 {
		return fmt.Errorf("ARGON2_AVX2 requested without AVX2 support: %w", ErrInvalidFlags)
	}
	return nil
}
