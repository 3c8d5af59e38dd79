package alg

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/hashbed/randomx/internal/consts"
)

// Item computes dataset item idx from the cache contents. It is a pure
// function of (cache, idx): dataset construction materializes it, light
// mode evaluates it on demand.
func Item(cache []byte, idx uint64) [consts.ItemSize]byte {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], idx)
	r := blake2b.Sum512(n[:])

	buf := make([]byte, 0, len(r)+consts.BlockSize+8)
	for t := 0; t < consts.CacheRounds; t++ {
		off := int(binary.LittleEndian.Uint64(r[:8])%consts.CacheBlocks) * consts.BlockSize

		buf = append(buf[:0], r[:]...)
		buf = append(buf, cache[off:off+consts.BlockSize]...)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t))

		r = blake2b.Sum512(buf)
	}
	return r
}
