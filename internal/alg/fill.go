package alg

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/hashbed/randomx/internal/consts"
)

// FillCache derives the cache contents from key. cache must be
// consts.CacheSize bytes. Each block chains from the previous one, so the
// fill is inherently sequential.
func FillCache(cache, key []byte) {
	buf := make([]byte, 0, consts.BlockSize+len(key)+8)
	prev := make([]byte, consts.BlockSize)

	for i := 0; i < consts.CacheBlocks; i++ {
		buf = append(buf[:0], prev...)
		buf = append(buf, key...)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(i))

		sum := blake2b.Sum512(buf)
		copy(cache[i*consts.BlockSize:], sum[:])
		prev = cache[i*consts.BlockSize : (i+1)*consts.BlockSize]
	}
}
