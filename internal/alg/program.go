package alg

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/hashbed/randomx/internal/consts"
)

// RegSize is the size of the program register file.
const RegSize = 64

// Prime derives the program seed from input and refills the scratchpad
// from it, returning the initial register file. scratch must be
// consts.ScratchSize bytes; its previous contents do not influence the
// result.
func Prime(scratch, input []byte) [RegSize]byte {
	seed := blake2b.Sum512(input)

	var buf [RegSize + 8]byte
	prev := seed[:]
	for j := 0; j < consts.ScratchBlocks; j++ {
		copy(buf[:], prev)
		binary.LittleEndian.PutUint64(buf[RegSize:], uint64(j))

		sum := blake2b.Sum512(buf[:])
		copy(scratch[j*consts.BlockSize:], sum[:])
		prev = scratch[j*consts.BlockSize : (j+1)*consts.BlockSize]
	}
	return seed
}

// Finalize runs the mixing iterations against a primed scratchpad and
// returns the digest. item resolves a dataset item index to its contents;
// it is the only place light and fast mode differ.
func Finalize(scratch []byte, reg *[RegSize]byte, item func(uint64) [consts.ItemSize]byte) [consts.DigestSize]byte {
	buf := make([]byte, 0, RegSize+consts.BlockSize+8)

	for t := 0; t < consts.ProgramIterations; t++ {
		it := item(binary.LittleEndian.Uint64(reg[:8]) % consts.DatasetItems)

		off := int(binary.LittleEndian.Uint64(reg[8:16])%consts.ScratchBlocks) * consts.BlockSize
		block := scratch[off : off+consts.BlockSize]
		for k := range block {
			block[k] ^= it[k]
		}

		buf = append(buf[:0], reg[:]...)
		buf = append(buf, block...)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t))

		*reg = blake2b.Sum512(buf)
	}

	sum := blake2b.Sum512(scratch)
	buf = append(buf[:0], reg[:]...)
	buf = append(buf, sum[:]...)
	return blake2b.Sum256(buf)
}
