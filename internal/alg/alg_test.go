package alg

import (
	"encoding/hex"
	"testing"

	"github.com/zeebo/assert"

	"github.com/hashbed/randomx/internal/consts"
)

// Reference vectors computed independently from the engine definition.
const (
	emptyKeyBlock0 = "120458573161543aea51d1ef17b4be6ab52805387e1c181915df74af6f72774f" +
		"6575712c3b3265940f12e8d5d6a90d988bf9dbab022290c1f6032703a7ac0aab"
	emptyKeyBlockLast = "3c96cfed14fa62d9c5262cdbe9fe5fc17dc46283da4d1cf83882b1f8b92ac59a" +
		"4191bb360c0b3c0eef2dcf784257f880d49e18350abf47ad4c7cdeade32f5f8f"
	testKeyBlock0 = "8a10cd9f31946e37e63a9529e829e66eb16ede3ecfa6038e4f48e1865a2c42fb" +
		"c929ecd5ea768623969fa4371b7614d769f429cd07c9643aef71ca2e6550bfbc"
	emptyKeyItem0 = "43871ab5712f9cdaafc0e253a0d403d6b123ca51cc2a31aa1208028776d9847e" +
		"a6c387b3887b32d7293965d6da3bb58c749342619990b43b1918eb368025c7ab"
	emptyKeyItemLast = "38cc7177a59a32cdbd6d320b648e941916c06716999ce8057c05be473165815f" +
		"f02b07af217b38ddee48212e6a6dd6fd1d4836a51abdb283b435c64060f20f4a"
)

func TestFillCache_Vectors(t *testing.T) {
	cache := make([]byte, consts.CacheSize)

	FillCache(cache, nil)
	assert.Equal(t, emptyKeyBlock0, hex.EncodeToString(cache[:consts.BlockSize]))
	assert.Equal(t, emptyKeyBlockLast, hex.EncodeToString(cache[consts.CacheSize-consts.BlockSize:]))

	FillCache(cache, []byte("test key 000"))
	assert.Equal(t, testKeyBlock0, hex.EncodeToString(cache[:consts.BlockSize]))
}

func TestFillCache_Overwrites(t *testing.T) {
	c1 := make([]byte, consts.CacheSize)
	c2 := make([]byte, consts.CacheSize)

	FillCache(c1, []byte("a"))
	FillCache(c1, []byte("b"))
	FillCache(c2, []byte("b"))

	assert.Equal(t, hex.EncodeToString(c1[:128]), hex.EncodeToString(c2[:128]))
	assert.Equal(t, hex.EncodeToString(c1[consts.CacheSize-128:]), hex.EncodeToString(c2[consts.CacheSize-128:]))
}

func TestItem_Vectors(t *testing.T) {
	cache := make([]byte, consts.CacheSize)
	FillCache(cache, nil)

	i0 := Item(cache, 0)
	last := Item(cache, consts.DatasetItems-1)

	assert.Equal(t, emptyKeyItem0, hex.EncodeToString(i0[:]))
	assert.Equal(t, emptyKeyItemLast, hex.EncodeToString(last[:]))
}

func TestPrimeFinalize_Deterministic(t *testing.T) {
	cache := make([]byte, consts.CacheSize)
	FillCache(cache, []byte("k"))
	item := func(idx uint64) [consts.ItemSize]byte { return Item(cache, idx) }

	scratch := make([]byte, consts.ScratchSize)

	reg := Prime(scratch, []byte("input"))
	d1 := Finalize(scratch, &reg, item)

	// Prime fully overwrites the scratchpad, so a dirty pad must not
	// influence the next digest.
	reg = Prime(scratch, []byte("input"))
	d2 := Finalize(scratch, &reg, item)

	assert.Equal(t, d1, d2)
}
