package consts

// Reference geometry of the hash. Everything above this package sizes its
// buffers from these values and never hardcodes them.
const (
	BlockSize   = 64
	CacheBlocks = 32768
	CacheSize   = CacheBlocks * BlockSize

	ItemSize     = 64
	DatasetItems = 65536
	DatasetSize  = DatasetItems * ItemSize

	ScratchBlocks = 1024
	ScratchSize   = ScratchBlocks * BlockSize

	ProgramIterations = 8
	CacheRounds       = 4

	DigestSize = 32
)
