package consts

import "golang.org/x/sys/cpu"

var (
	HasAES   = cpu.X86.HasAES || cpu.ARM64.HasAES
	HasSSSE3 = cpu.X86.HasSSSE3
	HasAVX2  = cpu.X86.HasAVX2
)
