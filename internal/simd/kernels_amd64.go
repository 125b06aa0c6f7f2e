//go:build amd64 && !noasm

package simd

import "unsafe"

// init sets the kernel pointers based on the active ISA.
// This runs after capability_amd64.go init() has detected CPU features
// and selected the active ISA.
func init() {
	switch activeISA {
	case SSE2:
		kernelRounds = roundsSSE2
		kernelCompress = compressSSE2
	case AVX2:
		kernelRounds = roundsAVX2
		kernelCompress = compressAVX2
	}
}

func roundsSSE2(s *State, n int) {
	if n > 0 {
		sipRoundsSSE2(s, uint64(n))
	}
}

func compressSSE2(s *State, p []byte, c int) {
	n := uint64(len(p) / 8)
	if n == 0 {
		return
	}
	if c <= 0 {
		// Zero compression rounds degenerate to plain xors; the asm
		// inner loop assumes c >= 1.
		compressGeneric(s, p, c)
		return
	}
	sipCompressSSE2(s, unsafe.Pointer(&p[0]), n, uint64(c))
}

func roundsAVX2(s *State, n int) {
	if n > 0 {
		sipRoundsAVX2(s, uint64(n))
	}
}

func compressAVX2(s *State, p []byte, c int) {
	n := uint64(len(p) / 8)
	if n == 0 {
		return
	}
	if c <= 0 {
		compressGeneric(s, p, c)
		return
	}
	sipCompressAVX2(s, unsafe.Pointer(&p[0]), n, uint64(c))
}
