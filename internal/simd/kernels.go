package simd

import (
	"encoding/binary"
	"math/bits"
)

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with SIMD versions when available.
var (
	kernelRounds   = roundsGeneric
	kernelCompress = compressGeneric
)

// roundsGeneric is the scalar reference round function. It is the
// ground truth every vector backend must match bit for bit.
func roundsGeneric(s *State, n int) {
	v0, v1, v2, v3 := s[ix0], s[ix1], s[ix2], s[ix3]
	for ; n > 0; n-- {
		v0 += v1
		v1 = bits.RotateLeft64(v1, 13)
		v1 ^= v0
		v0 = bits.RotateLeft64(v0, 32)

		v2 += v3
		v3 = bits.RotateLeft64(v3, 16)
		v3 ^= v2

		v0 += v3
		v3 = bits.RotateLeft64(v3, 21)
		v3 ^= v0

		v2 += v1
		v1 = bits.RotateLeft64(v1, 17)
		v1 ^= v2
		v2 = bits.RotateLeft64(v2, 32)
	}
	s[ix0], s[ix1], s[ix2], s[ix3] = v0, v1, v2, v3
}

func compressGeneric(s *State, p []byte, c int) {
	for len(p) >= 8 {
		m := binary.LittleEndian.Uint64(p)
		s[ix3] ^= m
		roundsGeneric(s, c)
		s[ix0] ^= m
		p = p[8:]
	}
}
