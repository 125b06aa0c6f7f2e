//go:build amd64 && !noasm

package simd

// Physical word order on amd64: lane-paired [s0, s2, s1, s3].
//
// The assembly kernels load the state as two 128-bit halves,
// A = [v0, v2] from bytes 0..15 and B = [v1, v3] from bytes 16..31,
// so the half-round add/rotate/xor steps become one vector op per
// pair. Keeping the pairing in memory avoids a shuffle on every
// load/store of the state.
const (
	ix0 = 0
	ix2 = 1
	ix1 = 2
	ix3 = 3
)
