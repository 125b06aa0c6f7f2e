//go:build !amd64 || noasm

package simd

// Physical word order matches the logical [s0, s1, s2, s3] order on
// targets without a vector backend.
const (
	ix0 = 0
	ix1 = 1
	ix2 = 2
	ix3 = 3
)
