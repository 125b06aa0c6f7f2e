// Package simd implements the SipHash ARX permutation state and its
// compression kernels.
//
// The package ships a portable scalar implementation plus amd64
// assembly kernels (SSE2 baseline, AVX2 when available). Kernel
// selection happens once at init through package-level function
// pointers, so the per-call dispatch cost is a single indirect call
// and no runtime branch ever differentiates behavior: every backend
// produces bit-identical output for identical input.
//
// The physical word order of State is a build-tag decision (see
// layout_amd64.go); all callers outside this package observe only the
// logical [s0, s1, s2, s3] order through FromWords and Words.
package simd
