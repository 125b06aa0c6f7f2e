// Package sipgo implements the SipHash family of keyed pseudorandom
// functions with configurable round counts (SipHash-C-D, per the
// construction in https://eprint.iacr.org/2012/351.pdf).
//
// The package exposes three layers, from low to high:
//
//	// 1. STATE — the raw ARX permutation, for custom framing.
//	s := sipgo.NewState(k0, k1)
//	s.PreMix(word)
//	s.Rounds(2)
//	s.PostMix(word)
//	digest := s.Finalize(4)
//
//	// 2. RAW HASHER — word-granular, no byte buffering.
//	r := sipgo.NewRaw(k0, k1, 2, 4)
//	r.Update(word)
//	digest = r.Sum64()
//
//	// 3. STREAM HASHER — byte-oriented hash.Hash64 with the
//	//    canonical length-suffix framing.
//	h := sipgo.New24(k0, k1)
//	h.Write(data)
//	digest = h.Sum64()
//
// # Round Counts
//
// C compression rounds run per ingested 64-bit word and D
// finalization rounds before output. SipHash-2-4 (New24) provides a
// conservative security margin; SipHash-1-3 (New13) trades margin for
// throughput. Round counts are fixed at construction; instances with
// different counts compute unrelated functions.
//
// # Backends
//
// The permutation has a portable scalar implementation and amd64
// vector kernels (SSE2 baseline, AVX2 when the CPU supports it),
// selected once at startup. All backends are bit-identical; the
// SIPGO_SIMD environment variable ("generic", "sse2", "avx2") forces
// a specific one, and the noasm build tag removes the assembly
// entirely.
//
// # Byte Order
//
// All digests and serialized states are defined in terms of
// little-endian 64-bit words, independent of the host byte order.
package sipgo
