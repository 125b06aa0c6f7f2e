package sipgo

import "math/bits"

// Whitening and tick constants: the fractional parts of the square
// roots of the first eight primes (the SHA-2 initialization words).
const (
	rngWhiten0 = 0x6a09e667f3bcc908
	rngWhiten1 = 0xbb67ae8584caa73b

	rngByteSeedK0 = 0x3c6ef372fe94f82b
	rngByteSeedK1 = 0xa54ff53a5f1d36f1

	rngTickPre  = 0x510e527fade682d1
	rngTickPost = 0x9b05688c2b3e6c1f
)

// RNG derives a pseudorandom 64-bit stream from a RawHasher: each
// tick absorbs a fixed constant, reads a digest, then absorbs a
// second constant so consecutive outputs never finalize the same
// state. It satisfies math/rand/v2's Source interface.
//
// The stream is deterministic in the seed material. RNG is not safe
// for concurrent use without external serialization.
type RNG struct {
	raw RawHasher
}

// NewRNG returns a generator keyed with k0, k1 using SipHash-c-d.
func NewRNG(k0, k1 uint64, c, d int) *RNG {
	return &RNG{raw: NewRaw(k0, k1, c, d)}
}

// NewRNGFromRaw returns a generator continuing from raw, which may
// already have absorbed arbitrary data.
func NewRNGFromRaw(raw RawHasher) *RNG {
	return &RNG{raw: raw}
}

// NewRNGFromSeed returns a generator derived from a single word seed
// (at most 64 bits of entropy). The seed is whitened into both key
// words; prefer this over passing seed directly as k0 or k1 with the
// other word zero.
func NewRNGFromSeed(seed uint64, c, d int) *RNG {
	return NewRNG(seed^rngWhiten0, bits.RotateLeft64(seed, -31)^rngWhiten1, c, d)
}

// NewRNGFromBytes returns a generator seeded from an arbitrary byte
// string. The seed is length-prefixed before absorbing, so seeds that
// differ only in trailing zero bytes produce distinct streams.
func NewRNGFromBytes(seed []byte, c, d int) *RNG {
	raw := NewRaw(rngByteSeedK0, rngByteSeedK1, c, d)
	raw.Update(uint64(len(seed)))
	raw.UpdateBytes(seed)
	return &RNG{raw: raw}
}

// TickWith produces the next value while ingesting w0 before the
// digest is taken and w1 after. This is the low-level hook for custom
// interleave constants.
func (r *RNG) TickWith(w0, w1 uint64) uint64 {
	r.raw.Update(w0)
	v := r.raw.Sum64()
	r.raw.Update(w1)
	return v
}

// Uint64 returns the next pseudorandom value.
func (r *RNG) Uint64() uint64 {
	return r.TickWith(rngTickPre, rngTickPost)
}

// Raw returns the generator's underlying hasher. Mutating it changes
// the stream of subsequent values.
func (r *RNG) Raw() *RawHasher {
	return &r.raw
}
