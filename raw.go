package sipgo

import (
	"encoding/binary"

	"github.com/hupe1980/sipgo/internal/simd"
)

// RawHasher is a word-granular SipHash-C-D hasher. Unlike Hasher it
// never buffers bytes: every Update ingests exactly one 64-bit word,
// and the byte-slice helpers pad each call out to whole words instead
// of carrying a tail between calls.
//
// This is faster than Hasher when the written values are naturally
// 8 bytes wide, but it produces different digests: in particular,
// UpdateBytes applies no length-suffix framing, so hashing an exact
// multiple of 8 bytes here differs from feeding the same bytes to
// Hasher. That divergence is intentional, not a defect.
//
// RawHasher is a copyable value; copies evolve independently.
type RawHasher struct {
	state simd.State
	c, d  int
}

// NewRaw returns a RawHasher keyed with k0, k1, performing c
// compression rounds per word and d finalization rounds.
// Negative round counts panic.
func NewRaw(k0, k1 uint64, c, d int) RawHasher {
	checkRounds(c, d)
	return RawHasher{state: simd.FromKeys(k0, k1), c: c, d: d}
}

// NewRawFromState returns a RawHasher that continues from a raw
// permutation state, which may already have absorbed arbitrary data.
func NewRawFromState(s State, c, d int) RawHasher {
	checkRounds(c, d)
	return RawHasher{state: s.s, c: c, d: d}
}

// State returns the current permutation state, for serialization and
// for seeding derived generators.
func (h RawHasher) State() State {
	return State{s: h.state}
}

// RoundCounts returns the configured (c, d) round counts.
func (h RawHasher) RoundCounts() (c, d int) {
	return h.c, h.d
}

// Update ingests one 64-bit word: PreMix, c rounds, PostMix.
func (h *RawHasher) Update(word uint64) {
	h.state.Absorb(word, h.c)
}

// UpdateBytes ingests p as little-endian 64-bit words. A trailing
// 1-7-byte remainder is zero-padded to a full word; when len(p) is an
// exact multiple of 8 no padding word is added at all, which omits
// the length-suffix framing the stream Hasher applies.
func (h *RawHasher) UpdateBytes(p []byte) {
	n := len(p) &^ 7
	simd.Compress(&h.state, p[:n], h.c)

	if rem := p[n:]; len(rem) > 0 {
		var buf [8]byte
		copy(buf[:], rem)
		h.Update(binary.LittleEndian.Uint64(buf[:]))
	}
}

// UpdateString ingests s like UpdateBytes, but pads the final word
// with 0xff bytes and always appends it, even when the remainder is
// empty. Every encoding therefore ends in a word containing at least
// one 0xff pad byte, so no string's encoding is a byte-prefix of a
// different string's encoding.
func (h *RawHasher) UpdateString(s string) {
	for len(s) >= 8 {
		var buf [8]byte
		copy(buf[:], s[:8])
		h.Update(binary.LittleEndian.Uint64(buf[:]))
		s = s[8:]
	}

	buf := [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	copy(buf[:], s)
	h.Update(binary.LittleEndian.Uint64(buf[:]))
}

// Sum64 finalizes a copy of the state with d rounds and returns the
// digest. The receiver is untouched: repeated calls without an
// intervening update return the same value, and updating remains
// possible afterwards.
func (h RawHasher) Sum64() uint64 {
	return h.state.Finalize(h.d)
}

func checkRounds(c, d int) {
	if c < 0 || d < 0 {
		panic("sipgo: negative round count")
	}
}
