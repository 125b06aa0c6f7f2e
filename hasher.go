package sipgo

import (
	"encoding/binary"
	"hash"

	"github.com/hupe1980/sipgo/internal/simd"
)

// Hasher is the streaming byte-oriented SipHash-C-D hasher. It
// implements hash.Hash64 with the canonical SipHash message framing:
// bytes are absorbed as little-endian 64-bit words, and finalization
// injects a last word carrying the total message length (mod 256) in
// its most significant byte.
//
// A Hasher is not safe for concurrent mutation; distinct instances
// are fully independent. Sum and Sum64 operate on a copy of the
// state, so hashing can continue after reading a digest.
type Hasher struct {
	state  simd.State
	k0, k1 uint64
	tail   [8]byte
	ntail  int
	total  uint64
	c, d   int
}

var _ hash.Hash64 = (*Hasher)(nil)

// New returns a Hasher keyed with k0, k1, performing c compression
// rounds per word and d finalization rounds. Negative round counts
// panic.
func New(k0, k1 uint64, c, d int) *Hasher {
	checkRounds(c, d)
	return &Hasher{state: simd.FromKeys(k0, k1), k0: k0, k1: k1, c: c, d: d}
}

// New24 returns a SipHash-2-4 Hasher, the conservative default
// parameterization.
func New24(k0, k1 uint64) *Hasher {
	return New(k0, k1, 2, 4)
}

// New13 returns a SipHash-1-3 Hasher, trading security margin for
// throughput.
func New13(k0, k1 uint64) *Hasher {
	return New(k0, k1, 1, 3)
}

// Write absorbs p. It never fails and always returns len(p), nil.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	h.total += uint64(n)

	if h.ntail > 0 {
		take := copy(h.tail[h.ntail:], p)
		h.ntail += take
		if h.ntail < 8 {
			return n, nil
		}
		p = p[take:]
		h.state.Absorb(binary.LittleEndian.Uint64(h.tail[:]), h.c)
		h.ntail = 0
	}

	full := len(p) &^ 7
	simd.Compress(&h.state, p[:full], h.c)
	h.ntail = copy(h.tail[:], p[full:])

	return n, nil
}

// Sum64 returns the digest of all bytes written so far. It runs on a
// copy of the state: the Hasher remains usable and repeated calls
// without intervening writes return equal values.
func (h *Hasher) Sum64() uint64 {
	s := h.state

	// Final block: the pending tail bytes (little-endian, bytes past
	// ntail masked off) with the total length mod 256 in the top byte.
	word := binary.LittleEndian.Uint64(h.tail[:])
	word &= 1<<(8*uint(h.ntail)) - 1 // ntail is always < 8
	word |= (h.total & 0xff) << 56

	s.Absorb(word, h.c)
	return s.Finalize(h.d)
}

// Sum appends the 8-byte little-endian digest to b and returns the
// resulting slice.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, h.Sum64())
}

// Reset restores the Hasher to its freshly keyed state.
func (h *Hasher) Reset() {
	h.state = simd.FromKeys(h.k0, h.k1)
	h.tail = [8]byte{}
	h.ntail = 0
	h.total = 0
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the hash block size in bytes.
func (h *Hasher) BlockSize() int { return 8 }

// RoundCounts returns the configured (c, d) round counts.
func (h *Hasher) RoundCounts() (c, d int) {
	return h.c, h.d
}
