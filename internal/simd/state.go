package simd

// The four initialization constants are the little-endian words of
// the ASCII phrase "somepseudorandomlygeneratedbytes".
const (
	mag0 = 0x736f6d6570736575
	mag1 = 0x646f72616e646f6d
	mag2 = 0x6c7967656e657261
	mag3 = 0x7465646279746573
)

// State is the raw 4-word SipHash ARX state.
//
// The array index order is the compiled-in physical layout, not the
// logical word order; use FromWords and Words to cross that boundary.
// State is a plain value: copying it forks the permutation.
type State [4]uint64

// FromKeys returns the state initialized from the two key words:
// [k0^mag0, k1^mag1, k0^mag2, k1^mag3].
func FromKeys(k0, k1 uint64) State {
	var s State
	s[ix0] = k0 ^ mag0
	s[ix1] = k1 ^ mag1
	s[ix2] = k0 ^ mag2
	s[ix3] = k1 ^ mag3
	return s
}

// FromWords returns the state holding the logical word array w.
func FromWords(w [4]uint64) State {
	var s State
	s[ix0] = w[0]
	s[ix1] = w[1]
	s[ix2] = w[2]
	s[ix3] = w[3]
	return s
}

// Words returns the logical word array [s0, s1, s2, s3].
// Intended for serialization and diagnostics; mutating the returned
// array does not affect the state.
func (s State) Words() [4]uint64 {
	return [4]uint64{s[ix0], s[ix1], s[ix2], s[ix3]}
}

// PreMix xors a message word into s3, the injection point before the
// compression rounds.
func (s *State) PreMix(m uint64) {
	s[ix3] ^= m
}

// PostMix xors a message word into s0, the injection point after the
// compression rounds.
func (s *State) PostMix(m uint64) {
	s[ix0] ^= m
}

// FinalMix xors the finalization constant 0xff into s2.
func (s *State) FinalMix() {
	s[ix2] ^= 0xff
}

// Fold xors all four state words together. The xor is commutative, so
// this needs no layout translation.
func (s State) Fold() uint64 {
	return s[0] ^ s[1] ^ s[2] ^ s[3]
}

// Round applies one full SipHash ARX round.
func (s *State) Round() {
	kernelRounds(s, 1)
}

// Rounds applies n full rounds. n <= 0 is a no-op.
func (s *State) Rounds(n int) {
	if n > 0 {
		kernelRounds(s, n)
	}
}

// Absorb ingests one message word with c compression rounds:
// PreMix, c rounds, PostMix.
func (s *State) Absorb(m uint64, c int) {
	s.PreMix(m)
	s.Rounds(c)
	s.PostMix(m)
}

// Finalize runs the finalization sequence on a copy of the state and
// returns the digest word: FinalMix, d rounds, Fold.
func (s State) Finalize(d int) uint64 {
	s.FinalMix()
	s.Rounds(d)
	return s.Fold()
}

// Compress absorbs len(p)/8 little-endian words from p with c rounds
// each. Trailing bytes beyond the last full word are ignored; callers
// own the framing of partial words.
func Compress(s *State, p []byte, c int) {
	kernelCompress(s, p[:len(p)&^7], c)
}
