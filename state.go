package sipgo

import "github.com/hupe1980/sipgo/internal/simd"

// State is the raw SipHash permutation state: logically the ordered
// word array [s0, s1, s2, s3].
//
// No guarantee is made about the physical layout (the amd64 backend
// stores the words lane-paired as [s0, s2, s1, s3] so the two 16-byte
// halves map onto vector registers); Words and StateFromWords are the
// bridge between the logical order and whatever layout is compiled in.
//
// A State is a small copyable value. Copying forks the permutation:
// the copies evolve independently.
type State struct {
	s simd.State
}

// NewState returns the state initialized from the two key words, per
// the SipHash specification:
// [k0^0x736f6d6570736575, k1^0x646f72616e646f6d, k0^0x6c7967656e657261, k1^0x7465646279746573].
func NewState(k0, k1 uint64) State {
	return State{s: simd.FromKeys(k0, k1)}
}

// StateFromWords reconstructs a state from a logical word array, as
// previously returned by Words.
func StateFromWords(w [4]uint64) State {
	return State{s: simd.FromWords(w)}
}

// Words returns the logical word array [s0, s1, s2, s3]. It is meant
// for serialization and diagnostics; mutating the returned array does
// not modify the state.
func (s State) Words() [4]uint64 {
	return s.s.Words()
}

// PreMix xors a message word into s3. This is the injection performed
// before the compression rounds of an absorb step.
func (s *State) PreMix(m uint64) {
	s.s.PreMix(m)
}

// PostMix xors a message word into s0. This is the injection performed
// after the compression rounds of an absorb step.
func (s *State) PostMix(m uint64) {
	s.s.PostMix(m)
}

// FinalMix xors the finalization constant 0xff into s2.
func (s *State) FinalMix() {
	s.s.FinalMix()
}

// Round applies one full SipHash ARX round.
func (s *State) Round() {
	s.s.Round()
}

// Rounds applies n full rounds. n <= 0 is a no-op.
func (s *State) Rounds(n int) {
	s.s.Rounds(n)
}

// Fold xors the four state words together and returns the result.
func (s State) Fold() uint64 {
	return s.s.Fold()
}

// Absorb ingests one message word with c compression rounds:
// PreMix, c rounds, PostMix.
func (s *State) Absorb(m uint64, c int) {
	s.s.Absorb(m, c)
}

// Finalize runs FinalMix, d rounds and Fold on a copy, leaving the
// receiver untouched so callers can keep absorbing afterwards.
func (s State) Finalize(d int) uint64 {
	return s.s.Finalize(d)
}
