package sipgo

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Seed is a pair of 64-bit key words. Hashers built from equal seeds
// produce identical digests; hashers built from independently drawn
// seeds almost surely do not.
type Seed struct {
	K0, K1 uint64
}

// MakeSeed draws a fresh Seed from the operating system's entropy
// source. The core never generates entropy itself; this is the one
// place key material is sourced.
func MakeSeed() (Seed, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return Seed{}, fmt.Errorf("sipgo: draw random seed: %w", err)
	}

	return Seed{
		K0: binary.LittleEndian.Uint64(b[0:8]),
		K1: binary.LittleEndian.Uint64(b[8:16]),
	}, nil
}

// NewSeeded returns a Hasher keyed from seed.
func NewSeeded(seed Seed, c, d int) *Hasher {
	return New(seed.K0, seed.K1, c, d)
}

// NewRawSeeded returns a RawHasher keyed from seed.
func NewRawSeeded(seed Seed, c, d int) RawHasher {
	return NewRaw(seed.K0, seed.K1, c, d)
}
