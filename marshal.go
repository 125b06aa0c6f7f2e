package sipgo

import (
	"encoding/binary"
	"fmt"
)

// Serialized sizes in bytes. All fields are little-endian, matching
// the package-wide word interpretation.
const (
	stateBinarySize  = 32
	hasherBinarySize = len(hasherMagic) + stateBinarySize + 8 + 1 + 8
)

// hasherMagic versions the Hasher wire format.
const hasherMagic = "sip\x01"

// MarshalBinary encodes the logical word array as 32 little-endian
// bytes.
func (s State) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, stateBinarySize)
	for _, w := range s.Words() {
		b = binary.LittleEndian.AppendUint64(b, w)
	}
	return b, nil
}

// UnmarshalBinary reconstructs the state from MarshalBinary output.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != stateBinarySize {
		return fmt.Errorf("sipgo: state: %w: got %d bytes, want %d", ErrStateSize, len(data), stateBinarySize)
	}

	var w [4]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	*s = StateFromWords(w)

	return nil
}

// MarshalBinary encodes the permutation state. Round counts are part
// of the hasher's identity, not its state, and are not serialized.
func (h RawHasher) MarshalBinary() ([]byte, error) {
	return h.State().MarshalBinary()
}

// UnmarshalBinary restores the permutation state. The receiver keeps
// its configured round counts.
func (h *RawHasher) UnmarshalBinary(data []byte) error {
	var s State
	if err := s.UnmarshalBinary(data); err != nil {
		return err
	}
	h.state = s.s
	return nil
}

// MarshalBinary encodes the full streaming state: permutation words,
// pending tail and total byte count. Keys and round counts are
// configuration rather than state and are not serialized; unmarshal
// into a Hasher constructed with the same parameters.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, hasherBinarySize)
	b = append(b, hasherMagic...)
	for _, w := range h.state.Words() {
		b = binary.LittleEndian.AppendUint64(b, w)
	}
	b = append(b, h.tail[:]...)
	b = append(b, byte(h.ntail))
	b = binary.LittleEndian.AppendUint64(b, h.total)
	return b, nil
}

// UnmarshalBinary restores state previously written by MarshalBinary.
func (h *Hasher) UnmarshalBinary(data []byte) error {
	if len(data) != hasherBinarySize {
		return fmt.Errorf("sipgo: hasher: %w: got %d bytes, want %d", ErrStateSize, len(data), hasherBinarySize)
	}
	if string(data[:len(hasherMagic)]) != hasherMagic {
		return fmt.Errorf("sipgo: hasher: %w: bad magic", ErrStateFormat)
	}
	data = data[len(hasherMagic):]

	var w [4]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	data = data[stateBinarySize:]

	ntail := int(data[8])
	if ntail >= 8 {
		return fmt.Errorf("sipgo: hasher: %w: tail length %d out of range", ErrStateFormat, ntail)
	}

	h.state = StateFromWords(w).s
	copy(h.tail[:], data[:8])
	h.ntail = ntail
	h.total = binary.LittleEndian.Uint64(data[9:])

	return nil
}
