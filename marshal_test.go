package sipgo

import (
	"encoding"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ encoding.BinaryMarshaler   = State{}
	_ encoding.BinaryUnmarshaler = (*State)(nil)
	_ encoding.BinaryMarshaler   = RawHasher{}
	_ encoding.BinaryUnmarshaler = (*RawHasher)(nil)
	_ encoding.BinaryMarshaler   = (*Hasher)(nil)
	_ encoding.BinaryUnmarshaler = (*Hasher)(nil)
)

func TestStateMarshalRoundTrip(t *testing.T) {
	s := NewState(testK0, testK1)
	s.Absorb(0x1234, 2)

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 32)

	var restored State
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, s.Words(), restored.Words())

	// Restored state must continue identically.
	s.Absorb(0x5678, 2)
	restored.Absorb(0x5678, 2)
	assert.Equal(t, s.Finalize(4), restored.Finalize(4))
}

func TestStateMarshalIsLittleEndian(t *testing.T) {
	s := StateFromWords([4]uint64{0x0102030405060708, 0, 0, 0})

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data[:8])
}

func TestStateUnmarshalRejectsWrongSize(t *testing.T) {
	var s State
	err := s.UnmarshalBinary(make([]byte, 31))
	assert.ErrorIs(t, err, ErrStateSize)
}

func TestRawHasherMarshalRoundTrip(t *testing.T) {
	h := NewRaw(testK0, testK1, 2, 4)
	h.UpdateBytes(ascending(40))

	data, err := h.MarshalBinary()
	require.NoError(t, err)

	restored := NewRaw(0, 0, 2, 4)
	require.NoError(t, restored.UnmarshalBinary(data))

	h.Update(7)
	restored.Update(7)
	assert.Equal(t, h.Sum64(), restored.Sum64())
}

func TestHasherMarshalRoundTripMidStream(t *testing.T) {
	data := ascending(45) // leaves a 5-byte tail pending

	h := New24(testK0, testK1)
	h.Write(data[:29])

	blob, err := h.MarshalBinary()
	require.NoError(t, err)

	restored := New24(testK0, testK1)
	require.NoError(t, restored.UnmarshalBinary(blob))

	h.Write(data[29:])
	restored.Write(data[29:])

	oneShot := New24(testK0, testK1)
	oneShot.Write(data)

	assert.Equal(t, oneShot.Sum64(), h.Sum64())
	assert.Equal(t, oneShot.Sum64(), restored.Sum64())
}

func TestHasherUnmarshalErrors(t *testing.T) {
	h := New24(testK0, testK1)
	h.Write(ascending(10))

	blob, err := h.MarshalBinary()
	require.NoError(t, err)

	t.Run("wrong size", func(t *testing.T) {
		assert.ErrorIs(t, New24(0, 0).UnmarshalBinary(blob[:len(blob)-1]), ErrStateSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[0] ^= 0xff
		assert.ErrorIs(t, New24(0, 0).UnmarshalBinary(bad), ErrStateFormat)
	})

	t.Run("tail length out of range", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[len(hasherMagic)+32+8] = 9
		assert.ErrorIs(t, New24(0, 0).UnmarshalBinary(bad), ErrStateFormat)
	})
}
