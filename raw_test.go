package sipgo

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawUpdateEqualsStateOps(t *testing.T) {
	h := NewRaw(testK0, testK1, 2, 4)
	h.Update(0xdeadbeef)

	s := NewState(testK0, testK1)
	s.Absorb(0xdeadbeef, 2)

	assert.Equal(t, s.Finalize(4), h.Sum64())
}

func TestRawUpdateBytesWholeWords(t *testing.T) {
	// An exact multiple of 8 bytes gets no padding word: the digest
	// must equal updating word by word.
	data := ascending(24)

	a := NewRaw(testK0, testK1, 2, 4)
	a.UpdateBytes(data)

	b := NewRaw(testK0, testK1, 2, 4)
	for i := 0; i < len(data); i += 8 {
		b.Update(binary.LittleEndian.Uint64(data[i:]))
	}

	assert.Equal(t, b.Sum64(), a.Sum64())
}

func TestRawUpdateBytesZeroPadsRemainder(t *testing.T) {
	a := NewRaw(testK0, testK1, 2, 4)
	a.UpdateBytes([]byte{0x01, 0x02, 0x03})

	b := NewRaw(testK0, testK1, 2, 4)
	b.Update(0x030201)

	assert.Equal(t, b.Sum64(), a.Sum64())
}

func TestRawUpdateBytesEmptyIsNoop(t *testing.T) {
	a := NewRaw(testK0, testK1, 2, 4)
	a.UpdateBytes(nil)

	b := NewRaw(testK0, testK1, 2, 4)

	assert.Equal(t, b.Sum64(), a.Sum64())
}

func TestRawDivergesFromStreamFraming(t *testing.T) {
	// The raw hasher omits the length-suffix block, so even aligned
	// inputs hash differently than through the stream Hasher.
	data := ascending(16)

	raw := NewRaw(testK0, testK1, 2, 4)
	raw.UpdateBytes(data)

	h := New24(testK0, testK1)
	h.Write(data)

	assert.NotEqual(t, h.Sum64(), raw.Sum64())
}

func TestRawSum64Idempotent(t *testing.T) {
	h := NewRaw(testK0, testK1, 2, 4)
	h.Update(1)

	first := h.Sum64()
	assert.Equal(t, first, h.Sum64())

	h.Update(2)
	assert.NotEqual(t, first, h.Sum64())
}

func TestRawStateRoundTrip(t *testing.T) {
	a := NewRaw(testK0, testK1, 2, 4)
	a.UpdateBytes(ascending(13))

	b := NewRawFromState(a.State(), 2, 4)

	// Identical subsequent behavior, not just an equal snapshot.
	a.Update(99)
	b.Update(99)
	assert.Equal(t, a.Sum64(), b.Sum64())
}

// encodeString mirrors UpdateString's framing: whole 8-byte chunks
// followed by one final chunk padded with 0xff bytes.
func encodeString(s string) []byte {
	var out []byte
	for len(s) >= 8 {
		out = append(out, s[:8]...)
		s = s[8:]
	}
	final := [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	copy(final[:], s)
	return append(out, final[:]...)
}

func TestRawUpdateStringMatchesEncoding(t *testing.T) {
	for _, s := range []string{"", "a", "golang", "12345678", "123456789abcdef"} {
		a := NewRaw(testK0, testK1, 2, 4)
		a.UpdateString(s)

		b := NewRaw(testK0, testK1, 2, 4)
		enc := encodeString(s)
		for i := 0; i < len(enc); i += 8 {
			b.Update(binary.LittleEndian.Uint64(enc[i:]))
		}

		assert.Equalf(t, b.Sum64(), a.Sum64(), "string %q", s)
	}
}

func TestStringEncodingPrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	strs := []string{"", "a", "ab", "abc", "abcdefg", "abcdefgh", "abcdefghi", "\xff", "\xff\xff\xff\xff\xff\xff\xff\xff"}
	for i := 0; i < 40; i++ {
		n := rng.Intn(20)
		b := make([]byte, n)
		rng.Read(b)
		strs = append(strs, string(b))
	}

	for i, a := range strs {
		for j, b := range strs {
			if a == b {
				continue
			}
			ea, eb := encodeString(a), encodeString(b)
			require.Falsef(t, bytes.HasPrefix(eb, ea), "encoding of %q (%d) is a prefix of %q (%d)", a, i, b, j)
		}
	}
}

func TestRawUpdateStringEmptyAppendsPadBlock(t *testing.T) {
	a := NewRaw(testK0, testK1, 2, 4)
	a.UpdateString("")

	b := NewRaw(testK0, testK1, 2, 4)
	b.Update(^uint64(0))

	assert.Equal(t, b.Sum64(), a.Sum64())
}

func BenchmarkRawUpdateBytes(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 64*1024)
	rng.Read(data)

	h := NewRaw(testK0, testK1, 2, 4)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		h.UpdateBytes(data)
	}
	benchSink = h.Sum64()
}
