package xmgid

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomIDs 生成确定性的随机 ID 集合
func randomIDs(n int) []ID {
	r := rand.New(rand.NewPCG(1, 2))
	ids := make([]ID, n)
	for i := range ids {
		for j := range ids[i] {
			ids[i][j] = byte(r.UintN(256))
		}
	}
	return ids
}

// =============================================================================
// Parse
// =============================================================================

func TestParse_Valid(t *testing.T) {
	want := ID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c}

	tests := []struct {
		name  string
		input string
	}{
		{"lower", "0102030405060708090a0b0c"},
		{"upper", "0102030405060708090A0B0C"},
		{"mixed", "0102030405060708090a0B0c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too_short", "0102030405060708090a0b0"},
		{"too_long", "0102030405060708090a0b0c0"},
		{"non_hex", "0102030405060708090a0b0g"},
		{"space", "0102030405 60708090a0b0c"},
		{"embedded_nul", "0102030405\x0060708090a0b0c"},
		{"nul_padded", "0102030405\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"},
		{"prefix_0x", "0x0102030405060708090a0b"},
		{"non_ascii", "0102030405060708090a0bé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, Nil, id)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrTruncated)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, KindMalformed, perr.Kind)
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Contains(t, err.Error(), "mgid")

	_, err = DecodeWire([]byte{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 3")
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() {
		MustParse("ffffffffffffffffffffffff")
	})
	assert.Panics(t, func() {
		MustParse("zz")
	})
}

func TestString_LowerCase(t *testing.T) {
	id := MustParse("ABCDEFABCDEFABCDEFABCDEF")
	s := id.String()
	assert.Equal(t, "abcdefabcdefabcdefabcdef", s)
	assert.Len(t, s, TextLen)
	assert.Equal(t, strings.ToLower(s), s)
}

func TestAppendHex(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")
	got := id.AppendHex([]byte("id="))
	assert.Equal(t, "id=0102030405060708090a0b0c", string(got))
}

func TestRoundTrip_Text(t *testing.T) {
	for _, id := range append(randomIDs(500), Nil, MustParse("ffffffffffffffffffffffff")) {
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

// =============================================================================
// 线格式
// =============================================================================

func TestRoundTrip_Wire(t *testing.T) {
	for _, id := range randomIDs(500) {
		wire := id.WireBytes()
		require.Len(t, wire, Len)

		decoded, err := DecodeWire(wire)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeWire_Truncated(t *testing.T) {
	src := MustParse("0102030405060708090a0b0c").WireBytes()
	for n := 0; n < Len; n++ {
		_, err := DecodeWire(src[:n])
		require.Error(t, err, "length %d", n)
		assert.ErrorIs(t, err, ErrTruncated)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, KindTruncated, perr.Kind)
		assert.Equal(t, string(src[:n]), perr.Input)
	}
}

func TestDecodeWire_ConsumesPrefix(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")
	buf := id.AppendWire(nil)
	buf = append(buf, 0xde, 0xad)

	decoded, err := DecodeWire(buf)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestAppendWire(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")
	got := id.AppendWire([]byte{0xff})
	assert.Equal(t, append([]byte{0xff}, id[:]...), got)
}

func TestWireBytes_IsCopy(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")
	b := id.WireBytes()
	b[0] = 0xff
	assert.Equal(t, byte(0x01), id[0])
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadWire(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")

	t.Run("exact", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, id.WriteWire(&buf))
		got, err := ReadWire(&buf)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("sequential", func(t *testing.T) {
		other := MustParse("ffffffffffffffffffffffff")
		r := bytes.NewReader(other.AppendWire(id.AppendWire(nil)))
		first, err := ReadWire(r)
		require.NoError(t, err)
		second, err := ReadWire(r)
		require.NoError(t, err)
		assert.Equal(t, id, first)
		assert.Equal(t, other, second)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ReadWire(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("short", func(t *testing.T) {
		_, err := ReadWire(bytes.NewReader(id[:5]))
		assert.ErrorIs(t, err, ErrTruncated)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, string(id[:5]), perr.Input)
	})

	t.Run("io_error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ReadWire(errReader{err: boom})
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrTruncated)
	})
}

// =============================================================================
// FromBytes
// =============================================================================

func TestFromBytes(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")

	got, err := FromBytes(id[:])
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = FromBytes(id[:11])
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = FromBytes(append(id[:], 0))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Nil.IsZero())
	assert.False(t, MustParse("000000000000000000000001").IsZero())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "malformed-input", KindMalformed.String())
	assert.Equal(t, "truncated-input", KindTruncated.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
