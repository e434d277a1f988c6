package rawview

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pack12 bit-packs 12-bit values two per three bytes.
func pack12(vals []uint16) []byte {
	out := make([]byte, 0, len(vals)/2*3)
	for i := 0; i+1 < len(vals); i += 2 {
		a, b := vals[i]&0x0FFF, vals[i+1]&0x0FFF
		out = append(out, byte(a>>4), byte(a&0x0F)<<4|byte(b>>8), byte(b))
	}
	return out
}

// packBE stores each value as a big-endian 16-bit container.
func packBE(vals []uint16) []byte {
	out := make([]byte, len(vals)*2)
	for i, v := range vals {
		binary.BigEndian.PutUint16(out[i*2:], v)
	}
	return out
}

func randomSamples(n int, bits uint, seed int64) []uint16 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(r.Intn(1 << bits))
	}
	return out
}

func TestExpectedLength(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, channels int
		bpp                     BitDepth
		highZero                bool
		want                    int
	}{
		{"8-bit mono", 4, 2, 1, Depth8, false, 8},
		{"8-bit rgb", 4, 2, 3, Depth8, false, 24},
		{"12-bit packed", 4, 2, 1, Depth12, false, 12},
		{"12-bit packed odd count", 3, 1, 1, Depth12, false, 5},
		{"12-bit high-zero", 4, 2, 1, Depth12, true, 16},
		{"16-bit", 2, 2, 3, Depth16, false, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ExpectedLength(tt.width, tt.height, tt.channels, tt.bpp, tt.highZero)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}

	_, err := ExpectedLength(0, 2, 1, Depth8, false)
	assert.True(t, IsKind(err, InvalidDimensions))
	_, err = ExpectedLength(2, 2, 2, Depth8, false)
	assert.True(t, IsKind(err, UnsupportedChannels))
	_, err = ExpectedLength(2, 2, 1, 10, false)
	assert.True(t, IsKind(err, UnsupportedBitDepth))
}

func TestExtractTo8(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		bpp      BitDepth
		highZero bool
		want     []byte
	}{
		{"8-bit", []byte{0, 1, 127, 255}, Depth8, false, []byte{0, 1, 127, 255}},
		{"12-bit high-zero", []byte{0x0A, 0xBC, 0x0D, 0xEF}, Depth12, true, []byte{0xAB, 0xDE}},
		{"12-bit packed", []byte{0xAB, 0xCD, 0xEF}, Depth12, false, []byte{0xAB, 0xDE}},
		{"16-bit", []byte{0x12, 0x34, 0x56, 0x78}, Depth16, false, []byte{0x12, 0x56}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTo8(tt.src, tt.bpp, tt.highZero)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTo8Identity(t *testing.T) {
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}
	for _, hz := range []bool{false, true} {
		got, err := ExtractTo8(src, Depth8, hz)
		require.NoError(t, err)
		assert.Equal(t, src, got)
	}
}

func TestExtractTo8Errors(t *testing.T) {
	got, err := ExtractTo8([]byte{0, 0}, Depth16, true)
	assert.Nil(t, got)
	assert.True(t, IsKind(err, HighZeroMismatch))

	got, err = ExtractTo8([]byte{0, 0}, 10, false)
	assert.Nil(t, got)
	assert.Equal(t, CodeUnsupportedBitDepth, ResultCode(err))

	_, err = ExtractTo8([]byte{1, 2, 3, 4}, Depth12, false)
	assert.Equal(t, CodeSizeMismatch, ResultCode(err))

	_, err = ExtractTo8([]byte{1, 2, 3}, Depth16, false)
	assert.Equal(t, CodeSizeMismatch, ResultCode(err))
}

func TestExtractTo16(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		bpp      BitDepth
		highZero bool
		want     []uint16
	}{
		{"8-bit widened", []byte{7, 200}, Depth8, false, []uint16{7, 200}},
		{"12-bit packed", []byte{0xAB, 0xCD, 0xEF}, Depth12, false, []uint16{0xABC, 0xDEF}},
		{"12-bit high-zero", []byte{0x0A, 0xBC, 0x0D, 0xEF}, Depth12, true, []uint16{0x0ABC, 0x0DEF}},
		{"16-bit", []byte{0x12, 0x34}, Depth16, false, []uint16{0x1234}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTo16(tt.src, tt.bpp, tt.highZero)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHighZeroRoundTrip(t *testing.T) {
	vals := randomSamples(1000, 12, 1)
	packed := packBE(vals)

	got, err := ExtractTo16(packed, Depth12, true)
	require.NoError(t, err)
	for i := range got {
		got[i] &= 0x0FFF
	}
	assert.Equal(t, vals, got)
	assert.Equal(t, packed, packBE(got), "pack, unpack, pack is stable")
}

func TestPackedRoundTrip(t *testing.T) {
	vals := randomSamples(1000, 12, 2)
	packed := pack12(vals)

	got, err := ExtractTo16(packed, Depth12, false)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
	assert.Equal(t, packed, pack12(got))
}

func TestStretchTo16(t *testing.T) {
	got, err := StretchTo16([]byte{0x00, 0x80, 0xFF}, Depth8, false)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0000, 0x8000, 0xFF00}, got)

	got, err = StretchTo16([]byte{0xAB, 0xCD, 0xEF}, Depth12, false)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xABC0, 0xDEF0}, got)

	got, err = StretchTo16([]byte{0x0F, 0xFF}, Depth12, true)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xFFF0}, got)

	got, err = StretchTo16([]byte{0x12, 0x34}, Depth16, false)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x1234}, got)
}

func TestStretchNormalizeKeepsHighByte(t *testing.T) {
	t.Run("12-bit", func(t *testing.T) {
		vals := randomSamples(512, 12, 3)
		vals[0] = 0x0FFF
		packed := pack12(vals)

		wide, err := StretchTo16(packed, Depth12, false)
		require.NoError(t, err)
		norm := NormalizeTo8(wide)
		high, err := ExtractTo8(packed, Depth12, false)
		require.NoError(t, err)
		for i := range norm {
			assert.InDelta(t, float64(high[i]), float64(norm[i]), 1, "sample %d = %#x", i, vals[i])
		}
	})
	t.Run("16-bit", func(t *testing.T) {
		vals := randomSamples(512, 16, 4)
		vals[0] = 0xFFFF
		packed := packBE(vals)

		wide, err := StretchTo16(packed, Depth16, false)
		require.NoError(t, err)
		norm := NormalizeTo8(wide)
		high, err := ExtractTo8(packed, Depth16, false)
		require.NoError(t, err)
		for i := range norm {
			assert.InDelta(t, float64(high[i]), float64(norm[i]), 1, "sample %d = %#x", i, vals[i])
		}
	})
}
