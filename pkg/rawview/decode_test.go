package rawview

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(w, h int, bpp BitDepth, highZero bool) Params {
	p := DefaultParams()
	p.Width, p.Height = w, h
	p.BitDepth = bpp
	p.HighZero = highZero
	return p
}

func TestDefaultParamsValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
		code   int
	}{
		{"bit depth", func(p *Params) { p.BitDepth = 10 }, CodeUnsupportedBitDepth},
		{"channels", func(p *Params) { p.Channels = 2 }, CodeConfig},
		{"mode", func(p *Params) { p.Mode = 6 }, CodeConfig},
		{"format", func(p *Params) { p.Format = 3 }, CodeUnsupportedFormat},
		{"code", func(p *Params) { p.Code = 12 }, CodeUnsupportedFormat},
		{"raw needs gray", func(p *Params) { p.Format = FormatRaw }, CodeUnsupportedFormat},
		{"bayer needs colour", func(p *Params) { p.Format = FormatBayer; p.Code = BayerRG2Gray }, CodeUnsupportedFormat},
		{"odd mosaic", func(p *Params) { p.Width = 7 }, CodeConfig},
		{"gain", func(p *Params) { p.ApplyGain = true; p.Gain.R = 11 }, CodeConfig},
		{"gain on rgb", func(p *Params) { p.Channels = 3; p.ApplyGain = true }, CodeConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(8, 8, Depth12, false)
			tt.modify(&p)
			assert.Equal(t, tt.code, ResultCode(p.Validate()))
		})
	}

	p := testParams(7, 3, Depth8, false)
	p.Channels = 3
	assert.NoError(t, p.Validate(), "interleaved colour has no mosaic constraint")
}

func TestDecodeFlat12Bit(t *testing.T) {
	vals := make([]uint16, 8*4)
	for i := range vals {
		vals[i] = 0x640 // high byte 0x64 = 100
	}
	p := testParams(8, 4, Depth12, false)

	buf, err := Decode(pack12(vals), p)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Channels)
	assert.Equal(t, bytes.Repeat([]byte{100}, 8*4*3), buf.Pix8)

	p.Code = BayerBG2Gray
	buf, err = Decode(pack12(vals), p)
	require.NoError(t, err)
	assert.Equal(t, 1, buf.Channels)
	assert.Equal(t, bytes.Repeat([]byte{100}, 8*4), buf.Pix8)
}

func TestDecodeLittleEndian(t *testing.T) {
	vals := make([]uint16, 4*2)
	for i := range vals {
		vals[i] = 0x0ABC
	}
	le := make([]byte, len(vals)*2)
	for i, v := range vals {
		binary.LittleEndian.PutUint16(le[i*2:], v)
	}
	orig := append([]byte(nil), le...)

	p := testParams(4, 2, Depth12, true)
	p.BigEndian = false
	p.Code = BayerBG2Gray
	buf, err := Decode(le, p)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 8), buf.Pix8)
	assert.Equal(t, orig, le, "caller data is not swapped in place")
}

func TestDecodeApplyGain(t *testing.T) {
	p := testParams(4, 4, Depth8, false)
	p.Code = BayerGR2RGB // GBRG sensor
	p.ApplyGain = true
	p.Gain = ChannelGain{R: 2, G: 1, B: 0.5}

	mosaic, err := Reduce8(bytes.Repeat([]byte{100}, 16), p)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{100}, 16), mosaic.Pix8, "Reduce8 stops before the gain")

	buf, err := Decode(bytes.Repeat([]byte{100}, 16), p)
	require.NoError(t, err)
	for i := 0; i < len(buf.Pix8); i += 3 {
		assert.Equal(t, []byte{200, 100, 50}, buf.Pix8[i:i+3])
	}
}

func TestDecodeInterleavedColour(t *testing.T) {
	raw := []byte{
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60,
		0x70, 0x80, 0x90, 0xA0, 0xB0, 0xC0,
	}
	p := testParams(2, 1, Depth16, false)
	p.Channels = 3
	buf, err := Decode(raw, p)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Channels)
	assert.Equal(t, []byte{0x10, 0x30, 0x50, 0x70, 0x90, 0xB0}, buf.Pix8)
}

func TestDecodeSizeMismatch(t *testing.T) {
	p := testParams(8, 4, Depth12, false)
	for _, n := range []int{0, 47, 49, 64} {
		_, err := Decode(make([]byte, n), p)
		assert.Equal(t, CodeSizeMismatch, ResultCode(err), "len %d", n)
		_, err = DecodeStretch16(make([]byte, n), p)
		assert.Equal(t, CodeSizeMismatch, ResultCode(err), "len %d", n)
		_, err = ExtendTo16(make([]byte, n), p)
		assert.Equal(t, CodeSizeMismatch, ResultCode(err), "len %d", n)
	}
}

func TestDecodeStretch16(t *testing.T) {
	vals := make([]uint16, 4*4)
	for i := range vals {
		vals[i] = 0x0800
	}
	p := testParams(4, 4, Depth12, true)
	p.Code = BayerGB2Gray
	p.Mode = 3
	buf, err := DecodeStretch16(packBE(vals), p)
	require.NoError(t, err)
	assert.Equal(t, 16, buf.Depth)
	for _, v := range buf.Pix16 {
		assert.Equal(t, uint16(0x8000), v)
	}
}

func TestExtendTo16(t *testing.T) {
	vals := []uint16{0x123, 0x456, 0x789, 0xABC}
	p := testParams(2, 2, Depth12, false)
	buf, err := ExtendTo16(pack12(vals), p)
	require.NoError(t, err)
	assert.Equal(t, 1, buf.Channels)
	assert.Equal(t, vals, buf.Pix16)
	data, err := buf.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x23, 0x01, 0x56, 0x04, 0x89, 0x07, 0xBC, 0x0A}, data)
}
