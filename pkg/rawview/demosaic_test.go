package rawview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCodes = []ConversionCode{
	BayerRG2RGB, BayerGR2RGB, BayerBG2RGB, BayerGB2RGB,
	BayerBG2Gray, BayerGB2Gray, BayerRG2Gray, BayerGR2Gray,
}

func TestConversionCodes(t *testing.T) {
	tests := []struct {
		code     ConversionCode
		value    int
		layout   MosaicLayout
		channels int
	}{
		{BayerRG2RGB, 46, BGGR, 3},
		{BayerGR2RGB, 47, GBRG, 3},
		{BayerBG2RGB, 48, RGGB, 3},
		{BayerGB2RGB, 49, GRBG, 3},
		{BayerBG2Gray, 86, RGGB, 1},
		{BayerGB2Gray, 87, GRBG, 1},
		{BayerRG2Gray, 88, BGGR, 1},
		{BayerGR2Gray, 89, GBRG, 1},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.value, int(tt.code))
			assert.True(t, tt.code.Valid())
			assert.Equal(t, tt.layout, tt.code.Layout())
			assert.Equal(t, tt.channels, tt.code.Channels())

			back, err := CodeFor(tt.layout, tt.channels == 1)
			require.NoError(t, err)
			assert.Equal(t, tt.code, back)
		})
	}
	assert.Equal(t, BayerBG2BGR, BayerRG2RGB)
	assert.False(t, ConversionCode(50).Valid())
	assert.Equal(t, "ConversionCode(50)", ConversionCode(50).String())
}

func TestDemosaic8FlatField(t *testing.T) {
	src := bytes.Repeat([]byte{100}, 8*6)
	for _, code := range allCodes {
		t.Run(code.String(), func(t *testing.T) {
			buf, err := Demosaic8(src, 8, 6, code)
			require.NoError(t, err)
			assert.Equal(t, 8, buf.Width)
			assert.Equal(t, 6, buf.Height)
			assert.Equal(t, 8, buf.Depth)
			assert.Equal(t, code.Channels(), buf.Channels)
			assert.Equal(t, bytes.Repeat([]byte{100}, 8*6*code.Channels()), buf.Pix8)
		})
	}
}

func TestDemosaic16FlatField(t *testing.T) {
	src := make([]uint16, 8*6)
	for i := range src {
		src[i] = 40000
	}
	for _, code := range []ConversionCode{BayerBG2RGB, BayerGR2Gray} {
		buf, err := Demosaic16(src, 8, 6, code)
		require.NoError(t, err)
		assert.Equal(t, 16, buf.Depth)
		require.Len(t, buf.Pix16, 8*6*code.Channels())
		for _, v := range buf.Pix16 {
			assert.Equal(t, uint16(40000), v)
		}
	}
}

// mosaicOf fills a frame with one value per colour site.
func mosaicOf(w, h int, layout MosaicLayout, r, g, b byte) []byte {
	out := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch layout.SiteAt(x, y) {
			case SiteR:
				out[y*w+x] = r
			case SiteB:
				out[y*w+x] = b
			default:
				out[y*w+x] = g
			}
		}
	}
	return out
}

func TestDemosaic8ChannelOrder(t *testing.T) {
	for _, code := range []ConversionCode{BayerRG2RGB, BayerGR2RGB, BayerBG2RGB, BayerGB2RGB} {
		t.Run(code.String(), func(t *testing.T) {
			src := mosaicOf(8, 8, code.Layout(), 200, 100, 50)
			buf, err := Demosaic8(src, 8, 8, code)
			require.NoError(t, err)
			i := (3*8 + 3) * 3
			assert.Equal(t, []byte{200, 100, 50}, buf.Pix8[i:i+3])
		})
	}
}

func TestDemosaicErrors(t *testing.T) {
	_, err := Demosaic8(make([]byte, 16), 4, 4, 50)
	assert.True(t, IsKind(err, UnsupportedConversion))
	assert.Equal(t, CodeUnsupportedFormat, ResultCode(err))

	_, err = Demosaic8(make([]byte, 15), 5, 3, BayerBG2RGB)
	assert.True(t, IsKind(err, InvalidDimensions))

	_, err = Demosaic8(make([]byte, 15), 4, 4, BayerBG2RGB)
	var se *SizeMismatchError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 16, se.Want)
	assert.Equal(t, 15, se.Got)

	_, err = Demosaic16(make([]uint16, 17), 4, 4, BayerBG2Gray)
	assert.Equal(t, CodeSizeMismatch, ResultCode(err))
}
