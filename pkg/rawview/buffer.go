package rawview

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// ImageBuffer is a decoded frame: Width*Height pixels of Channels
// interleaved samples (R, G, B order for colour). Exactly one of Pix8
// and Pix16 is set, matching Depth.
type ImageBuffer struct {
	Width    int
	Height   int
	Channels int
	Depth    int
	Pix8     []uint8
	Pix16    []uint16
}

// NewImageBuffer8 allocates an 8-bit buffer.
func NewImageBuffer8(width, height, channels int) *ImageBuffer {
	return &ImageBuffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Depth:    8,
		Pix8:     make([]uint8, width*height*channels),
	}
}

// NewImageBuffer16 allocates a 16-bit buffer.
func NewImageBuffer16(width, height, channels int) *ImageBuffer {
	return &ImageBuffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Depth:    16,
		Pix16:    make([]uint16, width*height*channels),
	}
}

// Len is the number of samples in the buffer.
func (b *ImageBuffer) Len() int { return b.Width * b.Height * b.Channels }

// ByteLen is the size of the buffer's raw dump.
func (b *ImageBuffer) ByteLen() int { return b.Len() * b.Depth / 8 }

// check reports a buffer whose fields do not describe its pixel slice.
func (b *ImageBuffer) check() error {
	if b.Width <= 0 || b.Height <= 0 {
		return configErrorf(InvalidDimensions, "buffer %dx%d", b.Width, b.Height)
	}
	if b.Channels != 1 && b.Channels != 3 {
		return configErrorf(UnsupportedChannels, "buffer has %d channels, supported: 1, 3", b.Channels)
	}
	switch b.Depth {
	case 8:
		if len(b.Pix8) != b.Len() {
			return &SizeMismatchError{Want: b.ByteLen(), Got: len(b.Pix8)}
		}
	case 16:
		if len(b.Pix16) != b.Len() {
			return &SizeMismatchError{Want: b.ByteLen(), Got: len(b.Pix16) * 2}
		}
	default:
		return configErrorf(UnsupportedBitDepth, "buffer depth %d, supported: 8, 16", b.Depth)
	}
	return nil
}

// Bytes returns the raw dump of the buffer. 16-bit samples are written
// little-endian.
func (b *ImageBuffer) Bytes() ([]byte, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if b.Depth == 8 {
		return b.Pix8, nil
	}
	out := make([]byte, len(b.Pix16)*2)
	for i, v := range b.Pix16 {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out, nil
}

// To8 returns an 8-bit copy of the buffer. 16-bit samples are normalised
// so the frame maximum maps to 255.
func (b *ImageBuffer) To8() (*ImageBuffer, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	out := &ImageBuffer{Width: b.Width, Height: b.Height, Channels: b.Channels, Depth: 8}
	if b.Depth == 8 {
		out.Pix8 = append([]uint8(nil), b.Pix8...)
		return out, nil
	}
	out.Pix8 = NormalizeTo8(b.Pix16)
	return out, nil
}

// Image wraps the buffer in a standard library image. The pixel data is
// copied.
func (b *ImageBuffer) Image() (image.Image, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	r := image.Rect(0, 0, b.Width, b.Height)
	switch {
	case b.Depth == 8 && b.Channels == 1:
		img := image.NewGray(r)
		copy(img.Pix, b.Pix8)
		return img, nil
	case b.Depth == 8 && b.Channels == 3:
		img := image.NewRGBA(r)
		for i, j := 0, 0; i < len(b.Pix8); i, j = i+3, j+4 {
			img.Pix[j] = b.Pix8[i]
			img.Pix[j+1] = b.Pix8[i+1]
			img.Pix[j+2] = b.Pix8[i+2]
			img.Pix[j+3] = 0xff
		}
		return img, nil
	case b.Depth == 16 && b.Channels == 1:
		img := image.NewGray16(r)
		for i, v := range b.Pix16 {
			img.SetGray16(i%b.Width, i/b.Width, color.Gray16{Y: v})
		}
		return img, nil
	case b.Depth == 16 && b.Channels == 3:
		img := image.NewRGBA64(r)
		for i := 0; i < len(b.Pix16); i += 3 {
			p := i / 3
			img.SetRGBA64(p%b.Width, p/b.Width, color.RGBA64{R: b.Pix16[i], G: b.Pix16[i+1], B: b.Pix16[i+2], A: 0xffff})
		}
		return img, nil
	default:
		return nil, configErrorf(UnsupportedChannels, "%d-bit %d-channel buffer", b.Depth, b.Channels)
	}
}

// FromImage converts a standard library image to an 8-bit buffer of the
// given channel count.
func FromImage(img image.Image, channels int) (*ImageBuffer, error) {
	if channels != 1 && channels != 3 {
		return nil, configErrorf(UnsupportedChannels, "%d channels, supported: 1, 3", channels)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewImageBuffer8(w, h, channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			i := (y*w + x) * channels
			if channels == 1 {
				out.Pix8[i] = color.GrayModel.Convert(c).(color.Gray).Y
				continue
			}
			r, g, b, _ := c.RGBA()
			out.Pix8[i] = uint8(r >> 8)
			out.Pix8[i+1] = uint8(g >> 8)
			out.Pix8[i+2] = uint8(b >> 8)
		}
	}
	return out, nil
}

func (b *ImageBuffer) String() string {
	return fmt.Sprintf("%dx%d %d-bit %dch", b.Width, b.Height, b.Depth, b.Channels)
}
