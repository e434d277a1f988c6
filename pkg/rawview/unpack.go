package rawview

import "encoding/binary"

// BitDepth is the number of bits in one raw sample.
type BitDepth int

const (
	Depth8  BitDepth = 8
	Depth12 BitDepth = 12
	Depth16 BitDepth = 16
)

// Valid reports whether d is one of the supported depths.
func (d BitDepth) Valid() bool {
	return d == Depth8 || d == Depth12 || d == Depth16
}

// sampleLayout is the on-disk arrangement of samples for a (depth,
// packing) pair.
type sampleLayout int

const (
	layout8          sampleLayout = iota // AAAAAAAA
	layout12Packed                       // AAAAAAAA AAAABBBB BBBBBBBB
	layout12HighZero                     // 0000AAAA AAAAAAAA
	layout16                             // AAAAAAAA AAAAAAAA
	layout16HighZero                     // 0000AAAA AAAAAAAA in a 16-bit stream
)

func layoutOf(bpp BitDepth, highZero bool) (sampleLayout, error) {
	switch bpp {
	case Depth8:
		return layout8, nil
	case Depth12:
		if highZero {
			return layout12HighZero, nil
		}
		return layout12Packed, nil
	case Depth16:
		if highZero {
			return layout16HighZero, nil
		}
		return layout16, nil
	default:
		return 0, configErrorf(UnsupportedBitDepth, "%d bits per pixel, supported: 8, 12, 16", int(bpp))
	}
}

// groupBytes is the smallest whole number of bytes holding a whole
// number of samples; groupSamples is how many samples that is.
func (l sampleLayout) groupBytes() int {
	switch l {
	case layout8:
		return 1
	case layout12Packed:
		return 3
	default:
		return 2
	}
}

func (l sampleLayout) groupSamples() int {
	if l == layout12Packed {
		return 2
	}
	return 1
}

// significantBits is the width of the value field each window slides over.
func (l sampleLayout) significantBits() uint {
	switch l {
	case layout8:
		return 8
	case layout16:
		return 16
	default:
		return 12
	}
}

// sampleCount validates that n input bytes hold whole sample groups and
// returns the number of samples they contain.
func (l sampleLayout) sampleCount(n int) (int, error) {
	g := l.groupBytes()
	if r := n % g; r != 0 {
		return 0, &SizeMismatchError{Want: n - r + g, Got: n}
	}
	return n / g * l.groupSamples(), nil
}

// ExpectedLength returns the number of raw bytes a frame of the given
// shape occupies.
func ExpectedLength(width, height, channels int, bpp BitDepth, highZero bool) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, configErrorf(InvalidDimensions, "%dx%d", width, height)
	}
	if channels != 1 && channels != 3 {
		return 0, configErrorf(UnsupportedChannels, "%d channels, supported: 1, 3", channels)
	}
	if !bpp.Valid() {
		return 0, configErrorf(UnsupportedBitDepth, "%d bits per pixel, supported: 8, 12, 16", int(bpp))
	}
	samples := width * height * channels
	if bpp == Depth12 && highZero {
		return samples * 2, nil
	}
	return (samples*int(bpp) + 7) / 8, nil
}

// unpack12 decodes the two samples of a packed 12-bit group.
func unpack12(src []byte, i int) (uint16, uint16) {
	a := uint16(src[i])<<4 | uint16(src[i+1])>>4
	b := uint16(src[i+1]&0x0F)<<8 | uint16(src[i+2])
	return a, b
}

// ExtractTo8 reduces every sample to its most significant 8 bits.
// 16-bit input must not be high-zero packed.
func ExtractTo8(src []byte, bpp BitDepth, highZero bool) ([]byte, error) {
	l, err := layoutOf(bpp, highZero)
	if err != nil {
		return nil, err
	}
	if l == layout16HighZero {
		return nil, configErrorf(HighZeroMismatch, "16-bit samples have no zero high nibble")
	}
	n, err := l.sampleCount(len(src))
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	switch l {
	case layout8:
		copy(dst, src)
	case layout12HighZero:
		for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
			dst[k] = src[i]<<4 | src[i+1]>>4
		}
	case layout12Packed:
		for i, k := 0, 0; i < len(src); i, k = i+3, k+2 {
			dst[k] = src[i]
			dst[k+1] = src[i+1]<<4 | src[i+2]>>4
		}
	case layout16:
		for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
			dst[k] = src[i]
		}
	}
	return dst, nil
}

// ExtractTo16 widens every sample to 16 bits without scaling. 12-bit
// values land in the low 12 bits; 16-bit input is read big-endian.
func ExtractTo16(src []byte, bpp BitDepth, highZero bool) ([]uint16, error) {
	l, err := layoutOf(bpp, highZero)
	if err != nil {
		return nil, err
	}
	n, err := l.sampleCount(len(src))
	if err != nil {
		return nil, err
	}
	dst := make([]uint16, n)
	switch l {
	case layout8:
		for i, v := range src {
			dst[i] = uint16(v)
		}
	case layout12Packed:
		for i, k := 0, 0; i < len(src); i, k = i+3, k+2 {
			dst[k], dst[k+1] = unpack12(src, i)
		}
	case layout12HighZero, layout16, layout16HighZero:
		for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
			dst[k] = binary.BigEndian.Uint16(src[i:])
		}
	}
	return dst, nil
}

// StretchTo16 widens every sample and scales it linearly to the full
// 16-bit range: 8-bit values are multiplied by 256, 12-bit values by 16.
// 16-bit input is read big-endian and left unscaled.
func StretchTo16(src []byte, bpp BitDepth, highZero bool) ([]uint16, error) {
	l, err := layoutOf(bpp, highZero)
	if err != nil {
		return nil, err
	}
	n, err := l.sampleCount(len(src))
	if err != nil {
		return nil, err
	}
	dst := make([]uint16, n)
	switch l {
	case layout8:
		for i, v := range src {
			dst[i] = uint16(v) << 8
		}
	case layout12Packed:
		for i, k := 0, 0; i < len(src); i, k = i+3, k+2 {
			a, b := unpack12(src, i)
			dst[k], dst[k+1] = a<<4, b<<4
		}
	case layout12HighZero:
		for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
			dst[k] = binary.BigEndian.Uint16(src[i:]) << 4
		}
	case layout16, layout16HighZero:
		for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
			dst[k] = binary.BigEndian.Uint16(src[i:])
		}
	}
	return dst, nil
}
