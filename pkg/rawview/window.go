package rawview

import (
	"encoding/binary"
	"strconv"
)

// WindowMode selects which 8 bits of a wider sample ExtractWindowed keeps.
//
// For a field of n significant bits (12 for 12-bit and high-zero 16-bit
// samples, 16 for plain 16-bit samples) mode k keeps bits
// n-1-k .. n-8-k, counting from the least significant bit. Written most
// significant bit first:
//
//	12-bit  P0..Pb          mode 0: P0..P7   mode 4: P4..Pb
//	16-bit  P0..Pf          mode 0: P0..P7   mode 4: P4..Pb
//
// WindowNormalize rescales the whole frame so its maximum maps to 255.
// It works on the ExtractTo16 samples, so unlike modes 0-4 it does not
// mask the padding nibble of high-zero containers: a non-zero nibble
// raises the frame maximum.
type WindowMode int

const (
	Window0 WindowMode = iota
	Window1
	Window2
	Window3
	Window4
	WindowNormalize
)

// Valid reports whether m is a known mode.
func (m WindowMode) Valid() bool { return m >= Window0 && m <= WindowNormalize }

func (m WindowMode) String() string {
	switch m {
	case Window0, Window1, Window2, Window3, Window4:
		return "window" + strconv.Itoa(int(m))
	case WindowNormalize:
		return "normalize"
	default:
		return "unknown"
	}
}

// windowShift is the right shift that brings the selected window of a
// layout's value field down to bit 0.
func windowShift(l sampleLayout, m WindowMode) uint {
	return l.significantBits() - 8 - uint(m)
}

type windowFunc func(dst, src []byte, shift uint)

var windowExtractors = map[sampleLayout]windowFunc{
	layout12Packed:   window12Packed,
	layout12HighZero: window12HighZero,
	layout16:         window16,
	layout16HighZero: window12HighZero,
}

func window12Packed(dst, src []byte, shift uint) {
	for i, k := 0, 0; i < len(src); i, k = i+3, k+2 {
		a, b := unpack12(src, i)
		dst[k] = byte(a >> shift)
		dst[k+1] = byte(b >> shift)
	}
}

// window12HighZero ignores whatever the padding nibble holds. High-zero
// 16-bit streams share the layout.
func window12HighZero(dst, src []byte, shift uint) {
	for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
		v := binary.BigEndian.Uint16(src[i:]) & 0x0FFF
		dst[k] = byte(v >> shift)
	}
}

func window16(dst, src []byte, shift uint) {
	for i, k := 0, 0; i < len(src); i, k = i+2, k+1 {
		dst[k] = byte(binary.BigEndian.Uint16(src[i:]) >> shift)
	}
}

// ExtractWindowed reduces every sample to 8 bits using mode. 8-bit input
// is copied unchanged for every mode.
func ExtractWindowed(src []byte, bpp BitDepth, highZero bool, mode WindowMode) ([]byte, error) {
	l, err := layoutOf(bpp, highZero)
	if err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, configErrorf(UnsupportedMode, "mode %d, supported: 0-5", int(mode))
	}
	n, err := l.sampleCount(len(src))
	if err != nil {
		return nil, err
	}
	if l == layout8 {
		dst := make([]byte, n)
		copy(dst, src)
		return dst, nil
	}
	if mode == WindowNormalize {
		wide, err := ExtractTo16(src, bpp, highZero)
		if err != nil {
			return nil, err
		}
		return NormalizeTo8(wide), nil
	}
	dst := make([]byte, n)
	windowExtractors[l](dst, src, windowShift(l, mode))
	return dst, nil
}
