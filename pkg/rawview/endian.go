package rawview

// SwapEndian reverses the bytes of buf[start:start+length] in place.
func SwapEndian(buf []byte, start, length int) {
	for i, j := start, start+length-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// endianGroup is the number of bytes that make up one byte-swappable
// sample. Zero means the layout has no byte order to swap.
func endianGroup(bpp int, highZero bool) (int, error) {
	switch bpp {
	case 8:
		return 0, nil
	case 12:
		if highZero {
			return 2, nil
		}
		// Packed 12-bit samples straddle byte boundaries.
		return 0, nil
	case 16:
		return 2, nil
	default:
		return 0, configErrorf(UnsupportedBitDepth, "%d bits per pixel", bpp)
	}
}

// EndianRevert copies in to out and reverses the byte order of every
// sample. in and out may be the same slice. It returns the number of
// bytes written to out.
func EndianRevert(in, out []byte, bpp int, highZero bool) (int, error) {
	group, err := endianGroup(bpp, highZero)
	if err != nil {
		return 0, err
	}
	if len(out) < len(in) {
		return 0, &SizeMismatchError{Want: len(in), Got: len(out)}
	}
	if group > 0 && len(in)%group != 0 {
		return 0, &SizeMismatchError{Want: len(in) - len(in)%group + group, Got: len(in)}
	}
	copy(out, in)
	if group == 0 {
		return len(in), nil
	}
	for i := 0; i < len(in); i += group {
		SwapEndian(out, i, group)
	}
	return len(in), nil
}
