package rawview

// Sample is an unpacked sample type.
type Sample interface {
	~uint8 | ~uint16
}

// FindMaxMin returns the largest and smallest sample of img. Both are zero
// for an empty slice.
func FindMaxMin[T Sample](img []T) (T, T) {
	if len(img) == 0 {
		return 0, 0
	}
	hi, lo := img[0], img[0]
	for _, v := range img {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return hi, lo
}

// NormalizeTo8 maps src to 8 bits so that its maximum becomes 255:
// out = v * 255 / max, truncated. An all-zero input yields all zeros.
func NormalizeTo8[T Sample](src []T) []byte {
	dst := make([]byte, len(src))
	hi, _ := FindMaxMin(src)
	if hi == 0 {
		return dst
	}
	m := uint32(hi)
	for i, v := range src {
		dst[i] = byte(uint32(v) * 255 / m)
	}
	return dst
}
