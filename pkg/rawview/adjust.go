package rawview

import "math"

func checkPixels(src, dst []byte, width, height, channels int) error {
	if width <= 0 || height <= 0 {
		return configErrorf(InvalidDimensions, "%dx%d", width, height)
	}
	if channels != 1 && channels != 3 {
		return configErrorf(UnsupportedChannels, "%d channels, supported: 1, 3", channels)
	}
	n := width * height * channels
	if len(src) != n {
		return &SizeMismatchError{Want: n, Got: len(src)}
	}
	if len(dst) < n {
		return &SizeMismatchError{Want: n, Got: len(dst)}
	}
	return nil
}

func clamp255(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// AdjustBrightness writes src+beta to dst, saturating every byte to
// [0, 255]. dst may be src. It returns the number of bytes written.
func AdjustBrightness(src, dst []byte, width, height, channels, beta int) (int, error) {
	if err := checkPixels(src, dst, width, height, channels); err != nil {
		return 0, err
	}
	// Offsets beyond ±255 saturate every sample.
	beta = max(-255, min(beta, 255))
	for i, v := range src {
		dst[i] = clamp255(int(v) + beta)
	}
	return len(src), nil
}

// AdjustContrast writes round(src*alpha) to dst, saturating every byte to
// [0, 255]. dst may be src. It returns the number of bytes written.
func AdjustContrast(src, dst []byte, width, height, channels int, alpha float64) (int, error) {
	if err := checkPixels(src, dst, width, height, channels); err != nil {
		return 0, err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, configErrorf(InvalidFactor, "contrast %g", alpha)
	}
	for i, v := range src {
		p := math.Round(float64(v) * alpha)
		switch {
		case p <= 0:
			dst[i] = 0
		case p >= 255:
			dst[i] = 255
		default:
			dst[i] = byte(p)
		}
	}
	return len(src), nil
}
