package rawview

import (
	"fmt"
	"log/slog"
)

// ConversionCode selects a Bayer reconstruction. The values are the
// OpenCV colour conversion codes, which name a pattern by the second and
// third samples of its second row; Layout translates that into the
// physical sensor tiling.
type ConversionCode int

const (
	BayerBG2BGR ConversionCode = 46
	BayerGB2BGR ConversionCode = 47
	BayerRG2BGR ConversionCode = 48
	BayerGR2BGR ConversionCode = 49

	BayerRG2RGB = BayerBG2BGR
	BayerGR2RGB = BayerGB2BGR
	BayerBG2RGB = BayerRG2BGR
	BayerGB2RGB = BayerGR2BGR

	BayerBG2Gray ConversionCode = 86
	BayerGB2Gray ConversionCode = 87
	BayerRG2Gray ConversionCode = 88
	BayerGR2Gray ConversionCode = 89
)

type conversion struct {
	name   string
	layout MosaicLayout
	gray   bool
}

// Colour codes are described in their RGB spelling; output is always
// interleaved R, G, B.
var conversions = map[ConversionCode]conversion{
	BayerRG2RGB:  {"BayerRG2RGB", BGGR, false},
	BayerGR2RGB:  {"BayerGR2RGB", GBRG, false},
	BayerBG2RGB:  {"BayerBG2RGB", RGGB, false},
	BayerGB2RGB:  {"BayerGB2RGB", GRBG, false},
	BayerBG2Gray: {"BayerBG2Gray", RGGB, true},
	BayerGB2Gray: {"BayerGB2Gray", GRBG, true},
	BayerRG2Gray: {"BayerRG2Gray", BGGR, true},
	BayerGR2Gray: {"BayerGR2Gray", GBRG, true},
}

// Valid reports whether c is a supported Bayer conversion.
func (c ConversionCode) Valid() bool {
	_, ok := conversions[c]
	return ok
}

func (c ConversionCode) String() string {
	if cv, ok := conversions[c]; ok {
		return cv.name
	}
	return fmt.Sprintf("ConversionCode(%d)", int(c))
}

// Gray reports whether c produces a single-channel image.
func (c ConversionCode) Gray() bool { return conversions[c].gray }

// Channels is the channel count of the image c produces.
func (c ConversionCode) Channels() int {
	if c.Gray() {
		return 1
	}
	return 3
}

// Layout is the physical sensor tiling c expects.
func (c ConversionCode) Layout() MosaicLayout { return conversions[c].layout }

// CodeFor returns the conversion that reconstructs layout as gray or RGB.
func CodeFor(layout MosaicLayout, gray bool) (ConversionCode, error) {
	for code, cv := range conversions {
		if cv.layout == layout && cv.gray == gray {
			return code, nil
		}
	}
	return 0, configErrorf(UnsupportedLayout, "layout %d, supported: 0-3", int(layout))
}

func checkDemosaic(n, width, height int, code ConversionCode) error {
	if !code.Valid() {
		return configErrorf(UnsupportedConversion, "code %d", int(code))
	}
	if err := checkMosaic(width, height, code.Layout()); err != nil {
		return err
	}
	if n != width*height {
		return &SizeMismatchError{Want: width * height, Got: n}
	}
	return nil
}

// Demosaic8 reconstructs an 8-bit mosaic into a gray or RGB buffer
// according to code.
func Demosaic8(src []byte, width, height int, code ConversionCode) (*ImageBuffer, error) {
	if err := checkDemosaic(len(src), width, height, code); err != nil {
		return nil, err
	}
	slog.Debug("demosaic", "code", code, "width", width, "height", height, "depth", 8)

	in, err := newMat8(src, height, width)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	out, err := cvtColor(in, code)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	buf := NewImageBuffer8(width, height, code.Channels())
	if err := out.copyTo8(buf.Pix8); err != nil {
		return nil, err
	}
	return buf, nil
}

// Demosaic16 reconstructs a 16-bit mosaic into a gray or RGB buffer
// according to code.
func Demosaic16(src []uint16, width, height int, code ConversionCode) (*ImageBuffer, error) {
	if err := checkDemosaic(len(src), width, height, code); err != nil {
		return nil, err
	}
	slog.Debug("demosaic", "code", code, "width", width, "height", height, "depth", 16)

	in, err := newMat16(src, height, width)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	out, err := cvtColor(in, code)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	buf := NewImageBuffer16(width, height, code.Channels())
	if err := out.copyTo16(buf.Pix16); err != nil {
		return nil, err
	}
	return buf, nil
}
