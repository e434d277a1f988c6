//go:build !purego && !js

package cmd

import (
	"fmt"

	"gocv.io/x/gocv"

	"rawview/pkg/rawview"
)

func loadImage(path string, channels int) (*rawview.ImageBuffer, error) {
	flags := gocv.IMReadColor
	if channels == 1 {
		flags = gocv.IMReadGrayScale
	}
	src := gocv.IMRead(path, flags)
	if src.Empty() {
		return nil, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	img := src
	if channels == 3 {
		// IMRead returns B, G, R.
		rgb := gocv.NewMat()
		defer rgb.Close()
		gocv.CvtColor(src, &rgb, gocv.ColorBGRToRGB)
		img = rgb
	}
	data, err := img.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("reading pixels of %s: %w", path, err)
	}
	buf := rawview.NewImageBuffer8(img.Cols(), img.Rows(), channels)
	if len(data) != len(buf.Pix8) {
		return nil, &rawview.SizeMismatchError{Want: len(buf.Pix8), Got: len(data)}
	}
	copy(buf.Pix8, data)
	return buf, nil
}
