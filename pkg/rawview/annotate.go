package rawview

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelPad = 3

var (
	labelBand = color.RGBA{A: 160}
	labelInk  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Annotate returns an RGBA copy of img with label written in a dark band
// across its top edge. Text that does not fit is clipped.
func Annotate(img image.Image, label string) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	if label == "" {
		return out
	}

	face := basicfont.Face7x13
	m := face.Metrics()
	band := image.Rect(0, 0, out.Bounds().Dx(), (m.Ascent + m.Descent).Ceil()+2*labelPad)
	draw.Draw(out, band.Intersect(out.Bounds()), image.NewUniform(labelBand), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(labelInk),
		Face: face,
		Dot:  fixed.P(labelPad, labelPad+m.Ascent.Ceil()),
	}
	d.DrawString(label)
	return out
}
