package rawview

// reflectIndex mirrors idx into [0, size) without repeating the edge
// sample, so a neighbour outside the frame keeps its mosaic parity.
func reflectIndex(idx, size int) int {
	if size == 1 {
		return 0
	}
	if idx < 0 {
		idx = -idx
	}
	for idx >= size {
		idx = 2*size - 2 - idx
		if idx < 0 {
			idx = -idx
		}
	}
	return idx
}

// luma weights in 14-bit fixed point.
const (
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
	lumaShift = 14
)

// DebayerBilinear reconstructs a mosaic by bilinear interpolation. The
// result holds interleaved R, G, B samples, or a single luma sample per
// pixel when gray is set. Neighbours outside the frame are reflected.
// src must hold width*height samples of an even-sized mosaic.
//
// Per site:
//
//	R, B:  opposite colour from the 4 diagonals, G from the 4 orthogonals
//	G:     each of R and B from the 2 neighbours that carry it, either
//	       horizontally or vertically depending on the row
func DebayerBilinear[T Sample](src []T, width, height int, layout MosaicLayout, gray bool) ([]T, error) {
	if err := checkMosaic(width, height, layout); err != nil {
		return nil, err
	}
	if len(src) != width*height {
		return nil, &SizeMismatchError{Want: width * height, Got: len(src)}
	}
	ch := 3
	if gray {
		ch = 1
	}
	out := make([]T, width*height*ch)

	px := func(x, y int) uint32 {
		return uint32(src[reflectIndex(y, height)*width+reflectIndex(x, width)])
	}
	avg2 := func(a, b uint32) uint32 { return (a + b + 1) / 2 }
	avg4 := func(a, b, c, d uint32) uint32 { return (a + b + c + d + 2) / 4 }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b uint32
			cross := func() uint32 { return avg4(px(x-1, y), px(x+1, y), px(x, y-1), px(x, y+1)) }
			diag := func() uint32 { return avg4(px(x-1, y-1), px(x+1, y-1), px(x-1, y+1), px(x+1, y+1)) }

			switch layout.SiteAt(x, y) {
			case SiteR:
				r, g, b = px(x, y), cross(), diag()
			case SiteB:
				r, g, b = diag(), cross(), px(x, y)
			default:
				h := avg2(px(x-1, y), px(x+1, y))
				v := avg2(px(x, y-1), px(x, y+1))
				g = px(x, y)
				if layout.SiteAt(x+1, y) == SiteR {
					r, b = h, v
				} else {
					r, b = v, h
				}
			}

			i := (y*width + x) * ch
			if gray {
				out[i] = T((r*lumaR + g*lumaG + b*lumaB + 1<<(lumaShift-1)) >> lumaShift)
				continue
			}
			out[i] = T(r)
			out[i+1] = T(g)
			out[i+2] = T(b)
		}
	}
	return out, nil
}
