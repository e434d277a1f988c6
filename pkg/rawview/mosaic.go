package rawview

import (
	"fmt"
	"math"
	"strings"
)

// MosaicLayout is the 2x2 colour filter tiling of a Bayer sensor, named
// row by row from the top-left corner.
type MosaicLayout int

const (
	GBRG MosaicLayout = iota
	GRBG
	BGGR
	RGGB
)

// Site is the colour filter over one mosaic sample.
type Site int

const (
	SiteR Site = iota
	SiteG1
	SiteG2
	SiteB
)

func (s Site) String() string {
	switch s {
	case SiteR:
		return "R"
	case SiteG1:
		return "G1"
	case SiteG2:
		return "G2"
	case SiteB:
		return "B"
	default:
		return "?"
	}
}

// mosaicSites is indexed by layout, then row parity, then column parity.
var mosaicSites = [4][2][2]Site{
	GBRG: {{SiteG1, SiteB}, {SiteR, SiteG2}},
	GRBG: {{SiteG1, SiteR}, {SiteB, SiteG2}},
	BGGR: {{SiteB, SiteG1}, {SiteG2, SiteR}},
	RGGB: {{SiteR, SiteG1}, {SiteG2, SiteB}},
}

// Valid reports whether l is a known layout.
func (l MosaicLayout) Valid() bool { return l >= GBRG && l <= RGGB }

func (l MosaicLayout) String() string {
	switch l {
	case GBRG:
		return "GBRG"
	case GRBG:
		return "GRBG"
	case BGGR:
		return "BGGR"
	case RGGB:
		return "RGGB"
	default:
		return fmt.Sprintf("MosaicLayout(%d)", int(l))
	}
}

// SiteAt returns the filter colour of the sample at (x, y).
func (l MosaicLayout) SiteAt(x, y int) Site {
	return mosaicSites[l][y&1][x&1]
}

// ParseMosaicLayout accepts a layout name in any case.
func ParseMosaicLayout(s string) (MosaicLayout, error) {
	for l := GBRG; l <= RGGB; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return 0, configErrorf(UnsupportedLayout, "%q, supported: GBRG, GRBG, BGGR, RGGB", s)
}

func (l MosaicLayout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *MosaicLayout) UnmarshalText(b []byte) error {
	v, err := ParseMosaicLayout(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func checkMosaic(width, height int, layout MosaicLayout) error {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return configErrorf(InvalidDimensions, "mosaic %dx%d must be positive and even", width, height)
	}
	if !layout.Valid() {
		return configErrorf(UnsupportedLayout, "layout %d, supported: 0-3", int(layout))
	}
	return nil
}

// MaxGain bounds every ChannelGain factor.
const MaxGain = 10

// ChannelGain holds per-colour multipliers applied to raw mosaic samples.
// Both green sites use G.
type ChannelGain struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// UnityGain leaves every sample unchanged.
var UnityGain = ChannelGain{R: 1, G: 1, B: 1}

// Validate checks that every factor lies in [-MaxGain, MaxGain].
func (g ChannelGain) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"r", g.R}, {"g", g.G}, {"b", g.B}} {
		if math.IsNaN(f.v) || math.Abs(f.v) > MaxGain {
			return configErrorf(GainOutOfRange, "%s=%g, supported: [-%d, %d]", f.name, f.v, MaxGain, MaxGain)
		}
	}
	return nil
}

func (g ChannelGain) forSite(s Site) float64 {
	switch s {
	case SiteR:
		return g.R
	case SiteB:
		return g.B
	default:
		return g.G
	}
}

// saturate8 clamps v to [0, 255] and truncates it toward zero.
func saturate8(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// ApplyChannelGain multiplies every sample of an 8-bit mosaic in place by
// the gain of its site, saturating to [0, 255]. It must run before
// demosaicing. It returns the number of samples processed.
func ApplyChannelGain(buf []byte, width, height int, layout MosaicLayout, gain ChannelGain) (int, error) {
	if err := checkMosaic(width, height, layout); err != nil {
		return 0, err
	}
	if err := gain.Validate(); err != nil {
		return 0, err
	}
	if len(buf) != width*height {
		return 0, &SizeMismatchError{Want: width * height, Got: len(buf)}
	}

	var factors [2][2]float64
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			factors[y][x] = gain.forSite(layout.SiteAt(x, y))
		}
	}
	for y := 0; y < height; y++ {
		row := buf[y*width : (y+1)*width]
		f := factors[y&1]
		for x := range row {
			row[x] = saturate8(float64(row[x]) * f[x&1])
		}
	}
	return len(buf), nil
}

// BayerPlanes holds the four colour sites of a mosaic, each at half the
// mosaic's width and height.
type BayerPlanes[T Sample] struct {
	Width  int
	Height int
	R      []T
	G1     []T
	G2     []T
	B      []T
}

// Plane returns the plane that holds site s.
func (p *BayerPlanes[T]) Plane(s Site) []T {
	switch s {
	case SiteR:
		return p.R
	case SiteG1:
		return p.G1
	case SiteG2:
		return p.G2
	default:
		return p.B
	}
}

// SplitChannels separates a mosaic into its R, G1, G2 and B planes.
func SplitChannels[T Sample](buf []T, width, height int, layout MosaicLayout) (*BayerPlanes[T], error) {
	if err := checkMosaic(width, height, layout); err != nil {
		return nil, err
	}
	if len(buf) != width*height {
		return nil, &SizeMismatchError{Want: width * height, Got: len(buf)}
	}
	pw, ph := width/2, height/2
	p := &BayerPlanes[T]{
		Width:  pw,
		Height: ph,
		R:      make([]T, pw*ph),
		G1:     make([]T, pw*ph),
		G2:     make([]T, pw*ph),
		B:      make([]T, pw*ph),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p.Plane(layout.SiteAt(x, y))[(y/2)*pw+x/2] = buf[y*width+x]
		}
	}
	return p, nil
}
