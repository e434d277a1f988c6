package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

// addFrameFlags registers the flags that describe a raw frame.
func addFrameFlags(cmd *cobra.Command) {
	d := rawview.DefaultParams()
	pf := cmd.Flags()
	pf.StringP("profile", "p", "", "YAML profile to start from")
	pf.IntP("width", "W", d.Width, "frame width in pixels")
	pf.IntP("height", "H", d.Height, "frame height in pixels")
	pf.IntP("bpp", "b", int(d.BitDepth), "bits per sample (8, 12, 16)")
	pf.IntP("channels", "c", d.Channels, "samples per pixel (1 mosaic, 3 interleaved RGB)")
	pf.Bool("little-endian", !d.BigEndian, "samples are stored little-endian")
	pf.Bool("high-zero", d.HighZero, "12-bit samples sit in the low bits of 16-bit containers")
	pf.String("workspace", "", "packing shorthand: CE7 (packed) or TW2 (high-zero)")
	pf.Int("format", int(d.Format), "data format: 0 auto, 1 raw (gray), 2 bayer (colour)")
	pf.IntP("mode", "m", int(d.Mode), "8-bit window: 0-4 start k bits below the MSB, 5 normalises")
	pf.Int("code", int(d.Code), "Bayer conversion code (46-49 colour, 86-89 gray)")
	pf.String("layout", "", "sensor layout (GBRG, GRBG, BGGR, RGGB); overrides --code")
	pf.Bool("gray", false, "with --layout, reconstruct a gray image")
	pf.Bool("apply-gain", d.ApplyGain, "apply per-channel gain before demosaicing")
	pf.Float64("gain-r", d.Gain.R, "red gain [-10, 10]")
	pf.Float64("gain-g", d.Gain.G, "green gain [-10, 10]")
	pf.Float64("gain-b", d.Gain.B, "blue gain [-10, 10]")
}

// paramsFromFlags starts from --profile, or the defaults, and applies
// every frame flag the user set explicitly.
func paramsFromFlags(cmd *cobra.Command) (rawview.Params, error) {
	f := cmd.Flags()
	p := rawview.DefaultParams()
	if path, _ := f.GetString("profile"); path != "" {
		prof, err := rawview.LoadProfile(path)
		if err != nil {
			return p, errors.Wrap(err, "loading profile")
		}
		p = prof.Params
	}

	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("width", func() { p.Width, _ = f.GetInt("width") })
	set("height", func() { p.Height, _ = f.GetInt("height") })
	set("bpp", func() { v, _ := f.GetInt("bpp"); p.BitDepth = rawview.BitDepth(v) })
	set("channels", func() { p.Channels, _ = f.GetInt("channels") })
	set("little-endian", func() { le, _ := f.GetBool("little-endian"); p.BigEndian = !le })
	set("high-zero", func() { p.HighZero, _ = f.GetBool("high-zero") })
	set("format", func() { v, _ := f.GetInt("format"); p.Format = rawview.DataFormat(v) })
	set("mode", func() { v, _ := f.GetInt("mode"); p.Mode = rawview.WindowMode(v) })
	set("code", func() { v, _ := f.GetInt("code"); p.Code = rawview.ConversionCode(v) })
	set("apply-gain", func() { p.ApplyGain, _ = f.GetBool("apply-gain") })
	set("gain-r", func() { p.Gain.R, _ = f.GetFloat64("gain-r") })
	set("gain-g", func() { p.Gain.G, _ = f.GetFloat64("gain-g") })
	set("gain-b", func() { p.Gain.B, _ = f.GetFloat64("gain-b") })

	if ws, _ := f.GetString("workspace"); ws != "" {
		hz, err := rawview.WorkspaceHighZero(ws)
		if err != nil {
			return p, err
		}
		p.HighZero = hz
	}
	if name, _ := f.GetString("layout"); name != "" {
		layout, err := rawview.ParseMosaicLayout(name)
		if err != nil {
			return p, err
		}
		gray, _ := f.GetBool("gray")
		if p.Code, err = rawview.CodeFor(layout, gray); err != nil {
			return p, err
		}
	}
	return p, p.Validate()
}
