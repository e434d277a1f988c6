package rawview

import (
	"fmt"
	"log/slog"
)

// DataFormat says what a single-channel frame holds.
type DataFormat int

const (
	// FormatAuto takes the format from the conversion code: gray codes
	// decode as FormatRaw, colour codes as FormatBayer.
	FormatAuto DataFormat = iota
	// FormatRaw is a monochrome frame reconstructed to one gray channel.
	FormatRaw
	// FormatBayer is a colour mosaic reconstructed to R, G, B.
	FormatBayer
)

func (f DataFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatRaw:
		return "raw"
	case FormatBayer:
		return "bayer"
	default:
		return fmt.Sprintf("DataFormat(%d)", int(f))
	}
}

// Params describes a headerless raw frame and how to decode it.
type Params struct {
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	BitDepth  BitDepth       `yaml:"bit_depth"`
	Channels  int            `yaml:"channels"`
	BigEndian bool           `yaml:"big_endian"`
	HighZero  bool           `yaml:"high_zero"`
	Format    DataFormat     `yaml:"format"`
	Mode      WindowMode     `yaml:"mode"`
	Code      ConversionCode `yaml:"code"`
	ApplyGain bool           `yaml:"apply_gain"`
	Gain      ChannelGain    `yaml:"gain"`
}

// DefaultParams returns the parameters of a 1920x1080 packed 12-bit RGGB
// sensor stream.
func DefaultParams() Params {
	return Params{
		Width:     1920,
		Height:    1080,
		BitDepth:  Depth12,
		Channels:  1,
		BigEndian: true,
		HighZero:  false,
		Format:    FormatAuto,
		Mode:      Window0,
		Code:      BayerBG2RGB,
		ApplyGain: false,
		Gain:      UnityGain,
	}
}

// Mosaic reports whether the frame needs demosaicing.
func (p Params) Mosaic() bool { return p.Channels == 1 }

// Validate checks p without looking at any pixel data.
func (p Params) Validate() error {
	if _, err := ExpectedLength(p.Width, p.Height, p.Channels, p.BitDepth, p.HighZero); err != nil {
		return err
	}
	if !p.Mode.Valid() {
		return configErrorf(UnsupportedMode, "mode %d, supported: 0-5", int(p.Mode))
	}
	if p.Format < FormatAuto || p.Format > FormatBayer {
		return configErrorf(UnsupportedFormat, "format %d, supported: 1 (raw), 2 (bayer)", int(p.Format))
	}
	if !p.Mosaic() {
		if p.ApplyGain {
			return configErrorf(UnsupportedChannels, "channel gain needs a single-channel mosaic")
		}
		return nil
	}
	if !p.Code.Valid() {
		return configErrorf(UnsupportedConversion, "code %d", int(p.Code))
	}
	switch {
	case p.Format == FormatRaw && !p.Code.Gray():
		return configErrorf(UnsupportedFormat, "raw format needs a gray conversion, got %s", p.Code)
	case p.Format == FormatBayer && p.Code.Gray():
		return configErrorf(UnsupportedFormat, "bayer format needs a colour conversion, got %s", p.Code)
	}
	if err := checkMosaic(p.Width, p.Height, p.Code.Layout()); err != nil {
		return err
	}
	if p.ApplyGain {
		return p.Gain.Validate()
	}
	return nil
}

// prepare validates p and raw and returns big-endian sample bytes. raw is
// never modified.
func (p Params) prepare(raw []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	want, _ := ExpectedLength(p.Width, p.Height, p.Channels, p.BitDepth, p.HighZero)
	if len(raw) != want {
		return nil, &SizeMismatchError{Want: want, Got: len(raw)}
	}
	if p.BigEndian {
		return raw, nil
	}
	data := make([]byte, len(raw))
	if _, err := EndianRevert(raw, data, int(p.BitDepth), p.HighZero); err != nil {
		return nil, err
	}
	return data, nil
}

// Decode turns a raw frame into an 8-bit buffer: samples are reduced with
// p.Mode, the optional channel gain is applied to the mosaic and the
// result is demosaiced with p.Code. Three-channel input is returned as is
// after reduction.
func Decode(raw []byte, p Params) (*ImageBuffer, error) {
	buf, err := Reduce8(raw, p)
	if err != nil {
		return nil, err
	}
	if !p.Mosaic() {
		return buf, nil
	}
	if p.ApplyGain {
		if _, err := ApplyChannelGain(buf.Pix8, p.Width, p.Height, p.Code.Layout(), p.Gain); err != nil {
			return nil, err
		}
	}
	return Demosaic8(buf.Pix8, p.Width, p.Height, p.Code)
}

// Reduce8 reduces every sample of a raw frame to 8 bits with p.Mode and
// stops before gain and demosaicing. The buffer keeps the frame's
// channel count.
func Reduce8(raw []byte, p Params) (*ImageBuffer, error) {
	data, err := p.prepare(raw)
	if err != nil {
		return nil, err
	}
	slog.Debug("reduce8", "width", p.Width, "height", p.Height, "bpp", int(p.BitDepth),
		"highZero", p.HighZero, "mode", p.Mode, "code", p.Code)

	pix, err := ExtractWindowed(data, p.BitDepth, p.HighZero, p.Mode)
	if err != nil {
		return nil, fmt.Errorf("rawview: reduce8: %w", err)
	}
	return &ImageBuffer{Width: p.Width, Height: p.Height, Channels: p.Channels, Depth: 8, Pix8: pix}, nil
}

// DecodeStretch16 turns a raw frame into a 16-bit buffer scaled to the
// full 16-bit range. p.Mode is ignored. Channel gain only applies to
// 8-bit decoding and is ignored here.
func DecodeStretch16(raw []byte, p Params) (*ImageBuffer, error) {
	p.ApplyGain = false
	data, err := p.prepare(raw)
	if err != nil {
		return nil, err
	}
	slog.Debug("decode stretch16", "width", p.Width, "height", p.Height, "bpp", int(p.BitDepth), "code", p.Code)

	pix, err := StretchTo16(data, p.BitDepth, p.HighZero)
	if err != nil {
		return nil, fmt.Errorf("rawview: decode stretch16: %w", err)
	}
	if !p.Mosaic() {
		return &ImageBuffer{Width: p.Width, Height: p.Height, Channels: 3, Depth: 16, Pix16: pix}, nil
	}
	return Demosaic16(pix, p.Width, p.Height, p.Code)
}

// ExtendTo16 widens every sample of a raw frame to 16 bits without
// scaling or demosaicing. The buffer keeps the frame's channel count.
func ExtendTo16(raw []byte, p Params) (*ImageBuffer, error) {
	p.ApplyGain = false
	data, err := p.prepare(raw)
	if err != nil {
		return nil, err
	}
	pix, err := ExtractTo16(data, p.BitDepth, p.HighZero)
	if err != nil {
		return nil, fmt.Errorf("rawview: extend16: %w", err)
	}
	return &ImageBuffer{Width: p.Width, Height: p.Height, Channels: p.Channels, Depth: 16, Pix16: pix}, nil
}
