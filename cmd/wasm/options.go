//go:build js && wasm

package main

import (
	"image"
	"image/draw"
	"syscall/js"

	"rawview/pkg/rawview"
)

func getInt(opts js.Value, key string, dst *int) {
	if v := opts.Get(key); v.Type() == js.TypeNumber {
		*dst = v.Int()
	}
}

func getBool(opts js.Value, key string, dst *bool) {
	if v := opts.Get(key); v.Type() == js.TypeBoolean {
		*dst = v.Bool()
	}
}

func getFloat(opts js.Value, key string, dst *float64) {
	if v := opts.Get(key); v.Type() == js.TypeNumber {
		*dst = v.Float()
	}
}

func getString(opts js.Value, key string) string {
	if v := opts.Get(key); v.Type() == js.TypeString {
		return v.String()
	}
	return ""
}

func paramsFromJS(opts js.Value) (rawview.Params, bool, error) {
	p := rawview.DefaultParams()
	if opts.Type() != js.TypeObject {
		return p, false, p.Validate()
	}

	var bpp, format, mode, code = int(p.BitDepth), int(p.Format), int(p.Mode), int(p.Code)
	littleEndian := !p.BigEndian
	var gray, stretch bool
	getInt(opts, "width", &p.Width)
	getInt(opts, "height", &p.Height)
	getInt(opts, "bpp", &bpp)
	getInt(opts, "channels", &p.Channels)
	getBool(opts, "littleEndian", &littleEndian)
	getBool(opts, "highZero", &p.HighZero)
	getInt(opts, "format", &format)
	getInt(opts, "mode", &mode)
	getInt(opts, "code", &code)
	getBool(opts, "gray", &gray)
	getBool(opts, "stretch16", &stretch)
	p.BitDepth = rawview.BitDepth(bpp)
	p.BigEndian = !littleEndian
	p.Format = rawview.DataFormat(format)
	p.Mode = rawview.WindowMode(mode)
	p.Code = rawview.ConversionCode(code)

	if gain := opts.Get("gain"); gain.Type() == js.TypeObject {
		p.ApplyGain = true
		getFloat(gain, "r", &p.Gain.R)
		getFloat(gain, "g", &p.Gain.G)
		getFloat(gain, "b", &p.Gain.B)
	}
	if ws := getString(opts, "workspace"); ws != "" {
		hz, err := rawview.WorkspaceHighZero(ws)
		if err != nil {
			return p, false, err
		}
		p.HighZero = hz
	}
	if name := getString(opts, "layout"); name != "" {
		layout, err := rawview.ParseMosaicLayout(name)
		if err != nil {
			return p, false, err
		}
		if p.Code, err = rawview.CodeFor(layout, gray); err != nil {
			return p, false, err
		}
	}
	return p, stretch, p.Validate()
}

func toRGBA(img image.Image) []byte {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba.Pix
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba.Pix
}
