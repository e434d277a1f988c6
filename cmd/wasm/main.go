//go:build js && wasm

package main

import (
	"bytes"
	"syscall/js"

	"rawview/pkg/rawview"
)

var lastBuffer *rawview.ImageBuffer

func main() {
	js.Global().Set("decodeRaw", js.FuncOf(decodeRaw))
	js.Global().Set("renderPreview", js.FuncOf(renderPreview))
	select {} // block forever
}

// decodeRaw(fileBytes, options) decodes a raw frame. options mirrors the
// CLI frame flags: width, height, bpp, channels, littleEndian, highZero,
// workspace, format, mode, code, layout, gray, gain {r, g, b}, stretch16.
func decodeRaw(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult(rawview.CodeConfig, "usage: decodeRaw(fileBytes, options)")
	}

	jsBytes := args[0]
	raw := make([]byte, jsBytes.Get("length").Int())
	js.CopyBytesToGo(raw, jsBytes)

	p, stretch, err := paramsFromJS(args[1])
	if err != nil {
		return errorResult(rawview.ResultCode(err), err.Error())
	}

	var buf *rawview.ImageBuffer
	if stretch {
		buf, err = rawview.DecodeStretch16(raw, p)
	} else {
		buf, err = rawview.Decode(raw, p)
	}
	if err != nil {
		return errorResult(rawview.ResultCode(err), err.Error())
	}
	lastBuffer = buf

	// Canvas ImageData wants 8-bit RGBA.
	b8, err := buf.To8()
	if err != nil {
		return errorResult(rawview.ResultCode(err), err.Error())
	}
	img, err := b8.Image()
	if err != nil {
		return errorResult(rawview.ResultCode(err), err.Error())
	}
	rgba := toRGBA(img)
	pixels := js.Global().Get("Uint8ClampedArray").New(len(rgba))
	js.CopyBytesToJS(pixels, rgba)

	stats, err := buf.Statistics(rawview.StatAll)
	if err != nil {
		return errorResult(rawview.ResultCode(err), err.Error())
	}
	jsStats := make([]interface{}, buf.Channels)
	for i, s := range stats {
		jsStats[i] = map[string]interface{}{
			"min":    s.Min,
			"max":    s.Max,
			"median": s.Median,
			"mean":   s.Mean,
			"stddev": s.StdDev,
		}
	}

	return js.ValueOf(map[string]interface{}{
		"code":     rawview.CodeOK,
		"width":    buf.Width,
		"height":   buf.Height,
		"channels": buf.Channels,
		"depth":    buf.Depth,
		"rgba":     pixels,
		"stats":    jsStats,
	})
}

// renderPreview(maxSize) returns the last decoded frame as PNG bytes.
func renderPreview(this js.Value, args []js.Value) interface{} {
	if lastBuffer == nil {
		return js.Null()
	}
	var opts rawview.PreviewOptions
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		opts.MaxSize = uint(args[0].Int())
	}
	if len(args) > 1 && args[1].Type() == js.TypeString {
		opts.Label = args[1].String()
	}
	var out bytes.Buffer
	if err := rawview.EncodePNGPreview(&out, lastBuffer, opts); err != nil {
		return js.Null()
	}
	uint8Array := js.Global().Get("Uint8Array").New(out.Len())
	js.CopyBytesToJS(uint8Array, out.Bytes())
	return uint8Array
}

func errorResult(code int, msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"code":  code,
		"error": msg,
	})
}
