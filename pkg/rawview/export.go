package rawview

import (
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/tiff"
)

const (
	rawExt      = ".raw"
	ext16Suffix = "_ext16.raw"
)

// RawPath returns path with a ".raw" extension appended unless it already
// has one.
func RawPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), rawExt) {
		return path
	}
	return path + rawExt
}

// Ext16Path returns the name of the extended 16-bit dump for path: the
// ".raw" extension, if any, becomes "_ext16.raw".
func Ext16Path(path string) string {
	if strings.HasSuffix(strings.ToLower(path), rawExt) {
		path = path[:len(path)-len(rawExt)]
	}
	return path + ext16Suffix
}

func writeAll(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// WriteRaw dumps data headerless to RawPath(path) and returns the name it
// wrote.
func WriteRaw(path string, data []byte) (string, error) {
	path = RawPath(path)
	if err := writeAll(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// WriteBufferRaw dumps buf to RawPath(path). 16-bit samples are written
// little-endian.
func WriteBufferRaw(path string, buf *ImageBuffer) (string, error) {
	data, err := buf.Bytes()
	if err != nil {
		return "", err
	}
	return WriteRaw(path, data)
}

// ExtendTo16File widens raw with ExtendTo16 and dumps the samples to
// Ext16Path(path). It returns the name it wrote.
func ExtendTo16File(path string, raw []byte, p Params) (string, error) {
	buf, err := ExtendTo16(raw, p)
	if err != nil {
		return "", err
	}
	data, err := buf.Bytes()
	if err != nil {
		return "", err
	}
	path = Ext16Path(path)
	if err := writeAll(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// EncodeTIFF writes buf to w as a deflate-compressed TIFF.
func EncodeTIFF(w io.Writer, buf *ImageBuffer) error {
	img, err := buf.Image()
	if err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// WriteTIFF writes buf to path as a TIFF.
func WriteTIFF(path string, buf *ImageBuffer) error {
	if err := buf.check(); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return EncodeTIFF(w, buf) })
}

// PreviewOptions controls EncodePNGPreview.
type PreviewOptions struct {
	// MaxSize bounds the longer side of the preview. 0 keeps the frame
	// size.
	MaxSize uint
	// Label, when set, is written across the top of the preview.
	Label string
}

// EncodePNGPreview writes an 8-bit PNG of buf to w, scaled down to fit
// opts.MaxSize. 16-bit buffers are normalised first.
func EncodePNGPreview(w io.Writer, buf *ImageBuffer, opts PreviewOptions) error {
	b8, err := buf.To8()
	if err != nil {
		return err
	}
	img, err := b8.Image()
	if err != nil {
		return err
	}
	if m := opts.MaxSize; m > 0 && (uint(buf.Width) > m || uint(buf.Height) > m) {
		img = resize.Thumbnail(m, m, img, resize.Bilinear)
	}
	if opts.Label != "" {
		img = Annotate(img, opts.Label)
	}
	return png.Encode(w, img)
}

// WritePNGPreview writes a PNG preview of buf to path.
func WritePNGPreview(path string, buf *ImageBuffer, opts PreviewOptions) error {
	if err := buf.check(); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return EncodePNGPreview(w, buf, opts) })
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()
	if err := encode(f); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	return nil
}
