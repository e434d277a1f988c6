package rawview

import (
	"io"
	"os"
)

// ReadRaw reads a headerless frame described by p from path. The file
// size is checked against p before any pixel data is read.
func ReadRaw(path string, p Params) ([]byte, error) {
	want, err := ExpectedLength(p.Width, p.Height, p.Channels, p.BitDepth, p.HighZero)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if fi.Size() != int64(want) {
		return nil, &SizeMismatchError{Want: want, Got: int(fi.Size())}
	}
	raw := make([]byte, want)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return raw, nil
}

// DecodeFile reads path and decodes it with Decode.
func DecodeFile(path string, p Params) (*ImageBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := ReadRaw(path, p)
	if err != nil {
		return nil, err
	}
	return Decode(raw, p)
}

// DecodeStretch16File reads path and decodes it with DecodeStretch16.
func DecodeStretch16File(path string, p Params) (*ImageBuffer, error) {
	p.ApplyGain = false
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := ReadRaw(path, p)
	if err != nil {
		return nil, err
	}
	return DecodeStretch16(raw, p)
}
