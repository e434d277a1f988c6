//go:build !purego && !js

package rawview

import (
	"encoding/binary"
	"fmt"

	"gocv.io/x/gocv"
)

// Mat wraps gocv.Mat for the native OpenCV backend.
type Mat struct {
	m gocv.Mat
}

func newMat8(data []byte, rows, cols int) (Mat, error) {
	if len(data) != rows*cols {
		return Mat{}, &SizeMismatchError{Want: rows * cols, Got: len(data)}
	}
	m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC1, data)
	if err != nil {
		return Mat{}, fmt.Errorf("rawview: new 8-bit mat: %w", err)
	}
	return Mat{m: m}, nil
}

func newMat16(data []uint16, rows, cols int) (Mat, error) {
	if len(data) != rows*cols {
		return Mat{}, &SizeMismatchError{Want: rows * cols, Got: len(data)}
	}
	raw := make([]byte, len(data)*2)
	for i, v := range data {
		binary.NativeEndian.PutUint16(raw[i*2:], v)
	}
	m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV16UC1, raw)
	if err != nil {
		return Mat{}, fmt.Errorf("rawview: new 16-bit mat: %w", err)
	}
	return Mat{m: m}, nil
}

func (mat Mat) Rows() int     { return mat.m.Rows() }
func (mat Mat) Cols() int     { return mat.m.Cols() }
func (mat Mat) Channels() int { return mat.m.Channels() }
func (mat Mat) Empty() bool   { return mat.m.Empty() }
func (mat *Mat) Close()       { mat.m.Close() }

// The RGB spelling of each colour code shares its value with a BGR one,
// so OpenCV output is R, G, B for the layout Layout reports.
func cvtColor(src Mat, code ConversionCode) (Mat, error) {
	dst := gocv.NewMat()
	gocv.CvtColor(src.m, &dst, gocv.ColorConversionCode(code))
	if dst.Empty() {
		dst.Close()
		return Mat{}, fmt.Errorf("rawview: cvtColor %s produced an empty image", code)
	}
	return Mat{m: dst}, nil
}

func (mat Mat) copyTo8(dst []uint8) error {
	data, err := mat.m.DataPtrUint8()
	if err != nil {
		return fmt.Errorf("rawview: read 8-bit mat: %w", err)
	}
	if len(data) != len(dst) {
		return &SizeMismatchError{Want: len(data), Got: len(dst)}
	}
	copy(dst, data)
	return nil
}

func (mat Mat) copyTo16(dst []uint16) error {
	data, err := mat.m.DataPtrUint16()
	if err != nil {
		return fmt.Errorf("rawview: read 16-bit mat: %w", err)
	}
	if len(data) != len(dst) {
		return &SizeMismatchError{Want: len(data), Got: len(dst)}
	}
	copy(dst, data)
	return nil
}
