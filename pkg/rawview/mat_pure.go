//go:build purego || js

package rawview

import "fmt"

// Mat is a pure Go single- or multi-channel sample matrix.
type Mat struct {
	u8       []uint8
	u16      []uint16
	rows     int
	cols     int
	channels int
}

func newMat8(data []byte, rows, cols int) (Mat, error) {
	if len(data) != rows*cols {
		return Mat{}, &SizeMismatchError{Want: rows * cols, Got: len(data)}
	}
	return Mat{u8: data, rows: rows, cols: cols, channels: 1}, nil
}

func newMat16(data []uint16, rows, cols int) (Mat, error) {
	if len(data) != rows*cols {
		return Mat{}, &SizeMismatchError{Want: rows * cols, Got: len(data)}
	}
	return Mat{u16: data, rows: rows, cols: cols, channels: 1}, nil
}

func (m Mat) Rows() int     { return m.rows }
func (m Mat) Cols() int     { return m.cols }
func (m Mat) Channels() int { return m.channels }
func (m Mat) Empty() bool   { return m.rows == 0 || m.cols == 0 || (m.u8 == nil && m.u16 == nil) }

func (m *Mat) Close() {
	m.u8 = nil
	m.u16 = nil
	m.rows = 0
	m.cols = 0
}

func cvtColor(src Mat, code ConversionCode) (Mat, error) {
	if src.Empty() || src.channels != 1 {
		return Mat{}, fmt.Errorf("rawview: cvtColor %s: source must be a non-empty single-channel mosaic", code)
	}
	dst := Mat{rows: src.rows, cols: src.cols, channels: code.Channels()}
	var err error
	if src.u16 != nil {
		dst.u16, err = DebayerBilinear(src.u16, src.cols, src.rows, code.Layout(), code.Gray())
	} else {
		dst.u8, err = DebayerBilinear(src.u8, src.cols, src.rows, code.Layout(), code.Gray())
	}
	if err != nil {
		return Mat{}, err
	}
	return dst, nil
}

func (m Mat) copyTo8(dst []uint8) error {
	if m.u8 == nil || len(dst) != len(m.u8) {
		return &SizeMismatchError{Want: len(m.u8), Got: len(dst)}
	}
	copy(dst, m.u8)
	return nil
}

func (m Mat) copyTo16(dst []uint16) error {
	if m.u16 == nil || len(dst) != len(m.u16) {
		return &SizeMismatchError{Want: len(m.u16), Got: len(dst)}
	}
	copy(dst, m.u16)
	return nil
}
