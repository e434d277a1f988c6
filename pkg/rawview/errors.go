package rawview

import (
	"errors"
	"fmt"
)

// ConfigKind classifies a ConfigError.
type ConfigKind int

const (
	UnsupportedFormat ConfigKind = iota + 1
	UnsupportedBitDepth
	UnsupportedChannels
	UnsupportedMode
	UnsupportedLayout
	UnsupportedConversion
	GainOutOfRange
	InvalidDimensions
	HighZeroMismatch
	InvalidFactor
)

func (k ConfigKind) String() string {
	switch k {
	case UnsupportedFormat:
		return "unsupported data format"
	case UnsupportedBitDepth:
		return "unsupported bit depth"
	case UnsupportedChannels:
		return "unsupported channel count"
	case UnsupportedMode:
		return "unsupported window mode"
	case UnsupportedLayout:
		return "unsupported mosaic layout"
	case UnsupportedConversion:
		return "unsupported conversion code"
	case GainOutOfRange:
		return "gain out of range"
	case InvalidDimensions:
		return "invalid dimensions"
	case HighZeroMismatch:
		return "high-zero packing not valid for bit depth"
	case InvalidFactor:
		return "invalid adjustment factor"
	default:
		return "configuration error"
	}
}

// A ConfigError reports parameters the decoder cannot work with.
// It is never retried; the call fails before any buffer is written.
type ConfigError struct {
	Kind   ConfigKind
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rawview: %s", e.Kind)
	}
	return fmt.Sprintf("rawview: %s: %s", e.Kind, e.Detail)
}

func configErrorf(kind ConfigKind, format string, args ...any) error {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// A SizeMismatchError reports a buffer whose length does not match the
// declared shape.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("rawview: size mismatch: want %d bytes, got %d", e.Want, e.Got)
}

// An IOError reports a failed file operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("rawview: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Result codes returned by ResultCode.
const (
	CodeOK                  = 0
	CodeUnsupportedFormat   = -1
	CodeUnsupportedBitDepth = -2
	CodeSizeMismatch        = -3
	CodeIO                  = -4
	CodeConfig              = -5
)

// ResultCode maps an error returned by this package to a stable negative
// code. nil maps to CodeOK.
func ResultCode(err error) int {
	if err == nil {
		return CodeOK
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		switch ce.Kind {
		case UnsupportedFormat, UnsupportedConversion:
			return CodeUnsupportedFormat
		case UnsupportedBitDepth:
			return CodeUnsupportedBitDepth
		default:
			return CodeConfig
		}
	}
	var se *SizeMismatchError
	if errors.As(err, &se) {
		return CodeSizeMismatch
	}
	var ie *IOError
	if errors.As(err, &ie) {
		return CodeIO
	}
	return CodeConfig
}

// IsKind reports whether err is a ConfigError of the given kind.
func IsKind(err error, kind ConfigKind) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Kind == kind
}
