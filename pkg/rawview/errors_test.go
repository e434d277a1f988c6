package rawview

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResultCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, CodeOK},
		{"format", &ConfigError{Kind: UnsupportedFormat}, CodeUnsupportedFormat},
		{"conversion", &ConfigError{Kind: UnsupportedConversion}, CodeUnsupportedFormat},
		{"bit depth", &ConfigError{Kind: UnsupportedBitDepth}, CodeUnsupportedBitDepth},
		{"mode", &ConfigError{Kind: UnsupportedMode}, CodeConfig},
		{"gain", &ConfigError{Kind: GainOutOfRange}, CodeConfig},
		{"size", &SizeMismatchError{Want: 4, Got: 3}, CodeSizeMismatch},
		{"io", &IOError{Op: "open", Path: "x", Err: fs.ErrNotExist}, CodeIO},
		{"fmt wrapped", fmt.Errorf("decode: %w", &SizeMismatchError{}), CodeSizeMismatch},
		{"pkg/errors wrapped", errors.Wrap(&ConfigError{Kind: UnsupportedBitDepth}, "flags"), CodeUnsupportedBitDepth},
		{"foreign", errors.New("boom"), CodeConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultCode(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "rawview: unsupported bit depth", (&ConfigError{Kind: UnsupportedBitDepth}).Error())
	assert.Equal(t, "rawview: gain out of range: r=11", (&ConfigError{Kind: GainOutOfRange, Detail: "r=11"}).Error())
	assert.Equal(t, "rawview: size mismatch: want 10 bytes, got 9", (&SizeMismatchError{Want: 10, Got: 9}).Error())

	err := &IOError{Op: "open", Path: "a.raw", Err: fs.ErrNotExist}
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "open a.raw")
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", configErrorf(InvalidFactor, "alpha NaN"))
	assert.True(t, IsKind(err, InvalidFactor))
	assert.False(t, IsKind(err, GainOutOfRange))
	assert.False(t, IsKind(&SizeMismatchError{}, InvalidFactor))
}
