package rawview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWindowedScenario(t *testing.T) {
	got, err := ExtractWindowed([]byte{0x0A, 0xBC, 0x0D, 0xEF}, Depth12, true, Window0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), got[0])
	assert.Equal(t, byte(0xDE), got[1])
}

// Golden windows of two samples per layout, worked out bit by bit.
// 12-bit samples are 0xABC and 0x537, 16-bit samples 0xABCD and 0x1234.
func TestExtractWindowedGolden(t *testing.T) {
	want12 := map[WindowMode][]byte{
		Window0: {0xAB, 0x53},
		Window1: {0x57, 0xA6},
		Window2: {0xAF, 0x4D},
		Window3: {0x5E, 0x9B},
		Window4: {0xBC, 0x37},
	}
	want16 := map[WindowMode][]byte{
		Window0: {0xAB, 0x12},
		Window1: {0x57, 0x24},
		Window2: {0xAF, 0x48},
		Window3: {0x5E, 0x91},
		Window4: {0xBC, 0x23},
	}
	tests := []struct {
		name     string
		bpp      BitDepth
		highZero bool
		src      []byte
		want     map[WindowMode][]byte
	}{
		{"12-bit packed", Depth12, false, []byte{0xAB, 0xC5, 0x37}, want12},
		{"12-bit high-zero", Depth12, true, []byte{0x0A, 0xBC, 0x05, 0x37}, want12},
		{"12-bit high-zero dirty padding", Depth12, true, []byte{0xFA, 0xBC, 0x95, 0x37}, want12},
		{"16-bit", Depth16, false, []byte{0xAB, 0xCD, 0x12, 0x34}, want16},
		{"16-bit high-zero", Depth16, true, []byte{0x0A, 0xBC, 0x05, 0x37}, want12},
	}
	for _, tt := range tests {
		for mode := Window0; mode <= Window4; mode++ {
			t.Run(tt.name+"/"+mode.String(), func(t *testing.T) {
				got, err := ExtractWindowed(tt.src, tt.bpp, tt.highZero, mode)
				require.NoError(t, err)
				assert.Equal(t, tt.want[mode], got)
			})
		}
	}
}

func TestExtractWindowedNormalizeKeepsPadding(t *testing.T) {
	// The padding nibble of the second container lifts the maximum to
	// 0xF800, so the clean 0x0ABC sample no longer maps near 255.
	got, err := ExtractWindowed([]byte{0x0A, 0xBC, 0xF8, 0x00}, Depth12, true, WindowNormalize)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0ABC * 255 / 0xF800, 255}, got)
}

// TestExtractWindowedAllModes checks every depth, packing and mode against
// (v >> (n-8-k)) & 0xFF over random samples.
func TestExtractWindowedAllModes(t *testing.T) {
	vals12 := randomSamples(600, 12, 10)
	vals16 := randomSamples(600, 16, 11)

	tests := []struct {
		name     string
		bpp      BitDepth
		highZero bool
		vals     []uint16
		src      []byte
		n        uint
	}{
		{"12-bit packed", Depth12, false, vals12, pack12(vals12), 12},
		{"12-bit high-zero", Depth12, true, vals12, packBE(vals12), 12},
		{"16-bit", Depth16, false, vals16, packBE(vals16), 16},
		{"16-bit high-zero", Depth16, true, vals12, packBE(vals12), 12},
	}
	for _, tt := range tests {
		for mode := Window0; mode <= Window4; mode++ {
			t.Run(tt.name+"/"+mode.String(), func(t *testing.T) {
				got, err := ExtractWindowed(tt.src, tt.bpp, tt.highZero, mode)
				require.NoError(t, err)
				require.Len(t, got, len(tt.vals))
				shift := tt.n - 8 - uint(mode)
				for i, v := range tt.vals {
					if want := byte((v >> shift) & 0xFF); got[i] != want {
						t.Fatalf("sample %d = %#x: got %#x, want %#x", i, v, got[i], want)
					}
				}
			})
		}
		t.Run(tt.name+"/normalize", func(t *testing.T) {
			got, err := ExtractWindowed(tt.src, tt.bpp, tt.highZero, WindowNormalize)
			require.NoError(t, err)
			assert.Equal(t, NormalizeTo8(tt.vals), got)
		})
	}
}

func TestExtractWindowedModeEnds(t *testing.T) {
	// 0xABC packed with 0x123.
	packed := []byte{0xAB, 0xC1, 0x23}
	got, err := ExtractWindowed(packed, Depth12, false, Window0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0x12}, got)
	got, err = ExtractWindowed(packed, Depth12, false, Window4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBC, 0x23}, got, "mode 4 keeps the low byte of a 12-bit sample")

	got, err = ExtractWindowed([]byte{0x12, 0x34}, Depth16, false, Window4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x23}, got, "mode 4 of a 16-bit sample is bits 11..4")
}

func TestExtractWindowedIgnoresPaddingNibble(t *testing.T) {
	got, err := ExtractWindowed([]byte{0xFA, 0xBC}, Depth12, true, Window0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB}, got)
}

func TestExtractWindowed8BitIdentity(t *testing.T) {
	src := []byte{0, 17, 128, 255}
	for mode := Window0; mode <= WindowNormalize; mode++ {
		got, err := ExtractWindowed(src, Depth8, false, mode)
		require.NoError(t, err)
		assert.Equal(t, src, got, mode.String())
	}
}

func TestExtractWindowedErrors(t *testing.T) {
	_, err := ExtractWindowed([]byte{0, 0}, Depth12, true, 6)
	assert.True(t, IsKind(err, UnsupportedMode))
	_, err = ExtractWindowed([]byte{0, 0}, Depth12, true, -1)
	assert.True(t, IsKind(err, UnsupportedMode))
	_, err = ExtractWindowed([]byte{0, 0}, 14, false, Window0)
	assert.Equal(t, CodeUnsupportedBitDepth, ResultCode(err))
	_, err = ExtractWindowed([]byte{0, 0, 0, 0}, Depth12, false, Window1)
	assert.Equal(t, CodeSizeMismatch, ResultCode(err))
}

func TestWindowModeString(t *testing.T) {
	assert.Equal(t, "window3", Window3.String())
	assert.Equal(t, "normalize", WindowNormalize.String())
	assert.Equal(t, "unknown", WindowMode(9).String())
}
