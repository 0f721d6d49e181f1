package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		r, g, b uint8
		alpha   float64
		wantErr bool
	}{
		{in: "#4fc3f7", r: 0x4f, g: 0xc3, b: 0xf7, alpha: 1},
		{in: "#aaa", r: 0xaa, g: 0xaa, b: 0xaa, alpha: 1},
		{in: "#333", r: 0x33, g: 0x33, b: 0x33, alpha: 1},
		{in: "rgba(79, 195, 247, 0.3)", r: 79, g: 195, b: 247, alpha: 0.3},
		{in: "rgb(0,0,0)", r: 0, g: 0, b: 0, alpha: 1},
		{in: "#12345", wantErr: true},
		{in: "rgba(300, 0, 0, 1)", wantErr: true},
		{in: "rgba(0, 0, 0, 1.5)", wantErr: true},
		{in: "blue", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c, alpha, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			r, g, b := c.RGB255()
			assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b})
			assert.InDelta(t, tt.alpha, alpha, 1e-9)
		})
	}
}

func TestContrastRatioBounds(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)

	ratio, err = ContrastRatio("#4fc3f7", "#4fc3f7")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 1e-9)

	ab, err := ContrastRatio("#e0e0e0", "#121212")
	require.NoError(t, err)
	ba, err := ContrastRatio("#121212", "#e0e0e0")
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-9)

	_, err = ContrastRatio("nope", "#fff")
	assert.Error(t, err)
}

func TestDefaultThemeValidates(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Default().Validate())
}

func TestValidateCollectsAllProblems(t *testing.T) {
	t.Parallel()

	th := Default()
	th.Colors.Primary = "not-a-colour"
	th.Spacing.PaddingLarge = "large"
	th.Font.WeightBold = "heavy"
	th.Font.Size = 0
	th.BoxShadow = "0 0 12px"

	err := th.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 5)
	assert.Contains(t, err.Error(), "colors.primary")
	assert.Contains(t, err.Error(), "spacing.paddingLarge")
	assert.Contains(t, err.Error(), "font.weightBold")
	assert.Contains(t, err.Error(), "font.size")
	assert.Contains(t, err.Error(), "boxShadow")
}

func TestDefaultTextContrastMeetsAA(t *testing.T) {
	t.Parallel()

	pairs, err := Default().TextContrast()
	require.NoError(t, err)
	require.Len(t, pairs, 10)
	for _, p := range pairs {
		assert.True(t, p.PassesAA(), "%s on %s = %.2f", p.Foreground, p.Background, p.Ratio)
	}
}

func TestRGB(t *testing.T) {
	t.Parallel()

	r, g, b, err := RGB("#ffae42")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0xae), g)
	assert.Equal(t, uint8(0x42), b)
}
