package icons

import (
	"testing"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackButtonSVG_Palettes(t *testing.T) {
	dark := string(BackButtonSVG(catalog.BackButtonDark))
	light := string(BackButtonSVG(catalog.BackButtonLight))

	assert.Contains(t, dark, `stroke="#000000"`)
	assert.Contains(t, light, `stroke="#ffffff"`)
	assert.Equal(t, dark, string(BackButtonSVG("sepia")))
}

func TestBackButton_Rasterizes(t *testing.T) {
	img, err := BackButton(catalog.BackButtonLight, BackButtonSize)
	require.NoError(t, err)
	require.Equal(t, BackButtonSize, img.Bounds().Dx())
	require.Equal(t, BackButtonSize, img.Bounds().Dy())

	// Corners are outside the circle.
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)

	// The chevron's stroke passes through (20,30) in the 60x60 viewbox.
	r, g, b, a := img.At(20, 30).RGBA()
	assert.NotZero(t, a)
	assert.Greater(t, r, uint32(0xc000))
	assert.Greater(t, g, uint32(0xc000))
	assert.Greater(t, b, uint32(0xc000))
}

func TestBackButton_DarkGlyph(t *testing.T) {
	img, err := BackButton(catalog.BackButtonDark, BackButtonSize)
	require.NoError(t, err)

	r, g, b, a := img.At(20, 30).RGBA()
	assert.NotZero(t, a)
	assert.Less(t, r, uint32(0x4000))
	assert.Less(t, g, uint32(0x4000))
	assert.Less(t, b, uint32(0x4000))
}

func TestBackButton_Scales(t *testing.T) {
	img, err := BackButton(catalog.BackButtonDark, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestRasterize_Errors(t *testing.T) {
	_, err := Rasterize(BackButtonSVG(catalog.BackButtonDark), 0, 10)
	assert.Error(t, err)

	_, err = Rasterize([]byte("<svg><path d=\"M 0 0 L\"/>"), 10, 10)
	assert.Error(t, err)
}
