// Package icons rasterizes the kiosk's vector icons.
//
// Icons are SVG templates rendered with oksvg and rasterx into image.RGBA,
// which the SDL layer uploads as textures. Keeping the rasterization free of
// SDL lets it run in tests.
package icons

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"text/template"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// BackButtonSize is the default edge length of the back button in pixels.
const BackButtonSize = 60

//go:embed back.svg
var backSVG string

var backTemplate = template.Must(template.New("back").Parse(backSVG))

type palette struct {
	Glyph    string
	Backdrop string
}

var backPalettes = map[catalog.BackButtonStyle]palette{
	catalog.BackButtonDark:  {Glyph: "#000000", Backdrop: "#ffffff"},
	catalog.BackButtonLight: {Glyph: "#ffffff", Backdrop: "#000000"},
}

// BackButtonSVG returns the SVG source for style. Unknown styles use the dark variant.
func BackButtonSVG(style catalog.BackButtonStyle) []byte {
	p, ok := backPalettes[style]
	if !ok {
		p = backPalettes[catalog.BackButtonDark]
	}

	var buf bytes.Buffer
	// The template and palettes are fixed, execution cannot fail.
	_ = backTemplate.Execute(&buf, p)
	return buf.Bytes()
}

// BackButton rasterizes the back button at size x size pixels.
func BackButton(style catalog.BackButtonStyle, size int) (*image.RGBA, error) {
	return Rasterize(BackButtonSVG(style), size, size)
}

// Rasterize draws an SVG document scaled to w x h.
func Rasterize(svg []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icons: invalid size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("icons: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
