package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the three text styles the kiosk draws.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  44,
	Medium: 30,
	Small:  22,
}

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts holds the open fonts after Init.
var Fonts fontsManager

// Tried in order when no font is configured.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
}

var errNoFont = errors.New("no usable font found")

// ResolveFontPath returns configured when it exists, otherwise the first
// fallback font present on the system.
func ResolveFontPath(configured string) (string, error) {
	candidates := fallbackFontPaths
	if configured != "" {
		candidates = append([]string{configured}, fallbackFontPaths...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			if p != configured && configured != "" {
				GetInternalLogger().Warn("Configured font not found; using fallback", "configured", configured, "font", p)
			}
			return p, nil
		}
	}
	return "", errNoFont
}

func initFonts(path string, sizes FontSizes) error {
	var err error
	if Fonts.LargeFont, err = ttf.OpenFont(path, sizes.Large); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	if Fonts.MediumFont, err = ttf.OpenFont(path, sizes.Medium); err != nil {
		closeFonts()
		return fmt.Errorf("open font %s: %w", path, err)
	}
	if Fonts.SmallFont, err = ttf.OpenFont(path, sizes.Small); err != nil {
		closeFonts()
		return fmt.Errorf("open font %s: %w", path, err)
	}
	GetInternalLogger().Debug("Fonts loaded", "path", path)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
