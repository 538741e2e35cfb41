package internal

import (
	"fmt"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init starts SDL, opens the kiosk window and loads fonts.
// backgroundPath may be empty.
func Init(title string, winOpts WindowOptions, fontPath, backgroundPath string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if flags := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); flags&img.INIT_PNG == 0 {
		sdl.Quit()
		return fmt.Errorf("sdl_image init: %w", img.GetError())
	}

	if err := ttf.Init(); err != nil {
		img.Quit()
		sdl.Quit()
		return fmt.Errorf("sdl_ttf init: %w", err)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		winOpts = KioskWindowOptions(constants.IsDevMode())
	}

	// A kiosk has no pointer cursor; touches still arrive as mouse events.
	if !constants.IsDevMode() {
		sdl.ShowCursor(sdl.DISABLE)
	}

	w, err := initWindow(title, winOpts, backgroundPath)
	if err != nil {
		teardown()
		return err
	}
	window = w

	font, err := ResolveFontPath(fontPath)
	if err != nil {
		teardown()
		return err
	}
	if err := initFonts(font, DefaultFontSizes); err != nil {
		teardown()
		return err
	}

	return nil
}

// SDLCleanup releases everything Init created and closes the log file.
func SDLCleanup() {
	teardown()
	CloseLogger()
}

func teardown() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
