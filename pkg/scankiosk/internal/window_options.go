package internal

import "github.com/veandco/go-sdl2/sdl"

type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Exclusive fullscreen (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Keep the kiosk above anything the OS pops up (SDL_WINDOW_ALWAYS_ON_TOP)
	AllowHighDPI      bool // Render at native resolution on high-DPI panels (SDL_WINDOW_ALLOW_HIGHDPI)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

// KioskWindowOptions returns the flags for an unattended display, or a plain
// resizable window when windowed is set.
func KioskWindowOptions(windowed bool) WindowOptions {
	if windowed {
		return WindowOptions{Resizable: true, AllowHighDPI: true}
	}
	return WindowOptions{
		Borderless:        true,
		FullscreenDesktop: true,
		AlwaysOnTop:       true,
		AllowHighDPI:      true,
	}
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	// Desktop fullscreen wins; it avoids a mode switch on the panel.
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	} else if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if wo.AllowHighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	return flags
}
