package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/grid"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps SDL window and renderer with the kiosk's background image.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions, backgroundPath string) (*Window, error) {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = 1920, 1080
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, winOpts, backgroundPath)
}

func initWindowWithSize(title string, width, height int32, winOpts WindowOptions, backgroundPath string) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false

		x, y = int32(50), int32(50)
		width = envDimension(constants.WindowWidthEnvVar, 1280)
		height = envDimension(constants.WindowHeightEnvVar, 720)
	}

	windowFlags := winOpts.ToSDLFlags()

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}

	win.loadBackground(backgroundPath)

	return win, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground(path string) {
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Background image not loaded", "path", path, "error", err)
		window.Background = nil
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetSize returns the renderer's output size in pixels, which differs from
// the window size on high-DPI displays.
func (window *Window) GetSize() (int32, int32) {
	w, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		return window.Window.GetSize()
	}
	return w, h
}

func (window *Window) GetWidth() int32 {
	w, _ := window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.GetSize()
	return h
}

// Clear fills the frame with the theme background color.
func (window *Window) Clear() {
	c := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.Clear()
}

// RenderBackground draws the background image cropped to cover the window.
func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.RenderCover(window.Background, sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// RenderCover draws texture into dst, cropping it to fill dst without distortion.
func (window *Window) RenderCover(texture *sdl.Texture, dst sdl.Rect) {
	_, _, tw, th, err := texture.Query()
	if err != nil {
		return
	}
	crop := grid.Cover(tw, th, dst.W, dst.H)
	src := sdl.Rect{X: crop.X, Y: crop.Y, W: crop.W, H: crop.H}
	window.Renderer.Copy(texture, &src, &dst)
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
