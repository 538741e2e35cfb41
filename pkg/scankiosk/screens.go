package scankiosk

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/config"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/i18n"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/icons"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/input"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/kiosk"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/scanner"
	"github.com/veandco/go-sdl2/sdl"
)

// ScreensOptions configures the SDL screens.
type ScreensOptions struct {
	Catalog    *catalog.Catalog
	Scans      kiosk.Scans
	Display    config.DisplayConfig
	AssetPath  func(rel string) string // Resolves catalog image paths; identity when nil
	DecoderOps []scanner.Option
	Logger     *slog.Logger
}

// Screens draws the kiosk with SDL. It implements kiosk.Screens.
//
// Keys typed into the window are published to the shared key stream on the
// render loop. An optional extra source, such as a dedicated evdev scanner,
// posts its keys to the dispatcher, which the render loop drains every frame.
type Screens struct {
	opts     ScreensOptions
	window   *internal.Window
	renderer *sdl.Renderer

	hub        *scanner.Hub
	dispatcher *scanner.Dispatcher

	textures    *internal.TextureCache
	backButtons map[catalog.BackButtonStyle]*sdl.Texture
	prompt      *sdl.Texture
	missing     map[string]bool

	wg sync.WaitGroup
}

// NewScreens creates the SDL screens. Init must have been called.
func NewScreens(opts ScreensOptions) (*Screens, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("screens", errors.New("display not initialized"))
	}
	if opts.Catalog == nil {
		return nil, NewInfrastructureError("screens", errors.New("nil catalog"))
	}
	if opts.AssetPath == nil {
		opts.AssetPath = func(rel string) string { return rel }
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Display.ToastDuration.Duration <= 0 {
		opts.Display.ToastDuration.Duration = constants.DefaultToastDuration
	}

	s := &Screens{
		opts:        opts,
		window:      window,
		renderer:    window.Renderer,
		hub:         scanner.NewHub(),
		dispatcher:  scanner.NewDispatcher(),
		textures:    internal.NewTextureCacheWithSize(window.Renderer, opts.Catalog.Len()+6),
		backButtons: make(map[catalog.BackButtonStyle]*sdl.Texture),
		missing:     make(map[string]bool),
	}
	s.loadStatic()
	return s, nil
}

func (s *Screens) loadStatic() {
	if msgs := s.opts.Scans.Msgs; msgs != nil {
		s.prompt = renderText(s.renderer, msgs.Get(i18n.MsgScanPrompt, nil), internal.Fonts.MediumFont, internal.GetTheme().PlaceholderText)
	}

	for _, style := range []catalog.BackButtonStyle{catalog.BackButtonDark, catalog.BackButtonLight} {
		img, err := icons.BackButton(style, icons.BackButtonSize)
		if err != nil {
			s.opts.Logger.Error("Back button not rasterized", "style", string(style), "error", err)
			continue
		}
		tex, err := textureFromRGBA(s.renderer, img)
		if err != nil {
			s.opts.Logger.Error("Back button texture not created", "style", string(style), "error", err)
			continue
		}
		s.backButtons[style] = tex
	}
}

// StartSource reads keys from src until ctx is done. Keys reach the screens
// through the dispatcher. A source that fails is logged and the window
// keyboard keeps working.
func (s *Screens) StartSource(ctx context.Context, src input.Source) {
	if src == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := src.Run(ctx, func(key string) {
			s.dispatcher.Post(func() {
				s.hub.Publish(scanner.NewKeyEvent(key))
			})
		})
		if err != nil && !errors.Is(err, input.ErrInterrupted) {
			s.opts.Logger.Error("Key source stopped", "error", err)
		}
	}()
}

// Wait blocks until the source started by StartSource returns.
func (s *Screens) Wait() {
	s.wg.Wait()
}

// Close destroys every texture the screens own.
func (s *Screens) Close() {
	for _, tex := range s.backButtons {
		tex.Destroy()
	}
	s.backButtons = nil
	if s.prompt != nil {
		s.prompt.Destroy()
		s.prompt = nil
	}
	s.textures.Destroy()
}

// publishKey delivers a key typed into the window to the key stream and
// returns the event so callers can check whether the decoder claimed it.
func (s *Screens) publishKey(e *sdl.KeyboardEvent) *scanner.KeyEvent {
	ev := scanner.NewKeyEvent(internal.KeyFromSDL(e))
	s.hub.Publish(ev)
	return ev
}

// pump runs what the dispatcher has queued, including idle-timer expiries,
// then waits up to one frame for an SDL event. Draining stops as soon as the
// screen finishes so keys queued behind a completed scan reach the next
// screen's decoder.
func (s *Screens) pump(finished func() bool) sdl.Event {
	s.dispatcher.RunPendingUntil(finished)
	if finished() {
		return nil
	}
	return sdl.WaitEventTimeout(16)
}

func (s *Screens) newDecoder(onScan scanner.ScanFunc) *scanner.Decoder {
	return scanner.NewDecoder(s.dispatcher, onScan, s.opts.DecoderOps...)
}

func (s *Screens) toastDuration() time.Duration {
	return s.opts.Display.ToastDuration.Duration
}

// image returns the texture for an asset, or nil when it cannot be loaded.
// Textures may be evicted between frames, so callers must not keep them.
func (s *Screens) image(rel string) *sdl.Texture {
	path := s.opts.AssetPath(rel)
	if path == "" || s.missing[path] {
		return nil
	}
	tex, err := s.textures.Load(path)
	if err != nil {
		s.missing[path] = true
		s.opts.Logger.Warn("Image not loaded", "path", path, "error", err)
		return nil
	}
	return tex
}
