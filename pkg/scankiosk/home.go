package scankiosk

import (
	"context"
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/grid"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/kiosk"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/scanner"
	"github.com/veandco/go-sdl2/sdl"
)

const focusOutline int32 = 4

type homeScreenState struct {
	screens  *Screens
	products []catalog.Product
	layout   grid.Layout
	focused  int
	dir      grid.DirectionalInput
	toast    toast
	labels   map[int]*sdl.Texture // Names drawn on tiles without artwork
	decoder  *scanner.Decoder
	result   kiosk.HomeResult
	finished bool
}

// Home shows the product tiles until a product is scanned or selected, or
// the window is closed.
func (s *Screens) Home(ctx context.Context, in kiosk.HomeInput) (kiosk.HomeResult, error) {
	state := s.newHomeState(in)
	defer state.cleanup()

	state.decoder = s.newDecoder(state.onScan)
	if err := state.decoder.Activate(s.hub); err != nil {
		return kiosk.HomeResult{Action: kiosk.HomeActionExit}, err
	}
	defer state.decoder.Deactivate()

	for !state.finished {
		if ctx.Err() != nil {
			return kiosk.HomeResult{Action: kiosk.HomeActionExit}, nil
		}
		state.handleEvent(s.pump(state.isFinished))
		state.update()
		state.render()
	}

	state.result.Resume = &kiosk.HomeResume{Focused: state.focused}
	return state.result, nil
}

func (s *Screens) newHomeState(in kiosk.HomeInput) *homeScreenState {
	state := &homeScreenState{
		screens:  s,
		products: s.opts.Catalog.Products(),
		focused:  -1,
		dir:      grid.NewDirectionalInput(),
		labels:   make(map[int]*sdl.Texture),
	}
	if in.Resume != nil && in.Resume.Focused < len(state.products) {
		state.focused = in.Resume.Focused
	}
	state.toast.show(s.renderer, in.Toast, s.toastDuration())
	state.relayout()
	return state
}

func (st *homeScreenState) relayout() {
	d := st.screens.opts.Display
	st.layout = grid.Calculate(st.screens.window.GetWidth(), st.screens.window.GetHeight(), grid.Spec{
		Count:        len(st.products),
		Columns:      d.Columns,
		TileSize:     d.TileSize,
		TileGap:      d.TileGap,
		BannerHeight: constants.DefaultBannerH,
	})
}

func (st *homeScreenState) onScan(ev scanner.ScanEvent) {
	if st.finished {
		return
	}
	res, msg, done := st.screens.opts.Scans.OnHome(ev.Code)
	if done {
		st.finish(res)
		return
	}
	if msg != "" {
		st.toast.show(st.screens.renderer, msg, st.screens.toastDuration())
	}
}

func (st *homeScreenState) isFinished() bool { return st.finished }

func (st *homeScreenState) finish(res kiosk.HomeResult) {
	st.result = res
	st.finished = true
}

func (st *homeScreenState) handleEvent(event sdl.Event) {
	if event == nil || st.finished {
		return
	}

	switch e := event.(type) {
	case *sdl.QuitEvent:
		st.finish(kiosk.HomeResult{Action: kiosk.HomeActionExit})

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYUP {
			st.dir.SetHeld(internal.KeyFromSDL(e), false)
			return
		}
		st.handleKeyDown(e)

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
			x, y := st.screens.toOutput(e.X, e.Y)
			st.activate(st.layout.HitTest(x, y))
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			st.relayout()
		}
	}
}

func (st *homeScreenState) handleKeyDown(e *sdl.KeyboardEvent) {
	// Enter with nothing buffered is a keypress, not the end of a scan.
	idle := st.decoder.Pending() == ""

	ev := st.screens.publishKey(e)
	if st.finished {
		return
	}

	if ev.Key == constants.KeyEnter {
		if idle && e.Repeat == 0 {
			st.activate(st.focused)
		}
		return
	}
	if ev.DefaultPrevented() || e.Repeat != 0 {
		return
	}
	if st.dir.SetHeld(ev.Key, true) {
		st.move(grid.DirectionForKey(ev.Key))
	}
}

func (st *homeScreenState) move(dir grid.Direction) {
	if dir == grid.DirectionNone {
		return
	}
	st.focused = grid.Move(st.focused, dir, len(st.products), st.layout.Columns)
}

// activate opens the product on tile idx. Inert tiles do nothing.
func (st *homeScreenState) activate(idx int) {
	if idx < 0 || idx >= len(st.products) {
		return
	}
	res, ok := st.screens.opts.Scans.OnTile(st.products[idx].Code)
	if !ok {
		return
	}
	st.focused = idx
	st.finish(res)
}

func (st *homeScreenState) update() {
	st.move(st.dir.Update())
	st.toast.update(time.Now())
}

func (st *homeScreenState) render() {
	w := st.screens.window
	renderer := st.screens.renderer
	theme := internal.GetTheme()

	w.Clear()
	w.RenderBackground()

	for i, tile := range st.layout.Tiles {
		dst := toSDLRect(tile)
		if tex := st.screens.image(st.products[i].TileImage); tex != nil {
			w.RenderCover(tex, dst)
		} else {
			st.renderPlaceholder(i, dst)
		}

		if i == st.focused {
			renderer.SetDrawColor(theme.FocusColor.R, theme.FocusColor.G, theme.FocusColor.B, theme.FocusColor.A)
			for inset := int32(0); inset < focusOutline; inset++ {
				renderer.DrawRect(&sdl.Rect{X: dst.X - inset, Y: dst.Y - inset, W: dst.W + 2*inset, H: dst.H + 2*inset})
			}
		}
	}

	if !st.layout.Banner.Empty() {
		dst := toSDLRect(st.layout.Banner)
		if tex := st.screens.image(st.screens.opts.Display.Banner); tex != nil {
			w.RenderCover(tex, dst)
		} else {
			renderCentered(renderer, st.screens.prompt, dst)
		}
	}

	st.toast.render(renderer, w.GetWidth())
	w.Present()
}

func (st *homeScreenState) renderPlaceholder(i int, dst sdl.Rect) {
	renderer := st.screens.renderer
	renderer.SetDrawColor(40, 40, 40, 255)
	renderer.FillRect(&dst)

	label, ok := st.labels[i]
	if !ok {
		label = renderText(renderer, st.products[i].Name, internal.Fonts.SmallFont, internal.GetTheme().PlaceholderText)
		st.labels[i] = label
	}
	renderCentered(renderer, label, dst)
}

func (st *homeScreenState) cleanup() {
	st.toast.clear()
	for _, tex := range st.labels {
		if tex != nil {
			tex.Destroy()
		}
	}
}

// renderCentered draws texture at its natural size centered in dst,
// shrinking it to fit when it is larger.
func renderCentered(renderer *sdl.Renderer, texture *sdl.Texture, dst sdl.Rect) {
	if texture == nil {
		return
	}
	_, _, tw, th, err := texture.Query()
	if err != nil {
		return
	}
	fw, fh := grid.Fit(tw, th, dst.W, dst.H)
	renderer.Copy(texture, nil, &sdl.Rect{
		X: dst.X + (dst.W-fw)/2,
		Y: dst.Y + (dst.H-fh)/2,
		W: fw,
		H: fh,
	})
}

func toSDLRect(r grid.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// toOutput converts window coordinates to renderer pixels.
func (s *Screens) toOutput(x, y int32) (int32, int32) {
	ww, wh := s.window.Window.GetSize()
	ow, oh := s.window.GetSize()
	if ww <= 0 || wh <= 0 {
		return x, y
	}
	return x * ow / ww, y * oh / wh
}
