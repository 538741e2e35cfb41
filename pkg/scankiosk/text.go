package scankiosk

import (
	"image"
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

// textureFromRGBA uploads a rasterized image.
func textureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, err
	}
	pixels := surface.Pixels()
	rowBytes := int(w) * 4
	for y := 0; y < int(h); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		copy(pixels[y*int(surface.Pitch):], src)
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Toast placement and size.
var (
	toastTop     int32 = 32
	toastPadding       = internal.SymmetricPadding(12, 24)
)

// toast is a short message pinned to the top of the screen.
type toast struct {
	text    string
	texture *sdl.Texture
	w, h    int32
	until   time.Time
}

// show replaces the current message, restarting the timer.
func (t *toast) show(renderer *sdl.Renderer, text string, d time.Duration) {
	t.clear()
	if text == "" {
		return
	}

	theme := internal.GetTheme()
	t.text = text
	t.until = time.Now().Add(d)
	t.texture = renderText(renderer, text, internal.Fonts.SmallFont, theme.ToastTextColor)
	if t.texture != nil {
		_, _, t.w, t.h, _ = t.texture.Query()
	}
	internal.GetInternalLogger().Debug("Toast shown", "text", text, "duration", d.String())
}

// update hides the toast once it has expired.
func (t *toast) update(now time.Time) {
	if t.text != "" && !now.Before(t.until) {
		t.clear()
	}
}

func (t *toast) visible() bool {
	return t.text != ""
}

func (t *toast) render(renderer *sdl.Renderer, windowWidth int32) {
	if !t.visible() || t.texture == nil {
		return
	}

	theme := internal.GetTheme()
	bg := toastPadding.Around(windowWidth/2, toastTop, t.w, t.h)

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(theme.ToastColor.R, theme.ToastColor.G, theme.ToastColor.B, theme.ToastColor.A)
	renderer.FillRect(&bg)

	dst := sdl.Rect{
		X: bg.X + toastPadding.Left,
		Y: bg.Y + toastPadding.Top,
		W: t.w,
		H: t.h,
	}
	renderer.Copy(t.texture, nil, &dst)
}

func (t *toast) clear() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
	t.text = ""
	t.w, t.h = 0, 0
}
