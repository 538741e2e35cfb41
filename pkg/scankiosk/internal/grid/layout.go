// Package grid computes the home screen's tile layout and moves focus across it.
// Nothing here touches SDL; rectangles are converted to sdl.Rect by the caller.
package grid

import "math"

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Spacing around the tile area. The grid sits in the right-hand part of the
// window, left aligned and vertically centered, with the banner under it.
const (
	regionPercent = 60 // Width of the right-hand region, in percent of the window
	paddingLeft   = 32
	paddingRight  = 48
	paddingY      = 48
	sectionGap    = 40 // Between the grid and the banner
	minScale      = 0.1
)

// Spec describes the grid to lay out.
type Spec struct {
	Count        int   // Number of tiles
	Columns      int   // Tiles per row
	TileSize     int32 // Edge length of a square tile at scale 1
	TileGap      int32 // Gap between tiles at scale 1
	BannerHeight int32 // Zero for no banner
}

// Layout is a computed grid.
type Layout struct {
	Tiles   []Rect
	Banner  Rect
	Columns int
	Rows    int
	Scale   float64 // Applied to tile size, gap and banner; at most 1
}

// Calculate lays out spec in a window of the given size. Tiles keep their
// configured size when they fit and shrink uniformly when they don't.
func Calculate(windowWidth, windowHeight int32, spec Spec) Layout {
	cols := spec.Columns
	if cols <= 0 {
		cols = 1
	}
	if spec.Count <= 0 {
		return Layout{Columns: cols, Scale: 1}
	}
	rows := (spec.Count + cols - 1) / cols
	if spec.Count < cols {
		cols = spec.Count
	}

	gridW := float64(int32(cols)*spec.TileSize + int32(cols-1)*spec.TileGap)
	gridH := float64(int32(rows)*spec.TileSize + int32(rows-1)*spec.TileGap)
	contentH := gridH
	if spec.BannerHeight > 0 {
		contentH += sectionGap + float64(spec.BannerHeight)
	}

	regionX := windowWidth - windowWidth*regionPercent/100
	availW := float64(windowWidth - regionX - paddingLeft - paddingRight)
	availH := float64(windowHeight - 2*paddingY)

	scale := 1.0
	if gridW > 0 {
		scale = math.Min(scale, availW/gridW)
	}
	if contentH > 0 {
		scale = math.Min(scale, availH/contentH)
	}
	if scale < minScale {
		scale = minScale
	}

	tile := scaled(spec.TileSize, scale)
	gap := scaled(spec.TileGap, scale)
	banner := scaled(spec.BannerHeight, scale)

	scaledGridW := int32(cols)*tile + int32(cols-1)*gap
	scaledGridH := int32(rows)*tile + int32(rows-1)*gap
	scaledContentH := scaledGridH
	if banner > 0 {
		scaledContentH += sectionGap + banner
	}

	x0 := regionX + paddingLeft
	y0 := (windowHeight - scaledContentH) / 2

	layout := Layout{
		Tiles:   make([]Rect, spec.Count),
		Columns: cols,
		Rows:    rows,
		Scale:   scale,
	}
	for i := range layout.Tiles {
		row, col := i/cols, i%cols
		layout.Tiles[i] = Rect{
			X: x0 + int32(col)*(tile+gap),
			Y: y0 + int32(row)*(tile+gap),
			W: tile,
			H: tile,
		}
	}
	if banner > 0 {
		layout.Banner = Rect{X: x0, Y: y0 + scaledGridH + sectionGap, W: scaledGridW, H: banner}
	}

	return layout
}

// HitTest returns the index of the tile containing (x, y), or -1.
func (l Layout) HitTest(x, y int32) int {
	for i, r := range l.Tiles {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

func scaled(v int32, scale float64) int32 {
	return int32(math.Round(float64(v) * scale))
}

// Cover returns the part of a srcW x srcH image that fills a dstW x dstH box
// without distortion. The image is cropped around its center.
func Cover(srcW, srcH, dstW, dstH int32) Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}
	}

	// Compare aspect ratios without floating point: srcW/srcH vs dstW/dstH.
	if int64(srcW)*int64(dstH) > int64(dstW)*int64(srcH) {
		// Source is wider: crop the sides.
		w := int32(int64(srcH) * int64(dstW) / int64(dstH))
		return Rect{X: (srcW - w) / 2, Y: 0, W: w, H: srcH}
	}
	h := int32(int64(srcW) * int64(dstH) / int64(dstW))
	return Rect{X: 0, Y: (srcH - h) / 2, W: srcW, H: h}
}

// Fit scales srcW x srcH down to fit inside maxW x maxH, keeping the aspect ratio.
// Images that already fit are returned unchanged.
func Fit(srcW, srcH, maxW, maxH int32) (int32, int32) {
	w, h := srcW, srcH

	if w > maxW {
		ratio := float32(maxW) / float32(w)
		w = maxW
		h = int32(float32(h) * ratio)
	}

	if h > maxH {
		ratio := float32(maxH) / float32(h)
		h = maxH
		w = int32(float32(w) * ratio)
	}

	return w, h
}
