package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// SymmetricPadding uses vertical for top and bottom and horizontal for the sides.
func SymmetricPadding(vertical, horizontal int32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Around returns the rectangle of a w x h box grown by the padding, with its
// top edge at y and centered horizontally on centerX.
func (p Padding) Around(centerX, y, w, h int32) sdl.Rect {
	outerW := w + p.Left + p.Right
	return sdl.Rect{
		X: centerX - outerW/2,
		Y: y,
		W: outerW,
		H: h + p.Top + p.Bottom,
	}
}
