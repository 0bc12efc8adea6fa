package render

import (
	"image"
	"image/color"
)

// Align is horizontal text anchoring relative to the given x
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes a text draw, Size is the glyph height in canvas pixels
type TextStyle struct {
	Size  float64
	Color color.Color
	Align Align
}

// Surface is a drawing target in canvas coordinates
// The dispatcher issues calls every frame and never owns the surface lifecycle
type Surface interface {
	// Clear fills the whole surface, ignoring the translation
	Clear(c color.Color)

	// SetTranslate sets the global offset applied to every later draw call
	SetTranslate(dx, dy float64)

	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)

	// DrawImageInCircle blits img scaled into the circle's bounding box, clipped to the circle
	DrawImageInCircle(img image.Image, cx, cy, r float64)

	// DrawText anchors the baseline at y
	DrawText(text string, x, y float64, style TextStyle)

	// Present flushes the frame to the display
	Present()
}

// LogoSource supplies the ball image, nil until loaded
type LogoSource interface {
	Logo() image.Image
}
