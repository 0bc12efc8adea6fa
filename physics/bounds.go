package physics

import "github.com/lixenwraith/balloon/parameter"

// Bounds is the playable canvas, origin at the top-left corner
type Bounds struct {
	Width, Height float64
}

// CanvasBounds returns the fixed game canvas
func CanvasBounds() Bounds {
	return Bounds{Width: parameter.CanvasWidth, Height: parameter.CanvasHeight}
}
