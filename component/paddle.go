package component

import "github.com/lixenwraith/balloon/parameter"

// PaddleComponent is the player controlled bar at the bottom of the canvas
// Y, Width, Height and Speed are constant after creation
type PaddleComponent struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// NewPaddle returns the paddle at its start position
func NewPaddle() PaddleComponent {
	return PaddleComponent{
		X:      parameter.PaddleStartX,
		Y:      parameter.PaddleY,
		Width:  parameter.PaddleWidth,
		Height: parameter.PaddleHeight,
		Speed:  parameter.PaddleSpeed,
	}
}

// Right returns the x coordinate of the right edge
func (p PaddleComponent) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the y coordinate of the bottom edge
func (p PaddleComponent) Bottom() float64 {
	return p.Y + p.Height
}
