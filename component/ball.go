package component

import "github.com/lixenwraith/balloon/parameter"

// BallComponent holds the balloon kinematics in canvas pixels
// Radius is fixed at spawn and never changes
type BallComponent struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// NewBall returns the ball at its spawn position and velocity
func NewBall() BallComponent {
	return BallComponent{
		X:      parameter.BallStartX,
		Y:      parameter.BallStartY,
		DX:     parameter.BallStartDX,
		DY:     parameter.BallStartDY,
		Radius: parameter.BallRadius,
	}
}

// Left, Right, Top and Bottom return the bounding box edges
func (b BallComponent) Left() float64   { return b.X - b.Radius }
func (b BallComponent) Right() float64  { return b.X + b.Radius }
func (b BallComponent) Top() float64    { return b.Y - b.Radius }
func (b BallComponent) Bottom() float64 { return b.Y + b.Radius }
