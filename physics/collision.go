package physics

import (
	"math"

	"github.com/lixenwraith/balloon/component"
)

// ReflectWalls flips velocity components for side and ceiling contact
// Position is left untouched, the ball may overlap a wall by up to one step
func ReflectWalls(ball component.BallComponent, b Bounds) component.BallComponent {
	if ball.Right() > b.Width || ball.Left() < 0 {
		ball.DX = -ball.DX
	}
	if ball.Top() < 0 {
		ball.DY = -ball.DY
	}
	return ball
}

// PaddleContact reports whether the ball bottom lies within the paddle's
// vertical band and the ball center is strictly inside its horizontal span
func PaddleContact(ball component.BallComponent, p component.PaddleComponent) bool {
	bottom := ball.Bottom()
	return bottom >= p.Y && bottom <= p.Bottom() &&
		ball.X > p.X && ball.X < p.Right()
}

// BouncePaddle rests the ball on the paddle top and sends it upward
func BouncePaddle(ball component.BallComponent, p component.PaddleComponent) component.BallComponent {
	ball.Y = p.Y - ball.Radius
	ball.DY = -math.Abs(ball.DY)
	return ball
}

// FellOut reports the ball is entirely below the canvas
func FellOut(ball component.BallComponent, b Bounds) bool {
	return ball.Top() > b.Height
}
