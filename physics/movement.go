package physics

import (
	"github.com/lixenwraith/balloon/component"
)

// MovePaddle applies held directions for one tick
// Both guards read the pre-update position, so holding both keys away from the
// walls cancels out, while at a wall only the inward step applies
func MovePaddle(p component.PaddleComponent, intent component.IntentComponent, b Bounds) component.PaddleComponent {
	x := p.X
	if intent.Right && p.Right() < b.Width {
		x += p.Speed
	}
	if intent.Left && p.X > 0 {
		x -= p.Speed
	}
	p.X = x
	return p
}

// Integrate moves the ball by exactly one velocity step
func Integrate(ball component.BallComponent) component.BallComponent {
	ball.X += ball.DX
	ball.Y += ball.DY
	return ball
}
