package physics

import (
	"github.com/lixenwraith/balloon/component"
	"github.com/lixenwraith/balloon/parameter"
)

// Result summarizes what happened during one tick
type Result struct {
	ScoreDelta int
	Hit        bool // Paddle bounce, caller starts the shake
	Terminal   bool // Ball left through the floor
}

// Advance runs one physics tick
// Order is fixed: paddle, ball step, walls, paddle contact, floor
// There is no sub-stepping, a ball moving further than the paddle height in one
// tick can pass through it
func Advance(
	ball component.BallComponent,
	paddle component.PaddleComponent,
	intent component.IntentComponent,
	b Bounds,
) (component.BallComponent, component.PaddleComponent, Result) {
	var res Result

	paddle = MovePaddle(paddle, intent, b)

	ball = Integrate(ball)
	ball = ReflectWalls(ball, b)

	if PaddleContact(ball, paddle) {
		ball = BouncePaddle(ball, paddle)
		res.Hit = true
		res.ScoreDelta = parameter.ScorePerHit
	}

	if FellOut(ball, b) {
		res.Terminal = true
	}

	return ball, paddle, res
}
