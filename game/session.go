package game

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/balloon/component"
	"github.com/lixenwraith/balloon/effect"
	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/physics"
)

// Session is the single mutable game state shared by update, render and input
// handling, all access happens on the loop goroutine
type Session struct {
	// Round identifies one NotStarted..GameOver cycle in logs
	Round uuid.UUID

	Mode   Mode
	Score  int
	Ticks  uint64 // Physics ticks in the current round
	Bounds physics.Bounds

	Ball   component.BallComponent
	Paddle component.PaddleComponent
	Intent component.IntentComponent
	Shake  effect.Shake
}

// NewSession creates a session waiting on the start screen
func NewSession() *Session {
	return &Session{
		Round:  uuid.New(),
		Mode:   ModeNotStarted,
		Bounds: physics.CanvasBounds(),
		Ball:   component.NewBall(),
		Paddle: component.NewPaddle(),
		Shake:  effect.NewShake(),
	}
}

// ResetRound restores the ball and score for a new round
// Paddle position, held keys and any running shake carry over
func (s *Session) ResetRound() {
	s.Round = uuid.New()
	s.Ball = component.NewBall()
	s.Score = 0
	s.Ticks = 0
}

// Rect is an axis-aligned region in canvas pixels
type Rect struct {
	X, Y, W, H float64
}

// ContainsStrict reports whether (x, y) lies inside r, edges excluded
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// PlayButton returns the start screen's clickable region, centered on the canvas
func PlayButton(b physics.Bounds) Rect {
	return Rect{
		X: b.Width/2 - parameter.PlayButtonWidth/2,
		Y: b.Height/2 - parameter.PlayButtonHeight/2,
		W: parameter.PlayButtonWidth,
		H: parameter.PlayButtonHeight,
	}
}
