package game

import (
	"math/rand/v2"

	"github.com/lixenwraith/balloon/component"
	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/effect"
	"github.com/lixenwraith/balloon/engine/fsm"
	"github.com/lixenwraith/balloon/event"
	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/physics"
)

// Game owns the session, its state machine and the pending input queue
type Game struct {
	session   *Session
	machine   *fsm.Machine[*Session]
	queue     *event.Queue
	rng       effect.Source
	listeners []Listener
}

// Option configures a Game
type Option func(*Game)

// WithRand replaces the shake random source
func WithRand(src effect.Source) Option {
	return func(g *Game) {
		g.rng = src
	}
}

// WithListener subscribes l to gameplay callbacks
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

// New creates a game on the start screen
func New(opts ...Option) *Game {
	g := &Game{
		session: NewSession(),
		queue:   event.NewQueue(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.machine = g.buildMachine()
	// The graph is static, an Init failure is a programming error
	if err := g.machine.Init(g.session, ModeNotStarted.state()); err != nil {
		panic(err)
	}
	return g
}

// buildMachine wires the session transitions:
//
//	NotStarted -start-> Playing <-toggle-pause-> Paused
//	Playing -floor-exit-> GameOver -restart-> NotStarted
func (g *Game) buildMachine() *fsm.Machine[*Session] {
	m := fsm.NewMachine[*Session]()
	for _, mode := range []Mode{ModeNotStarted, ModePlaying, ModePaused, ModeGameOver} {
		m.AddState(mode.state(), mode.String())
	}

	links := []struct {
		from, to Mode
		ev       fsm.EventID
		action   fsm.ActionFunc[*Session]
	}{
		{ModeNotStarted, ModePlaying, EventStart, g.onStart},
		{ModePlaying, ModePaused, EventTogglePause, nil},
		{ModePaused, ModePlaying, EventTogglePause, nil},
		{ModePlaying, ModeGameOver, EventFloorExit, g.onGameOver},
		{ModeGameOver, ModeNotStarted, EventRestart, g.onRestart},
	}
	for _, l := range links {
		if err := m.AddTransition(l.from.state(), l.ev, l.to.state(), nil, l.action); err != nil {
			panic(err)
		}
	}

	for _, mode := range []Mode{ModeNotStarted, ModePlaying, ModePaused, ModeGameOver} {
		mode := mode
		_ = m.OnEnter(mode.state(), func(s *Session) { s.Mode = mode })
	}

	m.OnTransition = func(from, to fsm.StateID, ev fsm.EventID) {
		core.LogDebug("mode change",
			"round", g.session.Round,
			"from", m.StateName(from),
			"to", m.StateName(to),
			"event", eventNames[ev],
			"score", g.session.Score,
		)
	}
	return m
}

func (g *Game) onStart(s *Session) {
	for _, l := range g.listeners {
		l.OnStart(s.Round)
	}
}

func (g *Game) onGameOver(s *Session) {
	core.LogInfo("game over", "round", s.Round, "score", s.Score, "ticks", s.Ticks)
	for _, l := range g.listeners {
		l.OnGameOver(s.Score)
	}
}

func (g *Game) onRestart(s *Session) {
	s.ResetRound()
	for _, l := range g.listeners {
		l.OnRestart(s.Round)
	}
}

// Session exposes the live state, callers must stay on the loop goroutine
func (g *Game) Session() *Session {
	return g.session
}

// Mode returns the current session mode
func (g *Game) Mode() Mode {
	return g.session.Mode
}

// Push queues an input for the next Update, safe from any goroutine
func (g *Game) Push(ev event.Input) {
	g.queue.Push(ev)
}

// Handle applies one input now and reports whether it changed the mode
// Each input fires at most one transition, unmatched inputs are no-ops
func (g *Game) Handle(ev event.Input) bool {
	s := g.session

	switch ev.Kind {
	case event.KindKeyDown:
		setIntent(&s.Intent, ev.Key, true)

		if s.Mode == ModeNotStarted {
			if ev.Key == event.KeyRestart {
				return false
			}
			return g.fire(EventStart)
		}

		switch ev.Key {
		case event.KeyPause:
			return g.fire(EventTogglePause)
		case event.KeyRestart:
			return g.fire(EventRestart)
		}

	case event.KindKeyUp:
		setIntent(&s.Intent, ev.Key, false)

	case event.KindClick:
		if PlayButton(s.Bounds).ContainsStrict(ev.X, ev.Y) {
			return g.fire(EventStart)
		}
	}
	return false
}

func (g *Game) fire(ev fsm.EventID) bool {
	return g.machine.HandleEvent(g.session, ev)
}

func setIntent(intent *component.IntentComponent, k event.Key, held bool) {
	switch k {
	case event.KeyLeft:
		intent.Left = held
	case event.KeyRight:
		intent.Right = held
	}
}

// Tick advances physics once, only while Playing
func (g *Game) Tick() physics.Result {
	s := g.session
	if s.Mode != ModePlaying {
		return physics.Result{}
	}

	var res physics.Result
	s.Ball, s.Paddle, res = physics.Advance(s.Ball, s.Paddle, s.Intent, s.Bounds)
	s.Ticks++

	if res.Hit {
		s.Score += res.ScoreDelta
		s.Shake.Trigger(parameter.ShakeTicks)
		for _, l := range g.listeners {
			l.OnHit(s.Score)
		}
	}

	if res.Terminal {
		g.fire(EventFloorExit)
	}
	return res
}

// Update drains pending input in arrival order, then ticks
func (g *Game) Update() physics.Result {
	for _, ev := range g.queue.Consume() {
		g.Handle(ev)
	}
	return g.Tick()
}

// Frame is an immutable snapshot of what to draw
type Frame struct {
	Mode   Mode
	Score  int
	Bounds physics.Bounds
	Ball   component.BallComponent
	Paddle component.PaddleComponent

	// Global translation for this frame only
	OffsetX, OffsetY float64
}

// Frame consumes one shake frame and snapshots the session for rendering
// Runs every rendered frame regardless of mode
func (g *Game) Frame() Frame {
	s := g.session
	dx, dy := s.Shake.Next(g.rng)
	return Frame{
		Mode:    s.Mode,
		Score:   s.Score,
		Bounds:  s.Bounds,
		Ball:    s.Ball,
		Paddle:  s.Paddle,
		OffsetX: dx,
		OffsetY: dy,
	}
}
