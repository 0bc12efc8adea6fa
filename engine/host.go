package engine

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/game"
	"github.com/lixenwraith/balloon/render"
)

// Host drives one game on one surface from an external clock
type Host struct {
	game       *game.Game
	dispatcher *render.Dispatcher
	surface    render.Surface

	redraw    <-chan struct{}
	frameHook func(now time.Time)

	frames   uint64
	quit     chan struct{}
	quitOnce sync.Once
}

// HostOption configures a Host
type HostOption func(*Host)

// WithRedraw adds a channel whose signals trigger one extra render pass
func WithRedraw(ch <-chan struct{}) HostOption {
	return func(h *Host) {
		h.redraw = ch
	}
}

// WithFrameHook runs fn at the start of every clock frame, before input is drained
func WithFrameHook(fn func(now time.Time)) HostOption {
	return func(h *Host) {
		h.frameHook = fn
	}
}

// NewHost binds a game to a surface
func NewHost(g *game.Game, d *render.Dispatcher, s render.Surface, opts ...HostOption) *Host {
	h := &Host{
		game:       g,
		dispatcher: d,
		surface:    s,
		quit:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Game returns the hosted game
func (h *Host) Game() *game.Game {
	return h.game
}

// Frames returns the number of rendered frames
func (h *Host) Frames() uint64 {
	return h.frames
}

// Step runs one full frame: drain input, tick, render
func (h *Host) Step() {
	h.game.Update()
	h.Redraw()
}

// Redraw renders the current state without advancing physics
func (h *Host) Redraw() {
	h.dispatcher.Draw(h.surface, h.game.Frame())
	h.frames++
}

// Quit stops Run, safe from any goroutine
func (h *Host) Quit() {
	h.quitOnce.Do(func() { close(h.quit) })
}

// Run loops until ctx is done or Quit is called, it never exits on its own
func (h *Host) Run(ctx context.Context, clock Clock) error {
	defer clock.Stop()

	core.LogInfo("loop started", "round", h.game.Session().Round)
	defer func() {
		core.LogInfo("loop stopped", "frames", h.frames, "mode", h.game.Mode())
	}()

	for {
		select {
		case now := <-clock.C():
			if h.frameHook != nil {
				h.frameHook(now)
			}
			h.Step()

		case <-h.redraw:
			h.Redraw()

		case <-h.quit:
			return nil

		case <-ctx.Done():
			return nil
		}
	}
}
