package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/event"
	"github.com/lixenwraith/balloon/parameter"
)

// CanvasMapper converts cell positions to canvas coordinates
type CanvasMapper interface {
	CanvasAt(col, row int) (x, y float64, ok bool)
}

// heldKeys are the keys that get a synthesized release
var heldKeys = [...]event.Key{event.KeyLeft, event.KeyRight}

// Input translates tcell events into game input
type Input struct {
	push   func(event.Input)
	mapper CanvasMapper

	onQuit   func()
	onResize func()

	mu      sync.Mutex
	held    [len(heldKeys)]time.Time
	buttons tcell.ButtonMask
}

// InputOption configures an Input
type InputOption func(*Input)

// WithQuit is called on Esc or Ctrl+C
func WithQuit(fn func()) InputOption {
	return func(in *Input) {
		in.onQuit = fn
	}
}

// WithResize is called on every terminal resize
func WithResize(fn func()) InputOption {
	return func(in *Input) {
		in.onResize = fn
	}
}

// NewInput delivers translated events to push, typically Game.Push
func NewInput(push func(event.Input), mapper CanvasMapper, opts ...InputOption) *Input {
	in := &Input{push: push, mapper: mapper}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Poll blocks reading screen events until the screen is finalized
func (in *Input) Poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		in.HandleEvent(ev, time.Now())
	}
}

// HandleEvent translates one tcell event
func (in *Input) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev.Key(), ev.Rune(), ev.Modifiers(), now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		if in.onResize != nil {
			in.onResize()
		}
	}
}

func (in *Input) handleKey(key tcell.Key, r rune, mod tcell.ModMask, now time.Time) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		core.LogDebug("quit requested", "key", tcell.KeyNames[key])
		if in.onQuit != nil {
			in.onQuit()
		}
	case tcell.KeyLeft:
		in.press(event.KeyLeft, now)
	case tcell.KeyRight:
		in.press(event.KeyRight, now)
	case tcell.KeyRune:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return
		}
		ev := event.KeyDown(event.RuneKey(r))
		if ev.Key == event.KeyOther {
			ev.Rune = r
		}
		in.push(ev)
	default:
		in.push(event.KeyDown(event.KeyOther))
	}
}

// press marks a directional key held, auto-repeat refreshes the window
func (in *Input) press(k event.Key, now time.Time) {
	in.mu.Lock()
	in.held[heldIndex(k)] = now
	in.mu.Unlock()
	in.push(event.KeyDown(k))
}

// Expire emits a key-up for every directional key whose hold window elapsed
func (in *Input) Expire(now time.Time) {
	var released [len(heldKeys)]bool

	in.mu.Lock()
	for i, t := range in.held {
		if !t.IsZero() && now.Sub(t) >= parameter.KeyHoldWindow {
			in.held[i] = time.Time{}
			released[i] = true
		}
	}
	in.mu.Unlock()

	for i, ok := range released {
		if ok {
			in.push(event.KeyUp(heldKeys[i]))
		}
	}
}

// Held reports whether a directional key is inside its hold window
func (in *Input) Held(k event.Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return !in.held[heldIndex(k)].IsZero()
}

// handleMouse emits a click on the button-1 press edge only
func (in *Input) handleMouse(col, row int, buttons tcell.ButtonMask) {
	in.mu.Lock()
	pressed := buttons&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
	in.buttons = buttons
	in.mu.Unlock()

	if !pressed || in.mapper == nil {
		return
	}
	x, y, ok := in.mapper.CanvasAt(col, row)
	if !ok {
		return
	}
	in.push(event.Click(x, y))
}

func heldIndex(k event.Key) int {
	if k == event.KeyRight {
		return 1
	}
	return 0
}
