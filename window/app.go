package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/balloon/event"
	"github.com/lixenwraith/balloon/game"
	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/render"
)

// binding maps an ebiten key to game input
type binding struct {
	key  ebiten.Key
	game event.Key
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, event.KeyLeft},
	{ebiten.KeyArrowRight, event.KeyRight},
	{ebiten.KeySpace, event.KeyPause},
	{ebiten.KeyR, event.KeyRestart},
}

func boundKey(k ebiten.Key) (event.Key, bool) {
	for _, b := range bindings {
		if b.key == k {
			return b.game, true
		}
	}
	return event.KeyOther, false
}

// translateKeys converts one tick's key edges to game input. Unbound presses
// become KeyOther so any key leaves the start screen, unbound releases carry
// no intent and are dropped. Escape never reaches the game.
func translateKeys(pressed, released []ebiten.Key) []event.Input {
	var out []event.Input
	for _, k := range pressed {
		if k == ebiten.KeyEscape {
			continue
		}
		gk, _ := boundKey(k)
		out = append(out, event.KeyDown(gk))
	}
	for _, k := range released {
		if gk, ok := boundKey(k); ok {
			out = append(out, event.KeyUp(gk))
		}
	}
	return out
}

// App adapts a game to ebiten.Game, one Update is one game frame
type App struct {
	game       *game.Game
	dispatcher *render.Dispatcher
	surface    *Surface
	frame      game.Frame

	pressed  []ebiten.Key
	released []ebiten.Key
}

var _ ebiten.Game = (*App)(nil)

func NewApp(g *game.Game, d *render.Dispatcher) *App {
	return &App{
		game:       g,
		dispatcher: d,
		surface:    NewSurface(),
		frame:      g.Frame(),
	}
}

// Run opens the window and blocks until it closes
func (a *App) Run(interval time.Duration) error {
	ebiten.SetWindowSize(int(parameter.CanvasWidth), int(parameter.CanvasHeight))
	ebiten.SetWindowTitle(parameter.TitleText)
	ebiten.SetTPS(TPS(interval))
	return ebiten.RunGame(a)
}

// TPS converts a frame interval to ebiten ticks per second
func TPS(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int(time.Second / interval)
	if tps < 1 {
		return 1
	}
	return tps
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.pressed = inpututil.AppendJustPressedKeys(a.pressed[:0])
	a.released = inpututil.AppendJustReleasedKeys(a.released[:0])
	for _, ev := range translateKeys(a.pressed, a.released) {
		a.game.Push(ev)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.game.Push(event.Click(float64(x), float64(y)))
	}

	a.game.Update()
	a.frame = a.game.Frame()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Bind(screen)
	a.dispatcher.Draw(a.surface, a.frame)
}

func (a *App) Layout(_, _ int) (int, int) {
	return int(parameter.CanvasWidth), int(parameter.CanvasHeight)
}
