package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon/event"
	"github.com/lixenwraith/balloon/game"
	"github.com/lixenwraith/balloon/parameter"
)

type recorder struct {
	events []event.Input
}

func (r *recorder) push(ev event.Input) {
	r.events = append(r.events, ev)
}

func (r *recorder) take() []event.Input {
	out := r.events
	r.events = nil
	return out
}

type fixedMapper struct{}

func (fixedMapper) CanvasAt(col, row int) (float64, float64, bool) {
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	return float64(col * 5), float64(row * 10), true
}

func TestInput_DirectionalHoldWindow(t *testing.T) {
	rec := &recorder{}
	in := NewInput(rec.push, fixedMapper{})
	t0 := time.Unix(0, 0)

	in.handleKey(tcell.KeyRight, 0, tcell.ModNone, t0)
	got := rec.take()
	if len(got) != 1 || got[0] != event.KeyDown(event.KeyRight) {
		t.Fatalf("press = %+v, want one KeyDown(Right)", got)
	}
	if !in.Held(event.KeyRight) {
		t.Fatal("right not held after press")
	}

	in.Expire(t0.Add(100 * time.Millisecond))
	if got := rec.take(); len(got) != 0 {
		t.Fatalf("expired inside hold window: %+v", got)
	}

	// Auto-repeat refreshes the window
	in.handleKey(tcell.KeyRight, 0, tcell.ModNone, t0.Add(120*time.Millisecond))
	rec.take()
	in.Expire(t0.Add(200 * time.Millisecond))
	if got := rec.take(); len(got) != 0 {
		t.Fatalf("expired after repeat: %+v", got)
	}

	in.Expire(t0.Add(120*time.Millisecond + parameter.KeyHoldWindow))
	got = rec.take()
	if len(got) != 1 || got[0] != event.KeyUp(event.KeyRight) {
		t.Fatalf("expire = %+v, want one KeyUp(Right)", got)
	}
	if in.Held(event.KeyRight) {
		t.Error("right still held after release")
	}

	in.Expire(t0.Add(time.Second))
	if got := rec.take(); len(got) != 0 {
		t.Errorf("second release emitted: %+v", got)
	}
}

func TestInput_BothKeysReleaseIndependently(t *testing.T) {
	rec := &recorder{}
	in := NewInput(rec.push, fixedMapper{})
	t0 := time.Unix(0, 0)

	in.handleKey(tcell.KeyLeft, 0, tcell.ModNone, t0)
	in.handleKey(tcell.KeyRight, 0, tcell.ModNone, t0.Add(100*time.Millisecond))
	rec.take()

	in.Expire(t0.Add(parameter.KeyHoldWindow))
	got := rec.take()
	if len(got) != 1 || got[0] != event.KeyUp(event.KeyLeft) {
		t.Fatalf("expire = %+v, want KeyUp(Left) only", got)
	}
	if !in.Held(event.KeyRight) {
		t.Error("right released early")
	}
}

func TestInput_Runes(t *testing.T) {
	tests := []struct {
		r    rune
		mod  tcell.ModMask
		want []event.Input
	}{
		{'r', tcell.ModNone, []event.Input{{Kind: event.KindKeyDown, Key: event.KeyRestart}}},
		{'R', tcell.ModShift, []event.Input{{Kind: event.KindKeyDown, Key: event.KeyRestart}}},
		{' ', tcell.ModNone, []event.Input{{Kind: event.KindKeyDown, Key: event.KeyPause}}},
		{'x', tcell.ModNone, []event.Input{{Kind: event.KindKeyDown, Key: event.KeyOther, Rune: 'x'}}},
		{'r', tcell.ModAlt, nil},
	}
	for _, tt := range tests {
		rec := &recorder{}
		in := NewInput(rec.push, fixedMapper{})
		in.handleKey(tcell.KeyRune, tt.r, tt.mod, time.Time{})
		got := rec.take()
		if len(got) != len(tt.want) {
			t.Errorf("rune %q: got %+v, want %+v", tt.r, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("rune %q: got %+v, want %+v", tt.r, got[i], tt.want[i])
			}
		}
	}
}

func TestInput_QuitKeys(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		quits := 0
		rec := &recorder{}
		in := NewInput(rec.push, fixedMapper{}, WithQuit(func() { quits++ }))
		in.handleKey(key, 0, tcell.ModNone, time.Time{})
		if quits != 1 {
			t.Errorf("%v: quit called %d times", tcell.KeyNames[key], quits)
		}
		if got := rec.take(); len(got) != 0 {
			t.Errorf("%v pushed %+v", tcell.KeyNames[key], got)
		}
	}
}

func TestInput_ClickOnPressEdge(t *testing.T) {
	rec := &recorder{}
	in := NewInput(rec.push, fixedMapper{})

	in.handleMouse(50, 25, tcell.Button1)
	in.handleMouse(51, 25, tcell.Button1)
	in.handleMouse(51, 25, tcell.ButtonNone)
	in.handleMouse(10, 4, tcell.Button1)
	in.handleMouse(10, 4, tcell.Button2)

	got := rec.take()
	want := []event.Input{event.Click(250, 250), event.Click(50, 40)}
	if len(got) != len(want) {
		t.Fatalf("clicks = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("click %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestInput_ClickOutsideCanvasIgnored(t *testing.T) {
	rec := &recorder{}
	in := NewInput(rec.push, fixedMapper{})
	in.handleMouse(-1, 3, tcell.Button1)
	if got := rec.take(); len(got) != 0 {
		t.Errorf("letterbox click pushed %+v", got)
	}
}

func TestInput_ResizeEvent(t *testing.T) {
	resized := 0
	in := NewInput(func(event.Input) {}, fixedMapper{}, WithResize(func() { resized++ }))
	in.HandleEvent(tcell.NewEventResize(80, 24), time.Now())
	if resized != 1 {
		t.Errorf("resize callback ran %d times", resized)
	}
}

func TestInput_NonRuneKeysStartGame(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
	}{
		{"enter", tcell.KeyEnter},
		{"up", tcell.KeyUp},
		{"down", tcell.KeyDown},
		{"tab", tcell.KeyTab},
		{"backspace", tcell.KeyBackspace2},
		{"f1", tcell.KeyF1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := game.New()
			in := NewInput(g.Push, fixedMapper{})
			in.HandleEvent(tcell.NewEventKey(tt.key, 0, tcell.ModNone), time.Now())
			g.Update()
			if g.Mode() != game.ModePlaying {
				t.Errorf("mode after %s = %v, want %v", tt.name, g.Mode(), game.ModePlaying)
			}
		})
	}
}

func TestInput_NonRuneKeyIsOther(t *testing.T) {
	rec := &recorder{}
	in := NewInput(rec.push, fixedMapper{})
	in.handleKey(tcell.KeyUp, 0, tcell.ModNone, time.Time{})

	got := rec.take()
	if len(got) != 1 || got[0] != event.KeyDown(event.KeyOther) {
		t.Fatalf("up = %+v, want one KeyDown(Other)", got)
	}
	if in.Held(event.KeyLeft) || in.Held(event.KeyRight) {
		t.Error("non-directional key marked a direction held")
	}
}
