package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/balloon/event"
	"github.com/lixenwraith/balloon/game"
)

func TestTPS(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     int
	}{
		{16 * time.Millisecond, 62},
		{100 * time.Millisecond, 10},
		{0, ebiten.DefaultTPS},
		{2 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := TPS(tt.interval); got != tt.want {
			t.Errorf("TPS(%v) = %d, want %d", tt.interval, got, tt.want)
		}
	}
}

func TestBindingsCoverControls(t *testing.T) {
	want := map[event.Key]bool{
		event.KeyLeft: true, event.KeyRight: true, event.KeyPause: true, event.KeyRestart: true,
	}
	for _, b := range bindings {
		delete(want, b.game)
	}
	if len(want) != 0 {
		t.Errorf("unbound keys: %v", want)
	}
}

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []event.Input
	}{
		{"bound press", []ebiten.Key{ebiten.KeyArrowLeft}, nil, []event.Input{event.KeyDown(event.KeyLeft)}},
		{"bound release", nil, []ebiten.Key{ebiten.KeyArrowRight}, []event.Input{event.KeyUp(event.KeyRight)}},
		{"space and r", []ebiten.Key{ebiten.KeySpace, ebiten.KeyR}, nil,
			[]event.Input{event.KeyDown(event.KeyPause), event.KeyDown(event.KeyRestart)}},
		{"unbound press", []ebiten.Key{ebiten.KeyA, ebiten.KeyEnter, ebiten.KeyArrowUp}, nil,
			[]event.Input{event.KeyDown(event.KeyOther), event.KeyDown(event.KeyOther), event.KeyDown(event.KeyOther)}},
		{"unbound release dropped", nil, []ebiten.Key{ebiten.KeyA}, nil},
		{"escape dropped", []ebiten.Key{ebiten.KeyEscape}, nil, nil},
		{"presses before releases", []ebiten.Key{ebiten.KeyArrowRight}, []ebiten.Key{ebiten.KeyArrowLeft},
			[]event.Input{event.KeyDown(event.KeyRight), event.KeyUp(event.KeyLeft)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKeys(tt.pressed, tt.released)
			if len(got) != len(tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTranslateKeys_UnboundKeyStartsGame(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyA, ebiten.KeyEnter, ebiten.KeyArrowUp} {
		g := game.New()
		for _, ev := range translateKeys([]ebiten.Key{k}, nil) {
			g.Push(ev)
		}
		g.Update()
		if g.Mode() != game.ModePlaying {
			t.Errorf("mode after %v = %v, want %v", k, g.Mode(), game.ModePlaying)
		}
	}
}

func TestTextOrigin(t *testing.T) {
	scale, top := textOrigin(26, 11)
	if scale != 2 || top != -22 {
		t.Errorf("textOrigin(26, 11) = (%v, %v), want (2, -22)", scale, top)
	}
	scale, _ = textOrigin(0, 11)
	if scale != 1 {
		t.Errorf("zero size scale = %v, want 1", scale)
	}
}
