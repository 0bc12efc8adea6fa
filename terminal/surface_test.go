package terminal

import (
	"image"
	"image/color"
	"math"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon/render"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func newSimSurface(t *testing.T, cols, rows int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewSurface(screen), screen
}

func cellColors(t *testing.T, screen tcell.SimulationScreen, col, row int) (rune, tcell.Color, tcell.Color) {
	t.Helper()
	r, _, style, _ := screen.GetContent(col, row)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestSurface_MappingFillsScreen(t *testing.T) {
	s, _ := newSimSurface(t, 100, 50)
	s.Clear(black)

	if got := s.Scale(); got != 0.2 {
		t.Fatalf("scale = %v, want 0.2", got)
	}

	tests := []struct {
		col, row int
		x, y     float64
		ok       bool
	}{
		{0, 0, 2.5, 5, true},
		{50, 25, 252.5, 255, true},
		{99, 49, 497.5, 495, true},
		{100, 0, 0, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := s.CanvasAt(tt.col, tt.row)
		if ok != tt.ok {
			t.Errorf("CanvasAt(%d,%d) ok = %v, want %v", tt.col, tt.row, ok, tt.ok)
			continue
		}
		if ok && (math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9) {
			t.Errorf("CanvasAt(%d,%d) = (%v,%v), want (%v,%v)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestSurface_Letterbox(t *testing.T) {
	s, _ := newSimSurface(t, 120, 50)
	s.Clear(black)

	if _, _, ok := s.CanvasAt(5, 10); ok {
		t.Error("letterbox column mapped into canvas")
	}
	x, _, ok := s.CanvasAt(10, 10)
	if !ok || math.Abs(x-2.5) > 1e-9 {
		t.Errorf("first canvas column = (%v, %v), want (2.5, true)", x, ok)
	}
}

func TestSurface_FillRectHalfBlocks(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	s.Clear(black)
	s.SetTranslate(0, 0)
	s.FillRect(200, 480, 100, 10, white)
	s.Present()

	r, fg, bg := cellColors(t, screen, 50, 48)
	if r != upperHalf {
		t.Fatalf("rune = %q, want half block", r)
	}
	if fg != tcellColor(white) || bg != tcellColor(white) {
		t.Errorf("paddle cell fg/bg = %v/%v, want white/white", fg, bg)
	}

	_, fg, _ = cellColors(t, screen, 50, 49)
	if fg != tcellColor(black) {
		t.Errorf("below paddle fg = %v, want black", fg)
	}
	_, fg, _ = cellColors(t, screen, 39, 48)
	if fg != tcellColor(black) {
		t.Errorf("left of paddle fg = %v, want black", fg)
	}
}

func TestSurface_ShakeRoundsAwayFromZero(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	s.Clear(black)
	s.SetTranslate(0.5, 0)
	s.FillRect(0, 0, 5, 10, red)
	s.Present()

	_, fg, _ := cellColors(t, screen, 0, 0)
	if fg != tcellColor(black) {
		t.Errorf("col 0 fg = %v, want black after shift", fg)
	}
	_, fg, _ = cellColors(t, screen, 1, 0)
	if fg != tcellColor(red) {
		t.Errorf("col 1 fg = %v, want red after shift", fg)
	}
}

func TestSurface_ClearIgnoresTranslate(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	s.SetTranslate(-4, 4)
	s.Clear(red)
	s.Present()

	for _, cell := range [][2]int{{0, 0}, {99, 49}} {
		_, fg, bg := cellColors(t, screen, cell[0], cell[1])
		if fg != tcellColor(red) || bg != tcellColor(red) {
			t.Errorf("cell %v = %v/%v, want red", cell, fg, bg)
		}
	}
}

func TestSurface_FillCircle(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	s.Clear(black)
	s.SetTranslate(0, 0)
	s.FillCircle(250, 250, 25, red)
	s.Present()

	_, fg, bg := cellColors(t, screen, 50, 25)
	if fg != tcellColor(red) || bg != tcellColor(red) {
		t.Errorf("center = %v/%v, want red", fg, bg)
	}
	_, fg, _ = cellColors(t, screen, 44, 22)
	if fg != tcellColor(black) {
		t.Errorf("bounding box corner fg = %v, want black", fg)
	}
}

func TestSurface_DrawImageInCircle(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	sized := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			sized.Set(x, y, white)
		}
	}

	s.Clear(black)
	s.SetTranslate(0, 0)
	s.DrawImageInCircle(sized, 250, 250, 25)
	s.DrawImageInCircle(nil, 100, 100, 25)
	s.Present()

	_, fg, _ := cellColors(t, screen, 50, 25)
	if fg != tcellColor(white) {
		t.Errorf("center fg = %v, want image color", fg)
	}
	_, fg, _ = cellColors(t, screen, 20, 10)
	if fg != tcellColor(black) {
		t.Errorf("nil image drew at (20,10): %v", fg)
	}
}

func TestSurface_TextOverlay(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	s.Clear(black)
	s.SetTranslate(0, 0)
	s.FillRect(200, 225, 100, 50, red)
	s.DrawText("Play", 250, 260, render.TextStyle{Size: 20, Color: white, Align: render.AlignCenter})
	s.DrawText("Score: 3", 10, 20, render.TextStyle{Size: 16, Color: white, Align: render.AlignLeft})
	s.Present()

	want := "Play"
	for i, ch := range want {
		r, fg, bg := cellColors(t, screen, 48+i, 25)
		if r != ch {
			t.Errorf("cell %d = %q, want %q", 48+i, r, ch)
		}
		if fg != tcellColor(white) || bg != tcellColor(red) {
			t.Errorf("cell %d colors = %v/%v, want white on red", 48+i, fg, bg)
		}
	}

	r, _, _ := cellColors(t, screen, 2, 1)
	if r != 'S' {
		t.Errorf("hud cell = %q, want 'S'", r)
	}
}

func TestSurface_ResizeRemeasures(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)
	s.Clear(black)

	screen.SetSize(200, 100)
	s.Sync()
	if got := s.Scale(); got != 0.2 {
		t.Errorf("scale changed before Clear = %v, want 0.2", got)
	}

	s.Clear(black)
	if got := s.Scale(); got != 0.4 {
		t.Errorf("scale after resize = %v, want 0.4", got)
	}
}

// Resize notifications arrive on the poll goroutine while frames are drawn on the loop goroutine
func TestSurface_ResizeDuringDraw(t *testing.T) {
	s, screen := newSimSurface(t, 100, 50)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sizes := [][2]int{{200, 100}, {40, 20}, {120, 33}, {100, 50}}
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			sz := sizes[i%len(sizes)]
			screen.SetSize(sz[0], sz[1])
			s.Sync()
			s.CanvasAt(sz[0]/2, sz[1]/2)
		}
	}()

	for i := 0; i < 200; i++ {
		s.SetTranslate(3, -3)
		s.Clear(black)
		s.FillRect(0, 0, 500, 500, red)
		s.FillCircle(250, 250, 25, white)
		s.DrawText("Score: 1", 10, 20, render.TextStyle{Size: 16, Color: white})
		s.Present()
	}
	close(done)
	wg.Wait()
}

func TestParseColorMode(t *testing.T) {
	if got := ParseColorMode("truecolor"); got != ColorModeTrueColor {
		t.Errorf("truecolor = %v", got)
	}
	if got := ParseColorMode(" 256 "); got != ColorMode256 {
		t.Errorf("256 = %v", got)
	}

	t.Setenv("COLORTERM", "truecolor")
	if got := ParseColorMode("auto"); got != ColorModeTrueColor {
		t.Errorf("auto with COLORTERM=truecolor = %v", got)
	}
}
