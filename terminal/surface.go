package terminal

import (
	"image"
	"image/color"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/render"
	"github.com/lixenwraith/balloon/vmath"
)

// upperHalf paints the top sub-pixel as foreground and the bottom as background
const upperHalf = '▀'

// textMidline is the fraction of the glyph size between baseline and visual center
const textMidline = 0.35

type textRun struct {
	col, row int
	text     []rune
	color    color.RGBA
}

// Surface rasterizes canvas draw calls into half-block cells
type Surface struct {
	screen tcell.Screen

	// Mapping, written by Clear on the render goroutine, read by CanvasAt from the input goroutine
	mu     sync.RWMutex
	cols   int
	rows   int
	scale  float64 // sub-pixels per canvas pixel, identical on both axes
	offCol int     // letterbox in cells
	offRow int

	// Framebuffer in sub-pixels, width x height with height = 2 * cell rows used
	width  int
	height int
	pix    []color.RGBA
	texts  []textRun
	bg     color.RGBA

	tx, ty int // translation in sub-pixels

	// Set by Sync from any goroutine, consumed by Clear on the render goroutine
	resized atomic.Bool
}

var _ render.Surface = (*Surface)(nil)

// NewSurface binds a surface to an initialized screen
func NewSurface(screen tcell.Screen) *Surface {
	s := &Surface{screen: screen}
	s.measure()
	return s
}

// measure recomputes the canvas to cell mapping from the current screen size
func (s *Surface) measure() {
	cols, rows := s.screen.Size()

	s.mu.Lock()
	defer s.mu.Unlock()

	if cols == s.cols && rows == s.rows && s.pix != nil {
		return
	}

	s.cols, s.rows = cols, rows
	s.scale = math.Min(float64(cols)/parameter.CanvasWidth, float64(rows*2)/parameter.CanvasHeight)
	if s.scale <= 0 {
		s.scale = 0
	}

	s.width = int(parameter.CanvasWidth * s.scale)
	s.height = int(parameter.CanvasHeight * s.scale)
	if s.height%2 == 1 {
		s.height++
	}
	s.offCol = (cols - s.width) / 2
	s.offRow = (rows - s.height/2) / 2
	s.pix = make([]color.RGBA, s.width*s.height)
}

// Sync requests a remeasure and full repaint on the next Clear, safe from any goroutine
func (s *Surface) Sync() {
	s.resized.Store(true)
}

// CanvasAt maps a cell to the canvas point at its center, ok is false in the letterbox
func (s *Surface) CanvasAt(col, row int) (x, y float64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.scale == 0 {
		return 0, 0, false
	}
	x = (float64(col-s.offCol) + 0.5) / s.scale
	y = (float64((row-s.offRow)*2) + 1) / s.scale
	if x < 0 || y < 0 || x >= parameter.CanvasWidth || y >= parameter.CanvasHeight {
		return 0, 0, false
	}
	return x, y, true
}

// Scale returns sub-pixels per canvas pixel
func (s *Surface) Scale() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scale
}

// Clear is the only place the framebuffer is reallocated
func (s *Surface) Clear(c color.Color) {
	if s.resized.Swap(false) {
		s.screen.Sync()
	}
	s.measure()
	s.bg = toRGBA(c)
	for i := range s.pix {
		s.pix[i] = s.bg
	}
	s.texts = s.texts[:0]
}

// SetTranslate stores the offset in sub-pixels, fractions below one round away from zero
func (s *Surface) SetTranslate(dx, dy float64) {
	s.tx = vmath.RoundAway(dx * s.scale)
	s.ty = vmath.RoundAway(dy * s.scale)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	col := toRGBA(c)
	x0 := vmath.Floor(x*s.scale) + s.tx
	y0 := vmath.Floor(y*s.scale) + s.ty
	x1 := int(math.Ceil((x+w)*s.scale)) + s.tx
	y1 := int(math.Ceil((y+h)*s.scale)) + s.ty

	x0, x1 = vmath.Clamp(x0, 0, s.width), vmath.Clamp(x1, 0, s.width)
	y0, y1 = vmath.Clamp(y0, 0, s.height), vmath.Clamp(y1, 0, s.height)
	for py := y0; py < y1; py++ {
		row := s.pix[py*s.width : (py+1)*s.width]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	col := toRGBA(c)
	s.eachInCircle(cx, cy, r, func(i int, _, _ float64) {
		s.pix[i] = col
	})
}

func (s *Surface) DrawImageInCircle(img image.Image, cx, cy, r float64) {
	if img == nil || r <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	s.eachInCircle(cx, cy, r, func(i int, x, y float64) {
		ix := b.Min.X + vmath.Clamp(int((x-(cx-r))/(2*r)*float64(b.Dx())), 0, b.Dx()-1)
		iy := b.Min.Y + vmath.Clamp(int((y-(cy-r))/(2*r)*float64(b.Dy())), 0, b.Dy()-1)
		s.pix[i] = over(toPremul(img.At(ix, iy)), s.pix[i])
	})
}

// eachInCircle visits every sub-pixel whose center lies inside the circle,
// fn receives the framebuffer index and the untranslated canvas point
func (s *Surface) eachInCircle(cx, cy, r float64, fn func(i int, x, y float64)) {
	if s.scale == 0 || r <= 0 {
		return
	}
	x0 := vmath.Clamp(vmath.Floor((cx-r)*s.scale)+s.tx, 0, s.width)
	x1 := vmath.Clamp(int(math.Ceil((cx+r)*s.scale))+s.tx, 0, s.width)
	y0 := vmath.Clamp(vmath.Floor((cy-r)*s.scale)+s.ty, 0, s.height)
	y1 := vmath.Clamp(int(math.Ceil((cy+r)*s.scale))+s.ty, 0, s.height)

	r2 := r * r
	for py := y0; py < y1; py++ {
		y := (float64(py-s.ty) + 0.5) / s.scale
		for px := x0; px < x1; px++ {
			x := (float64(px-s.tx) + 0.5) / s.scale
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r2 {
				fn(py*s.width+px, x, y)
			}
		}
	}
}

// DrawText places the run on the cell row nearest the glyph midline
func (s *Surface) DrawText(text string, x, y float64, style render.TextStyle) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	col := vmath.Floor(x*s.scale) + s.tx
	if style.Align == render.AlignCenter {
		col -= len(runes) / 2
	}
	sub := vmath.Floor((y-style.Size*textMidline)*s.scale) + s.ty
	s.texts = append(s.texts, textRun{
		col:   col,
		row:   sub / 2,
		text:  runes,
		color: toRGBA(style.Color),
	})
}

// Present composes framebuffer and text overlay into screen cells
func (s *Surface) Present() {
	bgStyle := tcell.StyleDefault.Background(tcellColor(s.bg))
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	for cy := 0; cy < s.height/2; cy++ {
		top := s.pix[(cy*2)*s.width : (cy*2+1)*s.width]
		bottom := s.pix[(cy*2+1)*s.width : (cy*2+2)*s.width]
		for px := 0; px < s.width; px++ {
			style := tcell.StyleDefault.Foreground(tcellColor(top[px])).Background(tcellColor(bottom[px]))
			s.screen.SetContent(s.offCol+px, s.offRow+cy, upperHalf, nil, style)
		}
	}

	for _, t := range s.texts {
		if t.row < 0 || t.row >= s.height/2 {
			continue
		}
		for i, r := range t.text {
			px := t.col + i
			if px < 0 || px >= s.width {
				continue
			}
			under := s.pix[(t.row*2)*s.width+px]
			style := tcell.StyleDefault.Foreground(tcellColor(t.color)).Background(tcellColor(under))
			s.screen.SetContent(s.offCol+px, s.offRow+t.row, r, nil, style)
		}
	}

	s.screen.Show()
}

func toPremul(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// over composites premultiplied src onto an opaque dst
func over(src, dst color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	inv := uint32(0xff - src.A)
	return color.RGBA{
		R: uint8(uint32(src.R) + uint32(dst.R)*inv/0xff),
		G: uint8(uint32(src.G) + uint32(dst.G)*inv/0xff),
		B: uint8(uint32(src.B) + uint32(dst.B)*inv/0xff),
		A: 0xff,
	}
}
