package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/balloon/render"
)

// glyphHeight is the pixel height basicfont is designed at
const glyphHeight = 13.0

var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Surface draws onto the ebiten screen image handed to Draw
type Surface struct {
	target *ebiten.Image
	face   *text.GoXFace
	dx, dy float64

	// Last uploaded logo, re-uploaded only when the source image changes
	logoSrc image.Image
	logoImg *ebiten.Image
}

var _ render.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{face: defaultFace}
}

// Bind sets the image the next frame is drawn to
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *Surface) SetTranslate(dx, dy float64) {
	s.dx, s.dy = dx, dy
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.target, float32(x+s.dx), float32(y+s.dy), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.target, float32(cx+s.dx), float32(cy+s.dy), float32(r), c, true)
}

func (s *Surface) DrawImageInCircle(img image.Image, cx, cy, r float64) {
	if img == nil || r <= 0 {
		return
	}
	if img != s.logoSrc {
		s.logoSrc = img
		s.logoImg = ebiten.NewImageFromImage(img)
	}
	b := s.logoImg.Bounds()
	if b.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*r/float64(b.Dx()), 2*r/float64(b.Dy()))
	op.GeoM.Translate(cx-r+s.dx, cy-r+s.dy)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(s.logoImg, op)
}

func (s *Surface) DrawText(str string, x, y float64, style render.TextStyle) {
	op := &text.DrawOptions{}
	scale, top := textOrigin(style.Size, s.face.Metrics().HAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+s.dx, y+top+s.dy)
	op.ColorScale.ScaleWithColor(style.Color)
	if style.Align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.target, str, s.face, op)
}

// Present is a no-op, ebiten flips after Draw returns
func (s *Surface) Present() {}

// textOrigin returns the glyph scale for size and the y offset from the
// baseline to the top of the line box
func textOrigin(size, ascent float64) (scale, top float64) {
	if size <= 0 {
		size = glyphHeight
	}
	scale = size / glyphHeight
	return scale, -ascent * scale
}
