package render

import (
	"fmt"

	"github.com/lixenwraith/balloon/game"
	"github.com/lixenwraith/balloon/parameter"
)

// Dispatcher draws a game frame onto a surface
type Dispatcher struct {
	palette Palette
	logo    LogoSource
}

// NewDispatcher creates a dispatcher, logo may be nil
func NewDispatcher(p Palette, logo LogoSource) *Dispatcher {
	return &Dispatcher{palette: p, logo: logo}
}

// Draw renders exactly one screen for f.Mode, the shake offset covers everything drawn
func (d *Dispatcher) Draw(s Surface, f game.Frame) {
	s.SetTranslate(f.OffsetX, f.OffsetY)
	s.Clear(d.palette.Background)

	switch f.Mode {
	case game.ModeNotStarted:
		d.drawStartScreen(s, f)
	case game.ModeGameOver:
		d.drawGameOver(s, f)
	case game.ModePaused:
		d.drawPaused(s, f)
	default:
		d.drawBall(s, f)
		d.drawPaddle(s, f)
		d.drawScore(s, f)
	}

	s.Present()
}

func (d *Dispatcher) drawStartScreen(s Surface, f game.Frame) {
	cx, cy := f.Bounds.Width/2, f.Bounds.Height/2

	s.DrawText(parameter.TitleText, cx, cy-40, TextStyle{
		Size: parameter.TitleSize, Color: d.palette.Text, Align: AlignCenter,
	})

	btn := game.PlayButton(f.Bounds)
	s.FillRect(btn.X, btn.Y, btn.W, btn.H, d.palette.Accent)
	s.DrawText(parameter.PlayText, cx, cy+8, TextStyle{
		Size: parameter.PlaySize, Color: d.palette.Text, Align: AlignCenter,
	})
}

func (d *Dispatcher) drawGameOver(s Surface, f game.Frame) {
	cx, cy := f.Bounds.Width/2, f.Bounds.Height/2

	s.DrawText(parameter.GameOverText, cx, cy-30, TextStyle{
		Size: parameter.GameOverSize, Color: d.palette.Title, Align: AlignCenter,
	})
	s.DrawText(fmt.Sprintf("Final Score: %d", f.Score), cx, cy, TextStyle{
		Size: parameter.FinalScoreSize, Color: d.palette.Text, Align: AlignCenter,
	})
	s.DrawText(parameter.RestartHintText, cx, cy+40, TextStyle{
		Size: parameter.RestartSize, Color: d.palette.Hint, Align: AlignCenter,
	})
}

func (d *Dispatcher) drawPaused(s Surface, f game.Frame) {
	s.DrawText(parameter.PausedText, f.Bounds.Width/2, f.Bounds.Height/2, TextStyle{
		Size: parameter.PausedSize, Color: d.palette.Paused, Align: AlignCenter,
	})
}

// drawBall falls back to a plain disc while the logo is missing
func (d *Dispatcher) drawBall(s Surface, f game.Frame) {
	b := f.Ball
	if d.logo != nil {
		if img := d.logo.Logo(); img != nil {
			s.DrawImageInCircle(img, b.X, b.Y, b.Radius)
			return
		}
	}
	s.FillCircle(b.X, b.Y, b.Radius, d.palette.Ball)
}

func (d *Dispatcher) drawPaddle(s Surface, f game.Frame) {
	p := f.Paddle
	s.FillRect(p.X, p.Y, p.Width, p.Height, d.palette.Accent)
}

func (d *Dispatcher) drawScore(s Surface, f game.Frame) {
	s.DrawText(fmt.Sprintf("Score: %d", f.Score), 10, 20, TextStyle{
		Size: parameter.HUDScoreSize, Color: d.palette.Text, Align: AlignLeft,
	})
	s.DrawText(parameter.TitleText, 10, 40, TextStyle{
		Size: parameter.HUDTitleSize, Color: d.palette.Title, Align: AlignLeft,
	})
}
