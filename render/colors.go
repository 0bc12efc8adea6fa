package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette holds every color the dispatcher uses
type Palette struct {
	Background color.Color
	Text       color.Color // Score, play label, final score
	Accent     color.Color // Paddle and play button
	Title      color.Color // HUD title and game over headline
	Hint       color.Color // Restart hint
	Paused     color.Color
	Ball       color.Color // Ball fill until the logo is loaded
}

// DefaultPalette is the stock look: black field, white text, deepskyblue accents
func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Black,
		Text:       colornames.White,
		Accent:     colornames.Deepskyblue,
		Title:      colornames.Red,
		Hint:       colornames.Yellow,
		Paused:     colornames.Orange,
		Ball:       colornames.Lightcoral,
	}
}
