package parameter

// Play button hit region, centered on the canvas
const (
	PlayButtonWidth  = 100.0
	PlayButtonHeight = 40.0
)

// Text shown by the render dispatcher
const (
	TitleText       = "Rialo Balloon Game"
	PlayText        = "Play"
	PausedText      = "Paused"
	GameOverText    = "GAME OVER"
	RestartHintText = "Press R to Restart"
)

// Text sizes in canvas pixels
const (
	TitleSize      = 26.0
	PlaySize       = 20.0
	PausedSize     = 28.0
	GameOverSize   = 30.0
	FinalScoreSize = 20.0
	RestartSize    = 16.0
	HUDScoreSize   = 16.0
	HUDTitleSize   = 14.0
)
