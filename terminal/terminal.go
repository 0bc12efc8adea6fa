package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Open initializes the tcell screen with mouse reporting and a hidden cursor
func Open(mode ColorMode) (tcell.Screen, error) {
	if mode == ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
