package event

import "fmt"

// Kind discriminates input events
type Kind uint8

const (
	KindNone Kind = iota

	// KindKeyDown is a key press, terminals also repeat it while held
	KindKeyDown

	// KindKeyUp is a key release, synthesized on terminals
	KindKeyUp

	// KindClick is a primary pointer press in canvas coordinates
	KindClick
)

// Key is the logical key the game cares about
type Key uint8

const (
	// KeyOther is any key without a dedicated meaning, it still starts the game
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
)

var keyNames = [...]string{
	KeyOther:   "other",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyPause:   "pause",
	KeyRestart: "restart",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", k)
}

// Input is a single host input event
type Input struct {
	Kind Kind
	Key  Key
	Rune rune // Printable rune for KeyOther, 0 otherwise

	// Canvas coordinates, KindClick only
	X, Y float64
}

// KeyDown builds a key press event
func KeyDown(k Key) Input {
	return Input{Kind: KindKeyDown, Key: k}
}

// KeyUp builds a key release event
func KeyUp(k Key) Input {
	return Input{Kind: KindKeyUp, Key: k}
}

// Click builds a pointer press event
func Click(x, y float64) Input {
	return Input{Kind: KindClick, X: x, Y: y}
}

// RuneKey maps a printable rune to its logical key
func RuneKey(r rune) Key {
	switch r {
	case 'r', 'R':
		return KeyRestart
	case ' ':
		return KeyPause
	default:
		return KeyOther
	}
}
