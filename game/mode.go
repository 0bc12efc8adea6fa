package game

import "github.com/lixenwraith/balloon/engine/fsm"

// Mode is the session state, each value is also its state machine ID
type Mode uint8

const (
	ModeNotStarted Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

var modeNames = [...]string{
	ModeNotStarted: "not-started",
	ModePlaying:    "playing",
	ModePaused:     "paused",
	ModeGameOver:   "game-over",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

func (m Mode) state() fsm.StateID {
	return fsm.StateID(m)
}

// Triggers understood by the session state machine
const (
	EventStart fsm.EventID = iota + 1
	EventTogglePause
	EventFloorExit
	EventRestart
)

var eventNames = map[fsm.EventID]string{
	EventStart:       "start",
	EventTogglePause: "toggle-pause",
	EventFloorExit:   "floor-exit",
	EventRestart:     "restart",
}
