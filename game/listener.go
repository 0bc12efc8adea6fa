package game

import "github.com/google/uuid"

// Listener observes gameplay moments, callbacks run on the loop goroutine and
// must not block
type Listener interface {
	OnStart(round uuid.UUID)
	OnHit(score int)
	OnGameOver(score int)
	OnRestart(round uuid.UUID)
}

// NopListener can be embedded to implement only some callbacks
type NopListener struct{}

func (NopListener) OnStart(uuid.UUID)   {}
func (NopListener) OnHit(int)           {}
func (NopListener) OnGameOver(int)      {}
func (NopListener) OnRestart(uuid.UUID) {}
