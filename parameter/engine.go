package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval bounds configured frame intervals from below
	MinFrameInterval = 4 * time.Millisecond

	// MaxFrameInterval bounds configured frame intervals from above
	MaxFrameInterval = 100 * time.Millisecond
)

// Input Queue Limits
const (
	// InputQueueSize is the fixed capacity of the input ring buffer
	InputQueueSize = 64

	// InputBufferMask is the bitmask for fast modulo operations (64 - 1)
	InputBufferMask = 63
)

// Terminal Input
const (
	// KeyHoldWindow is how long a directional key stays held after the last
	// press or auto-repeat, terminals do not report key release
	KeyHoldWindow = 150 * time.Millisecond
)
