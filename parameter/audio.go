package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Hit Sound
const (
	HitFrequency = 880.0
	HitDuration  = 50 * time.Millisecond
)

// Start Sound
const (
	StartFrequency = 660.0
	StartDuration  = 80 * time.Millisecond
)

// Game Over Sound
const (
	GameOverFrequency = 120.0
	GameOverDuration  = 300 * time.Millisecond
)
