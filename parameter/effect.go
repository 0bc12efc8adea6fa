package parameter

// Screen Shake
const (
	// ShakeTicks is the number of rendered frames that receive an offset after a hit
	ShakeTicks = 10

	// ShakeIntensity is the full width of the offset range, offsets fall in [-I/2, I/2)
	ShakeIntensity = 4.0
)
