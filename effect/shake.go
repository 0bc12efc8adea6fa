package effect

import "github.com/lixenwraith/balloon/parameter"

// Source yields uniform values in [0, 1)
// *math/rand/v2.Rand satisfies it
type Source interface {
	Float64() float64
}

// Shake is a frame-counted screen shake
type Shake struct {
	Remaining int
	Intensity float64
}

// NewShake returns an idle shake with the default intensity
func NewShake() Shake {
	return Shake{Intensity: parameter.ShakeIntensity}
}

// Trigger restarts the countdown, an active shake is extended rather than stacked
func (s *Shake) Trigger(frames int) {
	if frames < 0 {
		frames = 0
	}
	s.Remaining = frames
}

// Active reports whether the next frame will be offset
func (s *Shake) Active() bool {
	return s.Remaining > 0
}

// Next consumes one frame and returns the translation for it
// Each axis is drawn from [-Intensity/2, Intensity/2), zero once the countdown ends
func (s *Shake) Next(rng Source) (dx, dy float64) {
	if s.Remaining <= 0 {
		s.Remaining = 0
		return 0, 0
	}
	dx = (rng.Float64() - 0.5) * s.Intensity
	dy = (rng.Float64() - 0.5) * s.Intensity
	s.Remaining--
	return dx, dy
}
