package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays short synthesized cues for gameplay moments
// It implements game.Listener
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted silences future cues without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayHit plays a short high ping
func (sm *SoundManager) PlayHit() {
	sm.playTone(parameter.HitFrequency, parameter.HitDuration)
}

// PlayStart plays a short chirp when a round begins
func (sm *SoundManager) PlayStart() {
	sm.playTone(parameter.StartFrequency, parameter.StartDuration)
}

// PlayGameOver plays a low buzz
func (sm *SoundManager) PlayGameOver() {
	sm.play(func() (beep.Streamer, error) {
		return beep.Take(sampleRate.N(parameter.GameOverDuration), NewBuzzGenerator(sampleRate, parameter.GameOverFrequency)), nil
	})
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sm.play(func() (beep.Streamer, error) {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}
		return beep.Take(sampleRate.N(d), sine), nil
	})
}

func (sm *SoundManager) play(build func() (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer, err := build()
	if err != nil {
		core.LogWarn("sound build failed", "err", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnStart implements game.Listener
func (sm *SoundManager) OnStart(uuid.UUID) { sm.PlayStart() }

// OnHit implements game.Listener
func (sm *SoundManager) OnHit(int) { sm.PlayHit() }

// OnGameOver implements game.Listener
func (sm *SoundManager) OnGameOver(int) { sm.PlayGameOver() }

// OnRestart implements game.Listener
func (sm *SoundManager) OnRestart(uuid.UUID) {}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave with harmonics for harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
