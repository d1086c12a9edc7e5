// Package audio is the sound collaborator: synthesized one-shot effects and a
// looping music track whose pitch follows the size stage.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Player mixes effects and music into the system speaker.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	pitch       *beep.Resampler
	initialized bool
	logger      *log.Logger
}

// New creates a player. Nothing is audible until Init succeeds.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts the (paused) music loop.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	p.pitch = beep.ResampleRatio(resampleQuality, p.cfg.NormalPitch, newMusicLoop(sampleRate))
	p.music = &beep.Ctrl{Streamer: p.pitch, Paused: true}
	p.mixer.Add(withVolume(p.music, p.cfg.Volume*0.6))

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlaySound starts a one-shot effect.
func (p *Player) PlaySound(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer, ok := effect(s, sampleRate)
	if !ok {
		p.logger.Warn("unknown sound", "sound", string(s))
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(streamer, p.cfg.Volume))
	speaker.Unlock()
}

// UpdatePitchByLevel retunes the music for the given size stage.
func (p *Player) UpdatePitchByLevel(stage, maxStage int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	ratio := PitchForLevel(stage, maxStage, p.cfg)
	speaker.Lock()
	p.pitch.SetRatio(ratio)
	speaker.Unlock()
}

// SetMusicPaused pauses or resumes the music loop.
func (p *Player) SetMusicPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

// PitchForLevel maps a stage to a music pitch: growing lowers it toward
// MinPitch, shrinking raises it toward MaxPitch.
func PitchForLevel(stage, maxStage int, cfg config.AudioConfig) float64 {
	if maxStage <= 0 || stage == 0 {
		return cfg.NormalPitch
	}
	percent := math.Min(math.Abs(float64(stage))/float64(maxStage), 1)
	if stage > 0 {
		return core.Lerp(cfg.NormalPitch, cfg.MinPitch, percent)
	}
	return core.Lerp(cfg.NormalPitch, cfg.MaxPitch, percent)
}

// withVolume scales a stream linearly. Zero volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop is a silent collaborator.
type Nop struct{}

func (Nop) PlaySound(core.Sound) {}
func (Nop) UpdatePitchByLevel(int, int) {}
func (Nop) SetMusicPaused(bool) {}
