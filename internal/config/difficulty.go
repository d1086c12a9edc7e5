package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No camera speed ramp
)

// ParsePreset converts a flag value into a preset. Empty means "keep config value".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyDifficulty applies the preset chosen by override, or by
// difficulty.preset when override is empty. It must run once per loaded
// config: presets scale values and do not stack.
func ApplyDifficulty(cfg *NeonConfig, override DifficultyPreset) {
	preset := override
	if preset == "" {
		preset = DifficultyPreset(cfg.Difficulty.Preset)
	}
	ApplyPreset(cfg, preset)
}

// ApplyPreset adjusts camera pacing and gap range for a preset.
func ApplyPreset(cfg *NeonConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Camera.InitialSpeed *= 0.75
		cfg.Camera.RampRate *= 0.5
		cfg.Generation.MaxGap = math.Max(cfg.Generation.MinGap, cfg.Generation.MaxGap-1)
	case DifficultyHard:
		cfg.Camera.InitialSpeed *= 1.25
		cfg.Camera.RampRate *= 2
		cfg.Generation.MinGap = math.Min(cfg.Generation.MaxGap, cfg.Generation.MinGap+0.5)
	case DifficultyFixed:
		cfg.Camera.RampRate = 0
	}

	if cfg.Camera.MaxSpeed < cfg.Camera.InitialSpeed {
		cfg.Camera.MaxSpeed = cfg.Camera.InitialSpeed
	}
}

// RampLevel reports how far the camera speed has ramped, from 0.0 (initial) to 1.0 (cap).
func RampLevel(speed float64, cam CameraConfig) float64 {
	span := cam.MaxSpeed - cam.InitialSpeed
	if span <= 0 {
		return 1
	}
	return clampF((speed-cam.InitialSpeed)/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
