package config

import (
	_ "embed"
)

//go:embed defaults/neon.yaml
var defaultNeonYAML []byte

// DefaultNeonConfig returns the hard-coded default configuration.
// It mirrors defaults/neon.yaml and backs it up if the embed cannot be parsed.
func DefaultNeonConfig() NeonConfig {
	return NeonConfig{
		Camera: CameraConfig{
			StartX:          0,
			InitialSpeed:    3,
			MaxSpeed:        12,
			RampRate:        0.1,
			ViewHalfWidth:   9,
			GenerationAhead: 20,
		},
		Generation: GenerationConfig{
			MinGap:               2,
			MaxGap:               5,
			MinWidth:             2,
			MaxWidth:             6,
			HeightDelta:          1.5,
			MinY:                 -4,
			MaxY:                 4,
			Thickness:            1,
			RecycleDistance:      25,
			PoolSize:             24,
			InitialPlatformWidth: 10,
			Origin:               Point{X: -5, Y: -2},
		},
		Size: SizeConfig{
			MaxStage:  5,
			ScaleStep: 0.2,
			MinScale:  0.1,
			LerpRate:  10,
			Epsilon:   0.001,
		},
		Movement: MovementConfig{
			MoveSpeed:           8,
			BaseJumpForce:       12,
			MaxJumps:            2,
			DashSpeed:           20,
			DashDuration:        0.2,
			Gravity:             -25,
			GravityScale:        1,
			FallDeathY:          -10,
			GroundCheckDistance: 0.2,
			Spawn:               Point{X: 0, Y: -1.5},
			Width:               1,
			Height:              1,
		},
		Score: ScoreConfig{
			Rate: 10,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.3,
			NormalPitch: 1.0,
			MinPitch:    0.6,
			MaxPitch:    1.5,
		},
		View: ViewConfig{
			HalfHeight: 6,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultNeonYAML
}
