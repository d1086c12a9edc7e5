package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	parsed, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := DefaultNeonConfig()
	if parsed.Camera != want.Camera {
		t.Errorf("camera = %+v, expected %+v", parsed.Camera, want.Camera)
	}
	if parsed.Size != want.Size {
		t.Errorf("size = %+v, expected %+v", parsed.Size, want.Size)
	}
	if parsed.Movement != want.Movement {
		t.Errorf("movement = %+v, expected %+v", parsed.Movement, want.Movement)
	}
	if parsed.Generation.MaxGap != want.Generation.MaxGap || parsed.Generation.PoolSize != want.Generation.PoolSize {
		t.Errorf("generation = %+v, expected %+v", parsed.Generation, want.Generation)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultNeonConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NeonConfig)
		want   string
	}{
		{"max gap below min gap", func(c *NeonConfig) { c.Generation.MaxGap = 1 }, "generation.max_gap"},
		{"zero max stage", func(c *NeonConfig) { c.Size.MaxStage = 0 }, "size.max_stage"},
		{"negative max stage", func(c *NeonConfig) { c.Size.MaxStage = -3 }, "size.max_stage"},
		{"width range inverted", func(c *NeonConfig) { c.Generation.MaxWidth = 1 }, "generation.max_width"},
		{"cap below initial speed", func(c *NeonConfig) { c.Camera.MaxSpeed = 1 }, "camera.max_speed"},
		{"empty pool", func(c *NeonConfig) { c.Generation.PoolSize = 0 }, "generation.pool_size"},
		{"no jumps", func(c *NeonConfig) { c.Movement.MaxJumps = 0 }, "movement.max_jumps"},
		{"upward gravity", func(c *NeonConfig) { c.Movement.Gravity = 5 }, "movement.gravity"},
		{"unknown preset", func(c *NeonConfig) { c.Difficulty.Preset = "nightmare" }, "difficulty.preset"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultNeonConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := DefaultNeonConfig()
	cfg.Generation.MaxGap = 0
	cfg.Size.MaxStage = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "generation.max_gap") || !strings.Contains(msg, "size.max_stage") {
		t.Errorf("both violations should be reported, got %q", msg)
	}
}

func TestFixedTerrainSkipsInitialWidthCheck(t *testing.T) {
	cfg := DefaultNeonConfig()
	cfg.Generation.InitialPlatformWidth = 0
	if cfg.Validate() == nil {
		t.Error("zero initial platform width should be rejected without fixed terrain")
	}

	cfg.Generation.FixedTerrainEnd = &Point{X: 5, Y: -2}
	cfg.Generation.Terrain = []Segment{{X: -5, Y: -2, Width: 10}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed terrain should make initial width irrelevant, got %v", err)
	}
}

func TestValidateStartingTerrain(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationConfig, *MovementConfig)
		want   string
	}{
		{"fixed end without terrain", func(g *GenerationConfig, _ *MovementConfig) {
			g.FixedTerrainEnd = &Point{X: 5, Y: -2}
		}, "generation.fixed_terrain_end requires"},
		{"terrain without fixed end", func(g *GenerationConfig, _ *MovementConfig) {
			g.Terrain = []Segment{{X: -5, Y: -2, Width: 10}}
		}, "generation.terrain requires"},
		{"spawn over a gap", func(g *GenerationConfig, _ *MovementConfig) {
			g.FixedTerrainEnd = &Point{X: 5, Y: -2}
			g.Terrain = []Segment{{X: 2, Y: -2, Width: 3}}
		}, "movement.spawn"},
		{"spawn below the platform top", func(_ *GenerationConfig, m *MovementConfig) {
			m.Spawn = Point{X: 0, Y: -3}
		}, "movement.spawn"},
		{"spawn beyond the safety platform", func(_ *GenerationConfig, m *MovementConfig) {
			m.Spawn = Point{X: 8.81, Y: -1.5}
		}, "movement.spawn"},
		{"overlapping segments", func(g *GenerationConfig, _ *MovementConfig) {
			g.FixedTerrainEnd = &Point{X: 10, Y: -2}
			g.Terrain = []Segment{{X: -5, Y: -2, Width: 10}, {X: 4, Y: -2, Width: 2}}
		}, "generation.terrain[1] starts"},
		{"terrain past the end", func(g *GenerationConfig, _ *MovementConfig) {
			g.FixedTerrainEnd = &Point{X: 2, Y: -2}
			g.Terrain = []Segment{{X: -5, Y: -2, Width: 10}}
		}, "past fixed_terrain_end"},
		{"zero width segment", func(g *GenerationConfig, _ *MovementConfig) {
			g.FixedTerrainEnd = &Point{X: 10, Y: -2}
			g.Terrain = []Segment{{X: -5, Y: -2, Width: 10}, {X: 6, Y: -2, Width: 0}}
		}, "generation.terrain[1].width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNeonConfig()
			tt.mutate(&cfg.Generation, &cfg.Movement)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseTerrain(t *testing.T) {
	data := "generation:\n  fixed_terrain_end: {x: 6, y: -2}\n  terrain:\n    - {x: -4, y: -2, width: 6}\n    - {x: 3, y: -2, width: 3}\n"
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.Generation.Terrain) != 2 || cfg.Generation.Terrain[1].Width != 3 {
		t.Fatalf("terrain not parsed: %+v", cfg.Generation.Terrain)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("terrain under the spawn should validate, got %v", err)
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neon.yaml")
	data := "size:\n  max_stage: 3\ngeneration:\n  fixed_terrain_end:\n    x: 12\n    y: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadNeon(path)
	if err != nil {
		t.Fatalf("LoadNeon() failed: %v", err)
	}
	if cfg.Size.MaxStage != 3 {
		t.Errorf("max_stage = %d, expected 3", cfg.Size.MaxStage)
	}
	if cfg.Size.ScaleStep != 0.2 {
		t.Errorf("unset fields should keep defaults, scale_step = %g", cfg.Size.ScaleStep)
	}
	if cfg.Generation.FixedTerrainEnd == nil || cfg.Generation.FixedTerrainEnd.X != 12 {
		t.Errorf("fixed terrain end not parsed: %+v", cfg.Generation.FixedTerrainEnd)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadNeon(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultNeonConfig()

	easy := DefaultNeonConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Camera.InitialSpeed >= base.Camera.InitialSpeed {
		t.Error("easy should start slower")
	}
	if easy.Generation.MaxGap >= base.Generation.MaxGap {
		t.Error("easy should narrow the gaps")
	}

	hard := DefaultNeonConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Camera.RampRate <= base.Camera.RampRate {
		t.Error("hard should ramp faster")
	}

	fixed := DefaultNeonConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Camera.RampRate != 0 {
		t.Errorf("fixed should disable the ramp, got %g", fixed.Camera.RampRate)
	}

	for _, cfg := range []NeonConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", cfg.Difficulty.Preset, err)
		}
	}
}

func TestApplyDifficultyUsesFilePreset(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  preset: fixed\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	ApplyDifficulty(&cfg, "")
	if cfg.Camera.RampRate != 0 {
		t.Errorf("preset from file should disable the ramp, got ramp_rate %g", cfg.Camera.RampRate)
	}
}

func TestApplyDifficultyOverrideReplacesFilePreset(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  preset: hard\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	ApplyDifficulty(&cfg, DifficultyEasy)

	want := DefaultNeonConfig()
	ApplyPreset(&want, DifficultyEasy)
	if cfg.Camera != want.Camera {
		t.Errorf("camera = %+v, expected easy values only %+v", cfg.Camera, want.Camera)
	}
	if cfg.Generation.MinGap != want.Generation.MinGap || cfg.Generation.MaxGap != want.Generation.MaxGap {
		t.Errorf("gaps = [%g, %g], expected [%g, %g]",
			cfg.Generation.MinGap, cfg.Generation.MaxGap, want.Generation.MinGap, want.Generation.MaxGap)
	}
	if cfg.Difficulty.Preset != string(DifficultyEasy) {
		t.Errorf("preset = %q, expected easy", cfg.Difficulty.Preset)
	}
}

func TestApplyDifficultyNormalKeepsValues(t *testing.T) {
	cfg := DefaultNeonConfig()
	ApplyDifficulty(&cfg, "")
	if want := DefaultNeonConfig(); cfg.Camera != want.Camera {
		t.Errorf("normal should keep config values, got %+v", cfg.Camera)
	}
}

func TestParsePreset(t *testing.T) {
	if _, err := ParsePreset("hard"); err != nil {
		t.Errorf("hard should parse: %v", err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("empty preset should parse to empty, got %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestRampLevel(t *testing.T) {
	cam := DefaultNeonConfig().Camera

	if got := RampLevel(cam.InitialSpeed, cam); got != 0 {
		t.Errorf("RampLevel(initial) = %f, expected 0", got)
	}
	if got := RampLevel(cam.MaxSpeed, cam); got != 1 {
		t.Errorf("RampLevel(max) = %f, expected 1", got)
	}
	if got := RampLevel(cam.MaxSpeed*2, cam); got != 1 {
		t.Errorf("RampLevel above cap should clamp to 1, got %f", got)
	}
}
