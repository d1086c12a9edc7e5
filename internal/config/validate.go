package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports every malformed value in cfg at once.
func (cfg NeonConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	cam := cfg.Camera
	check(cam.InitialSpeed >= 0, "camera.initial_speed must be >= 0, got %g", cam.InitialSpeed)
	check(cam.MaxSpeed >= cam.InitialSpeed, "camera.max_speed (%g) must be >= initial_speed (%g)", cam.MaxSpeed, cam.InitialSpeed)
	check(cam.RampRate >= 0, "camera.ramp_rate must be >= 0, got %g", cam.RampRate)
	check(cam.ViewHalfWidth > 0, "camera.view_half_width must be > 0, got %g", cam.ViewHalfWidth)
	check(cam.GenerationAhead > 0, "camera.generation_ahead must be > 0, got %g", cam.GenerationAhead)

	gen := cfg.Generation
	check(gen.MinGap >= 0, "generation.min_gap must be >= 0, got %g", gen.MinGap)
	check(gen.MaxGap >= gen.MinGap, "generation.max_gap (%g) must be >= min_gap (%g)", gen.MaxGap, gen.MinGap)
	check(gen.MinWidth > 0, "generation.min_width must be > 0, got %g", gen.MinWidth)
	check(gen.MaxWidth >= gen.MinWidth, "generation.max_width (%g) must be >= min_width (%g)", gen.MaxWidth, gen.MinWidth)
	check(gen.HeightDelta >= 0, "generation.height_delta must be >= 0, got %g", gen.HeightDelta)
	check(gen.MinY <= gen.MaxY, "generation.min_y (%g) must be <= max_y (%g)", gen.MinY, gen.MaxY)
	check(gen.Thickness > 0, "generation.thickness must be > 0, got %g", gen.Thickness)
	check(gen.RecycleDistance > 0, "generation.recycle_distance must be > 0, got %g", gen.RecycleDistance)
	check(gen.PoolSize >= 1, "generation.pool_size must be >= 1, got %d", gen.PoolSize)
	if end := gen.FixedTerrainEnd; end == nil {
		check(gen.InitialPlatformWidth > 0, "generation.initial_platform_width must be > 0, got %g", gen.InitialPlatformWidth)
		check(len(gen.Terrain) == 0, "generation.terrain requires fixed_terrain_end")
	} else {
		check(len(gen.Terrain) > 0, "generation.fixed_terrain_end requires generation.terrain")
		prevEnd := math.Inf(-1)
		for i, seg := range gen.Terrain {
			check(seg.Width > 0, "generation.terrain[%d].width must be > 0, got %g", i, seg.Width)
			check(seg.X >= prevEnd, "generation.terrain[%d] starts at %g, before the previous segment ends (%g)", i, seg.X, prevEnd)
			prevEnd = seg.X + seg.Width
		}
		check(prevEnd <= end.X, "generation.terrain ends at %g, past fixed_terrain_end.x (%g)", prevEnd, end.X)
	}

	sz := cfg.Size
	check(sz.MaxStage > 0, "size.max_stage must be > 0, got %d", sz.MaxStage)
	check(sz.ScaleStep > 0, "size.scale_step must be > 0, got %g", sz.ScaleStep)
	check(sz.MinScale > 0, "size.min_scale must be > 0, got %g", sz.MinScale)
	check(sz.LerpRate > 0, "size.lerp_rate must be > 0, got %g", sz.LerpRate)
	check(sz.Epsilon > 0, "size.epsilon must be > 0, got %g", sz.Epsilon)

	mv := cfg.Movement
	check(mv.MoveSpeed >= 0, "movement.move_speed must be >= 0, got %g", mv.MoveSpeed)
	check(mv.BaseJumpForce > 0, "movement.base_jump_force must be > 0, got %g", mv.BaseJumpForce)
	check(mv.MaxJumps >= 1, "movement.max_jumps must be >= 1, got %d", mv.MaxJumps)
	check(mv.DashSpeed > 0, "movement.dash_speed must be > 0, got %g", mv.DashSpeed)
	check(mv.DashDuration > 0, "movement.dash_duration must be > 0, got %g", mv.DashDuration)
	check(mv.Gravity < 0, "movement.gravity must be < 0, got %g", mv.Gravity)
	check(mv.GravityScale >= 0, "movement.gravity_scale must be >= 0, got %g", mv.GravityScale)
	check(mv.GroundCheckDistance > 0, "movement.ground_check_distance must be > 0, got %g", mv.GroundCheckDistance)
	check(mv.Width > 0 && mv.Height > 0, "movement.width and movement.height must be > 0")
	check(spawnSupported(gen, mv.Spawn), "movement.spawn (%g, %g) is not above any starting platform", mv.Spawn.X, mv.Spawn.Y)

	check(cfg.Score.Rate >= 0, "score.rate must be >= 0, got %g", cfg.Score.Rate)

	au := cfg.Audio
	check(au.Volume >= 0 && au.Volume <= 1, "audio.volume must be within [0, 1], got %g", au.Volume)
	check(au.NormalPitch > 0 && au.MinPitch > 0 && au.MaxPitch > 0, "audio pitches must be > 0")

	check(cfg.View.HalfHeight > 0, "view.half_height must be > 0, got %g", cfg.View.HalfHeight)

	_, err := ParsePreset(cfg.Difficulty.Preset)
	check(err == nil, "difficulty.preset %q is unknown", cfg.Difficulty.Preset)

	return errors.Join(errs...)
}

// spawnSupported reports whether a player dropped at spawn lands on one of
// the platforms that exist when a run starts.
func spawnSupported(gen GenerationConfig, spawn Point) bool {
	const eps = 1e-9
	for _, seg := range gen.StartingTerrain() {
		top := seg.Y + gen.Thickness/2
		if spawn.X >= seg.X-eps && spawn.X <= seg.X+seg.Width+eps && top <= spawn.Y+eps {
			return true
		}
	}
	return false
}
