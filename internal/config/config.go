// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the runner.
package config

// NeonConfig contains every tunable of a runner session.
// All values are supplied at session setup and never mutated by the simulation.
type NeonConfig struct {
	Camera     CameraConfig     `yaml:"camera"`
	Generation GenerationConfig `yaml:"generation"`
	Size       SizeConfig       `yaml:"size"`
	Movement   MovementConfig   `yaml:"movement"`
	Score      ScoreConfig      `yaml:"score"`
	Audio      AudioConfig      `yaml:"audio"`
	View       ViewConfig       `yaml:"view"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CameraConfig defines the auto-scrolling camera rig.
type CameraConfig struct {
	StartX          float64 `yaml:"start_x"`
	InitialSpeed    float64 `yaml:"initial_speed"`    // World units per second
	MaxSpeed        float64 `yaml:"max_speed"`        // Speed cap reached by the ramp
	RampRate        float64 `yaml:"ramp_rate"`        // Speed gained per second while playing
	ViewHalfWidth   float64 `yaml:"view_half_width"`  // Camera left edge = x - half width
	GenerationAhead float64 `yaml:"generation_ahead"` // Generation cursor offset ahead of the camera
}

// Point is a YAML-friendly world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GenerationConfig defines procedural platform generation and pooling.
type GenerationConfig struct {
	MinGap               float64 `yaml:"min_gap"`
	MaxGap               float64 `yaml:"max_gap"`
	MinWidth             float64 `yaml:"min_width"`
	MaxWidth             float64 `yaml:"max_width"`
	HeightDelta          float64 `yaml:"height_delta"` // Height change is drawn from [-delta, +delta]
	MinY                 float64 `yaml:"min_y"`
	MaxY                 float64 `yaml:"max_y"`
	Thickness            float64 `yaml:"thickness"`
	RecycleDistance      float64 `yaml:"recycle_distance"`
	PoolSize             int     `yaml:"pool_size"`
	InitialPlatformWidth float64 `yaml:"initial_platform_width"`
	Origin               Point   `yaml:"origin"`
	// FixedTerrainEnd, when set, replaces the initial safety platform:
	// Terrain is placed first and generation continues from this point.
	FixedTerrainEnd *Point    `yaml:"fixed_terrain_end,omitempty"`
	Terrain         []Segment `yaml:"terrain,omitempty"`
}

// Segment is a hand-placed platform. X is its left edge, Y its centre height.
type Segment struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// StartingTerrain returns the platforms that exist before any generation:
// the hand-placed terrain, or the safety platform at the origin.
func (g GenerationConfig) StartingTerrain() []Segment {
	if g.FixedTerrainEnd != nil {
		return g.Terrain
	}
	return []Segment{{X: g.Origin.X, Y: g.Origin.Y, Width: g.InitialPlatformWidth}}
}

// SizeConfig defines the size/risk gauge.
type SizeConfig struct {
	MaxStage  int     `yaml:"max_stage"`  // Reaching +/- this stage is defeat
	ScaleStep float64 `yaml:"scale_step"` // Scale change per stage
	MinScale  float64 `yaml:"min_scale"`  // Floor for 1 + stage*step
	LerpRate  float64 `yaml:"lerp_rate"`  // Visual scale convergence rate per second
	Epsilon   float64 `yaml:"epsilon"`
}

// MovementConfig defines player kinematics.
type MovementConfig struct {
	MoveSpeed           float64 `yaml:"move_speed"`
	BaseJumpForce       float64 `yaml:"base_jump_force"`
	MaxJumps            int     `yaml:"max_jumps"`
	DashSpeed           float64 `yaml:"dash_speed"`
	DashDuration        float64 `yaml:"dash_duration"` // Seconds
	Gravity             float64 `yaml:"gravity"`       // Negative = downward
	GravityScale        float64 `yaml:"gravity_scale"`
	FallDeathY          float64 `yaml:"fall_death_y"`
	GroundCheckDistance float64 `yaml:"ground_check_distance"`
	Spawn               Point   `yaml:"spawn"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
}

// ScoreConfig defines score accrual.
type ScoreConfig struct {
	Rate float64 `yaml:"rate"` // Points per second while playing
}

// AudioConfig defines the synthesized audio output.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	NormalPitch float64 `yaml:"normal_pitch"`
	MinPitch    float64 `yaml:"min_pitch"` // Pitch near the growth ceiling
	MaxPitch    float64 `yaml:"max_pitch"` // Pitch near the shrink floor
}

// ViewConfig defines how world units map onto terminal cells.
type ViewConfig struct {
	HalfHeight float64 `yaml:"half_height"` // Visible world units above and below y=0
}

// DifficultyConfig selects a named preset applied on load.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}
