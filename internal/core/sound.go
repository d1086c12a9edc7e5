package core

// Sound names a one-shot effect understood by the audio collaborator.
type Sound string

const (
	SoundJump     Sound = "Jump"
	SoundDash     Sound = "Dash"
	SoundGrow     Sound = "Grow"
	SoundShrink   Sound = "Shrink"
	SoundGameOver Sound = "GameOver"
)

// Audio is implemented by sound backends.
type Audio interface {
	PlaySound(s Sound)
	UpdatePitchByLevel(stage, maxStage int)
	SetMusicPaused(paused bool)
}
