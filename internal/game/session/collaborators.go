package session

import "github.com/vovakirdan/neon-runner/internal/core"

// Audio plays feedback sounds and shifts music pitch with the size stage.
type Audio interface {
	PlaySound(s core.Sound)
	UpdatePitchByLevel(stage, maxStage int)
	SetMusicPaused(paused bool)
}

// UI switches panels and displays the score.
type UI interface {
	UpdateScoreUI(score int)
	ShowHUD()
	ShowMenu()
	TogglePauseMenu(visible bool)
	ShowGameOver(reason string, finalScore int, isNewRecord bool)
	ClearSelection()
}

// Animation plays one-shot player animations.
type Animation interface {
	PlayDash()
}

// Saver persists the best score.
type Saver interface {
	SaveHighScore(score int) bool
	GetHighScore() int
}

// RunRecorder stores the history of finished runs.
type RunRecorder interface {
	RecordRun(run core.RunResult) error
}

type nopAudio struct{}

func (nopAudio) PlaySound(core.Sound) {}
func (nopAudio) UpdatePitchByLevel(int, int) {}
func (nopAudio) SetMusicPaused(bool) {}

type nopUI struct{}

func (nopUI) UpdateScoreUI(int) {}
func (nopUI) ShowHUD() {}
func (nopUI) ShowMenu() {}
func (nopUI) TogglePauseMenu(bool) {}
func (nopUI) ShowGameOver(string, int, bool) {}
func (nopUI) ClearSelection() {}

type nopAnimation struct{}

func (nopAnimation) PlayDash() {}

type nopSaver struct{}

func (nopSaver) SaveHighScore(int) bool { return false }
func (nopSaver) GetHighScore() int      { return 0 }

type nopRecorder struct{}

func (nopRecorder) RecordRun(core.RunResult) error { return nil }
