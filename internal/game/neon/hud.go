package neon

// panel is the top-level screen shown by the HUD.
type panel int

const (
	panelMenu panel = iota
	panelPlay
	panelGameOver
)

// Pause menu entries
const (
	pauseResume = iota
	pauseRestart
	pauseMenu
	pauseEntries
)

var pauseLabels = [pauseEntries]string{"Resume", "Restart", "Menu"}

// recordSource answers the stored best score.
type recordSource interface {
	GetHighScore() int
}

// HUD is the UI collaborator: it tracks which panel is visible and the
// values displayed on it. Drawing happens in Render.
type HUD struct {
	panel     panel
	paused    bool
	score     int
	record    int
	reason    string
	final     int
	newRecord bool
	selection int
	records   recordSource
}

func newHUD(records recordSource) *HUD {
	return &HUD{records: records}
}

// UpdateScoreUI shows the live score.
func (h *HUD) UpdateScoreUI(score int) {
	h.score = score
}

// ShowHUD switches to the in-game overlay.
func (h *HUD) ShowHUD() {
	h.panel = panelPlay
	h.paused = false
	h.record = h.records.GetHighScore()
}

// ShowMenu switches to the title panel and refreshes the record.
func (h *HUD) ShowMenu() {
	h.panel = panelMenu
	h.paused = false
	h.record = h.records.GetHighScore()
}

// TogglePauseMenu shows or hides the pause overlay.
func (h *HUD) TogglePauseMenu(visible bool) {
	h.paused = visible
}

// ShowGameOver switches to the results panel.
func (h *HUD) ShowGameOver(reason string, finalScore int, isNewRecord bool) {
	h.panel = panelGameOver
	h.paused = false
	h.reason = reason
	h.final = finalScore
	h.newRecord = isNewRecord
	if isNewRecord {
		h.record = finalScore
	}
}

// ClearSelection resets the pause menu cursor.
func (h *HUD) ClearSelection() {
	h.selection = pauseResume
}

func (h *HUD) moveSelection(delta int) {
	h.selection = (h.selection + delta + pauseEntries) % pauseEntries
}
