package neon

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game/level"
	"github.com/vovakirdan/neon-runner/internal/game/session"
)

// Visual characters for rendering
const (
	PlatformTop  = '▀'
	PlatformFill = '▓'
	BodyChar     = '█'
	DashTrail    = '≡'
	LegLeft      = '╱'
	LegRight     = '╲'
	EyeChar      = '◆'
	GaugeEmpty   = '─'
	GaugeMark    = '●'
)

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// viewport maps world units onto screen cells. World y points up.
type viewport struct {
	left, top float64 // World coordinates of the playfield's top-left corner
	sx, sy    float64 // Cells per world unit
}

func newViewport(cfg config.NeonConfig, camX float64, w, h int) viewport {
	rows := h - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		left: camX - cfg.Camera.ViewHalfWidth,
		top:  cfg.View.HalfHeight,
		sx:   float64(w) / (2 * cfg.Camera.ViewHalfWidth),
		sy:   float64(rows) / (2 * cfg.View.HalfHeight),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.left) * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor((v.top-y)*v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	lv := g.session.Level()
	vp := newViewport(g.cfg, lv.Camera().X, dst.Width(), dst.Height())

	for _, p := range lv.Platforms() {
		drawPlatform(dst, vp, p)
	}
	if g.session.State() != session.StateMenu {
		g.drawPlayer(dst, vp)
	}

	g.drawStatus(dst)

	switch {
	case g.hud.panel == panelMenu:
		drawPanel(dst, []panelLine{
			{"N E O N   N I N J A", core.ColorNeonPink},
			{fmt.Sprintf("Record: %d", g.hud.record), core.ColorYellow},
			{"", core.ColorDefault},
			{"Jump grows you. Dash shrinks you.", core.ColorGray},
			{"Enter or Space to start  |  Q to quit", core.ColorWhite},
		})
	case g.hud.panel == panelGameOver:
		lines := []panelLine{
			{"GAME OVER", core.ColorRed},
			{g.hud.reason, core.ColorGray},
			{fmt.Sprintf("Score: %d", g.hud.final), core.ColorWhite},
		}
		if g.hud.newRecord {
			lines = append(lines, panelLine{"NEW RECORD!", core.ColorYellow})
		}
		lines = append(lines, panelLine{"R restart  |  M menu", core.ColorWhite})
		drawPanel(dst, lines)
	case g.hud.paused:
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorNeonBlue},
			{"", core.ColorDefault},
			{pauseMenuLine(g.hud.selection), core.ColorWhite},
			{"P resume  |  Enter select", core.ColorGray},
		})
	}
}

func drawPlatform(dst *core.Screen, vp viewport, p level.Platform) {
	x0, x1 := vp.col(p.Left()), vp.col(p.Right())
	y0, y1 := vp.row(p.Top()), vp.row(p.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		if y < hudRows {
			continue
		}
		ch := PlatformFill
		if y == y0 {
			ch = PlatformTop
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, ch, core.ColorNeonBlue)
		}
	}
}

// drawPlayer renders the body at its current visual scale.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	k := g.session.Movement().Kinematics()
	mc := g.cfg.Movement
	halfW := mc.Width * k.Scale / 2
	height := mc.Height * k.Scale

	x0, x1 := vp.col(k.Position.X-halfW), vp.col(k.Position.X+halfW)
	y0, y1 := vp.row(k.Position.Y+height), vp.row(k.Position.Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	color := stageColor(g.session.Size().Stage(), g.session.Size().MaxStage())
	frame := g.anim.Frame()

	for y := y0; y < y1; y++ {
		if y < hudRows {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, BodyChar, color)
		}
	}

	// Eye on the facing side of the top row
	eyeX := x1 - 1
	if g.anim.FacingLeft() {
		eyeX = x0
	}
	if y0 >= hudRows {
		dst.SetColored(eyeX, y0, EyeChar, core.ColorWhite)
	}

	legs := y1 - 1
	if y1-y0 > 1 && legs >= hudRows {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, legs, legGlyph(frame, g.anim.Index(), x-x0), color)
		}
	}

	if frame == FrameDash {
		trailX, step := x0-1, -1
		if g.anim.FacingLeft() {
			trailX, step = x1, 1
		}
		for i := 0; i < 3; i++ {
			for y := y0; y < y1; y++ {
				if y >= hudRows {
					dst.SetColored(trailX+i*step, y, DashTrail, core.ColorNeonPink)
				}
			}
		}
	}
}

func legGlyph(frame Frame, index, i int) rune {
	switch frame {
	case FrameRun:
		if (index+i)%2 == 0 {
			return LegLeft
		}
		return LegRight
	case FrameJump:
		return '╵'
	case FrameFall:
		return '╷'
	case FrameDash:
		return BodyChar
	default:
		if i%2 == 0 {
			return '▌'
		}
		return '▐'
	}
}

// stageColor tints the player by how close the size stage is to either limit.
func stageColor(stage, maxStage int) core.Color {
	switch {
	case stage == 0:
		return core.ColorNeonPink
	case stage >= maxStage-1:
		return core.ColorRed
	case stage > 0:
		return core.ColorOrange
	case stage <= -(maxStage - 1):
		return core.ColorMagenta
	default:
		return core.ColorCyan
	}
}

// drawStatus draws score, record, the size gauge and the camera speed.
func (g *Game) drawStatus(dst *core.Screen) {
	w := dst.Width()

	left := fmt.Sprintf(" Score: %d  HI: %d ", g.hud.score, g.hud.record)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	cam := g.session.Level().Camera()
	right := fmt.Sprintf(" Spd: %.1f ", cam.Speed)
	rightColor := core.ColorGreen
	if config.RampLevel(cam.Speed, g.cfg.Camera) >= 1 {
		rightColor = core.ColorRed
	}
	dst.DrawTextColored(w-utf8.RuneCountInString(right), 0, right, rightColor)

	sz := g.session.Size()
	gauge := sizeGauge(sz.Stage(), sz.MaxStage())
	gx := (w - utf8.RuneCountInString(gauge)) / 2
	if gx > utf8.RuneCountInString(left) {
		dst.DrawTextColored(gx, 0, gauge, stageColor(sz.Stage(), sz.MaxStage()))
	}
}

// sizeGauge renders the stage as a marker between the shrink and growth limits.
func sizeGauge(stage, maxStage int) string {
	var b strings.Builder
	b.WriteString("- [")
	for s := -maxStage + 1; s <= maxStage-1; s++ {
		switch {
		case s == stage:
			b.WriteRune(GaugeMark)
		case s == 0:
			b.WriteRune('┼')
		default:
			b.WriteRune(GaugeEmpty)
		}
	}
	b.WriteString("] +")
	return b.String()
}

func pauseMenuLine(selection int) string {
	parts := make([]string, len(pauseLabels))
	for i, label := range pauseLabels {
		if i == selection {
			parts[i] = "> " + label + " <"
		} else {
			parts[i] = "  " + label + "  "
		}
	}
	return strings.Join(parts, " ")
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed, centred block of lines.
func drawPanel(dst *core.Screen, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l.text))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorNeonBlue)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l.text))/2
		dst.DrawTextColored(x, boxY+1+i, l.text, l.color)
	}
}
