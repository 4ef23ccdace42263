package tui

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/game"
)

// Visual characters for rendering
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
	groundTuft    = '╦'
)

// projection maps logical playfield coordinates to screen cells.
// The simulation always runs on the fixed field; only rendering scales.
type projection struct {
	w, h int
}

func (p projection) x(lx float64) int {
	return int(lx / core.FieldW * float64(p.w))
}

func (p projection) y(ly float64) int {
	return int(ly / core.FieldH * float64(p.h))
}

func (p projection) rect(r core.RectF) core.Rect {
	x0, y0 := p.x(r.X), p.y(r.Y)
	x1, y1 := p.x(r.Right()), p.y(r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawFrame renders a snapshot to the screen buffer.
func drawFrame(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	if snap.State == game.StateMenu {
		drawMenu(dst, snap)
		return
	}

	proj := projection{w: dst.Width(), h: dst.Height()}

	drawGround(dst, proj, snap.BackgroundOffset)
	for _, p := range snap.Pipes {
		drawPipe(dst, proj, p)
	}
	drawParticles(dst, proj, snap.Particles)
	drawBird(dst, proj, snap)

	if snap.ShowHitboxes {
		drawHitboxes(dst, proj, snap)
	}

	drawHUD(dst, snap)

	switch snap.State {
	case game.StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Space to resume, Q for menu")
	case game.StateGameOver:
		title := "GAME OVER"
		if snap.Score > 0 && snap.Score == snap.Best {
			title = "NEW HIGH SCORE!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  R to retry, Q for menu", snap.Score)
		drawCenteredMessage(dst, title, subtitle)
	}
}

// drawGround renders the scrolling ground strip.
func drawGround(dst *core.Screen, proj projection, offset float64) {
	groundY := proj.y(core.FieldH - core.GroundHeight)
	if groundY >= dst.Height() {
		groundY = dst.Height() - 1
	}

	// The offset cycles through [-wrap, 0]; shift the tuft pattern with it
	// so the ground visibly scrolls with the pipes.
	shift := proj.x(-offset)
	for x := 0; x < dst.Width(); x++ {
		r := groundChar
		if (x+shift)%4 == 0 {
			r = groundTuft
		}
		dst.SetCell(x, groundY, r, core.ColorBrown)
	}
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '░', core.ColorGray)
	}
}

// drawPipe renders a single pipe pair with caps facing the gap.
func drawPipe(dst *core.Screen, proj projection, p game.PipeView) {
	x0 := proj.x(p.X)
	x1 := proj.x(p.X + p.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}

	gapTop := proj.y(p.GapY)
	gapBottom := proj.y(p.GapY + p.GapHeight)
	groundY := proj.y(core.FieldH - core.GroundHeight)

	for x := x0; x < x1; x++ {
		for y := 0; y < gapTop; y++ {
			dst.SetCell(x, y, pipeChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetCell(x, gapTop-1, pipeCapTop, core.ColorBrightGreen)
		}

		for y := gapBottom; y < groundY; y++ {
			dst.SetCell(x, y, pipeChar, core.ColorGreen)
		}
		if gapBottom < groundY {
			dst.SetCell(x, gapBottom, pipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird renders the bird, tilting the glyph with its rotation.
func drawBird(dst *core.Screen, proj projection, snap game.Snapshot) {
	x := proj.x(snap.BirdX)
	y := proj.y(snap.BirdY)

	var r rune
	switch {
	case snap.BirdRotation < -10:
		r = '◤' // Climbing
	case snap.BirdRotation > 45:
		r = '◢' // Diving
	default:
		r = '▶'
	}

	color := core.ColorGold
	if snap.Invincible {
		color = core.ColorBrightYellow
	}
	dst.SetCell(x, y, r, color)
}

// drawParticles renders particles, fading the glyph as life runs out.
func drawParticles(dst *core.Screen, proj projection, particles []game.ParticleView) {
	for _, p := range particles {
		var r rune
		switch {
		case p.Life > 0.66:
			r = '●'
		case p.Life > 0.33:
			r = '•'
		default:
			r = '·'
		}
		dst.SetCell(proj.x(p.X), proj.y(p.Y), r, p.Color)
	}
}

// drawHitboxes outlines the collision rectangles for debugging.
func drawHitboxes(dst *core.Screen, proj projection, snap game.Snapshot) {
	dst.DrawBox(proj.rect(snap.BirdHitbox), core.ColorBrightRed)

	floorY := core.FieldH - core.GroundHeight
	for _, p := range snap.Pipes {
		top := core.NewRectF(p.X, 0, p.Width, p.GapY)
		bottom := core.NewRectF(p.X, p.GapY+p.GapHeight, p.Width, floorY-(p.GapY+p.GapHeight))
		dst.DrawBox(proj.rect(top), core.ColorBrightRed)
		dst.DrawBox(proj.rect(bottom), core.ColorBrightRed)
	}
}

// drawHUD renders score and status along the top row.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Score: %d   Best: %d   %s ", snap.Score, snap.Best, snap.Difficulty.Name())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	x := 1 + len(hud) + 1
	if snap.Invincible {
		dst.DrawTextColored(x, 0, "[INVINCIBLE]", core.ColorBrightYellow)
		x += len("[INVINCIBLE]") + 1
	}
	if snap.SlowMotion {
		dst.DrawTextColored(x, 0, "[SLOW-MO]", core.ColorSkyBlue)
	}
}

// drawMenu renders the title screen with difficulty selection.
func drawMenu(dst *core.Screen, snap game.Snapshot) {
	h := dst.Height()
	y := h / 6

	dst.DrawTextCentered(y, "F L A P P Y", core.ColorGold)
	dst.DrawTextCentered(y+1, "a terminal bird", core.ColorGray)

	y += 4
	for i, d := range config.All() {
		color := core.ColorWhite
		marker := "  "
		if d == snap.Difficulty {
			color = core.ColorBrightYellow
			marker = "> "
		}
		line := fmt.Sprintf("%s[%d] %-8s gap %3.0f  speed %.1f  best %d",
			marker, i+1, d.Name(), d.PipeGap(), d.PipeSpeed(), snap.Bests[d])
		dst.DrawTextCentered(y+i, line, color)
	}

	y += len(config.All()) + 2
	dst.DrawTextCentered(y, "Space to start, 1-4 to pick difficulty", core.ColorWhite)
	dst.DrawTextCentered(y+1, "H hitboxes  I invincible  S slow motion", core.ColorGray)
	dst.DrawTextCentered(y+2, "Q to quit", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
