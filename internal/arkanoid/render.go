package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arkanoid-tui/internal/core"
)

// Drawing glyphs.
const (
	BallChar       = '●'
	PaddleChar     = '='
	BrickChar      = '█'
	HardBrickChar  = '▓'
	BorderVert     = '│'
	BorderHoriz    = '─'
	BorderTopLeft  = '┌'
	BorderTopRight = '┐'
)

// brickRowColors cycles by brick row, giving the classic rainbow bands.
var brickRowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorMagenta,
}

// Render draws the complete frame: HUD, borders, bricks, paddle, ball
// and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBorders(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, livesText)

	var levelText string
	if g.mode == ModeEndless {
		totalLevel := g.cycle*len(g.layouts) + g.levelIndex + 1
		levelText = fmt.Sprintf("Level: %d", totalLevel)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.layouts))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderBorders draws the top and side walls. The bottom edge stays
// open so the ball can fall out.
func (g *Game) renderBorders(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	dst.SetCell(0, 1, BorderTopLeft, core.ColorBlue)
	dst.SetCell(w-1, 1, BorderTopRight, core.ColorBlue)
	dst.DrawHLine(1, 1, w-2, BorderHoriz, core.ColorBlue)
	dst.DrawVLine(0, 2, h-2, BorderVert, core.ColorBlue)
	dst.DrawVLine(w-1, 2, h-2, BorderVert, core.ColorBlue)
}

// renderBricks draws every live brick across its cell span.
func (g *Game) renderBricks(dst *core.Screen) {
	for i := range g.bricks {
		b := &g.bricks[i]
		if b.Destroyed {
			continue
		}

		glyph := BrickChar
		if b.HP >= 2 {
			glyph = HardBrickChar
		}

		row := int(math.Floor((b.Rect.Top() - g.brickTop) / g.brickH))
		color := brickRowColors[((row%len(brickRowColors))+len(brickRowColors))%len(brickRowColors)]

		y := int(math.Floor(b.Rect.Top()))
		x0 := int(math.Floor(b.Rect.Left()))
		x1 := int(math.Ceil(b.Rect.Right()))
		for x := x0; x < x1; x++ {
			if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
				dst.SetCell(x, y, glyph, color)
			}
		}
	}
}

// renderPaddle draws the paddle span.
func (g *Game) renderPaddle(dst *core.Screen) {
	y := int(math.Floor(g.paddle.Rect.Top()))
	x0 := int(math.Floor(g.paddle.Rect.Left()))
	x1 := int(math.Ceil(g.paddle.Rect.Right()))
	for x := x0; x < x1; x++ {
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetCell(x, y, PaddleChar, core.ColorBrightGreen)
		}
	}
}

// renderBall draws the ball at its nearest cell.
func (g *Game) renderBall(dst *core.Screen) {
	x := int(math.Floor(g.ball.Pos.X))
	y := int(math.Floor(g.ball.Pos.Y))
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetCell(x, y, BallChar, core.ColorBrightWhite)
	}
}

// renderOverlay draws phase messages on top of the frame.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseReady:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case PhaseWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a bordered message box in the screen center.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	if len(subtitle) > boxW {
		boxW = len(subtitle)
	}
	boxW += 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
