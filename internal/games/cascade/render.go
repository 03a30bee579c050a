package cascade

import (
	"fmt"

	"github.com/vovakirdan/elemental-cascade/internal/core"
)

// Tile glyphs. Each board cell renders as a glyph plus a spacer so the
// grid reads roughly square in a terminal.
const (
	glyphSun      = '*'
	glyphEarth    = '#'
	glyphWind     = '~'
	glyphWater    = 'o'
	glyphTree     = 'T'
	glyphDisaster = 'V'
)

func kindGlyph(k Kind) (rune, core.Color) {
	switch k {
	case KindSun:
		return glyphSun, core.ColorBrightYellow
	case KindEarth:
		return glyphEarth, core.ColorOrange
	case KindWind:
		return glyphWind, core.ColorBrightCyan
	case KindWater:
		return glyphWater, core.ColorBrightBlue
	case KindTree:
		return glyphTree, core.ColorBrightGreen
	default:
		return '?', core.ColorDefault
	}
}

// Render draws the board, the cursor, and the HUD into the screen buffer.
// Board row 0 (the bottom row, where disasters end the game) is drawn at
// the bottom of the box.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Please enlarge your terminal")
		return
	}
	if g.board == nil {
		return
	}

	boxW := g.params.Columns*2 + 3
	boxH := g.params.Rows + 2
	offsetX := (dst.Width() - boxW) / 2
	offsetY := (dst.Height() - boxH - 2) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	if offsetY < 0 {
		offsetY = 0
	}

	dst.DrawBox(core.NewRect(offsetX, offsetY, boxW, boxH))

	for row := 0; row < g.params.Rows; row++ {
		screenY := offsetY + 1 + (g.params.Rows - 1 - row)
		for col := 0; col < g.params.Columns; col++ {
			screenX := offsetX + 2 + col*2
			view, ok := g.board.ViewAt(Position{col, row})
			if !ok {
				continue
			}
			if view.Disaster {
				dst.SetCell(screenX, screenY, glyphDisaster, core.ColorBrightRed)
				continue
			}
			r, c := kindGlyph(view.Kind)
			dst.SetCell(screenX, screenY, r, c)
		}
	}

	g.renderCursor(dst, offsetX, offsetY)
	g.renderHUD(dst, offsetX, offsetY, boxW, boxH)
}

// renderCursor draws brackets around the cursor cell and marks the
// selected tile.
func (g *Game) renderCursor(dst *core.Screen, offsetX, offsetY int) {
	cursorX := offsetX + 2 + g.cursor.Col*2
	cursorY := offsetY + 1 + (g.params.Rows - 1 - g.cursor.Row)
	dst.SetCell(cursorX-1, cursorY, '[', core.ColorBrightWhite)
	dst.SetCell(cursorX+1, cursorY, ']', core.ColorBrightWhite)

	if g.selected != nil {
		selX := offsetX + 2 + g.selected.Col*2
		selY := offsetY + 1 + (g.params.Rows - 1 - g.selected.Row)
		dst.SetCell(selX-1, selY, '(', core.ColorBrightMagenta)
		dst.SetCell(selX+1, selY, ')', core.ColorBrightMagenta)
	}
}

// renderHUD draws score, wave, and disaster info under the board.
func (g *Game) renderHUD(dst *core.Screen, offsetX, offsetY, boxW, boxH int) {
	hudY := offsetY + boxH
	state := g.State()

	left := fmt.Sprintf("Score: %d  Wave: %d", state.Score, state.Wave)
	dst.DrawText(offsetX, hudY, left)

	right := fmt.Sprintf("Disasters: %d  Next move: %.1fs",
		g.board.ActiveDisasters(), g.board.TimeUntilNextDisasterMove())
	dst.DrawText(offsetX, hudY+1, right)

	switch {
	case g.gameOver:
		dst.DrawTextCentered(hudY+2, "GAME OVER - a disaster reached the bottom - [R]estart [Q]uit")
	case g.paused:
		dst.DrawTextCentered(hudY+2, "PAUSED - [P] to resume")
	case g.selected != nil:
		dst.DrawTextCentered(hudY+2, "Select an adjacent tile to swap, [Esc] to cancel")
	}
}
