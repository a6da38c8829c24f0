package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3

	boardW = engine.Size*cellWidth + 1
	boardH = engine.Size*cellHeight + 1

	// Board plus two columns of margin; HUD, board, message and controls.
	minScreenW = boardW + 2
	minScreenH = hudHeight + 1 + boardH + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	if g.message != "" {
		dst.DrawTextCentered(boardY+boardH, g.message)
	}
	if g.screenH-1 > boardY+boardH {
		dst.DrawTextCentered(g.screenH-1, g.Controls())
	}

	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score, best score and move count.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2 0 4 8"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	best := fmt.Sprintf("Best: %d", max(g.best, g.engine.Score()))
	dst.DrawText(boardX+boardW-len(best), 1, best)

	moves := fmt.Sprintf("Moves: %d", g.engine.Moves())
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorGray)
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	const size = engine.Size
	border := core.ColorGray

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, border)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', border)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', border)
				}
			}
		}
	}

	board := g.engine.Grid()
	for y := range size {
		for x := range size {
			val := board[y][x]
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			color := g.palette.Color(val)

			label := "·"
			if val != 0 {
				label = strconv.Itoa(val)
			}

			// Center the label in the cell interior.
			pad := max((cellWidth-1-len([]rune(label)))/2, 0)
			dst.DrawTextColored(cellX+pad, cellY, label, color)
		}
	}
}

// renderOverlays draws pause and end-of-game banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()
	score := fmt.Sprintf("Score: %d", g.engine.Score())

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorDefault, "PAUSED", "Press P to resume")
	case g.engine.Status() == engine.StatusWon:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen, "You Win!", score, "X: Share  R: New game")
	case g.engine.Status() == engine.StatusLost:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed, "Game Over", score, "X: Share  R: New game")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
