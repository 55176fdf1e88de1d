package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	tileW   = 7 // tile width including its frame
	tileH   = 3 // tile height including its frame
	tileGap = 1

	boardW    = Size*tileW + (Size-1)*tileGap
	boardH    = Size*tileH + (Size-1)*tileGap
	hudHeight = 3

	minScreenW = boardW
	minScreenH = hudHeight + boardH
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight
	area := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, area)
	g.renderBoard(dst, area)
	g.renderOverlays(dst, area)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and max tile.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	title := g.Title()
	dst.DrawText(area.X+(area.W-len(title))/2, 0, title)

	dst.DrawText(area.X, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	info := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(area.X, area.Right()-len(info)), 1, info)
}

// renderBoard draws one framed square per occupied cell and a dot per
// empty one, colored by value.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	for _, c := range g.board.Cells() {
		tile := core.NewRect(
			area.X+c.Col*(tileW+tileGap),
			area.Y+c.Row*(tileH+tileGap),
			tileW, tileH,
		)
		color := g.cfg.Render.TileColor(c.Value)
		cx, cy := tile.Center()

		if c.Empty() {
			dst.SetColored(cx, cy, '·', color)
			continue
		}

		dst.DrawBoxColored(tile, color)
		text := strconv.Itoa(c.Value)
		dst.DrawTextColored(tile.X+(tile.W-len(text))/2, cy, text, color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	if g.board.Terminal() {
		g.drawOverlay(dst, area, "GAME OVER", fmt.Sprintf("Final score: %d", g.board.Score()), "Press R to restart")
		return
	}

	if g.paused {
		g.drawOverlay(dst, area, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
