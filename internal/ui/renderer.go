package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/world"
)

const (
	// Each grid cell spans two terminal columns so cells look square.
	cellWidth = 2
	// Rows above the arena border (HUD line).
	hudRows = 1
	// Frames per on/off phase of the crashed head.
	flashFrames = 8
)

// Board is the read-only view of a round the renderer draws.
type Board interface {
	Grid() world.Grid
	Body() []world.Point
	Food() world.Point
	HasFood() bool
	Score() int
}

// Overlay is a message panel drawn on top of the arena.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayPaused
	OverlayGameOver
	OverlayWin
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.ThemeDef
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.ThemeDef) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// ArenaSize returns the terminal columns and rows needed to draw a grid,
// including the border and HUD.
func ArenaSize(g world.Grid) (cols, rows int) {
	return g.Width*cellWidth + 2, g.Height + 2 + hudRows
}

// cellOrigin maps a grid cell to its terminal column and row.
func cellOrigin(p world.Point) (int, int) {
	return 1 + p.X*cellWidth, hudRows + 1 + p.Y
}

// Render draws the board and the overlay, then flushes the screen.
// frame is a running frame count used to animate the crashed head.
func (r *Renderer) Render(board Board, overlay Overlay, frame int) {
	r.screen.Clear()

	grid := board.Grid()
	r.drawHUD(board)
	r.drawBorder(grid)

	if board.HasFood() {
		x, y := cellOrigin(board.Food())
		style := tcell.StyleDefault.Foreground(r.theme.Color(r.theme.FoodColor)).Bold(true)
		r.screen.SetContent(x, y, r.theme.FoodRune(), style)
	}

	body := board.Body()
	colors := r.theme.BodyColors(len(body))
	// Draw tail first so the head wins any overlap on the final frame
	for i := len(body) - 1; i >= 0; i-- {
		x, y := cellOrigin(body[i])
		style := tcell.StyleDefault.Foreground(colors[i])
		glyph := r.theme.BodyRune()
		if i == 0 {
			glyph = r.theme.HeadRune()
			style = headStyle(style, overlay, frame)
		}
		r.screen.SetContent(x, y, glyph, style)
	}

	r.drawOverlay(grid, board.Score(), overlay)
	r.screen.Show()
}

// headStyle highlights the head, blinking it after a crash.
func headStyle(base tcell.Style, overlay Overlay, frame int) tcell.Style {
	style := base.Bold(true)
	if overlay == OverlayGameOver && (frame/flashFrames)%2 == 0 {
		style = style.Reverse(true)
	}
	return style
}

func (r *Renderer) textStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(r.theme.Color(r.theme.TextColor))
}

func (r *Renderer) drawHUD(board Board) {
	r.screen.DrawText(0, 0, fmt.Sprintf("Score: %d  Length: %d", board.Score(), len(board.Body())), r.textStyle())
}

func (r *Renderer) drawBorder(grid world.Grid) {
	style := tcell.StyleDefault.Foreground(r.theme.Color(r.theme.BorderColor))
	cols, rows := ArenaSize(grid)
	top, bottom := hudRows, rows-1
	right := cols - 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(0, top, tcell.RuneULCorner, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// overlayLines returns the text panel for an overlay.
func overlayLines(overlay Overlay, score int) []string {
	switch overlay {
	case OverlayMenu:
		return []string{
			"SNAKE",
			"",
			"Arrow Keys or WASD to move",
			"Eat the food to grow",
			"Don't run into yourself!",
			"",
			"Press SPACE to start",
		}
	case OverlayPaused:
		return []string{"PAUSED", "", "Press P to resume"}
	case OverlayGameOver:
		return []string{"GAME OVER", fmt.Sprintf("Final Score: %d", score), "", "Press SPACE to restart"}
	case OverlayWin:
		return []string{"YOU WIN", fmt.Sprintf("Final Score: %d", score), "", "Press SPACE to play again"}
	default:
		return nil
	}
}

func (r *Renderer) drawOverlay(grid world.Grid, score int, overlay Overlay) {
	lines := overlayLines(overlay, score)
	if len(lines) == 0 {
		return
	}

	cols, rows := ArenaSize(grid)
	startY := hudRows + (rows-hudRows-len(lines))/2
	style := r.textStyle().Bold(true)
	for i, line := range lines {
		r.drawCentered(cols, startY+i, line, style)
	}
}

// drawCentered writes text horizontally centered within cols columns,
// blanking the row first so the arena does not show through.
func (r *Renderer) drawCentered(cols, y int, text string, style tcell.Style) {
	width := runewidth.StringWidth(text)
	x := (cols - width) / 2
	if x < 0 {
		x = 0
	}
	for col := x - 1; col <= x+width; col++ {
		if col > 0 && col < cols-1 {
			r.screen.SetContent(col, y, ' ', tcell.StyleDefault)
		}
	}
	r.screen.DrawText(x, y, text, style)
}

// RenderNotice replaces the whole screen with a single message.
func (r *Renderer) RenderNotice(msg string) {
	r.screen.Clear()
	r.screen.DrawText(0, 0, msg, r.textStyle())
	r.screen.Show()
}
