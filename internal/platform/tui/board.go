package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

const (
	hudHeight    = 2 // Score line and separator
	footerHeight = 1 // Help line below the screen buffer
)

// board is the game's Presenter. It keeps what the game last reported and
// draws it into a screen buffer on demand.
type board struct {
	side      int
	cellWidth int

	body     []snake.Position
	food     snake.Position
	score    int
	speed    time.Duration
	boundary snake.BoundaryMode
	paused   bool
	over     bool
	outcome  snake.Outcome

	metrics *Metrics
}

func newBoard(side, cellWidth int, speed time.Duration, mode snake.BoundaryMode, metrics *Metrics) *board {
	return &board{
		side:      side,
		cellWidth: cellWidth,
		speed:     speed,
		boundary:  mode,
		metrics:   metrics,
	}
}

// --- snake.Presenter ---

func (b *board) Render(body []snake.Position, food snake.Position) {
	b.body = body
	b.food = food
}

func (b *board) SetScore(score int) {
	if score > b.score {
		b.metrics.FoodEaten(score - b.score)
	}
	b.score = score
}

func (b *board) SetSpeed(interval time.Duration) {
	b.speed = interval
}

func (b *board) SetBoundary(mode snake.BoundaryMode) {
	b.boundary = mode
}

func (b *board) ShowGameOver(outcome snake.Outcome) {
	b.over = true
	b.outcome = outcome
	b.metrics.GameOver(outcome)
}

func (b *board) HideGameOver() {
	b.over = false
	b.outcome = snake.OutcomeNone
}

func (b *board) ShowPauseMenu() {
	b.paused = true
}

func (b *board) HidePauseMenu() {
	b.paused = false
}

// --- drawing ---

// requiredSize returns the smallest terminal that fits the board.
func (b *board) requiredSize() (int, int) {
	return b.side*b.cellWidth + 2, b.side + 2 + hudHeight + footerHeight
}

// frame returns the rectangle of the board outline, centered horizontally.
func (b *board) frame(dst *core.Screen) core.Rect {
	w := b.side*b.cellWidth + 2
	h := b.side + 2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

func (b *board) edgeLabel() string {
	if b.boundary == snake.Wrapping {
		return "wrap"
	}
	return "walls"
}

func (b *board) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE   Score: %d   Speed: %dms   Edges: %s",
		b.score, b.speed.Milliseconds(), b.edgeLabel())
	dst.DrawTextColored(0, 0, hud, core.ColorTitle)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (b *board) draw(dst *core.Screen) {
	b.drawHUD(dst)

	r := b.frame(dst)
	edgeColor := core.ColorEdge
	if b.boundary == snake.Bounded {
		edgeColor = core.ColorWall
	}
	dst.DrawBox(r, edgeColor)

	if len(b.body) > 0 && !b.over {
		b.fillCell(dst, r, b.food, '●', core.ColorFood)
	}
	// Tail first so the head wins if segments ever overlap.
	for i := len(b.body) - 1; i >= 0; i-- {
		color := core.ColorBody
		if i == 0 {
			color = core.ColorHead
		}
		b.fillCell(dst, r, b.body[i], '█', color)
	}
}

// fillCell draws one grid cell, cellWidth columns wide. Food-like runes only
// occupy the first column.
func (b *board) fillCell(dst *core.Screen, r core.Rect, p snake.Position, ch rune, color core.Color) {
	x := r.X + 1 + p.X*b.cellWidth
	y := r.Y + 1 + p.Y
	for c := 0; c < b.cellWidth; c++ {
		if ch != '█' && c > 0 {
			dst.Set(x+c, y, ' ')
			continue
		}
		dst.SetColored(x+c, y, ch, color)
	}
}

// drawOverlay draws a centered box with the given lines.
func drawOverlay(dst *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(r, ' ')
	dst.DrawBox(r, core.ColorOverlay)
	dst.DrawTextCentered(r.Y+1, title, core.ColorTitle)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+3+i, l, core.ColorDefault)
	}
}
