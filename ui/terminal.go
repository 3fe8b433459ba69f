package ui

import (
	"time"

	"crypto-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	cellColumns   = 2                     // Terminal columns per grid cell
	panelGap      = 2
)

type termCell struct {
	r     rune
	style tcell.Style
}

// TerminalPainter draws a Canvas and the side panel onto a tcell screen.
// Each grid cell becomes two character columns.
type TerminalPainter struct {
	screen tcell.Screen
	cells  []termCell
	cols   int
	rows   int
}

func NewTerminalPainter(screen tcell.Screen) *TerminalPainter {
	return &TerminalPainter{screen: screen}
}

func tcellColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// span maps a pixel range to the grid cells it touches
func span(pos, length int) (first, last int) {
	if length <= 0 {
		length = 1
	}
	return pos / types.CellSize, (pos + length - 1) / types.CellSize
}

func (p *TerminalPainter) at(col, row int) *termCell {
	if col < 0 || col >= p.cols || row < 0 || row >= p.rows {
		return nil
	}
	return &p.cells[row*p.cols+col]
}

// Frame rasterizes the canvas into the cell buffer
func (p *TerminalPainter) Frame(c *Canvas) {
	width, height := c.Size()
	p.cols = width / types.CellSize * cellColumns
	p.rows = height / types.CellSize

	bg := tcell.StyleDefault.Background(tcellColor(c.Background()))
	p.cells = p.cells[:0]
	for i := 0; i < p.cols*p.rows; i++ {
		p.cells = append(p.cells, termCell{r: ' ', style: bg})
	}

	for _, op := range c.Ops() {
		switch op.Kind {
		case OpRect:
			x0, x1 := span(op.X, op.W)
			y0, y1 := span(op.Y, op.H)
			for gy := y0; gy <= y1; gy++ {
				for gx := x0 * cellColumns; gx < (x1+1)*cellColumns; gx++ {
					cell := p.at(gx, gy)
					if cell == nil {
						continue
					}
					if op.Color.A < 0xff {
						// Translucent fills dim what is underneath
						cell.style = cell.style.Dim(true)
						continue
					}
					cell.r = ' '
					cell.style = tcell.StyleDefault.Background(tcellColor(op.Color))
				}
			}
		case OpCircle:
			gx, gy := op.X/types.CellSize, op.Y/types.CellSize
			for i := 0; i < cellColumns; i++ {
				if cell := p.at(gx*cellColumns+i, gy); cell != nil {
					cell.r = ' '
					cell.style = tcell.StyleDefault.Background(tcellColor(op.Color))
				}
			}
		case OpText:
			runes := []rune(op.Text)
			col := op.X / types.CellSize * cellColumns
			if len(runes) > 1 {
				col -= len(runes) / 2
			}
			row := op.Y / types.CellSize
			for i, r := range runes {
				if cell := p.at(col+i, row); cell != nil {
					cell.r = r
					cell.style = cell.style.Foreground(tcellColor(op.Color)).Bold(op.Size >= 20)
				}
			}
		}
	}
}

// Cell returns the rasterized cell at (col, row)
func (p *TerminalPainter) Cell(col, row int) (rune, tcell.Style) {
	if cell := p.at(col, row); cell != nil {
		return cell.r, cell.style
	}
	return ' ', tcell.StyleDefault
}

// Paint draws the app's current frame and panel, then shows the screen
func (p *TerminalPainter) Paint(app *App) {
	p.Frame(app.Canvas)

	p.screen.Clear()
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			cell := p.cells[row*p.cols+col]
			p.screen.SetContent(col, row, cell.r, nil, cell.style)
		}
	}

	x := p.cols + panelGap
	for row, line := range app.Board.Lines(app) {
		for i, r := range []rune(line) {
			p.screen.SetContent(x+i, row, r, nil, tcell.StyleDefault)
		}
	}
	p.screen.Show()
}

// RunTerminal runs the game loop on an initialized screen until the player
// quits. Input is read on its own goroutine; the game is only touched here.
func RunTerminal(app *App, screen tcell.Screen) error {
	painter := NewTerminalPainter(screen)
	screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	painter.Paint(app)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				arrow, cmd := TerminalKey(ev.Key(), ev.Rune())
				if arrow != "" {
					app.Key(arrow)
				} else if app.Apply(cmd) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			app.Tick(now.Sub(last))
			last = now
			painter.Paint(app)
		}
	}
}
