package ui

import (
	"testing"

	"crypto-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalKey(t *testing.T) {
	tests := []struct {
		name  string
		key   tcell.Key
		r     rune
		arrow string
		cmd   Command
	}{
		{"up", tcell.KeyUp, 0, types.KeyArrowUp, CmdNone},
		{"down", tcell.KeyDown, 0, types.KeyArrowDown, CmdNone},
		{"left", tcell.KeyLeft, 0, types.KeyArrowLeft, CmdNone},
		{"right", tcell.KeyRight, 0, types.KeyArrowRight, CmdNone},
		{"enter", tcell.KeyEnter, 0, "", CmdStart},
		{"space", tcell.KeyRune, ' ', "", CmdStart},
		{"escape", tcell.KeyEscape, 0, "", CmdQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, "", CmdQuit},
		{"q", tcell.KeyRune, 'q', "", CmdQuit},
		{"Q", tcell.KeyRune, 'Q', "", CmdQuit},
		{"autopilot", tcell.KeyRune, 'a', "", CmdAutopilot},
		{"easy", tcell.KeyRune, '1', "", CmdDifficulty1},
		{"expert", tcell.KeyRune, '4', "", CmdDifficulty4},
		{"unbound rune", tcell.KeyRune, 'x', "", CmdNone},
		{"unbound key", tcell.KeyTab, 0, "", CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arrow, cmd := TerminalKey(tt.key, tt.r)
			assert.Equal(t, tt.arrow, arrow)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}

func TestTerminalPainterFrame(t *testing.T) {
	c := NewCanvas(400, 400)
	c.Clear(types.Background)
	c.FillRect(0, 0, 18, 18, types.SnakeColor)
	c.FillCircle(50, 30, 8, types.CoinColor)
	c.DrawText("₿", 50, 30, 12, types.Background)

	p := NewTerminalPainter(nil)
	p.Frame(c)

	bg := tcell.StyleDefault.Background(tcellColor(types.Background))
	snake := tcell.StyleDefault.Background(tcellColor(types.SnakeColor))
	coin := tcell.StyleDefault.Background(tcellColor(types.CoinColor))

	// One grid cell spans two columns
	for col := 0; col < 2; col++ {
		_, style := p.Cell(col, 0)
		assert.Equal(t, snake, style)
	}
	_, style := p.Cell(2, 0)
	assert.Equal(t, bg, style)

	r, style := p.Cell(4, 1)
	assert.Equal(t, '₿', r)
	assert.Equal(t, coin.Foreground(tcellColor(types.Background)), style)
	r, style = p.Cell(5, 1)
	assert.Equal(t, ' ', r)
	assert.Equal(t, coin, style)

	r, _ = p.Cell(40, 0)
	assert.Equal(t, ' ', r, "outside the board")
}

func TestTerminalPainterOverlay(t *testing.T) {
	c := NewCanvas(400, 400)
	c.Clear(types.Background)
	c.FillRect(0, 0, 18, 18, types.SnakeColor)
	c.FillRect(0, 0, 400, 400, types.OverlayColor)
	c.DrawText("Hi!", 200, 200, 30, types.SnakeColor)

	p := NewTerminalPainter(nil)
	p.Frame(c)

	_, style := p.Cell(0, 0)
	assert.Equal(t, tcell.StyleDefault.Background(tcellColor(types.SnakeColor)).Dim(true), style)
	_, style = p.Cell(39, 19)
	assert.Equal(t, tcell.StyleDefault.Background(tcellColor(types.Background)).Dim(true), style)

	// Centred on column 20 of row 10
	for i, want := range "Hi!" {
		r, style := p.Cell(19+i, 10)
		assert.Equal(t, want, r)
		assert.Equal(t, tcell.StyleDefault.
			Background(tcellColor(types.Background)).
			Dim(true).
			Foreground(tcellColor(types.SnakeColor)).
			Bold(true), style)
	}
}

func TestTerminalPainterPaintsBoardAndPanel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	app := newTestApp(t, false)
	app.Apply(CmdStart)
	app.Game.PlaceCoin(types.Point{X: 19, Y: 19})
	app.Game.Render()

	p := NewTerminalPainter(screen)
	p.Paint(app)

	// Snake head at (5,5)
	_, _, style, _ := screen.GetContent(10, 5)
	assert.Equal(t, tcell.StyleDefault.Background(tcellColor(types.SnakeColor)), style)

	// Panel starts two columns right of the 40 column board
	for i, want := range "CRYPTO" {
		r, _, _, _ := screen.GetContent(42+i, 0)
		assert.Equal(t, want, r)
	}
}

func TestSpan(t *testing.T) {
	first, last := span(100, 18)
	assert.Equal(t, 5, first)
	assert.Equal(t, 5, last)

	first, last = span(0, 400)
	assert.Equal(t, 0, first)
	assert.Equal(t, 19, last)
}
