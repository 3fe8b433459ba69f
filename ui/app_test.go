package ui

import (
	"testing"
	"time"

	"crypto-snake/config"
	"crypto-snake/game"
	"crypto-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, autopilot bool) *App {
	t.Helper()
	return NewApp(&config.Config{
		Difficulty: types.Easy,
		UI:         config.UITerminal,
		Width:      400,
		Height:     400,
		Seed:       7,
		Autopilot:  autopilot,
	})
}

func TestNewAppIsIdle(t *testing.T) {
	app := newTestApp(t, false)
	assert.Equal(t, game.Idle, app.Game.Phase())
	assert.Equal(t, types.Grid{Width: 20, Height: 20}, app.Game.Grid)
	assert.Empty(t, app.Canvas.Ops(), "idle frame is only the background")
	assert.False(t, app.AutopilotOn())
}

func TestApplyCommands(t *testing.T) {
	app := newTestApp(t, false)

	assert.False(t, app.Apply(CmdDifficulty3))
	assert.Equal(t, types.Hard, app.Difficulty)
	assert.Equal(t, game.Idle, app.Game.Phase(), "selecting a difficulty does not start")

	assert.False(t, app.Apply(CmdStart))
	snap := app.Game.Snapshot()
	assert.Equal(t, game.Running, snap.Phase)
	assert.Equal(t, 100*time.Millisecond, snap.Speed)

	assert.False(t, app.Apply(CmdNone))
	assert.True(t, app.Apply(CmdQuit))
}

func TestKeyAndTickDriveTheGame(t *testing.T) {
	app := newTestApp(t, false)
	app.Apply(CmdStart)
	app.Game.PlaceCoin(types.Point{X: 19, Y: 19})

	assert.True(t, app.Key(types.KeyArrowDown))
	assert.False(t, app.Key("Enter"))

	app.Tick(199 * time.Millisecond)
	assert.Equal(t, types.Origin, app.Game.Snapshot().Snake[0])

	app.Tick(time.Millisecond)
	assert.Equal(t, types.Point{X: 5, Y: 6}, app.Game.Snapshot().Snake[0])
}

func TestAutopilotToggle(t *testing.T) {
	app := newTestApp(t, false)

	app.Apply(CmdAutopilot)
	assert.True(t, app.AutopilotOn())
	app.Apply(CmdAutopilot)
	assert.False(t, app.AutopilotOn())
}

func TestAutopilotStartsAfterPause(t *testing.T) {
	app := newTestApp(t, true)
	require.True(t, app.AutopilotOn())

	app.Tick(time.Second)
	assert.Equal(t, game.Idle, app.Game.Phase())

	app.Tick(600 * time.Millisecond)
	assert.Equal(t, game.Running, app.Game.Phase())
}

func TestAutopilotRestartsAfterGameOver(t *testing.T) {
	app := newTestApp(t, true)
	app.Tick(autopilotRestart)
	require.Equal(t, game.Running, app.Game.Phase())

	// Long enough for the demo to crash at least once
	for i := 0; i < 50000 && app.Game.Phase() == game.Running; i++ {
		app.Tick(200 * time.Millisecond)
	}
	require.Equal(t, game.GameOver, app.Game.Phase())
	games := len(app.Game.Scores().History())

	app.Tick(autopilotRestart)
	assert.Equal(t, game.Running, app.Game.Phase())
	assert.Equal(t, games, len(app.Game.Scores().History()))
}

func TestScoreboardLines(t *testing.T) {
	app := newTestApp(t, false)

	lines := app.Board.Lines(app)
	assert.Equal(t, "CRYPTO SNAKE", lines[0])
	assert.Contains(t, lines, "Score: 0")
	assert.Contains(t, lines, "Difficulty: easy")
	assert.Contains(t, lines, "Enter/Space: start")
	assert.Contains(t, lines, "1-4: easy/medium/hard/expert")
	assert.NotContains(t, lines, "Autopilot: on")

	app.Apply(CmdStart)
	app.Board.SetScore(30)
	app.Board.SetCoinsEaten(3)
	lines = app.Board.Lines(app)
	assert.Contains(t, lines, "Score: 30")
	assert.Contains(t, lines, "Coins: 3")
	assert.Contains(t, lines, "Speed: 200ms")
	assert.NotContains(t, lines, "Enter/Space: start")
}

func TestCanvasRecordsFrame(t *testing.T) {
	app := newTestApp(t, false)
	app.Apply(CmdStart)
	app.Game.PlaceCoin(types.Point{X: 10, Y: 3})
	app.Game.Render()

	ops := app.Canvas.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, Op{Kind: OpRect, X: 100, Y: 100, W: 18, H: 18, Color: types.SnakeColor}, ops[0])
	assert.Equal(t, Op{Kind: OpCircle, X: 210, Y: 70, W: 8, Color: types.CoinColor}, ops[1])
	assert.Equal(t, OpText, ops[2].Kind)
	assert.Equal(t, "₿", ops[2].Text)
	assert.Equal(t, types.Background, app.Canvas.Background())

	app.Canvas.Clear(types.OverlayColor)
	assert.Empty(t, app.Canvas.Ops())
	assert.Equal(t, types.OverlayColor, app.Canvas.Background())
}
