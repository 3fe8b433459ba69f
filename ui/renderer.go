package ui

import (
	"time"

	"crypto-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	minStatsPanel = 220
)

// The default raylib font has no ₿ glyph
var glyphFallback = map[string]string{"₿": "B"}

// Renderer replays the App's canvas into a raylib window with a stats panel
// on the right.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// WindowSize is the window needed for a canvas of the given pixel size
func WindowSize(canvasWidth, canvasHeight int) (int32, int32) {
	return int32(canvasWidth) + borderPadding*2 + minStatsPanel,
		int32(canvasHeight) + borderPadding*2
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.offsetX = borderPadding
	r.offsetY = borderPadding
	r.statsPanel = max(r.screenWidth/4, minStatsPanel)
}

func rlColor(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) Draw(app *App) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawCanvas(app.Canvas)
	r.drawStatsPanel(app)

	rl.EndDrawing()
}

func (r *Renderer) drawCanvas(c *Canvas) {
	width, height := c.Size()
	rl.DrawRectangle(r.offsetX, r.offsetY, int32(width), int32(height), rlColor(c.Background()))

	for _, op := range c.Ops() {
		x, y := r.offsetX+int32(op.X), r.offsetY+int32(op.Y)
		switch op.Kind {
		case OpRect:
			rl.DrawRectangle(x, y, int32(op.W), int32(op.H), rlColor(op.Color))
		case OpCircle:
			rl.DrawCircle(x, y, float32(op.W), rlColor(op.Color))
		case OpText:
			text := op.Text
			if alt, ok := glyphFallback[text]; ok {
				text = alt
			}
			size := int32(op.Size)
			textWidth := rl.MeasureText(text, size)
			rl.DrawText(text, x-textWidth/2, y-size/2, size, rlColor(op.Color))
		}
	}
}

func (r *Renderer) drawStatsPanel(app *App) {
	width, _ := app.Canvas.Size()
	statsX := r.offsetX + int32(width) + borderPadding*2
	statsY := r.offsetY

	fontSize := min(r.screenHeight/25, 20)
	lineHeight := fontSize + 6

	rl.DrawRectangle(statsX-borderPadding, 0, r.screenWidth-statsX+borderPadding, r.screenHeight, rl.DarkGray)

	for i, line := range app.Board.Lines(app) {
		color := rl.White
		if i == 0 {
			color = rlColor(types.SnakeColor)
		}
		rl.DrawText(line, statsX, statsY, fontSize, color)
		statsY += lineHeight
	}
}

var arrowKeys = []struct {
	key int32
	id  string
}{
	{rl.KeyUp, types.KeyArrowUp},
	{rl.KeyDown, types.KeyArrowDown},
	{rl.KeyLeft, types.KeyArrowLeft},
	{rl.KeyRight, types.KeyArrowRight},
}

var commandKeys = []struct {
	key int32
	cmd Command
}{
	{rl.KeyEnter, CmdStart},
	{rl.KeySpace, CmdStart},
	{rl.KeyQ, CmdQuit},
	{rl.KeyA, CmdAutopilot},
	{rl.KeyOne, CmdDifficulty1},
	{rl.KeyTwo, CmdDifficulty2},
	{rl.KeyThree, CmdDifficulty3},
	{rl.KeyFour, CmdDifficulty4},
}

// RunWindow opens the raylib window and runs the game loop until the window
// is closed (Esc) or Q is pressed.
func RunWindow(app *App) error {
	width, height := WindowSize(app.Canvas.Size())
	rl.InitWindow(width, height, "Crypto Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	renderer := NewRenderer()

	for !rl.WindowShouldClose() {
		for _, k := range arrowKeys {
			if rl.IsKeyPressed(k.key) {
				app.Key(k.id)
			}
		}
		for _, k := range commandKeys {
			if rl.IsKeyPressed(k.key) && app.Apply(k.cmd) {
				return nil
			}
		}

		app.Tick(secondsToDuration(rl.GetFrameTime()))
		renderer.Draw(app)
	}
	return nil
}

func secondsToDuration(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}
