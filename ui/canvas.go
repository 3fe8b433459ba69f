package ui

import "crypto-snake/game/types"

// OpKind identifies a recorded draw command
type OpKind int

const (
	OpRect OpKind = iota
	OpCircle
	OpText
)

// Op is one recorded draw command. For circles W is the radius; for text
// (X, Y) is the centre and Size the font size.
type Op struct {
	Kind  OpKind
	X, Y  int
	W, H  int
	Size  int
	Text  string
	Color types.Color
}

// Canvas is a game.Surface that records the last rendered frame. Frontends
// replay it every frame, so the game can render between frames.
type Canvas struct {
	width, height int
	background    types.Color
	ops           []Op
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:      width,
		height:     height,
		background: types.Background,
	}
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear starts a new frame
func (c *Canvas) Clear(color types.Color) {
	c.background = color
	c.ops = c.ops[:0]
}

func (c *Canvas) FillRect(x, y, w, h int, color types.Color) {
	c.ops = append(c.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: color})
}

func (c *Canvas) FillCircle(cx, cy, radius int, color types.Color) {
	c.ops = append(c.ops, Op{Kind: OpCircle, X: cx, Y: cy, W: radius, Color: color})
}

func (c *Canvas) DrawText(text string, cx, cy, size int, color types.Color) {
	c.ops = append(c.ops, Op{Kind: OpText, X: cx, Y: cy, Size: size, Text: text, Color: color})
}

// Background is the clear color of the current frame
func (c *Canvas) Background() types.Color {
	return c.background
}

// Ops returns the commands of the current frame in draw order
func (c *Canvas) Ops() []Op {
	return c.ops
}
