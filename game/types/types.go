package types

import "time"

// Point is a cell position on the grid
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// GridFor derives the grid from a surface size in pixels. The grid is never
// smaller than one cell.
func GridFor(pixelWidth, pixelHeight int) Grid {
	return Grid{
		Width:  max(pixelWidth/CellSize, 1),
		Height: max(pixelHeight/CellSize, 1),
	}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Color is an RGBA color handed to the rendering surface
type Color struct {
	R, G, B, A uint8
}

// Game constants
const (
	CellSize  = 20 // Pixels per grid cell
	CoinValue = 10 // Base points per coin, scaled by the difficulty multiplier
	MinSpeed  = 50 * time.Millisecond
)

// Origin is where every new snake starts
var Origin = Point{X: 5, Y: 5}

// Palette
var (
	Background   = Color{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	SnakeColor   = Color{R: 0xf7, G: 0x93, B: 0x1a, A: 0xff}
	CoinColor    = Color{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	OverlayColor = Color{R: 0x00, G: 0x00, B: 0x00, A: 0xb3}
)
