package game

import (
	"time"

	"crypto-snake/game/manager"
	"crypto-snake/game/types"
)

// Surface is the 2D drawing target. Coordinates are pixels.
type Surface interface {
	Size() (width, height int)
	Clear(c types.Color)
	FillRect(x, y, w, h int, c types.Color)
	FillCircle(cx, cy, radius int, c types.Color)
	// DrawText draws text centred on (cx, cy)
	DrawText(text string, cx, cy, size int, c types.Color)
}

// Display receives the plain-text counters shown next to the board
type Display interface {
	SetScore(score int)
	SetCoinsEaten(count int)
}

// Listener is notified of game events after state has been updated
type Listener interface {
	CoinEaten(ev Event)
	GameOver(ev Event)
}

// Pilot steers the snake automatically. Steer is called before each
// scheduled step; returning ok == false leaves the direction unchanged.
type Pilot interface {
	Steer(s Snapshot) (dir types.Direction, ok bool)
}

// Event describes a coin pickup or the end of a game
type Event struct {
	SessionID    string
	Difficulty   string
	Score        int
	CoinsEaten   int
	Speed        time.Duration
	Head         types.Point
	Reason       manager.CollisionType
	NewHighScore bool
}

type nopDisplay struct{}

func (nopDisplay) SetScore(int) {}
func (nopDisplay) SetCoinsEaten(int) {}
