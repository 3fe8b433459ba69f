package manager

import (
	"crypto-snake/game/entity"
	"crypto-snake/game/types"

	"golang.org/x/exp/rand"
)

// CoinManager owns the coin and the RNG that places it
type CoinManager struct {
	grid types.Grid
	coin entity.Coin
	rng  *rand.Rand
}

func NewCoinManager(grid types.Grid, seed uint64) *CoinManager {
	return &CoinManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Spawn moves the coin to a uniformly random cell. Cells under the snake are
// not excluded, so a coin may appear on the body.
func (cm *CoinManager) Spawn() types.Point {
	if cm.grid.Width <= 0 || cm.grid.Height <= 0 {
		return cm.coin.Position
	}
	cm.coin.Position = types.Point{
		X: cm.rng.Intn(cm.grid.Width),
		Y: cm.rng.Intn(cm.grid.Height),
	}
	return cm.coin.Position
}

// Place forces the coin onto p
func (cm *CoinManager) Place(p types.Point) {
	cm.coin.Position = p
}

func (cm *CoinManager) Coin() types.Point {
	return cm.coin.Position
}

func (cm *CoinManager) IsCoin(p types.Point) bool {
	return cm.coin.Position == p
}
