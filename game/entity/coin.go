package entity

import "crypto-snake/game/types"

// Coin is the single collectible on the board
type Coin struct {
	Position types.Point
}
