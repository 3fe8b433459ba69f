package game

import (
	"fmt"

	"crypto-snake/game/types"
)

const (
	coinGlyph     = "₿"
	coinGlyphSize = 12
	titleSize     = 30
	subtitleSize  = 20
)

// Render draws the current state onto the surface. In the game over phase
// the board is dimmed and the final score is drawn over it.
func (g *Game) Render() {
	width, height := g.surface.Size()
	g.surface.Clear(types.Background)

	if g.phase == Idle {
		return
	}

	for _, p := range g.snake.Body {
		g.surface.FillRect(
			p.X*types.CellSize,
			p.Y*types.CellSize,
			types.CellSize-2,
			types.CellSize-2,
			types.SnakeColor)
	}

	coin := g.coinMgr.Coin()
	cx := coin.X*types.CellSize + types.CellSize/2
	cy := coin.Y*types.CellSize + types.CellSize/2
	g.surface.FillCircle(cx, cy, types.CellSize/2-2, types.CoinColor)
	g.surface.DrawText(coinGlyph, cx, cy, coinGlyphSize, types.Background)

	if g.phase == GameOver {
		g.surface.FillRect(0, 0, width, height, types.OverlayColor)
		g.surface.DrawText("Game Over!", width/2, height/2, titleSize, types.SnakeColor)
		g.surface.DrawText(fmt.Sprintf("Final Score: %d", g.score), width/2, height/2+40, subtitleSize, types.SnakeColor)
	}
}
