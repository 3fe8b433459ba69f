package ui

import (
	"fmt"
	"strings"

	"crypto-snake/game"
)

// Scoreboard is the game.Display shown beside the board
type Scoreboard struct {
	Score      int
	CoinsEaten int
}

func (s *Scoreboard) SetScore(score int) {
	s.Score = score
}

func (s *Scoreboard) SetCoinsEaten(count int) {
	s.CoinsEaten = count
}

// Lines renders the side panel text
func (s *Scoreboard) Lines(app *App) []string {
	snap := app.Game.Snapshot()
	lines := []string{
		"CRYPTO SNAKE",
		"",
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Coins: %d", s.CoinsEaten),
		fmt.Sprintf("Best:  %d", app.Game.Scores().HighScore()),
		"",
		fmt.Sprintf("Difficulty: %s", app.Difficulty.Name),
	}
	if snap.Phase == game.Running {
		lines = append(lines, fmt.Sprintf("Speed: %dms", snap.Speed.Milliseconds()))
	}
	if app.AutopilotOn() {
		lines = append(lines, "Autopilot: on")
	}

	lines = append(lines, "")
	switch snap.Phase {
	case game.Idle, game.GameOver:
		lines = append(lines, "Enter/Space: start")
	}
	lines = append(lines,
		"Arrows: steer",
		"1-4: "+strings.Join(difficultyNames(), "/"),
		"A: autopilot",
		"Esc/Q: quit",
	)
	return lines
}
