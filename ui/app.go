package ui

import (
	"time"

	"crypto-snake/ai"
	"crypto-snake/config"
	"crypto-snake/game"
	"crypto-snake/game/types"
	"crypto-snake/logging"
)

// autopilotRestart is how long the game over screen stays up in demo mode
const autopilotRestart = 1500 * time.Millisecond

// Command is a menu action decoded from a key press
type Command int

const (
	CmdNone Command = iota
	CmdStart
	CmdQuit
	CmdAutopilot
	CmdDifficulty1 // CmdDifficulty1+i selects types.Difficulties[i]
	CmdDifficulty2
	CmdDifficulty3
	CmdDifficulty4
)

// App wires a Game to a Canvas and Scoreboard and handles the menu. Both
// frontends drive it from a single loop.
type App struct {
	Game       *game.Game
	Canvas     *Canvas
	Board      *Scoreboard
	Difficulty types.DifficultyProfile

	autopilot *ai.Autopilot
	pilotOn   bool
	idle      time.Duration
}

func NewApp(cfg *config.Config, listeners ...game.Listener) *App {
	canvas := NewCanvas(cfg.Width, cfg.Height)
	board := &Scoreboard{}
	pilot := ai.NewAutopilot(cfg.Seed)

	g := game.NewGame(canvas, game.Config{
		Display:   board,
		Listeners: append(listeners, pilot),
		Seed:      cfg.Seed,
		Logger:    logging.L(),
	})

	app := &App{
		Game:       g,
		Canvas:     canvas,
		Board:      board,
		Difficulty: cfg.Difficulty,
		autopilot:  pilot,
	}
	app.SetAutopilot(cfg.Autopilot)
	g.Render()
	return app
}

// Key forwards an arrow key identifier to the game
func (a *App) Key(id string) bool {
	return a.Game.HandleKey(id)
}

// Apply runs a menu command and reports whether the app should quit
func (a *App) Apply(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return true
	case CmdStart:
		a.Game.Start(a.Difficulty)
	case CmdAutopilot:
		a.SetAutopilot(!a.pilotOn)
	case CmdDifficulty1, CmdDifficulty2, CmdDifficulty3, CmdDifficulty4:
		// Takes effect on the next start
		a.Difficulty = types.Difficulties[cmd-CmdDifficulty1]
		logging.L().Infow("difficulty selected", "difficulty", a.Difficulty.Name)
	}
	return false
}

func (a *App) SetAutopilot(on bool) {
	a.pilotOn = on
	a.idle = 0
	if on {
		a.Game.SetPilot(a.autopilot)
	} else {
		a.Game.SetPilot(nil)
		a.autopilot.Reset()
	}
	logging.L().Infow("autopilot", "on", on)
}

func (a *App) AutopilotOn() bool {
	return a.pilotOn
}

// Tick advances the game by the frame's elapsed time. In autopilot mode a
// finished or idle game restarts after a short pause.
func (a *App) Tick(elapsed time.Duration) {
	if a.pilotOn && a.Game.Phase() != game.Running {
		a.idle += elapsed
		if a.idle >= autopilotRestart {
			a.idle = 0
			a.Game.Start(a.Difficulty)
		}
		return
	}
	a.Game.Update(elapsed)
}

func difficultyNames() []string {
	names := make([]string, len(types.Difficulties))
	for i, d := range types.Difficulties {
		names[i] = d.Name
	}
	return names
}
