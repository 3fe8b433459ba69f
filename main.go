package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"crypto-snake/audio"
	"crypto-snake/config"
	"crypto-snake/game"
	"crypto-snake/logging"
	"crypto-snake/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "crypto-snake:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.L()
	log.Infow("starting", "ui", cfg.UI, "difficulty", cfg.Difficulty.Name, "seed", cfg.Seed)

	var listeners []game.Listener
	if !cfg.Mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Play on without sound
			log.Warnw("audio disabled", "error", err)
		} else {
			defer sound.Close()
			listeners = append(listeners, sound)
		}
	}

	app := ui.NewApp(cfg, listeners...)

	switch cfg.UI {
	case config.UITerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		defer screen.Fini()
		err = ui.RunTerminal(app, screen)
		logSummary(app)
		return err
	default:
		err := ui.RunWindow(app)
		logSummary(app)
		return err
	}
}

func logSummary(app *ui.App) {
	scores := app.Game.Scores()
	logging.L().Infow("exiting",
		"games", len(scores.History()),
		"highScore", scores.HighScore(),
		"averageScore", scores.AverageScore())
}
