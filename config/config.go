package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"crypto-snake/game/types"
)

// Frontends
const (
	UIWindow   = "window"
	UITerminal = "terminal"
)

// Config holds the command-line settings of the game
type Config struct {
	Difficulty types.DifficultyProfile
	UI         string
	Width      int // Canvas width in pixels
	Height     int // Canvas height in pixels
	Seed       uint64
	Autopilot  bool
	Mute       bool
	LogFile    string
	LogLevel   string
}

// Load parses args (without the program name) into a validated Config
func Load(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("crypto-snake", flag.ContinueOnError)
	fs.SetOutput(output)

	difficulty := fs.String("difficulty", types.Easy.Name, "Difficulty: easy, medium, hard, expert or classic")
	ui := fs.String("ui", UIWindow, "Frontend: window or terminal")
	width := fs.Int("width", 400, "Canvas width in pixels")
	height := fs.Int("height", 400, "Canvas height in pixels")
	seed := fs.Int64("seed", 0, "Coin placement seed (0 = time based)")
	autopilot := fs.Bool("autopilot", false, "Let the learning agent play")
	mute := fs.Bool("mute", false, "Disable sound")
	logFile := fs.String("log", "snake.log", "Log file path")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	profile, err := types.LookupDifficulty(*difficulty)
	if err != nil {
		return nil, fmt.Errorf("flag -difficulty: %w", err)
	}

	cfg := &Config{
		Difficulty: profile,
		UI:         *ui,
		Width:      *width,
		Height:     *height,
		Autopilot:  *autopilot,
		Mute:       *mute,
		LogFile:    *logFile,
		LogLevel:   *logLevel,
	}
	if *seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	} else {
		cfg.Seed = uint64(*seed)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that flags alone cannot constrain
func (c *Config) Validate() error {
	var errs []error
	if c.UI != UIWindow && c.UI != UITerminal {
		errs = append(errs, fmt.Errorf("flag -ui: unknown frontend %q", c.UI))
	}
	// The start cell (5,5) must lie on the grid
	minSide := (types.Origin.X + 1) * types.CellSize
	if c.Width < minSide || c.Height < minSide {
		errs = append(errs, fmt.Errorf("canvas %dx%d is smaller than %dx%d", c.Width, c.Height, minSide, minSide))
	}
	if c.LogFile == "" {
		errs = append(errs, errors.New("flag -log: empty path"))
	}
	return errors.Join(errs...)
}
