package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned when a difficulty name is not in the table
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyProfile bundles the speed curve and scoring of a difficulty level
type DifficultyProfile struct {
	Name            string
	InitialSpeed    time.Duration // Step interval at the start of a game
	SpeedIncrease   time.Duration // Interval decrement per coin
	ScoreMultiplier int
}

// Difficulty profiles
var (
	Easy   = DifficultyProfile{Name: "easy", InitialSpeed: 200 * time.Millisecond, SpeedIncrease: 2 * time.Millisecond, ScoreMultiplier: 1}
	Medium = DifficultyProfile{Name: "medium", InitialSpeed: 150 * time.Millisecond, SpeedIncrease: 3 * time.Millisecond, ScoreMultiplier: 2}
	Hard   = DifficultyProfile{Name: "hard", InitialSpeed: 100 * time.Millisecond, SpeedIncrease: 4 * time.Millisecond, ScoreMultiplier: 3}
	Expert = DifficultyProfile{Name: "expert", InitialSpeed: 80 * time.Millisecond, SpeedIncrease: 5 * time.Millisecond, ScoreMultiplier: 4}

	// Classic is used when no difficulty selector is present: fixed speed, no ramp
	Classic = DifficultyProfile{Name: "classic", InitialSpeed: 150 * time.Millisecond, ScoreMultiplier: 1}
)

// Difficulties is the selectable table, in menu order
var Difficulties = []DifficultyProfile{Easy, Medium, Hard, Expert}

// LookupDifficulty finds a profile by name (case-insensitive)
func LookupDifficulty(name string) (DifficultyProfile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == Classic.Name {
		return Classic, nil
	}
	for _, d := range Difficulties {
		if d.Name == name {
			return d, nil
		}
	}
	return DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
