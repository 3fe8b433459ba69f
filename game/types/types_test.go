package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFor(t *testing.T) {
	assert.Equal(t, Grid{Width: 20, Height: 20}, GridFor(400, 400))
	assert.Equal(t, Grid{Width: 31, Height: 15}, GridFor(639, 300))
	assert.Equal(t, Grid{Width: 1, Height: 1}, GridFor(10, 0))
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 4, Height: 3}
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 3, Y: 2}))
	assert.False(t, g.Contains(Point{X: 4, Y: 2}))
	assert.False(t, g.Contains(Point{X: 3, Y: 3}))
	assert.False(t, g.Contains(Point{X: -1, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -1}))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, Point{}, d.Vector().Add(d.Opposite().Vector()))
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]Direction{
		"ArrowUp":    Up,
		"ArrowDown":  Down,
		"ArrowLeft":  Left,
		"ArrowRight": Right,
	}
	for key, want := range tests {
		got, ok := ParseKey(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got)
	}

	for _, key := range []string{"", "w", "Up", "arrowup", "Enter"} {
		_, ok := ParseKey(key)
		assert.False(t, ok, key)
	}
}

func TestLookupDifficulty(t *testing.T) {
	d, err := LookupDifficulty("Hard")
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, d.InitialSpeed)
	assert.Equal(t, 4*time.Millisecond, d.SpeedIncrease)
	assert.Equal(t, 3, d.ScoreMultiplier)

	d, err = LookupDifficulty("classic")
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, d.InitialSpeed)
	assert.Zero(t, d.SpeedIncrease)

	_, err = LookupDifficulty("nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestDifficultyTable(t *testing.T) {
	require.Len(t, Difficulties, 4)
	prev := time.Hour
	for i, d := range Difficulties {
		assert.Equal(t, i+1, d.ScoreMultiplier, d.Name)
		assert.Less(t, d.InitialSpeed, prev, d.Name)
		assert.Greater(t, d.InitialSpeed, MinSpeed, d.Name)
		prev = d.InitialSpeed
	}
}
