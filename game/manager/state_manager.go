package manager

import (
	"sync"
	"time"
)

const maxHistory = 50

// Result is the outcome of one finished game
type Result struct {
	SessionID  string        `json:"sessionId"`
	Difficulty string        `json:"difficulty"`
	Score      int           `json:"score"`
	CoinsEaten int           `json:"coinsEaten"`
	Reason     string        `json:"reason"`
	Duration   time.Duration `json:"duration"`
	EndedAt    time.Time     `json:"endedAt"`
}

// StateManager keeps the scoreboard for the running process. Nothing is
// written to disk; a new process starts from zero.
type StateManager struct {
	mu        sync.RWMutex
	highScore int
	history   []Result
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]Result, 0, maxHistory),
	}
}

// Record adds a finished game and reports whether it set a new high score
func (sm *StateManager) Record(r Result) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, r)

	if r.Score > sm.highScore {
		sm.highScore = r.Score
		return true
	}
	return false
}

func (sm *StateManager) HighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

// History returns the recorded games, oldest first
func (sm *StateManager) History() []Result {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make([]Result, len(sm.history))
	copy(out, sm.history)
	return out
}

// AverageScore is the mean score over the kept history
func (sm *StateManager) AverageScore() float64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.history))
}
