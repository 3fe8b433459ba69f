package ai

import (
	"math"

	"crypto-snake/game/types"

	"golang.org/x/exp/rand"
)

// Rewards
const (
	RewardCloser  = 0.5
	RewardFurther = -0.3
	RewardCoin    = 1.0
	RewardDeath   = -1.0
)

// State is what the agent sees of the board
type State struct {
	CoinDir [2]int  // Coin direction relative to head (x, y), each -1, 0 or 1
	Dangers [4]bool // Danger one cell away, indexed by Direction (up, right, down, left)
	Heading types.Direction
}

// QTable maps a state to the value of each action, indexed by Direction
type QTable map[State][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	rng          *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.05,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// allowedActions excludes the reversal of the current heading
func allowedActions(s State) []types.Direction {
	actions := make([]types.Direction, 0, 3)
	for _, d := range types.Directions {
		if d != s.Heading.Opposite() {
			actions = append(actions, d)
		}
	}
	return actions
}

// values returns the row for s, seeding unseen states with a prior that
// avoids danger and leans towards the coin
func (q *QLearning) values(s State) [4]float64 {
	if row, ok := q.QTable[s]; ok {
		return row
	}
	var row [4]float64
	for _, d := range types.Directions {
		v := d.Vector()
		switch {
		case s.Dangers[d]:
			row[d] = RewardDeath
		case v.X != 0 && v.X == s.CoinDir[0], v.Y != 0 && v.Y == s.CoinDir[1]:
			row[d] = 0.1
		}
	}
	q.QTable[s] = row
	return row
}

// GetAction picks an epsilon-greedy action that never reverses the heading
func (q *QLearning) GetAction(s State) types.Direction {
	actions := allowedActions(s)

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return actions[q.rng.Intn(len(actions))]
	}
	return q.bestAction(s, actions)
}

func (q *QLearning) bestAction(s State, actions []types.Direction) types.Direction {
	row := q.values(s)
	best := actions[0]
	bestValue := math.Inf(-1)
	for _, a := range actions {
		if row[a] > bestValue {
			bestValue = row[a]
			best = a
		}
	}
	return best
}

// Update applies the Q-learning rule for one transition. A terminal
// transition has no future value.
func (q *QLearning) Update(s State, action types.Direction, reward float64, next State, terminal bool) {
	row := q.values(s)

	future := 0.0
	if !terminal {
		nextRow := q.values(next)
		future = math.Inf(-1)
		for _, a := range allowedActions(next) {
			future = math.Max(future, nextRow[a])
		}
	}

	row[action] += q.LearningRate * (reward + q.Discount*future - row[action])
	q.QTable[s] = row
	q.TotalReward += reward
}
