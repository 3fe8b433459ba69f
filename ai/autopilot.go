package ai

import (
	"crypto-snake/game"
	"crypto-snake/game/entity"
	"crypto-snake/game/manager"
	"crypto-snake/game/types"
	"crypto-snake/logging"
)

// Autopilot plays the game with a Q-learning agent. It steers through
// game.Pilot and learns the outcome of its last move on the next call; game
// over arrives through game.Listener. The table is kept in memory only.
type Autopilot struct {
	agent *QLearning

	session    string // Session of the pending transition
	hasLast    bool
	lastState  State
	lastAction types.Direction
	lastDist   int
	ateCoin    bool
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{agent: NewQLearning(seed)}
}

func (a *Autopilot) Agent() *QLearning {
	return a.agent
}

// Observe encodes a snapshot into the agent's state
func Observe(s game.Snapshot) State {
	head := s.Snake[0]
	cm := manager.NewCollisionManager(s.Grid)
	snake := &entity.Snake{Body: s.Snake}

	state := State{
		CoinDir: [2]int{sign(s.Coin.X - head.X), sign(s.Coin.Y - head.Y)},
		Heading: s.Direction,
	}
	for _, d := range types.Directions {
		state.Dangers[d] = cm.IsDanger(head.Add(d.Vector()), snake)
	}
	return state
}

func (a *Autopilot) Steer(s game.Snapshot) (types.Direction, bool) {
	if len(s.Snake) == 0 {
		return 0, false
	}
	// A restart mid-game leaves a move that no longer has an outcome
	if s.SessionID != a.session {
		a.Reset()
		a.session = s.SessionID
	}

	state := Observe(s)
	dist := manhattan(s.Snake[0], s.Coin)

	if a.hasLast {
		reward := 0.0
		switch {
		case a.ateCoin:
			reward = RewardCoin
		case dist < a.lastDist:
			reward = RewardCloser
		case dist > a.lastDist:
			reward = RewardFurther
		}
		a.agent.Update(a.lastState, a.lastAction, reward, state, false)
	}

	action := a.agent.GetAction(state)
	a.hasLast = true
	a.lastState = state
	a.lastAction = action
	a.lastDist = dist
	a.ateCoin = false
	return action, true
}

func (a *Autopilot) CoinEaten(ev game.Event) {
	a.ateCoin = true
}

// GameOver punishes the last move. Games the autopilot did not steer are
// ignored.
func (a *Autopilot) GameOver(ev game.Event) {
	if !a.hasLast {
		return
	}
	a.agent.Update(a.lastState, a.lastAction, RewardDeath, State{}, true)
	a.agent.GamesPlayed++
	a.Reset()

	logging.L().Debugw("autopilot game over",
		"games", a.agent.GamesPlayed,
		"score", ev.Score,
		"states", len(a.agent.QTable),
		"totalReward", a.agent.TotalReward)
}

// Reset forgets the pending transition, e.g. when a human takes over
func (a *Autopilot) Reset() {
	a.hasLast = false
	a.ateCoin = false
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattan(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}
