package game

import (
	"fmt"
	"time"

	"crypto-snake/game/entity"
	"crypto-snake/game/manager"
	"crypto-snake/game/types"
	"crypto-snake/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the state of the game machine
type Phase int

const (
	Idle Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Config carries the collaborators and settings of a Game. Zero values are
// usable: no display, no listeners, seed 0, a fresh scoreboard.
type Config struct {
	Display   Display
	Listeners []Listener
	Pilot     Pilot
	Scores    *manager.StateManager
	Logger    *zap.SugaredLogger
	Seed      uint64
	Now       func() time.Time
}

// Game owns one snake session and its step/collision/render cycle. It is not
// safe for concurrent use; frontends drive it from a single loop.
type Game struct {
	Grid types.Grid

	surface      Surface
	display      Display
	listeners    []Listener
	pilot        Pilot
	collisionMgr *manager.CollisionManager
	coinMgr      *manager.CoinManager
	stateMgr     *manager.StateManager
	scheduler    Scheduler
	log          *zap.SugaredLogger
	now          func() time.Time

	sessionID  string
	snake      *entity.Snake
	direction  types.Direction
	score      int
	coinsEaten int
	speed      time.Duration
	difficulty types.DifficultyProfile
	phase      Phase
	reason     manager.CollisionType
	startTime  time.Time
}

// NewGame builds an idle game sized to the surface
func NewGame(surface Surface, cfg Config) *Game {
	width, height := surface.Size()
	grid := types.GridFor(width, height)

	g := &Game{
		Grid:         grid,
		surface:      surface,
		display:      cfg.Display,
		listeners:    cfg.Listeners,
		pilot:        cfg.Pilot,
		collisionMgr: manager.NewCollisionManager(grid),
		coinMgr:      manager.NewCoinManager(grid, cfg.Seed),
		stateMgr:     cfg.Scores,
		log:          cfg.Logger,
		now:          cfg.Now,
		snake:        entity.NewSnake(types.Origin),
		direction:    types.Right,
		difficulty:   types.Classic,
		speed:        types.Classic.InitialSpeed,
	}
	if g.display == nil {
		g.display = nopDisplay{}
	}
	if g.stateMgr == nil {
		g.stateMgr = manager.NewStateManager()
	}
	if g.log == nil {
		g.log = logging.L()
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// AddListener registers a listener for coin and game over events
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// SetPilot installs (or with nil removes) an automatic driver
func (g *Game) SetPilot(p Pilot) {
	g.pilot = p
}

// Start resets the session and arms the scheduler at the difficulty's initial
// speed. Any running session is discarded.
func (g *Game) Start(difficulty types.DifficultyProfile) {
	g.scheduler.Cancel()

	g.sessionID = uuid.New().String()
	g.snake = entity.NewSnake(types.Origin)
	g.direction = types.Right
	g.score = 0
	g.coinsEaten = 0
	g.difficulty = difficulty
	g.speed = difficulty.InitialSpeed
	g.reason = manager.NoCollision
	g.coinMgr.Spawn()
	g.startTime = g.now()
	g.phase = Running

	g.display.SetScore(0)
	g.display.SetCoinsEaten(0)

	g.scheduler.Arm(g.speed)
	g.log.Infow("game started",
		"session", g.sessionID,
		"difficulty", difficulty.Name,
		"speed", g.speed,
		"grid", fmt.Sprintf("%dx%d", g.Grid.Width, g.Grid.Height))

	g.Render()
}

// SetDirection sets the direction used by the next step. A reversal of the
// current direction is ignored; otherwise the last call before a step wins.
func (g *Game) SetDirection(dir types.Direction) {
	if dir == g.direction.Opposite() {
		return
	}
	g.direction = dir
}

// HandleKey applies an arrow key identifier and reports whether it was one
func (g *Game) HandleKey(id string) bool {
	dir, ok := types.ParseKey(id)
	if !ok {
		return false
	}
	g.SetDirection(dir)
	return true
}

// PlaceCoin forces the coin onto p
func (g *Game) PlaceCoin(p types.Point) {
	g.coinMgr.Place(p)
}

// Update feeds elapsed time to the scheduler and runs every step that became
// due. It returns the number of steps run. An installed pilot is consulted
// before each step, the same way a key press would be.
func (g *Game) Update(elapsed time.Duration) int {
	g.scheduler.Advance(elapsed)

	steps := 0
	for g.phase == Running && g.scheduler.Next() {
		if g.pilot != nil {
			if dir, ok := g.pilot.Steer(g.Snapshot()); ok {
				g.SetDirection(dir)
			}
		}
		g.Step()
		steps++
	}
	return steps
}

// Step advances the game by one tick
func (g *Game) Step() {
	if g.phase != Running {
		return
	}

	newHead := g.snake.GetHead().Add(g.direction.Vector())

	if collision := g.collisionMgr.Check(newHead, g.snake); collision != manager.NoCollision {
		g.gameOver(collision)
		return
	}

	g.snake.Grow(newHead)

	if g.coinMgr.IsCoin(newHead) {
		g.eatCoin()
	} else {
		g.snake.DropTail()
	}

	g.Render()
}

func (g *Game) eatCoin() {
	g.score += types.CoinValue * g.difficulty.ScoreMultiplier
	g.coinsEaten++
	g.display.SetScore(g.score)
	g.display.SetCoinsEaten(g.coinsEaten)
	g.coinMgr.Spawn()

	if g.speed > types.MinSpeed {
		g.speed -= g.difficulty.SpeedIncrease
		if g.speed < types.MinSpeed {
			g.speed = types.MinSpeed
		}
		g.scheduler.SetInterval(g.speed)
		g.log.Debugw("speed changed", "session", g.sessionID, "speed", g.speed)
	}

	ev := g.event()
	for _, l := range g.listeners {
		l.CoinEaten(ev)
	}
}

func (g *Game) gameOver(reason manager.CollisionType) {
	g.scheduler.Cancel()
	g.phase = GameOver
	g.reason = reason

	newHigh := g.stateMgr.Record(manager.Result{
		SessionID:  g.sessionID,
		Difficulty: g.difficulty.Name,
		Score:      g.score,
		CoinsEaten: g.coinsEaten,
		Reason:     reason.String(),
		Duration:   g.now().Sub(g.startTime),
		EndedAt:    g.now(),
	})
	g.log.Infow("game over",
		"session", g.sessionID,
		"reason", reason.String(),
		"score", g.score,
		"coins", g.coinsEaten,
		"length", g.snake.Len(),
		"highScore", newHigh)

	ev := g.event()
	ev.NewHighScore = newHigh
	for _, l := range g.listeners {
		l.GameOver(ev)
	}

	g.Render()
}

func (g *Game) event() Event {
	return Event{
		SessionID:  g.sessionID,
		Difficulty: g.difficulty.Name,
		Score:      g.score,
		CoinsEaten: g.coinsEaten,
		Speed:      g.speed,
		Head:       g.snake.GetHead(),
		Reason:     g.reason,
	}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Scores() *manager.StateManager {
	return g.stateMgr
}

// Snapshot is a read-only copy of the session
type Snapshot struct {
	SessionID  string
	Phase      Phase
	Grid       types.Grid
	Snake      []types.Point
	Direction  types.Direction
	Coin       types.Point
	Score      int
	CoinsEaten int
	Speed      time.Duration
	Difficulty types.DifficultyProfile
	Reason     manager.CollisionType
	Scheduled  bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  g.sessionID,
		Phase:      g.phase,
		Grid:       g.Grid,
		Snake:      g.snake.Segments(),
		Direction:  g.direction,
		Coin:       g.coinMgr.Coin(),
		Score:      g.score,
		CoinsEaten: g.coinsEaten,
		Speed:      g.speed,
		Difficulty: g.difficulty,
		Reason:     g.reason,
		Scheduled:  g.scheduler.Armed(),
	}
}
