package snake

import (
	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the grid step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite reports whether d and o point in opposite directions.
func (d Direction) Opposite(o Direction) bool {
	return (d+2)%4 == o
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point is a grid cell.
type Point struct {
	X, Y int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Snake on a fixed grid.
type Game struct {
	cfg     config.SnakeConfig
	custom  bool // cfg was injected, skip loading
	runtime core.RuntimeConfig

	rng     *core.RNG
	loop    *core.LoopDriver
	beat    *core.Interval
	phase   *core.Machine
	session *core.Session
	events  core.Events
	moves   uint64

	snake     []Point // head at index 0
	direction Direction
	lastMoved Direction // direction of the most recent move
	food      Point
}

// New creates a Snake game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with a fixed configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, custom: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.custom {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		g.cfg = cfg
	}
	g.runtime = rc

	g.rng = core.NewRNG(rc.Seed)
	g.loop = core.NewLoopDriver()
	g.beat = core.NewInterval(g.cfg.Timing.StepInterval())
	g.phase = core.NewMachine()
	if g.session == nil {
		g.session = core.NewSession(0, rc.OnScore)
	} else {
		g.session.SetOnScore(rc.OnScore)
		g.session.Reset(0)
	}
	g.events.Drain()
	g.moves = 0

	g.snake = []Point{{X: g.cfg.Gameplay.StartX, Y: g.cfg.Gameplay.StartY}}
	g.direction = DirRight
	g.lastMoved = DirRight
	g.food = Point{X: g.cfg.Gameplay.FoodX, Y: g.cfg.Gameplay.FoodY}
}

// Step applies input and advances the snake by every beat elapsed since the
// previous frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.phase.Phase().Terminal() {
		g.restart()
	}
	if in.Has(core.ActionPause) {
		g.phase.TogglePause()
	}

	switch g.phase.Phase() {
	case core.PhaseReady:
		g.handleStart(in)
	case core.PhaseRunning:
		g.steer(in)
	}

	dt := g.loop.Advance(in.At, g.phase.Running())
	for n := g.beat.Add(dt); n > 0 && g.phase.Running(); n-- {
		g.advance()
	}

	return core.StepResult{State: g.State(), Events: g.events.Drain()}
}

func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = int64(g.rng.Next() >> 1) //#nosec G115 -- shifted to fit int64
	g.Reset(rc)
}

// handleStart begins the run on an arrow key (heading that way) or Enter.
func (g *Game) handleStart(in core.InputFrame) {
	if d, ok := directionFrom(in); ok {
		g.direction = d
	} else if !in.Has(core.ActionConfirm) && !in.Has(core.ActionFire) {
		return
	}
	g.lastMoved = g.direction
	g.phase.Start()
	g.beat.Reset()
	g.events.Emit(core.EventStart, 0)
}

// steer buffers a direction change. Reversals are checked against the last
// move, not the last buffered direction, so several presses inside one beat
// cannot fold the snake onto itself.
func (g *Game) steer(in core.InputFrame) {
	d, ok := directionFrom(in)
	if !ok || d.Opposite(g.lastMoved) {
		return
	}
	g.direction = d
}

func directionFrom(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirRight, false
}

// advance moves the snake one cell.
func (g *Game) advance() {
	g.moves++
	g.lastMoved = g.direction

	d := g.direction.Delta()
	head := Point{X: g.snake[0].X + d.X, Y: g.snake[0].Y + d.Y}

	if !g.inGrid(head) || g.occupied(head) {
		g.finish(false)
		return
	}

	g.snake = append([]Point{head}, g.snake...)

	if head == g.food {
		g.session.AddScore(g.cfg.Gameplay.FoodPoints)
		g.events.Emit(core.EventFood, g.session.Score())
		if !g.spawnFood() {
			g.finish(true)
		}
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) finish(won bool) {
	if !g.phase.Finish(won) {
		return
	}
	if won {
		g.events.Emit(core.EventWin, g.session.Score())
	} else {
		g.events.Emit(core.EventGameOver, g.session.Score())
	}
	g.session.Report(g.session.Score())
}

func (g *Game) inGrid(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Grid.Width && p.Y >= 0 && p.Y < g.cfg.Grid.Height
}

// occupied checks the whole body, tail included.
func (g *Game) occupied(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a random free cell. Returns false when the
// snake fills the board.
func (g *Game) spawnFood() bool {
	free := make([]Point, 0, g.cfg.Grid.Width*g.cfg.Grid.Height-len(g.snake))
	for y := 0; y < g.cfg.Grid.Height; y++ {
		for x := 0; x < g.cfg.Grid.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.StateFrom(g.session, g.phase.Phase())
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []Point {
	return append([]Point(nil), g.snake...)
}

// Food returns the food cell.
func (g *Game) Food() Point {
	return g.food
}
