// Package breakout implements Breakout with falling power-ups.
// The simulation runs in a 1000x400 world with ball positions given by
// their top-left corner; rendering projects the world onto the terminal.
package breakout

import (
	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = ""
	if preset == "" {
		return
	}
	if p, err := config.ParsePreset(preset); err == nil {
		difficultyPreset = p
	}
}

// Game implements Breakout.
type Game struct {
	cfg     config.BreakoutConfig
	custom  bool
	runtime core.RuntimeConfig
	view    core.Viewport

	rng     *core.RNG
	loop    *core.LoopDriver
	sched   core.Scheduler
	phase   *core.Machine
	session *core.Session
	events  core.Events
	elapsed float64

	paddleX     float64
	paddleW     float64
	speedFactor float64
	balls       []Ball
	bricks      []Brick
	powerUps    []PowerUp
}

// New creates a Breakout game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Breakout game with a fixed configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, custom: true}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Reset builds a fresh wall and cancels every pending timed effect.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.custom {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBreakoutPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.runtime = rc
	g.view = layout(g.cfg, rc.ScreenW, rc.ScreenH)

	g.sched.CancelAll()
	g.rng = core.NewRNG(rc.Seed)
	g.loop = core.NewLoopDriver()
	g.phase = core.NewMachine()
	if g.session == nil {
		g.session = core.NewSession(g.cfg.Gameplay.Lives, rc.OnScore)
	} else {
		g.session.SetOnScore(rc.OnScore)
		g.session.Reset(g.cfg.Gameplay.Lives)
	}
	g.sched.Track(g.session)
	g.events.Drain()
	g.elapsed = 0

	g.paddleW = g.cfg.Paddle.Width
	g.paddleX = g.cfg.World.Width/2 - g.paddleW/2
	g.speedFactor = 1
	g.balls = []Ball{g.serveBall(g.cfg.Ball.Speed)}
	g.bricks = buildWall(g.cfg)
	g.powerUps = nil
}

// Step applies input and advances the simulation to in.At.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.phase.Phase().Terminal() {
		g.restart()
	}
	if in.Has(core.ActionPause) {
		g.phase.TogglePause()
	}
	if g.phase.Phase() == core.PhaseReady && (in.Has(core.ActionConfirm) || in.Has(core.ActionFire)) {
		g.phase.Start()
		g.events.Emit(core.EventStart, 0)
	}

	if g.phase.Running() {
		g.movePaddle(in)
	}

	dt := g.loop.Advance(in.At, g.phase.Running())
	if dt > 0 {
		g.update(dt)
	}

	return core.StepResult{State: g.State(), Events: g.events.Drain()}
}

func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = int64(g.rng.Next() >> 1) //#nosec G115 -- shifted to fit int64
	g.Reset(rc)
}

// movePaddle follows the mouse (centered on the pointer) and Left/Right.
func (g *Game) movePaddle(in core.InputFrame) {
	if in.HasPointer && g.view.Contains(in.PointerX, in.PointerY) {
		g.paddleX = g.view.WorldX(in.PointerX) - g.paddleW/2
	}
	if in.Has(core.ActionLeft) {
		g.paddleX -= g.cfg.Paddle.KeyStep
	}
	if in.Has(core.ActionRight) {
		g.paddleX += g.cfg.Paddle.KeyStep
	}
	g.clampPaddle()
}

func (g *Game) clampPaddle() {
	g.paddleX = core.ClampF(g.paddleX, 0, max(g.cfg.World.Width-g.paddleW, 0))
}

// update advances the simulation by dt seconds.
func (g *Game) update(dt float64) {
	g.elapsed += dt
	g.sched.Advance(dt)

	for i := 0; i < len(g.balls); {
		b := &g.balls[i]
		g.moveBall(b, dt)

		if b.Pos.Y > g.cfg.World.Height {
			if len(g.balls) > 1 {
				g.balls = append(g.balls[:i], g.balls[i+1:]...)
				continue
			}
			if !g.loseLife() {
				return
			}
		}

		g.hitBrick(&g.balls[i])
		i++
	}

	g.updatePowerUps(dt)

	if visibleBricks(g.bricks) == 0 {
		g.nextWall()
	}
}

// loseLife handles the last ball leaving the world. Returns false when the
// run ended.
func (g *Game) loseLife() bool {
	lives := g.session.LoseLife()
	g.events.Emit(core.EventLifeLost, lives)
	if lives == 0 {
		g.phase.Finish(false)
		g.events.Emit(core.EventGameOver, g.session.Score())
		g.session.Report(g.session.Score())
		return false
	}
	vx := g.cfg.Ball.Speed
	if g.rng.Float64() <= 0.5 {
		vx = -vx
	}
	g.balls[0] = g.serveBall(vx)
	return true
}

// nextWall rewards a cleared wall and starts the next one with a single ball.
func (g *Game) nextWall() {
	g.session.AddScore(g.cfg.Bricks.ClearBonus)
	g.session.SetLevel(g.session.Level() + 1)
	g.events.Emit(core.EventLevelUp, g.session.Level())
	g.bricks = buildWall(g.cfg)
	g.balls = []Ball{g.serveBall(g.cfg.Ball.Speed)}
}

func (g *Game) paddleY() float64 {
	return g.cfg.World.Height - g.cfg.Paddle.Height - g.cfg.Paddle.Bottom
}

func (g *Game) paddleBox() core.Box {
	return core.Box{X: g.paddleX, Y: g.paddleY(), W: g.paddleW, H: g.cfg.Paddle.Height}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.StateFrom(g.session, g.phase.Phase())
}

// Balls returns a copy of the balls in play.
func (g *Game) Balls() []Ball {
	return append([]Ball(nil), g.balls...)
}

// Bricks returns the wall.
func (g *Game) Bricks() []Brick {
	return g.bricks
}

// Paddle returns the paddle box.
func (g *Game) Paddle() core.Box {
	return g.paddleBox()
}

// SpeedFactor returns the movement scale applied to every ball.
func (g *Game) SpeedFactor() float64 {
	return g.speedFactor
}
