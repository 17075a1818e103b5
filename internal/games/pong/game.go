// Package pong implements single-player Pong against a CPU paddle.
// The simulation runs in a fixed 600x400 world with the ball position given
// by its center; rendering projects the world onto the terminal.
package pong

import (
	"math"

	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/registry"
)

// Scorer identifies who won a point.
const (
	ScorerPlayer = 1
	ScorerAI     = 2
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty for new games.
// Unknown names leave the configured difficulty in place.
func SetDifficultyPreset(preset string) {
	difficultyPreset = ""
	if preset == "" {
		return
	}
	if p, err := config.ParsePreset(preset); err == nil {
		difficultyPreset = p
	}
}

// Game implements Pong.
type Game struct {
	cfg        config.PongConfig
	custom     bool
	difficulty config.DifficultyPreset // per-game override, set from the menu
	ai         config.PongAI
	runtime    core.RuntimeConfig
	view       core.Viewport

	rng     *core.RNG
	loop    *core.LoopDriver
	phase   *core.Machine
	session *core.Session
	events  core.Events
	elapsed float64

	playerY float64 // paddle top
	aiY     float64
	ball    core.Vec // center
	vel     core.Vec

	playerScore int
	aiScore     int
}

// New creates a Pong game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Pong game with a fixed configuration.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg, custom: true}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pong" }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// SetDifficulty selects the AI preset applied on the next Reset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

// Difficulty returns the preset in effect.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.cfg.Difficulty
}

// Reset starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.custom {
		cfg, err := config.LoadPong(configPath)
		if err != nil {
			cfg = config.DefaultPongConfig()
		}
		g.cfg = cfg
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&g.cfg, difficultyPreset)
	}
	if g.difficulty != "" {
		config.ApplyPongPreset(&g.cfg, g.difficulty)
	}
	g.ai = g.cfg.AI()
	g.runtime = rc
	g.view = layout(g.cfg, rc.ScreenW, rc.ScreenH)

	g.rng = core.NewRNG(rc.Seed)
	g.loop = core.NewLoopDriver()
	g.phase = core.NewMachine()
	if g.session == nil {
		g.session = core.NewSession(0, rc.OnScore)
	} else {
		g.session.SetOnScore(rc.OnScore)
		g.session.Reset(0)
	}
	g.events.Drain()
	g.elapsed = 0

	w, h := g.cfg.World.Width, g.cfg.World.Height
	g.playerY = h/2 - g.cfg.Paddles.Height/2
	g.aiY = g.playerY
	g.ball = core.Vec{X: w / 2, Y: h / 2}
	g.vel = core.Vec{X: g.ai.BallSpeed, Y: g.ai.BallSpeed * 0.6}
	g.playerScore, g.aiScore = 0, 0
}

// Step applies input and advances the match to in.At.
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
		g.movePlayer(in)
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

// movePlayer follows the mouse (centered on the pointer) and the Up/Down
// keys, keeping the paddle inside the world.
func (g *Game) movePlayer(in core.InputFrame) {
	ph := g.cfg.Paddles.Height
	if in.HasPointer && g.view.Contains(in.PointerX, in.PointerY) {
		g.playerY = g.view.WorldY(in.PointerY) - ph/2
	}
	if in.Has(core.ActionUp) {
		g.playerY -= g.cfg.Paddles.KeyStep
	}
	if in.Has(core.ActionDown) {
		g.playerY += g.cfg.Paddles.KeyStep
	}
	g.playerY = core.ClampF(g.playerY, 0, g.cfg.World.Height-ph)
}

// update advances the simulation by dt seconds.
func (g *Game) update(dt float64) {
	g.elapsed += dt
	g.moveAI(dt)

	g.ball = g.ball.Add(g.vel.Scale(dt))

	half := g.cfg.Ball.Size / 2
	box, vel, hit := core.BounceInside(g.ballBox(), g.vel, g.world(), core.SidesVertical)
	if hit != core.SidesNone {
		g.ball.Y = box.CenterY()
		if vel != g.vel {
			g.events.Emit(core.EventBounce, 0)
		}
		g.vel = vel
	}

	pw, w := g.cfg.Paddles.Width, g.cfg.World.Width
	switch {
	case g.ball.X-half <= pw && g.overlapsPaddle(g.playerY):
		g.ball.X = pw + half
		g.paddleHit(g.playerY, 1)
	case g.ball.X+half >= w-pw && g.overlapsPaddle(g.aiY):
		g.ball.X = w - pw - half
		g.paddleHit(g.aiY, -1)
	}

	switch {
	case g.ball.X < 0:
		g.point(ScorerAI, 1)
	case g.ball.X > w:
		g.point(ScorerPlayer, -1)
	}
}

func (g *Game) overlapsPaddle(top float64) bool {
	half := g.cfg.Ball.Size / 2
	return g.ball.Y+half >= top && g.ball.Y-half <= top+g.cfg.Paddles.Height
}

// paddleHit sends the ball away from the paddle (dir is the new x sign)
// slightly faster, with vertical speed set by the hit offset.
func (g *Game) paddleHit(top float64, dir float64) {
	center := top + g.cfg.Paddles.Height/2
	g.vel.X = dir * math.Abs(g.vel.X) * g.cfg.Ball.SpeedUp
	g.vel.Y = -(center - g.ball.Y) * g.cfg.Ball.Spin * (60 / (g.cfg.Paddles.Height / 2))
	g.events.Emit(core.EventPaddleHit, 0)
}

// point awards a point and serves toward dir, or ends the match.
func (g *Game) point(scorer int, dir float64) {
	if scorer == ScorerPlayer {
		g.playerScore++
		g.session.AddScore(1)
	} else {
		g.aiScore++
	}
	g.events.Emit(core.EventPoint, scorer)

	win := g.cfg.Gameplay.WinScore
	switch {
	case g.playerScore >= win:
		g.phase.Finish(true)
		g.events.Emit(core.EventWin, g.playerScore)
		g.session.Report(1)
	case g.aiScore >= win:
		g.phase.Finish(false)
		g.events.Emit(core.EventGameOver, g.playerScore)
		g.session.Report(0)
	}
	g.serve(dir)
}

func (g *Game) serve(dir float64) {
	speed := g.ai.BallSpeed
	g.ball = core.Vec{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}
	g.vel = core.Vec{X: speed * dir, Y: (g.rng.Float64() - 0.5) * speed}
}

func (g *Game) ballBox() core.Box {
	s := g.cfg.Ball.Size
	return core.Box{X: g.ball.X - s/2, Y: g.ball.Y - s/2, W: s, H: s}
}

func (g *Game) world() core.Box {
	return core.Box{W: g.cfg.World.Width, H: g.cfg.World.Height}
}

// State returns the current game state. Score is the player's points.
func (g *Game) State() core.GameState {
	return core.StateFrom(g.session, g.phase.Phase())
}

// Scores returns the player and CPU points.
func (g *Game) Scores() (player, ai int) {
	return g.playerScore, g.aiScore
}

// Ball returns the ball center and velocity.
func (g *Game) Ball() (pos, vel core.Vec) {
	return g.ball, g.vel
}
