package breakout

import "github.com/vovakirdan/microgames/internal/core"

// PowerUpType represents the kinds of falling pickups.
type PowerUpType int

const (
	PowerBiggerPaddle PowerUpType = iota
	PowerSlowBall
	PowerMultiBall
	powerUpCount
)

// Scheduler keys for timed effects. Collecting the same effect again
// replaces the pending expiry, which refreshes the timer.
const (
	effectBigger = "bigger_paddle"
	effectSlow   = "slow_ball"
)

// Glyph returns the display character for a power-up.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerBiggerPaddle:
		return 'B'
	case PowerSlowBall:
		return 'S'
	case PowerMultiBall:
		return 'M'
	default:
		return '?'
	}
}

// String returns the name of the power-up.
func (p PowerUpType) String() string {
	switch p {
	case PowerBiggerPaddle:
		return "BiggerPaddle"
	case PowerSlowBall:
		return "SlowBall"
	case PowerMultiBall:
		return "MultiBall"
	default:
		return "?"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Type PowerUpType
	Box  core.Box
}

// maybeDrop rolls for a pickup at the center of a broken brick.
func (g *Game) maybeDrop(b core.Box) {
	pc := g.cfg.PowerUps
	if g.rng.Float64() >= pc.DropChance {
		return
	}
	kind := PowerUpType(g.rng.Intn(int(powerUpCount)))
	g.powerUps = append(g.powerUps, PowerUp{
		Type: kind,
		Box:  core.Box{X: b.CenterX() - pc.Size/2, Y: b.CenterY(), W: pc.Size, H: pc.Size},
	})
}

// updatePowerUps moves pickups down, collecting those touching the paddle
// and dropping those that leave the bottom of the world.
func (g *Game) updatePowerUps(dt float64) {
	paddle := g.paddleBox()
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Box.Y += g.cfg.PowerUps.FallSpeed * dt
		switch {
		case p.Box.Overlaps(paddle):
			g.activate(p.Type)
		case p.Box.Y > g.cfg.World.Height:
			// missed
		default:
			kept = append(kept, p)
		}
	}
	g.powerUps = kept
}

// activate applies a power-up effect.
func (g *Game) activate(kind PowerUpType) {
	pc := g.cfg.PowerUps
	g.events.Emit(core.EventPowerUp, int(kind))

	switch kind {
	case PowerBiggerPaddle:
		g.paddleW = g.cfg.Paddle.Width * pc.BiggerFactor
		g.clampPaddle()
		g.sched.After(effectBigger, pc.BiggerSeconds, func() {
			g.paddleW = g.cfg.Paddle.Width
			g.clampPaddle()
		})
	case PowerSlowBall:
		// Absolute factor: overlapping pickups refresh the timer but never
		// slow the ball below SlowFactor.
		g.speedFactor = pc.SlowFactor
		g.sched.After(effectSlow, pc.SlowSeconds, func() {
			g.speedFactor = 1
		})
	case PowerMultiBall:
		speed := g.cfg.Ball.Speed
		g.balls = append(g.balls, Ball{
			Pos: core.Vec{
				X: g.paddleX + g.paddleW/2,
				Y: g.cfg.World.Height - g.cfg.Paddle.Height - 20,
			},
			Vel: core.Vec{X: (g.rng.Float64() - 0.5) * 2 * speed, Y: -speed},
		})
	}
}
