package pong

import (
	"math"

	"github.com/vovakirdan/microgames/internal/core"
)

// moveAI tracks the ball with the CPU paddle. Each frame it misjudges the
// target with probability 1-accuracy, by up to 40% of the paddle height.
func (g *Game) moveAI(dt float64) {
	ph := g.cfg.Paddles.Height
	target := g.ball.Y
	if g.rng.Float64() > g.ai.Accuracy {
		target += (g.rng.Float64() - 0.5) * ph * 0.8
	}
	target = core.ClampF(target, 0, g.cfg.World.Height)

	dy := target - (g.aiY + ph/2)
	if math.Abs(dy) <= g.cfg.Ball.DeadZone {
		return
	}
	g.aiY += math.Copysign(g.ai.AISpeed*dt, dy)
	g.aiY = core.ClampF(g.aiY, 0, g.cfg.World.Height-ph)
}
