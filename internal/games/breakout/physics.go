package breakout

import (
	"math"

	"github.com/vovakirdan/microgames/internal/core"
)

// Ball is a ball in play. Pos is the top-left corner. Vel is the unscaled
// velocity; the slow effect scales movement, not the stored velocity.
type Ball struct {
	Pos core.Vec
	Vel core.Vec
}

func (g *Game) ballBox(b Ball) core.Box {
	s := g.cfg.Ball.Size
	return core.Box{X: b.Pos.X, Y: b.Pos.Y, W: s, H: s}
}

// moveBall integrates one ball and resolves the walls and the paddle.
func (g *Game) moveBall(b *Ball, dt float64) {
	prevBottom := b.Pos.Y + g.cfg.Ball.Size
	b.Pos = b.Pos.Add(b.Vel.Scale(g.speedFactor * dt))

	box, vel, hit := core.BounceInside(g.ballBox(*b), b.Vel, g.world(), core.SidesHorizontal|core.SideTop)
	if hit != core.SidesNone {
		if vel != b.Vel {
			g.events.Emit(core.EventBounce, 0)
		}
		b.Pos = core.Vec{X: box.X, Y: box.Y}
		b.Vel = vel
	}

	g.hitPaddle(b, prevBottom)
}

// hitPaddle bounces the ball off the paddle top. The ball counts as hitting
// when its bottom reaches the paddle top this frame while its top is still
// above it, or when it crossed the top edge during the frame.
func (g *Game) hitPaddle(b *Ball, prevBottom float64) {
	size := g.cfg.Ball.Size
	top := g.paddleY()
	bottom := b.Pos.Y + size
	if bottom < top || (b.Pos.Y > top && prevBottom > top) {
		return
	}
	if b.Pos.X+size < g.paddleX || b.Pos.X > g.paddleX+g.paddleW {
		return
	}
	b.Vel.Y = -math.Abs(b.Vel.Y)
	b.Pos.Y = top - size
	half := g.paddleW / 2
	b.Vel.X = core.PaddleEnglish(b.Vel.X, b.Pos.X+size/2, g.paddleX+half, half, g.cfg.Ball.English, g.cfg.Ball.MaxVX)
	g.events.Emit(core.EventPaddleHit, 0)
}

// hitBrick breaks at most one brick touched by the ball, reflecting on the
// axis of least penetration.
func (g *Game) hitBrick(b *Ball) bool {
	box := g.ballBox(*b)
	for i := range g.bricks {
		br := &g.bricks[i]
		if !br.Visible || !box.Overlaps(br.Box) {
			continue
		}
		dx := box.CenterX() - br.Box.CenterX()
		dy := box.CenterY() - br.Box.CenterY()
		b.Vel = b.Vel.Reflect(core.DominantAxis(dx, dy, br.Box.W, br.Box.H))

		br.Visible = false
		g.session.AddScore(g.cfg.Bricks.Points)
		g.events.Emit(core.EventBrickBreak, br.Row)
		g.maybeDrop(br.Box)
		return true
	}
	return false
}

func (g *Game) serveBall(vx float64) Ball {
	return Ball{
		Pos: core.Vec{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height - 50},
		Vel: core.Vec{X: vx, Y: -g.cfg.Ball.Speed},
	}
}

func (g *Game) world() core.Box {
	return core.Box{W: g.cfg.World.Width, H: g.cfg.World.Height}
}
