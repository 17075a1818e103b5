package breakout

import "math"

// Snapshot contains the game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Phase       string
	Score       int
	Lives       int
	Level       int
	PaddleX     float64
	PaddleWidth float64
	SpeedFactor float64
	Elapsed     float64

	// Each ball is 4 floats: X, Y, VX, VY
	BallData []float64

	// Each power-up is 3 values: Type, X, Y
	PowerUpData []float64

	// One bit per brick, row-major
	BrickMask []bool

	PendingEffects int
	RNGState       uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := make([]float64, 0, len(g.balls)*4)
	for _, b := range g.balls {
		balls = append(balls, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	pickups := make([]float64, 0, len(g.powerUps)*3)
	for _, p := range g.powerUps {
		pickups = append(pickups, float64(p.Type), p.Box.X, p.Box.Y)
	}
	mask := make([]bool, len(g.bricks))
	for i := range g.bricks {
		mask[i] = g.bricks[i].Visible
	}
	return Snapshot{
		Phase:          g.phase.Phase().String(),
		Score:          g.session.Score(),
		Lives:          g.session.Lives(),
		Level:          g.session.Level(),
		PaddleX:        g.paddleX,
		PaddleWidth:    g.paddleW,
		SpeedFactor:    g.speedFactor,
		Elapsed:        g.elapsed,
		BallData:       balls,
		PowerUpData:    pickups,
		BrickMask:      mask,
		PendingEffects: g.sched.Len(),
		RNGState:       g.rng.State(),
	}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Score)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingEffects) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.PaddleX, snap.PaddleWidth, snap.SpeedFactor, snap.Elapsed} {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range snap.BallData {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range snap.PowerUpData {
		h = h*31 + math.Float64bits(f)
	}
	for _, v := range snap.BrickMask {
		h *= 31
		if v {
			h++
		}
	}
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	return h*31 + snap.RNGState
}
