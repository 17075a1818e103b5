package pong

import "math"

// Snapshot captures the match state for determinism testing.
type Snapshot struct {
	Phase       string
	Difficulty  string
	PlayerScore int
	AIScore     int
	PlayerY     float64
	AIY         float64
	BallX       float64
	BallY       float64
	BallVX      float64
	BallVY      float64
	Elapsed     float64
	RNGState    uint64
}

// Snapshot returns the current match snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:       g.phase.Phase().String(),
		Difficulty:  string(g.cfg.Difficulty),
		PlayerScore: g.playerScore,
		AIScore:     g.aiScore,
		PlayerY:     g.playerY,
		AIY:         g.aiY,
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		BallVX:      g.vel.X,
		BallVY:      g.vel.Y,
		Elapsed:     g.elapsed,
		RNGState:    g.rng.State(),
	}
}

// Hash returns a hash of the snapshot; float fields are hashed bit-exact.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.PlayerScore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AIScore) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.PlayerY, snap.AIY, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Elapsed} {
		h = h*31 + math.Float64bits(f)
	}
	for _, c := range snap.Phase + snap.Difficulty {
		h = h*31 + uint64(c)
	}
	return h*31 + snap.RNGState
}
