package snake

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Moves    uint64
	Phase    string
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Body     []int // flattened x,y pairs, head first
	RNGState uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	body := make([]int, 0, len(g.snake)*2)
	for _, seg := range g.snake {
		body = append(body, seg.X, seg.Y)
	}
	return Snapshot{
		Moves:    g.moves,
		Phase:    g.phase.Phase().String(),
		Score:    g.session.Score(),
		SnakeLen: len(g.snake),
		HeadX:    g.snake[0].X,
		HeadY:    g.snake[0].Y,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Body:     body,
		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Moves
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SnakeLen) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dir)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FoodX+1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FoodY+1)  //#nosec G115 -- hash computation
	for _, v := range snap.Body {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	return h*31 + snap.RNGState
}
