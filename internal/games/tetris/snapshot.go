package tetris

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Pieces   uint64
	Phase    string
	Score    int
	Level    int
	Lines    int
	Current  Kind
	CurX     int
	CurY     int
	Next     Kind
	Held     Kind
	Cells    []Kind // row-major board
	RNGState uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	cells := make([]Kind, 0, g.board.Width()*g.board.Height())
	for y := range g.board.Height() {
		for x := range g.board.Width() {
			cells = append(cells, g.board.At(x, y))
		}
	}
	held := KindNone
	if g.hasHeld {
		held = g.held.Kind
	}
	return Snapshot{
		Pieces:   g.pieces,
		Phase:    g.phase.Phase().String(),
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.lines,
		Current:  g.current.Kind,
		CurX:     g.current.X,
		CurY:     g.current.Y,
		Next:     g.next.Kind,
		Held:     held,
		Cells:    cells,
		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Pieces
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current)
	h = h*31 + uint64(snap.CurX+8) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurY+8) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Next)
	h = h*31 + uint64(snap.Held)
	for _, k := range snap.Cells {
		h = h*31 + uint64(k)
	}
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	return h*31 + snap.RNGState
}
