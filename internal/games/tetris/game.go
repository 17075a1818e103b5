// Package tetris implements falling-block Tetris on a 10x20 board with
// hold, hard drop and a ghost preview.
package tetris

import (
	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Tetris.
type Game struct {
	cfg     config.TetrisConfig
	custom  bool
	runtime core.RuntimeConfig

	rng     *core.RNG
	loop    *core.LoopDriver
	gravity *core.Interval
	phase   *core.Machine
	session *core.Session
	events  core.Events

	board   *Board
	current Piece
	next    Piece
	held    Piece
	hasHeld bool
	swapped bool // hold used since the last lock
	lines   int
	pieces  uint64
}

// New creates a Tetris game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Tetris game with a fixed configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, custom: true}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset clears the board and draws the first two pieces.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.custom {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		g.cfg = cfg
	}
	g.runtime = rc

	g.rng = core.NewRNG(rc.Seed)
	g.loop = core.NewLoopDriver()
	g.gravity = core.NewInterval(g.cfg.Gravity.Interval(1))
	g.phase = core.NewMachine()
	if g.session == nil {
		g.session = core.NewSession(0, rc.OnScore)
	} else {
		g.session.SetOnScore(rc.OnScore)
		g.session.Reset(0)
	}
	g.events.Drain()

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.lines = 0
	g.pieces = 0
	g.hasHeld = false
	g.swapped = false
	g.held = Piece{}
	g.current = g.draw()
	g.next = g.draw()
}

// Step applies input and lets gravity pull the piece for every interval
// elapsed since the previous frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.phase.Phase().Terminal() {
		g.restart()
	}
	if in.Has(core.ActionPause) {
		g.phase.TogglePause()
	}

	switch g.phase.Phase() {
	case core.PhaseReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.phase.Start()
			g.gravity.Reset()
			g.events.Emit(core.EventStart, 0)
		}
	case core.PhaseRunning:
		g.handleInput(in)
	}

	dt := g.loop.Advance(in.At, g.phase.Running())
	for n := g.gravity.Add(dt); n > 0 && g.phase.Running(); n-- {
		g.fall()
	}

	return core.StepResult{State: g.State(), Events: g.events.Drain()}
}

func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = int64(g.rng.Next() >> 1) //#nosec G115 -- shifted to fit int64
	g.Reset(rc)
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionHold) {
		g.hold()
	}
	if !g.phase.Running() {
		return
	}
	if in.Has(core.ActionLeft) {
		g.try(g.current.Moved(-1, 0))
	}
	if in.Has(core.ActionRight) {
		g.try(g.current.Moved(1, 0))
	}
	if in.Has(core.ActionUp) {
		g.try(g.current.Rotated())
	}
	if in.Has(core.ActionDown) {
		g.try(g.current.Moved(0, 1))
	}
	if in.Has(core.ActionFire) {
		g.hardDrop()
	}
}

// try replaces the current piece with p when p fits.
func (g *Game) try(p Piece) bool {
	if !g.board.Valid(p) {
		return false
	}
	g.current = p
	return true
}

func (g *Game) draw() Piece {
	g.pieces++
	return NewPiece(Kinds[g.rng.Intn(len(Kinds))], g.cfg.Board.Width)
}

// fall moves the piece down one row, locking it when it rests.
func (g *Game) fall() {
	if !g.try(g.current.Moved(0, 1)) {
		g.lock()
	}
}

func (g *Game) hardDrop() {
	rows := g.board.DropDistance(g.current)
	g.current = g.current.Moved(0, rows)
	g.session.AddScore(rows * g.cfg.Scoring.HardDropRow)
	g.lock()
	g.gravity.Reset()
}

// lock places the current piece, clears lines, scores with the level from
// before the lock and brings in the next piece.
func (g *Game) lock() {
	g.board.Place(g.current)
	g.swapped = false
	g.events.Emit(core.EventPieceLock, int(g.current.Kind))

	cleared := g.board.ClearLines()
	level := g.session.Level()
	g.session.AddScore(cleared*g.cfg.Scoring.LinePoints*level*cleared + g.cfg.Scoring.LockBonus)
	if cleared > 0 {
		g.events.Emit(core.EventLineClear, cleared)
		g.lines += cleared
		if nl := g.cfg.Scoring.LevelFor(g.lines); nl > level {
			g.session.SetLevel(nl)
			g.gravity.SetPeriod(g.cfg.Gravity.Interval(nl))
			g.events.Emit(core.EventLevelUp, nl)
		}
	}

	g.bringNext()
}

// bringNext makes the next piece current, ending the run when it does not fit.
func (g *Game) bringNext() {
	if !g.board.Valid(g.next) {
		g.gameOver()
		return
	}
	g.current = g.next
	g.next = g.draw()
}

// hold parks the current piece, once per piece. With an empty hold the next
// piece comes in; otherwise the held piece swaps in at the current position,
// and a swap that does not fit is refused without using up the hold.
func (g *Game) hold() {
	if g.swapped {
		return
	}
	if !g.hasHeld {
		g.swapped = true
		g.held, g.hasHeld = g.current, true
		g.bringNext()
		return
	}
	incoming := g.held
	incoming.X, incoming.Y = g.current.X, g.current.Y
	if !g.board.Valid(incoming) {
		return
	}
	g.swapped = true
	g.held, g.current = g.current, incoming
}

func (g *Game) gameOver() {
	if !g.phase.Finish(false) {
		return
	}
	g.events.Emit(core.EventGameOver, g.session.Score())
	g.session.Report(g.session.Score())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.StateFrom(g.session, g.phase.Phase())
}

// Board returns the locked cells.
func (g *Game) Board() *Board { return g.board }

// Current returns the falling piece.
func (g *Game) Current() Piece { return g.current }

// Next returns the preview piece.
func (g *Game) Next() Piece { return g.next }

// Held returns the held piece, if any.
func (g *Game) Held() (Piece, bool) { return g.held, g.hasHeld }

// Ghost returns the current piece moved to where a hard drop would rest.
func (g *Game) Ghost() Piece {
	return g.current.Moved(0, g.board.DropDistance(g.current))
}

// Lines returns the total rows cleared this run.
func (g *Game) Lines() int { return g.lines }
