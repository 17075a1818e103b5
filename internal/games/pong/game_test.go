package pong

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
)

type clock struct{ now time.Time }

func newClock() *clock { return &clock{now: time.Unix(1_700_000_000, 0)} }

func (c *clock) frame(d time.Duration, actions ...core.Action) core.InputFrame {
	c.now = c.now.Add(d)
	in := core.NewInputFrameAt(c.now)
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(seed int64) (*Game, *[]int) {
	var reports []int
	g := NewWithConfig(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    seed,
		OnScore: func(final int) { reports = append(reports, final) },
	})
	return g, &reports
}

// started returns a running game whose loop driver already has a first frame.
func started(t *testing.T, seed int64) (*Game, *clock, *[]int) {
	t.Helper()
	g, reports := newTestGame(seed)
	c := newClock()
	g.Step(c.frame(0, core.ActionConfirm))
	if !g.phase.Running() {
		t.Fatalf("phase after Enter = %v, expected running", g.phase.Phase())
	}
	return g, c, reports
}

func hasEvent(events []core.Event, kind core.EventKind, value int) bool {
	for _, e := range events {
		if e.Kind == kind && e.Value == value {
			return true
		}
	}
	return false
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestInitialServe(t *testing.T) {
	g, _ := newTestGame(1)
	pos, vel := g.Ball()
	if pos != (core.Vec{X: 300, Y: 200}) {
		t.Errorf("ball = %v, expected (300,200)", pos)
	}
	if !near(vel.X, 350) || !near(vel.Y, 210) {
		t.Errorf("velocity = %v, expected (350,210)", vel)
	}
	if g.State().Phase != core.PhaseReady {
		t.Errorf("phase = %v, expected ready", g.State().Phase)
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		wantVY float64
	}{
		{"top", 10, -300, 300},
		{"bottom", 390, 300, -300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, _ := started(t, 1)
			g.ball = core.Vec{X: 300, Y: tt.y}
			g.vel = core.Vec{X: 40, Y: tt.vy}

			res := g.Step(c.frame(50 * time.Millisecond))

			if g.vel.Y != tt.wantVY {
				t.Errorf("vy = %v, expected %v", g.vel.Y, tt.wantVY)
			}
			if g.vel.X != 40 {
				t.Errorf("vx = %v, expected tangential 40 unchanged", g.vel.X)
			}
			if g.ball.Y-7 < 0 || g.ball.Y+7 > 400 {
				t.Errorf("ball y = %v, expected inside the court", g.ball.Y)
			}
			if !hasEvent(res.Events, core.EventBounce, 0) {
				t.Errorf("events = %v, expected a bounce", res.Events)
			}
		})
	}
}

func TestPaddleHit(t *testing.T) {
	g, c, _ := started(t, 1)
	g.playerY = 140
	g.ball = core.Vec{X: 20, Y: 230}
	g.vel = core.Vec{X: -300, Y: 0}

	res := g.Step(c.frame(50 * time.Millisecond))

	if !near(g.vel.X, 315) {
		t.Errorf("vx = %v, expected 315", g.vel.X)
	}
	// center 200, ball 230: -(200-230)*0.12*(60/60)
	if !near(g.vel.Y, 3.6) {
		t.Errorf("vy = %v, expected 3.6", g.vel.Y)
	}
	if g.ball.X != 19 {
		t.Errorf("ball x = %v, expected snapped to 19", g.ball.X)
	}
	if !hasEvent(res.Events, core.EventPaddleHit, 0) {
		t.Errorf("events = %v, expected a paddle hit", res.Events)
	}
}

func TestPointAndServe(t *testing.T) {
	g, c, _ := started(t, 1)
	g.playerY = 280
	g.ball = core.Vec{X: 5, Y: 50}
	g.vel = core.Vec{X: -300, Y: 0}

	res := g.Step(c.frame(50 * time.Millisecond))

	player, ai := g.Scores()
	if player != 0 || ai != 1 {
		t.Errorf("Scores() = %d,%d, expected 0,1", player, ai)
	}
	if !hasEvent(res.Events, core.EventPoint, ScorerAI) {
		t.Errorf("events = %v, expected an AI point", res.Events)
	}
	pos, vel := g.Ball()
	if pos != (core.Vec{X: 300, Y: 200}) {
		t.Errorf("ball = %v, expected centered serve", pos)
	}
	if vel.X != 350 {
		t.Errorf("vx = %v, expected serve toward the CPU at 350", vel.X)
	}
	if math.Abs(vel.Y) > 175 {
		t.Errorf("vy = %v, expected within half the ball speed", vel.Y)
	}
}

func TestMatchEnd(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(g *Game)
		wantPhase core.Phase
		wantFinal int
	}{
		{
			name: "player wins",
			setup: func(g *Game) {
				g.playerScore = 2
				g.aiY = 0
				g.ball = core.Vec{X: 595, Y: 300}
				g.vel = core.Vec{X: 300, Y: 0}
			},
			wantPhase: core.PhaseWon,
			wantFinal: 1,
		},
		{
			name: "cpu wins",
			setup: func(g *Game) {
				g.aiScore = 2
				g.playerY = 280
				g.ball = core.Vec{X: 5, Y: 50}
				g.vel = core.Vec{X: -300, Y: 0}
			},
			wantPhase: core.PhaseGameOver,
			wantFinal: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, reports := started(t, 1)
			tt.setup(g)

			g.Step(c.frame(50 * time.Millisecond))
			g.Step(c.frame(50 * time.Millisecond))

			if g.State().Phase != tt.wantPhase {
				t.Errorf("phase = %v, expected %v", g.State().Phase, tt.wantPhase)
			}
			if len(*reports) != 1 || (*reports)[0] != tt.wantFinal {
				t.Errorf("reports = %v, expected [%d]", *reports, tt.wantFinal)
			}
		})
	}
}

func TestPauseTwiceResumes(t *testing.T) {
	g, c, _ := started(t, 1)
	g.Step(c.frame(50 * time.Millisecond))

	g.Step(c.frame(10*time.Millisecond, core.ActionPause))
	if !g.State().Paused {
		t.Fatalf("expected paused")
	}
	before := g.Snapshot()
	g.Step(c.frame(time.Second))
	if after := g.Snapshot(); after != before {
		t.Errorf("state changed while paused: %+v -> %+v", before, after)
	}

	g.Step(c.frame(10*time.Millisecond, core.ActionPause))
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", g.State().Phase)
	}
	// first frame after resume has zero elapsed time
	if after := g.Snapshot(); after.BallX != before.BallX {
		t.Errorf("ball jumped on resume: %v -> %v", before.BallX, after.BallX)
	}
}

func TestPlayerInput(t *testing.T) {
	g, c, _ := started(t, 1)

	// row 13 of a 20-row area starting at row 3: centre of cell 10.
	in := c.frame(0)
	in.SetPointer(40, 13)
	g.Step(in)
	if g.playerY != 150 {
		t.Errorf("playerY after mouse = %v, expected 150", g.playerY)
	}

	g.Step(c.frame(0, core.ActionUp))
	if g.playerY != 125 {
		t.Errorf("playerY after Up = %v, expected 125", g.playerY)
	}

	for range 20 {
		g.Step(c.frame(0, core.ActionDown))
	}
	if g.playerY != 280 {
		t.Errorf("playerY = %v, expected clamped to 280", g.playerY)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		speed  float64
	}{
		{config.DifficultyEasy, 250},
		{config.DifficultyNormal, 350},
		{config.DifficultyHard, 450},
	}
	for _, tt := range tests {
		g := NewWithConfig(config.DefaultPongConfig())
		g.SetDifficulty(tt.preset)
		g.Reset(core.RuntimeConfig{Seed: 1})
		if g.Difficulty() != tt.preset {
			t.Errorf("Difficulty() = %v, expected %v", g.Difficulty(), tt.preset)
		}
		if _, vel := g.Ball(); vel.X != tt.speed {
			t.Errorf("%s serve speed = %v, expected %v", tt.preset, vel.X, tt.speed)
		}
	}
}

func TestAIStaysInCourt(t *testing.T) {
	g, c, _ := started(t, 3)
	for i := range 400 {
		g.ball.Y = float64(i%2) * 400
		g.Step(c.frame(50 * time.Millisecond))
		if g.aiY < 0 || g.aiY > 280 {
			t.Fatalf("aiY = %v after %d frames, expected within [0,280]", g.aiY, i)
		}
		if g.phase.Phase().Terminal() {
			break
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g, c, _ := started(t, 42)
		for range 300 {
			g.Step(c.frame(16 * time.Millisecond))
		}
		snap := g.Snapshot()
		return snap.Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("hashes differ for equal seeds: %d vs %d", a, b)
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "You 0 : 0 CPU") {
		t.Errorf("HUD = %q, expected the score line", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "PONG") {
		t.Errorf("expected the ready overlay")
	}
}
