package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	cfg    core.RuntimeConfig
	phase  core.Phase
	frames []core.InputFrame
	events []core.Event
	resets int
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.cfg = cfg
	f.phase = core.PhaseReady
	f.resets++
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.frames = append(f.frames, in.Clone())
	ev := f.events
	f.events = nil
	return core.StepResult{State: f.State(), Events: ev}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake "+f.phase.String())
}

func (f *fakeGame) State() core.GameState {
	return core.GameState{Phase: f.phase, GameOver: f.phase.Terminal(), Paused: f.phase == core.PhasePaused}
}

type feedRecord struct {
	game        string
	score, best int
}

type fakeFeed struct {
	got []feedRecord
}

func (f *fakeFeed) PublishScore(gameID string, score, best int) {
	f.got = append(f.got, feedRecord{gameID, score, best})
}

type fakeSound struct {
	events []core.Event
}

func (f *fakeSound) Play(events []core.Event) {
	f.events = append(f.events, events...)
}

func newTestModel(t *testing.T, svc Services) (GameModel, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	m := NewGameModel(g, svc, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	m.Init()
	return m, g
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func TestGameModelTickStepsWithInput(t *testing.T) {
	m, g := newTestModel(t, Services{})
	now := time.Unix(100, 0)

	m, _ = update(t, m, runeKey("a"))
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionMotion})
	m, cmd := update(t, m, TickMsg{ID: m.loopID, Time: now})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}

	if len(g.frames) != 1 {
		t.Fatalf("steps = %d, expected 1", len(g.frames))
	}
	in := g.frames[0]
	if !in.Has(core.ActionLeft) || !in.HasPointer || in.PointerX != 5 || in.PointerY != 6 {
		t.Errorf("frame = %+v, expected Left with pointer (5, 6)", in)
	}
	if !in.At.Equal(now) {
		t.Errorf("At = %v, expected %v", in.At, now)
	}

	update(t, m, TickMsg{ID: m.loopID, Time: now.Add(16 * time.Millisecond)})
	if len(g.frames[1].Actions) != 0 || g.frames[1].HasPointer {
		t.Errorf("second frame = %+v, expected empty", g.frames[1])
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, g := newTestModel(t, Services{})

	_, cmd := update(t, m, TickMsg{ID: m.loopID + 1, Time: time.Now()})
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if len(g.frames) != 0 {
		t.Errorf("steps = %d, expected 0", len(g.frames))
	}
}

func TestGameModelBackOnlyOutsidePlay(t *testing.T) {
	tests := []struct {
		phase core.Phase
		back  bool
	}{
		{core.PhaseReady, true},
		{core.PhaseRunning, false},
		{core.PhasePaused, true},
		{core.PhaseGameOver, true},
		{core.PhaseWon, true},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			m, g := newTestModel(t, Services{})
			g.phase = tt.phase
			m, _ = update(t, m, runeKey("b"))
			if m.BackToMenu() != tt.back {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tt.back)
			}
		})
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m, _ := newTestModel(t, Services{})
	m.standalone = true

	m, cmd := update(t, m, runeKey("b"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("Back in standalone mode did not quit")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Services{})

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() after quit is not empty")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t, Services{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelRecordsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("fake", 80); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	feed := &fakeFeed{}
	m, g := newTestModel(t, Services{Store: store, Feed: feed})
	if m.Best() != 80 {
		t.Errorf("Best() = %d, expected 80", m.Best())
	}

	g.cfg.OnScore(120)
	g.cfg.OnScore(0)
	g.cfg.OnScore(30)

	if m.scores.runs != 3 {
		t.Errorf("runs = %d, expected 3", m.scores.runs)
	}
	if m.Best() != 120 {
		t.Errorf("Best() = %d, expected 120", m.Best())
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 3 || scores[0].Score != 120 {
		t.Errorf("TopScores() = %+v, expected 120, 80, 30", scores)
	}

	expected := []feedRecord{{"fake", 120, 120}, {"fake", 30, 120}}
	if len(feed.got) != len(expected) {
		t.Fatalf("feed = %+v, expected %+v", feed.got, expected)
	}
	for i := range expected {
		if feed.got[i] != expected[i] {
			t.Errorf("feed[%d] = %+v, expected %+v", i, feed.got[i], expected[i])
		}
	}
}

func TestGameModelLogsFailedSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := store.SaveScore("fake", 80); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	var buf bytes.Buffer
	feed := &fakeFeed{}
	m, g := newTestModel(t, Services{Store: store, Feed: feed, Logger: log.New(&buf)})
	store.Close()

	g.cfg.OnScore(120)

	if m.scores.err == nil {
		t.Error("scores.err = nil, expected the save error")
	}
	if m.Best() != 80 {
		t.Errorf("Best() = %d, expected 80", m.Best())
	}
	if len(feed.got) != 0 {
		t.Errorf("feed = %+v, expected nothing published", feed.got)
	}
	out := buf.String()
	for _, want := range []string{"cannot save score", "game=fake", "score=120", "error="} {
		if !strings.Contains(out, want) {
			t.Errorf("log = %q, expected %q", out, want)
		}
	}
}

func TestGameModelScreenshot(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "home")
	if err := os.WriteFile(blocked, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name     string
		home     string
		expected string
	}{
		{"writable home", t.TempDir(), "screenshot saved"},
		{"home is a file", blocked, "cannot save screenshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", tt.home)
			var buf bytes.Buffer
			m, _ := newTestModel(t, Services{Logger: log.New(&buf)})
			update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

			if out := buf.String(); !strings.Contains(out, tt.expected) {
				t.Errorf("log = %q, expected %q", out, tt.expected)
			}
		})
	}

	shots, err := filepath.Glob(filepath.Join(tests[0].home, ".arcade", "screenshots", "fake_*.txt"))
	if err != nil || len(shots) != 1 {
		t.Errorf("screenshots = %v, %v, expected one file", shots, err)
	}
}

func TestGameModelForwardsEvents(t *testing.T) {
	sound := &fakeSound{}
	m, g := newTestModel(t, Services{Sound: sound})

	g.events = []core.Event{{Kind: core.EventFood, Value: 1}}
	update(t, m, TickMsg{ID: m.loopID, Time: time.Now()})

	if len(sound.events) != 1 || sound.events[0].Kind != core.EventFood {
		t.Errorf("sound events = %+v, expected one food event", sound.events)
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, Services{})
	if view := m.View(); len(view) == 0 {
		t.Error("View() is empty")
	}
}
