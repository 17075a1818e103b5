package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microgames/internal/storage"
)

func newBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range []struct {
		game  string
		score int
	}{{"snake", 50}, {"snake", 20}, {"pong", 5}} {
		if _, err := store.SaveScore(s.game, s.score); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}
	return store
}

func board(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(ScoreboardModel); !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func TestScoreboardOpensOnGame(t *testing.T) {
	tests := []struct {
		gameID   string
		expected string
	}{
		{"pong", "pong"},
		{"snake", "snake"},
		{"tron", "breakout"},
		{"", "breakout"},
	}

	for _, tt := range tests {
		m := NewScoreboardModel(nil, tt.gameID, 100, 30)
		if got := m.gameID(); got != tt.expected {
			t.Errorf("NewScoreboardModel(%q) game = %q, expected %q", tt.gameID, got, tt.expected)
		}
	}
}

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	m := NewScoreboardModel(newBoardStore(t), "snake", 100, 30)

	if len(m.scores) != 2 || m.scores[0].Score != 50 {
		t.Fatalf("scores = %+v, expected 50 then 20", m.scores)
	}
	if got := m.summary(); !strings.HasPrefix(got, "Runs: 2  Best: 50  Avg: 35.0") {
		t.Errorf("summary() = %q, expected two runs averaging 35", got)
	}

	view := m.View()
	for _, want := range []string{"H I G H", "Snake", "Pong", "50"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	m := NewScoreboardModel(newBoardStore(t), "pong", 100, 30)

	tests := []struct {
		msg      tea.Msg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, "snake"},
		{tea.KeyMsg{Type: tea.KeyRight}, "tetris"},
		{tea.KeyMsg{Type: tea.KeyTab}, "breakout"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "tetris"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "snake"},
	}

	for _, tt := range tests {
		m = board(t, m, tt.msg)
		if got := m.gameID(); got != tt.expected {
			t.Errorf("after %v game = %q, expected %q", tt.msg, got, tt.expected)
		}
	}
	if m.summary() == "No runs yet" {
		t.Error("summary() not reloaded for snake")
	}
}

func TestScoreboardClearNeedsConfirm(t *testing.T) {
	store := newBoardStore(t)
	m := NewScoreboardModel(store, "snake", 100, 30)

	// Any other key disarms the first x.
	m = board(t, m, runeKey("x"), runeKey("j"), runeKey("x"))
	if len(m.scores) != 2 {
		t.Fatalf("scores = %d after a disarmed clear, expected 2", len(m.scores))
	}
	if !strings.Contains(m.status, "Press x again") {
		t.Errorf("status = %q, expected confirm prompt", m.status)
	}

	m = board(t, m, runeKey("x"))
	if len(m.scores) != 0 {
		t.Errorf("scores = %d after clear, expected 0", len(m.scores))
	}
	if m.status != "Cleared Snake scores" {
		t.Errorf("status = %q, expected %q", m.status, "Cleared Snake scores")
	}

	if top, err := store.TopScores("pong", 10); err != nil || len(top) != 1 {
		t.Errorf("TopScores(pong) = %v, %v, expected other games untouched", top, err)
	}
}

func TestScoreboardClearWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "snake", 100, 30)
	m = board(t, m, runeKey("x"), runeKey("x"))
	if m.status != "No score database" {
		t.Errorf("status = %q, expected %q", m.status, "No score database")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := board(t, NewScoreboardModel(nil, "", 60, 20), runeKey("b"))
	if !m.IsGoingBack() || m.View() != "" {
		t.Error("b should leave the scoreboard")
	}

	m = board(t, NewScoreboardModel(nil, "", 60, 20), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", 50, 20)
	view := m.View()
	if !strings.Contains(view, "< Tetris >") {
		t.Error("narrow View() missing game header")
	}
	if strings.Contains(view, "Games") {
		t.Error("narrow View() should hide the game list")
	}
}
