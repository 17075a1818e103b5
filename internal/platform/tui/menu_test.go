package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/games/pong"
	"github.com/vovakirdan/microgames/internal/storage"

	_ "github.com/vovakirdan/microgames/internal/games/breakout"
	_ "github.com/vovakirdan/microgames/internal/games/snake"
	_ "github.com/vovakirdan/microgames/internal/games/tetris"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestMenuListsGamesWithBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	for _, s := range []int{50, 20} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}

	m := NewMenuModel(Services{Store: store}, testConfig())

	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.GameID
	}
	if got := strings.Join(ids, ","); got != "breakout,pong,snake,tetris" {
		t.Errorf("items = %s, expected breakout,pong,snake,tetris", got)
	}
	if m.items[2].Best != 50 {
		t.Errorf("snake Best = %d, expected 50", m.items[2].Best)
	}
	if !strings.Contains(m.View(), "Best: 50") {
		t.Error("View() missing snake best score")
	}
}

func TestMenuBanner(t *testing.T) {
	m := NewMenuModel(Services{}, testConfig())
	if m.Banner() != BannerConnecting {
		t.Errorf("Banner() = %q, expected %q", m.Banner(), BannerConnecting)
	}

	next, _ := m.Update(m.Init()())
	m = next.(MenuModel)
	if m.Banner() != BannerNotConfigured {
		t.Errorf("Banner() = %q, expected %q", m.Banner(), BannerNotConfigured)
	}
	if !strings.Contains(m.View(), BannerNotConfigured) {
		t.Error("View() missing banner")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(Services{}, testConfig())

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	press(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range 10 {
		press(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}

	press(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "tetris" {
		t.Errorf("Selected() = %+v, expected tetris", m.Selected())
	}
}

func TestDifficultyModel(t *testing.T) {
	m := NewDifficultyModel("Pong", 80, 24)
	if m.presets[m.cursor] != config.DifficultyNormal {
		t.Errorf("initial preset = %s, expected normal", m.presets[m.cursor])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DifficultyModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)

	if m.Chosen() == nil || *m.Chosen() != config.DifficultyHard {
		t.Errorf("Chosen() = %v, expected hard", m.Chosen())
	}
	if !strings.Contains(m.View(), "P O N G") {
		t.Error("View() missing title")
	}
}

func session(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, expected SessionModel", next)
		}
		m = sm
	}
	return m
}

func TestSessionPongDifficultyFlow(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())

	m = session(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenDifficulty {
		t.Fatalf("screen = %v, expected difficulty picker", m.screen)
	}

	m = session(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	g, ok := m.gameModel.game.(*pong.Game)
	if !ok {
		t.Fatalf("game = %T, expected *pong.Game", m.gameModel.game)
	}
	if g.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %s, expected easy", g.Difficulty())
	}

	// Ready phase: B returns to the menu
	m = session(t, m, runeKey("b"))
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionDifficultyBack(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())

	m = session(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionGameWithoutDifficulty(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())

	m = session(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel.game.ID() != "breakout" {
		t.Errorf("screen = %v, expected breakout game", m.screen)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())

	m = session(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("scoreboard View() missing empty message")
	}

	m = session(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionKeepsFetchedBanner(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())
	m = session(t, m, bannerMsg{text: "MicroGames API is running"}, tea.KeyMsg{Type: tea.KeyTab}, runeKey("b"))

	if m.menu.Banner() != "MicroGames API is running" {
		t.Errorf("Banner() = %q, expected the fetched message", m.menu.Banner())
	}
}
