package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	entry, err := store.SaveScore("tetris", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if entry.ID == 0 || entry.GameID != "tetris" || entry.Score != 500 {
		t.Errorf("SaveScore() = %+v, expected tetris/500 with an ID", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("SaveScore() should fill CreatedAt")
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	tetris, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tetris) != 1 {
		t.Errorf("Expected 1 tetris score, got %d", len(tetris))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("breakout", (i+1)*100)
	}

	scores, err := store.TopScores("breakout", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("breakout")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d, expected 5", len(all))
	}
}

func TestStoreHighScoreAndBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 300)
	store.SaveScore("snake", 200)
	store.SaveScore("pong", 1)
	store.SaveScore("pong", 0)

	high, _ = store.HighScore("snake")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	best, err := store.BestScores()
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}
	if best["snake"] != 300 || best["pong"] != 1 {
		t.Errorf("BestScores() = %v, expected snake=300 pong=1", best)
	}
	if _, ok := best["tetris"]; ok {
		t.Error("BestScores() should not include unplayed games")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 200)
	store.SaveScore("tetris", 300)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snake, _ := store.TopScores("snake", 10)
	if len(snake) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snake))
	}
	tetris, _ := store.TopScores("tetris", 10)
	if len(tetris) != 1 {
		t.Error("Tetris scores should not be affected by clearing snake")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pong")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero", empty)
	}

	store.SaveScore("breakout", 100)
	store.SaveScore("breakout", 300)
	store.SaveScore("snake", 40)

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["snake"].HighScore != 40 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
