package storage

import (
	"os"
	"path/filepath"
	"strings"
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

func mustSave(t *testing.T, store *Store, r Record) {
	t.Helper()
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", r, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Record{Score: 128, MaxTile: 32, Outcome: OutcomeLost})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 128 {
		t.Errorf("HighScore() after reopen = %d, want 128", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{Score: 100, MaxTile: 16, Outcome: OutcomeLost, Moves: 40})
	mustSave(t, store, Record{Score: 50, MaxTile: 8, Outcome: OutcomeAbandoned, Moves: 12})
	mustSave(t, store, Record{Score: 20000, MaxTile: 2048, Outcome: OutcomeWon, Moves: 900, Player: "alice"})

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 20000 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	top := scores[0]
	if top.MaxTile != 2048 || top.Outcome != OutcomeWon || top.Moves != 900 || top.Player != "alice" {
		t.Errorf("top entry fields not stored: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveDefaultsOutcome(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, Record{Score: 4})

	scores, err := store.TopScores(1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Outcome != OutcomeAbandoned {
		t.Errorf("Outcome = %+v, want abandoned", scores)
	}
}

func TestStoreSaveNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Record{Score: -1}); err == nil {
		t.Error("SaveScore() should reject negative scores")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 12 {
		mustSave(t, store, Record{Score: (i + 1) * 100, Outcome: OutcomeLost})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 1200 || scores[1].Score != 1100 || scores[2].Score != 1000 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to the default
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != DefaultLimit {
		t.Errorf("TopScores(0) returned %d entries, want %d", len(scores), DefaultLimit)
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{Score: 64, Player: "first"})
	mustSave(t, store, Record{Score: 64, Player: "second"})

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("ties should keep insertion order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	mustSave(t, store, Record{Score: 100})
	mustSave(t, store, Record{Score: 300})
	mustSave(t, store, Record{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", stats)
	}

	mustSave(t, store, Record{Score: 100, MaxTile: 16, Outcome: OutcomeLost})
	mustSave(t, store, Record{Score: 300, MaxTile: 2048, Outcome: OutcomeWon})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 300 || stats.BestTile != 2048 {
		t.Errorf("HighScore = %d, BestTile = %d", stats.HighScore, stats.BestTile)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("AvgScore = %v, TotalScore = %d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{Score: 100})
	mustSave(t, store, Record{Score: 200})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.t2048/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".t2048", "scores.db")) {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got, _ := ExpandHome("~user/x.db"); got != "~user/x.db" {
		t.Errorf("~user path should be left alone: %q", got)
	}
}
