package storage

import (
	"errors"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("laze", 4)
	store.Close()

	// Migrations must be idempotent.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("laze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 4 {
		t.Errorf("HighScore() = %d after reopen, expected 4", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 1, 7} {
		if _, err := store.SaveScore("laze", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("laze_daily", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("laze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 7 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	daily, err := store.TopScores("laze_daily", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(daily) != 1 {
		t.Errorf("Expected 1 daily score, got %d", len(daily))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("laze", i+1)
	}

	scores, err := store.TopScores("laze", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	scores, _ = store.TopScores("laze", 0)
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("laze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("laze", 2)
	store.SaveScore("laze", 9)
	store.SaveScore("laze", 4)

	high, err = store.HighScore("laze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("laze", 1)
	store.SaveScore("laze", 2)
	store.SaveScore("laze_daily", 3)
	store.SaveRun(Run{GameID: "laze", Seed: 1, Levels: 2})
	store.SaveRun(Run{GameID: "laze_daily", Seed: 2, Levels: 3})

	if err := store.ClearScores("laze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("laze", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.BestRuns("laze", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("laze_daily", 10); len(scores) != 1 {
		t.Error("Daily scores should not be affected by clearing endless")
	}
	if runs, _ := store.BestRuns("laze_daily", 10); len(runs) != 1 {
		t.Error("Daily runs should not be affected by clearing endless")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:     "laze",
		Player:     "ada",
		Seed:       42,
		Levels:     3,
		MaxSize:    23,
		PathCells:  87,
		DurationMs: 91500,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveRun() id = %q, expected a uuid", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Player != "ada" || run.Seed != 42 || run.Levels != 3 ||
		run.MaxSize != 23 || run.PathCells != 87 || run.DurationMs != 91500 {
		t.Errorf("RunByID() = %+v", run)
	}

	// An explicit run ID is kept.
	id, err = store.SaveRun(Run{RunID: "fixed-id", GameID: "laze", Seed: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() id = %q, expected fixed-id", id)
	}

	// Run IDs are unique.
	if _, err := store.SaveRun(Run{RunID: "fixed-id", GameID: "laze"}); err == nil {
		t.Error("SaveRun() with duplicate id should fail")
	}
}

func TestStoreRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRun(Run{GameID: "laze", Seed: int64(i)})
	}
	store.SaveRun(Run{GameID: "laze_daily", Seed: 5})

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int64{5, 4, 3} {
		if runs[i].Seed != want {
			t.Errorf("runs[%d].Seed = %d, expected %d", i, runs[i].Seed, want)
		}
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "laze", Seed: 1, Levels: 2, DurationMs: 5000})
	store.SaveRun(Run{GameID: "laze", Seed: 2, Levels: 4, DurationMs: 9000})
	store.SaveRun(Run{GameID: "laze", Seed: 3, Levels: 4, DurationMs: 7000})
	store.SaveRun(Run{GameID: "laze_daily", Seed: 4, Levels: 9})

	runs, err := store.BestRuns("laze", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int64{3, 2, 1} {
		if runs[i].Seed != want {
			t.Errorf("runs[%d].Seed = %d, expected %d", i, runs[i].Seed, want)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("laze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("laze", 2)
	store.SaveScore("laze", 4)
	store.SaveScore("laze_daily", 1)

	stats, err = store.GetGameStats("laze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalScore != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["laze_daily"].HighScore != 1 {
		t.Errorf("daily stats = %+v", all["laze_daily"])
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
