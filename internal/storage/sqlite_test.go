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

func mustSave(t *testing.T, store *Store, r Run) {
	t.Helper()
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "crystal", Score: 10, Hits: 2, FixedTicks: 640, Duration: 10, Seed: 7})
	mustSave(t, store, Run{GameID: "crystal", Score: 5, Hits: 1})
	mustSave(t, store, Run{GameID: "crystal", Score: 20, Hits: 4})
	mustSave(t, store, Run{GameID: "crystal-survival", Score: 50, Hits: 3})

	runs, err := store.TopRuns("crystal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if r := runs[1]; r.Hits != 2 || r.FixedTicks != 640 || r.Duration != 10 || r.Seed != 7 {
		t.Errorf("Run fields not round-tripped: %+v", r)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	survival, err := store.TopRuns("crystal-survival", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(survival) != 1 {
		t.Errorf("Expected 1 survival run, got %d", len(survival))
	}
}

func TestStoreTopRunsTieBreaksOnHits(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, Run{GameID: "crystal", Score: 10, Hits: 5})
	mustSave(t, store, Run{GameID: "crystal", Score: 10, Hits: 1})

	runs, err := store.TopRuns("crystal", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Hits != 1 {
		t.Errorf("Expected the cleaner run first, got %+v", runs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		mustSave(t, store, Run{GameID: "test", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	all, err := store.TopRuns("test", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 runs without limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crystal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, Run{GameID: "crystal", Score: 100})
	mustSave(t, store, Run{GameID: "crystal", Score: 300})
	mustSave(t, store, Run{GameID: "crystal", Score: 200})

	high, err = store.HighScore("crystal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, Run{GameID: "crystal", Score: 100})
	mustSave(t, store, Run{GameID: "crystal", Score: 200})
	mustSave(t, store, Run{GameID: "crystal-survival", Score: 300})

	if err := store.ClearRuns("crystal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("crystal", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("crystal-survival", 10); len(runs) != 1 {
		t.Error("Survival runs should not be affected by clearing crystal")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("crystal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, Run{GameID: "crystal", Score: 10, Hits: 1, Duration: 30})
	mustSave(t, store, Run{GameID: "crystal", Score: 30, Hits: 3, Duration: 60})

	stats, err := store.GetGameStats("crystal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.TotalHits != 4 || stats.TotalSeconds != 90 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["crystal"].RunsCount != 2 {
		t.Errorf("Unexpected all-games stats: %+v", all)
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
