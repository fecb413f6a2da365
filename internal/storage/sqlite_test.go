package storage

import (
	"os"
	"path/filepath"
	"sync"
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

func mustSave(t *testing.T, store *Store, run Run) {
	t.Helper()
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun(%+v) failed: %v", run, err)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "ayu", Score: 100, Stage: 1})
	mustSave(t, store, Run{Player: "budi", Score: 50, Stage: 1})
	mustSave(t, store, Run{Player: "ayu", Score: 225, Stage: 2})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	want := []int{225, 100, 50}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
		if r.RunID == "" {
			t.Errorf("runs[%d] has no run id", i)
		}
	}
	if runs[0].Player != "ayu" || runs[0].Stage != 2 {
		t.Errorf("top run = %+v, expected ayu on stage 2", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Run{Player: "p", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "first", Score: 75})
	mustSave(t, store, Run{Player: "second", Score: 75})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].Player != "first" || runs[1].Player != "second" {
		t.Errorf("tie order = %s, %s", runs[0].Player, runs[1].Player)
	}
}

func TestStoreSaveRunDefaults(t *testing.T) {
	store := openTestStore(t)
	runID := NewRunID()

	mustSave(t, store, Run{RunID: runID, Player: "  ", Score: 0, Stage: 0})

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if r.Player != "anonymous" {
		t.Errorf("Player = %q, expected anonymous", r.Player)
	}
	if r.Stage != 1 {
		t.Errorf("Stage = %d, expected 1", r.Stage)
	}

	missing, err := store.RunByID(NewRunID())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreSaveRunRejects(t *testing.T) {
	store := openTestStore(t)
	runID := NewRunID()
	mustSave(t, store, Run{RunID: runID, Player: "p", Score: 10})

	tests := []struct {
		name string
		run  Run
	}{
		{"negative score", Run{Player: "p", Score: -1}},
		{"malformed run id", Run{RunID: "not-a-uuid", Player: "p", Score: 1}},
		{"duplicate run id", Run{RunID: runID, Player: "p", Score: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("SaveRun() should fail")
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	mustSave(t, store, Run{Player: "a", Score: 100})
	mustSave(t, store, Run{Player: "b", Score: 300})
	mustSave(t, store, Run{Player: "c", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "ayu", Score: 25})
	mustSave(t, store, Run{Player: "budi", Score: 500})
	mustSave(t, store, Run{Player: "ayu", Score: 175})

	runs, err := store.PlayerRuns("ayu", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 175 || runs[1].Score != 25 {
		t.Errorf("PlayerRuns(ayu) = %v", runs)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty board failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{Player: "ayu", Score: 100})
	mustSave(t, store, Run{Player: "budi", Score: 300})
	mustSave(t, store, Run{Player: "ayu", Score: 200})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.Players != 2 {
		t.Errorf("Players = %d, expected 2", stats.Players)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "a", Score: 100})
	mustSave(t, store, Run{Player: "b", Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRun(Run{Player: "ssh", Score: score}); err != nil {
				errs <- err
			}
		}(i * 10)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent SaveRun failed: %v", err)
	}
}
