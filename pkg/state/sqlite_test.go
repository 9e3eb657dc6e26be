package state

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T, path string) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(path, "")
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := openTestSQLite(t, ":memory:")
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("Load() on empty db error = %v, expected ErrStateNotFound", err)
	}

	if err := store.Save(ctx, sampleState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	updated := sampleState()
	updated.Score = 999
	if err := store.Save(ctx, updated); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Score != 999 {
		t.Errorf("Score = %d, expected 999", got.Score)
	}
	if got.Settings.Language != "he" {
		t.Errorf("Settings.Language = %q, expected he", got.Settings.Language)
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := OpenSQLiteStore(path, "")
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	if err := first.Save(ctx, sampleState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second := openTestSQLite(t, path)
	got, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if got.TotalSpins != 42 {
		t.Errorf("TotalSpins = %d, expected 42", got.TotalSpins)
	}
	if err := second.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestOpenSQLiteStore_EmptyPath(t *testing.T) {
	if _, err := OpenSQLiteStore("  ", ""); err == nil {
		t.Error("OpenSQLiteStore() should reject an empty path")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("Load() error = %v, expected ErrStateNotFound", err)
	}

	saved := sampleState()
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	saved.OwnedUpgrades[0] = "mutated"

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.OwnedUpgrades[0] != "silver" {
		t.Errorf("stored record shares memory with caller: %v", got.OwnedUpgrades)
	}

	boom := errors.New("disk full")
	store.FailSaves(boom)
	if err := store.Save(ctx, sampleState()); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, expected %v", err, boom)
	}
}

func TestSQLiteStore_FilePragmas(t *testing.T) {
	store := openTestSQLite(t, filepath.Join(t.TempDir(), "state.db"))

	var journal string
	if err := store.db.QueryRow(`PRAGMA journal_mode`).Scan(&journal); err != nil {
		t.Fatalf("journal_mode error = %v", err)
	}
	if journal != "wal" {
		t.Errorf("journal_mode = %q, expected wal", journal)
	}

	var timeout int
	if err := store.db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout); err != nil {
		t.Fatalf("busy_timeout error = %v", err)
	}
	if timeout != 5000 {
		t.Errorf("busy_timeout = %d, expected 5000", timeout)
	}

	var synchronous int
	if err := store.db.QueryRow(`PRAGMA synchronous`).Scan(&synchronous); err != nil {
		t.Fatalf("synchronous error = %v", err)
	}
	if synchronous != 1 {
		t.Errorf("synchronous = %d, expected 1 (NORMAL)", synchronous)
	}
}
