package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// TestSQLiteMissingKey verifies that a key that was never written reads as
// absent, not as an error. A fresh install must start cleanly.
func TestSQLiteMissingKey(t *testing.T) {
	store := openTemp(t)

	_, ok, err := store.GetItem(context.Background(), "workoutHistory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

// TestSQLiteSetGet verifies a write is readable and that a second write
// replaces the first.
func TestSQLiteSetGet(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	if err := store.SetItem(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetItem(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := store.GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "v2" {
		t.Errorf("GetItem = (%q, %v), want (%q, true)", got, ok, "v2")
	}
}

// TestSQLitePersistsAcrossOpens verifies data survives closing and
// reopening the database file.
func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "gymtrack.db")
	ctx := context.Background()

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetItem(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	store, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	got, ok, err := store.GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "v" {
		t.Errorf("GetItem after reopen = (%q, %v), want (%q, true)", got, ok, "v")
	}
}

// TestMemoryStore verifies the in-memory store honors the same contract as
// the SQLite store: absent until written, last write wins.
func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, ok, _ := store.GetItem(ctx, "k"); ok {
		t.Error("missing key reported as present")
	}
	store.SetItem(ctx, "k", "a")
	store.SetItem(ctx, "k", "b")
	got, ok, _ := store.GetItem(ctx, "k")
	if !ok || got != "b" {
		t.Errorf("GetItem = (%q, %v), want (%q, true)", got, ok, "b")
	}
}

func openTemp(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
