// Package persist owns the serialization of committed state (session
// history and custom workout definitions) to the key-value store. The
// active session is never persisted: an in-progress session does not
// survive a restart.
package persist

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/meltforce/gymtrack/internal/models"
	"github.com/meltforce/gymtrack/internal/storage"
)

const (
	keyHistory        = "workoutHistory"
	keyCustomWorkouts = "customWorkouts"
)

// Snapshot is the full committed state at a point in time.
type Snapshot struct {
	History        []models.Session
	CustomWorkouts []models.WorkoutDefinition
}

// Gateway loads and saves snapshots. Saves are non-blocking; every save
// writes the complete snapshot, so a newer save racing an older one is
// resolved by last-write-wins.
type Gateway struct {
	store storage.Store
	log   *slog.Logger
	wg    sync.WaitGroup
}

// New creates a Gateway over the given store.
func New(store storage.Store, log *slog.Logger) *Gateway {
	return &Gateway{store: store, log: log}
}

// Load reads both records. A missing key, a read failure, or malformed
// content all yield an empty collection, never an error: a fresh install
// and a corrupted record both start the app with a clean slate.
func (g *Gateway) Load(ctx context.Context) Snapshot {
	var snap Snapshot
	if raw, ok := g.read(ctx, keyHistory); ok {
		var history []models.Session
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			g.log.Warn("malformed history record, starting empty", "error", err)
		} else {
			snap.History = history
		}
	}
	if raw, ok := g.read(ctx, keyCustomWorkouts); ok {
		var customs []models.WorkoutDefinition
		if err := json.Unmarshal([]byte(raw), &customs); err != nil {
			g.log.Warn("malformed custom workout record, starting empty", "error", err)
		} else {
			snap.CustomWorkouts = customs
		}
	}
	return snap
}

func (g *Gateway) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := g.store.GetItem(ctx, key)
	if err != nil {
		g.log.Warn("store read failed, starting empty", "key", key, "error", err)
		return "", false
	}
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

// Save marshals the snapshot synchronously, so the written state is
// exactly the state at call time, then performs both writes off the
// caller's goroutine. The two records are independent writes; there is no
// two-record transaction. Write failures are logged, not surfaced; the
// in-memory state stays authoritative.
func (g *Gateway) Save(ctx context.Context, snap Snapshot) {
	historyJSON, err := json.Marshal(snap.History)
	if err != nil {
		g.log.Error("marshaling history", "error", err)
		return
	}
	customJSON, err := json.Marshal(snap.CustomWorkouts)
	if err != nil {
		g.log.Error("marshaling custom workouts", "error", err)
		return
	}

	// Detach from the caller's cancellation: an in-flight save should
	// finish even if the triggering operation's context ends.
	ctx = context.WithoutCancel(ctx)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := g.store.SetItem(ctx, keyHistory, string(historyJSON)); err != nil {
			g.log.Error("history write failed", "error", err)
		}
		if err := g.store.SetItem(ctx, keyCustomWorkouts, string(customJSON)); err != nil {
			g.log.Error("custom workout write failed", "error", err)
		}
	}()
}

// Flush blocks until all in-flight writes have completed. Called on
// shutdown, and by tests before asserting on store contents.
func (g *Gateway) Flush() {
	g.wg.Wait()
}
