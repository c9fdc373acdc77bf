// Package app is the application state container. It owns the workout
// catalog, the session history, and the active session, and routes all
// mutation through its methods behind a single mutex.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/meltforce/gymtrack/internal/catalog"
	"github.com/meltforce/gymtrack/internal/clock"
	"github.com/meltforce/gymtrack/internal/history"
	"github.com/meltforce/gymtrack/internal/models"
	"github.com/meltforce/gymtrack/internal/persist"
	"github.com/meltforce/gymtrack/internal/session"
	"github.com/meltforce/gymtrack/internal/stats"
)

// App wires the core components together. Construct with New, then call
// Hydrate before anything else.
type App struct {
	mu        sync.Mutex
	log       *slog.Logger
	clk       clock.Clock
	gateway   *persist.Gateway
	catalog   *catalog.Catalog
	history   *history.Store
	lifecycle *session.Lifecycle
	loaded    bool
}

// New creates an App over the given gateway. State is empty until Hydrate.
func New(gw *persist.Gateway, clk clock.Clock, log *slog.Logger) *App {
	return &App{log: log, clk: clk, gateway: gw}
}

// Hydrate loads the persisted snapshot and builds the in-memory state. It
// must complete before any mutating call, so that an early save can never
// clobber existing durable data with an empty snapshot.
func (a *App) Hydrate(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := a.gateway.Load(ctx)
	cat, err := catalog.New(a.clk, snap.CustomWorkouts)
	if err != nil {
		return fmt.Errorf("building workout catalog: %w", err)
	}
	a.catalog = cat
	a.history = history.New(snap.History)
	a.lifecycle = session.New(a.clk, a.log)
	a.loaded = true

	a.log.Info("state hydrated", "sessions", a.history.Len(), "custom_workouts", len(snap.CustomWorkouts))
	return nil
}

// Close drains any in-flight persistence writes.
func (a *App) Close() {
	a.gateway.Flush()
}

// save persists the committed state. Never writes before Hydrate has
// loaded the existing snapshot.
func (a *App) save(ctx context.Context) {
	if !a.loaded {
		return
	}
	a.gateway.Save(ctx, persist.Snapshot{
		History:        a.history.Sessions(),
		CustomWorkouts: a.catalog.Customs(),
	})
}

// StartSession begins a new session, or is Ignored if one is active.
// Nothing is persisted: the active session never reaches the store.
func (a *App) StartSession() (models.Session, session.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lifecycle.Start()
}

// ActiveSession returns a copy of the in-progress session, if any.
func (a *App) ActiveSession() (models.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lifecycle.Active()
}

// RecordExercise records a measurement against a catalog workout. Unknown
// workout ids are a validation failure; lifecycle state and measurement
// rules are enforced by the lifecycle itself.
func (a *App) RecordExercise(workoutID string, m models.Measurement) (models.ExerciseEntry, session.Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, ok := a.catalog.ByID(workoutID)
	if !ok {
		return models.ExerciseEntry{}, session.Ignored, fmt.Errorf("%w: unknown workout %q", models.ErrValidation, workoutID)
	}
	return a.lifecycle.Record(w, m)
}

// EndSession completes the active session, prepends it to history, and
// persists. Ignored (and nothing saved) when the lifecycle rejects the
// end.
func (a *App) EndSession(ctx context.Context) (models.Session, session.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	done, outcome := a.lifecycle.End()
	if outcome == session.Applied {
		a.history.Prepend(done)
		a.save(ctx)
	}
	return done, outcome
}

// CancelSession discards the active session. Nothing is persisted.
func (a *App) CancelSession() session.Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lifecycle.Cancel()
}

// DeleteSession removes one session from history by id and persists when
// something was actually removed.
func (a *App) DeleteSession(ctx context.Context, id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := a.history.DeleteByID(id)
	if removed {
		a.save(ctx)
	}
	return removed
}

// ClearHistory empties the history and persists.
func (a *App) ClearHistory(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history.Clear()
	a.save(ctx)
}

// CreateWorkout adds a custom workout definition and persists it.
func (a *App) CreateWorkout(ctx context.Context, name, category, description string) (models.WorkoutDefinition, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, err := a.catalog.Create(name, category, description)
	if err != nil {
		return models.WorkoutDefinition{}, err
	}
	a.save(ctx)
	return w, nil
}

// Workouts returns catalog definitions filtered by name search and
// category.
func (a *App) Workouts(search, category string) []models.WorkoutDefinition {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalog.Filter(search, category)
}

// Sessions returns the full history, newest first.
func (a *App) Sessions() []models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Sessions()
}

// SessionByID looks up one completed session.
func (a *App) SessionByID(id string) (models.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.ByID(id)
}

// History returns a filtered view of the session history.
func (a *App) History(f history.Filter) []models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Query(f)
}

// Stats computes the aggregate summary over the full history.
func (a *App) Stats() stats.Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats.Compute(a.history.Sessions())
}

// VolumeSeries returns the per-session volume chart series.
func (a *App) VolumeSeries() []stats.SeriesPoint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats.VolumeSeries(a.history.Sessions())
}

// CardioSeries returns the per-session cardio-minutes chart series.
func (a *App) CardioSeries() []stats.SeriesPoint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats.CardioSeries(a.history.Sessions())
}

// LastEntryFor returns the most recent recorded entry for a workout:
// newest session first, entries within a session in recorded order. The
// entry form shows this as the previous result.
func (a *App) LastEntryFor(workoutID string) (models.ExerciseEntry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range a.history.Sessions() {
		for _, ex := range s.Exercises {
			if ex.Workout.ID == workoutID {
				return ex, true
			}
		}
	}
	return models.ExerciseEntry{}, false
}
