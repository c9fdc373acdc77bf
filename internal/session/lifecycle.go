// Package session implements the workout-session state machine:
// NoSession → Active → Completed or Discarded. At most one session is
// active at a time; calls made in a state where they do not apply are
// tagged Ignored rather than raised as errors, matching the observed
// behavior the interactive surface depends on.
package session

import (
	"crypto/rand"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/meltforce/gymtrack/internal/clock"
	"github.com/meltforce/gymtrack/internal/models"
	"github.com/oklog/ulid/v2"
)

// Outcome reports whether a lifecycle call changed state.
type Outcome int

const (
	// Applied means the transition happened.
	Applied Outcome = iota
	// Ignored means the call was a no-op: either it arrived in a state
	// where it does not apply, or (for Record) the input was rejected.
	Ignored
)

// Lifecycle owns the single active session exclusively until completion or
// cancellation. It is not safe for concurrent use; the application state
// container serializes access.
type Lifecycle struct {
	clock  clock.Clock
	log    *slog.Logger
	active *models.Session
}

// New creates a Lifecycle in the NoSession state.
func New(clk clock.Clock, log *slog.Logger) *Lifecycle {
	return &Lifecycle{clock: clk, log: log}
}

// Active returns a copy of the active session, if any.
func (l *Lifecycle) Active() (models.Session, bool) {
	if l.active == nil {
		return models.Session{}, false
	}
	return l.snapshot(), true
}

func (l *Lifecycle) snapshot() models.Session {
	s := *l.active
	s.Exercises = append([]models.ExerciseEntry(nil), l.active.Exercises...)
	return s
}

// Start creates a fresh active session. Ignored while a session is already
// active: callers are expected to check state first, and a second start
// must not disturb the session in progress.
func (l *Lifecycle) Start() (models.Session, Outcome) {
	if l.active != nil {
		l.log.Debug("start ignored: session already active", "id", l.active.ID)
		return l.snapshot(), Ignored
	}

	now := l.clock.Now()
	l.active = &models.Session{
		ID:             ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		StartTime:      now.Format(models.DisplayTimeLayout),
		StartTimestamp: now.UnixMilli(),
		Exercises:      []models.ExerciseEntry{},
	}
	l.log.Info("session started", "id", l.active.ID)
	return l.snapshot(), Applied
}

// Record appends an exercise entry to the active session. Ignored with a
// nil error when no session is active; Ignored with a wrapped
// ErrValidation when the measurement is incomplete for the workout's
// category. Prior entries are never mutated.
func (l *Lifecycle) Record(w models.WorkoutDefinition, m models.Measurement) (models.ExerciseEntry, Outcome, error) {
	if l.active == nil {
		l.log.Debug("record ignored: no active session", "workout", w.ID)
		return models.ExerciseEntry{}, Ignored, nil
	}
	if err := m.Validate(w.Category); err != nil {
		return models.ExerciseEntry{}, Ignored, err
	}

	entry := models.ExerciseEntry{
		ID:      uuid.NewString(),
		Workout: w,
		Time:    l.clock.Now().Format(models.DisplayClockLayout),
	}
	if w.Category.IsCardio() {
		entry.Minutes = m.Minutes
	} else {
		entry.Weight = m.Weight
		entry.Reps = m.Reps
		entry.Sets = m.Sets
	}

	l.active.Exercises = append(l.active.Exercises, entry)
	l.log.Debug("exercise recorded", "session", l.active.ID, "workout", w.Name)
	return entry, Applied, nil
}

// End completes the active session and returns it for the caller to hand
// to history. Ignored when no session is active or when the session has no
// exercises; empty sessions never reach history.
func (l *Lifecycle) End() (models.Session, Outcome) {
	if l.active == nil {
		return models.Session{}, Ignored
	}
	if len(l.active.Exercises) == 0 {
		l.log.Debug("end ignored: session has no exercises", "id", l.active.ID)
		return models.Session{}, Ignored
	}

	now := l.clock.Now()
	start := l.active.StartTimestamp
	if start == 0 {
		// No recorded start; duration degrades to ~0 rather than failing.
		start = now.UnixMilli()
	}
	mins := int(math.Round(float64(now.UnixMilli()-start) / 60000.0))

	done := l.snapshot()
	done.EndTime = now.Format(models.DisplayTimeLayout)
	done.Duration = &mins
	l.active = nil

	l.log.Info("session completed", "id", done.ID, "exercises", len(done.Exercises), "duration_min", mins)
	return done, Applied
}

// Cancel discards the active session, exercises or not. The session is
// dropped without persistence.
func (l *Lifecycle) Cancel() Outcome {
	if l.active == nil {
		return Ignored
	}
	l.log.Info("session cancelled", "id", l.active.ID, "exercises", len(l.active.Exercises))
	l.active = nil
	return Applied
}
