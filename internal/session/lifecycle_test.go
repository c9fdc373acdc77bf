package session

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/meltforce/gymtrack/internal/models"
)

// stepClock returns a programmable sequence of instants so durations are
// deterministic.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLifecycle() (*Lifecycle, *stepClock) {
	clk := &stepClock{now: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)}
	return New(clk, slog.New(slog.NewTextHandler(io.Discard, nil))), clk
}

var benchPress = models.WorkoutDefinition{
	ID: "bench-press", Name: "Bench Press", Category: models.CategoryChest,
}

var treadmill = models.WorkoutDefinition{
	ID: "treadmill-run", Name: "Treadmill Run", Category: models.CategoryCardio,
}

// TestStartCreatesActiveSession verifies a fresh session has an id, start
// timestamps, and an empty exercise list.
func TestStartCreatesActiveSession(t *testing.T) {
	l, clk := newTestLifecycle()

	s, outcome := l.Start()
	if outcome != Applied {
		t.Fatalf("Start() outcome = %v, want Applied", outcome)
	}
	if s.ID == "" {
		t.Error("session id is empty")
	}
	if s.StartTimestamp != clk.now.UnixMilli() {
		t.Errorf("StartTimestamp = %d, want %d", s.StartTimestamp, clk.now.UnixMilli())
	}
	if len(s.Exercises) != 0 {
		t.Errorf("new session has %d exercises", len(s.Exercises))
	}
	if s.Completed() {
		t.Error("new session reports completed")
	}
}

// TestSecondStartIgnored verifies the single-active-session invariant:
// a second start is a no-op and the active session identity is unchanged.
func TestSecondStartIgnored(t *testing.T) {
	l, _ := newTestLifecycle()

	first, _ := l.Start()
	second, outcome := l.Start()
	if outcome != Ignored {
		t.Fatalf("second Start() outcome = %v, want Ignored", outcome)
	}
	if second.ID != first.ID {
		t.Errorf("active session changed: %q → %q", first.ID, second.ID)
	}
}

// TestRecordRequiresActiveSession verifies recording with no session is a
// silent no-op, not an error.
func TestRecordRequiresActiveSession(t *testing.T) {
	l, _ := newTestLifecycle()

	_, outcome, err := l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10, Sets: 3})
	if outcome != Ignored {
		t.Errorf("outcome = %v, want Ignored", outcome)
	}
	if err != nil {
		t.Errorf("no-active-session should not error, got %v", err)
	}
}

// TestRecordRejectsPartialMeasurement verifies incomplete measurements are
// rejected with ErrValidation and do not touch the session.
func TestRecordRejectsPartialMeasurement(t *testing.T) {
	l, _ := newTestLifecycle()
	l.Start()

	_, outcome, err := l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10})
	if outcome != Ignored || !errors.Is(err, models.ErrValidation) {
		t.Errorf("partial measurement: outcome = %v, err = %v", outcome, err)
	}

	active, _ := l.Active()
	if len(active.Exercises) != 0 {
		t.Errorf("rejected record left %d entries", len(active.Exercises))
	}
}

// TestRecordStrengthAndCardio verifies that exactly the fields for the
// workout's category are populated on the recorded entry.
func TestRecordStrengthAndCardio(t *testing.T) {
	l, _ := newTestLifecycle()
	l.Start()

	strength, outcome, err := l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10, Sets: 3})
	if outcome != Applied || err != nil {
		t.Fatalf("strength record: outcome = %v, err = %v", outcome, err)
	}
	if strength.Weight != 50 || strength.Reps != 10 || strength.Sets != 3 || strength.Minutes != 0 {
		t.Errorf("strength entry fields = %+v", strength)
	}
	if strength.ID == "" || strength.Time == "" {
		t.Error("entry missing id or capture time")
	}
	if strength.Workout.ID != benchPress.ID {
		t.Errorf("embedded workout = %q", strength.Workout.ID)
	}

	cardio, outcome, err := l.Record(treadmill, models.Measurement{Minutes: 30})
	if outcome != Applied || err != nil {
		t.Fatalf("cardio record: outcome = %v, err = %v", outcome, err)
	}
	if cardio.Minutes != 30 || cardio.Weight != 0 || cardio.Reps != 0 || cardio.Sets != 0 {
		t.Errorf("cardio entry fields = %+v", cardio)
	}

	active, _ := l.Active()
	if len(active.Exercises) != 2 {
		t.Errorf("active session has %d entries, want 2", len(active.Exercises))
	}
}

// TestEndEmptySessionIgnored verifies that ending a session with zero
// exercises does not transition state: empty sessions never pollute
// history.
func TestEndEmptySessionIgnored(t *testing.T) {
	l, _ := newTestLifecycle()
	l.Start()

	_, outcome := l.End()
	if outcome != Ignored {
		t.Fatalf("End() on empty session = %v, want Ignored", outcome)
	}
	if _, active := l.Active(); !active {
		t.Error("session should still be active after rejected end")
	}
}

// TestEndComputesDuration verifies the duration is the rounded minute
// difference between start and end, and that completion clears the active
// session.
func TestEndComputesDuration(t *testing.T) {
	l, clk := newTestLifecycle()
	l.Start()
	l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10, Sets: 3})

	clk.advance(45*time.Minute + 20*time.Second) // rounds down to 45

	done, outcome := l.End()
	if outcome != Applied {
		t.Fatalf("End() outcome = %v, want Applied", outcome)
	}
	if done.Duration == nil || *done.Duration != 45 {
		t.Errorf("duration = %v, want 45", done.Duration)
	}
	if done.EndTime == "" {
		t.Error("end time not set")
	}
	if _, active := l.Active(); active {
		t.Error("session still active after completion")
	}

	// Terminal: a second end has nothing to act on.
	if _, outcome := l.End(); outcome != Ignored {
		t.Error("End() after completion should be Ignored")
	}
}

// TestEndWithoutStartTimestamp verifies the degraded path: a session whose
// start timestamp is missing substitutes the current time, so duration
// collapses to zero instead of failing.
func TestEndWithoutStartTimestamp(t *testing.T) {
	l, _ := newTestLifecycle()
	l.Start()
	l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10, Sets: 3})
	l.active.StartTimestamp = 0

	done, outcome := l.End()
	if outcome != Applied {
		t.Fatalf("End() outcome = %v, want Applied", outcome)
	}
	if done.Duration == nil || *done.Duration != 0 {
		t.Errorf("duration = %v, want 0", done.Duration)
	}
}

// TestCancelDropsSession verifies cancellation works with and without
// exercises and frees the slot for a new start.
func TestCancelDropsSession(t *testing.T) {
	l, _ := newTestLifecycle()

	if l.Cancel() != Ignored {
		t.Error("Cancel() with no session should be Ignored")
	}

	l.Start()
	l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10, Sets: 3})
	if l.Cancel() != Applied {
		t.Error("Cancel() on active session should be Applied")
	}
	if _, active := l.Active(); active {
		t.Error("session still active after cancel")
	}

	if _, outcome := l.Start(); outcome != Applied {
		t.Error("Start() after cancel should be Applied")
	}
}

// TestActiveReturnsCopy verifies callers cannot mutate the lifecycle's
// session through the returned value.
func TestActiveReturnsCopy(t *testing.T) {
	l, _ := newTestLifecycle()
	l.Start()
	l.Record(benchPress, models.Measurement{Weight: 50, Reps: 10, Sets: 3})

	copy1, _ := l.Active()
	copy1.Exercises[0].Weight = 999

	copy2, _ := l.Active()
	if copy2.Exercises[0].Weight != 50 {
		t.Errorf("mutation through copy leaked: weight = %v", copy2.Exercises[0].Weight)
	}
}
