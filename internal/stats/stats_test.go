package stats

import (
	"fmt"
	"testing"

	"github.com/meltforce/gymtrack/internal/models"
)

func minutes(m int) *int { return &m }

func strength(name string, weight float64, reps, sets int) models.ExerciseEntry {
	return models.ExerciseEntry{
		Workout: models.WorkoutDefinition{Name: name, Category: models.CategoryChest},
		Weight:  weight, Reps: reps, Sets: sets,
	}
}

func cardio(name string, mins int) models.ExerciseEntry {
	return models.ExerciseEntry{
		Workout: models.WorkoutDefinition{Name: name, Category: models.CategoryCardio},
		Minutes: mins,
	}
}

// TestComputeVolumeAndCardio verifies the volume formula and the cardio
// split: 50kg x 10 x 3 contributes 1500 to volume, a 30-minute cardio
// entry contributes 0 to volume and 30 to cardio minutes.
func TestComputeVolumeAndCardio(t *testing.T) {
	sessions := []models.Session{
		{ID: "A", Exercises: []models.ExerciseEntry{
			strength("Bench Press", 50, 10, 3),
			cardio("Treadmill Run", 30),
		}},
	}

	sum := Compute(sessions)
	if sum.TotalVolume != 1500 {
		t.Errorf("TotalVolume = %v, want 1500", sum.TotalVolume)
	}
	if sum.TotalCardioMinutes != 30 {
		t.Errorf("TotalCardioMinutes = %v, want 30", sum.TotalCardioMinutes)
	}
	if sum.TotalSets != 3 {
		t.Errorf("TotalSets = %v, want 3 (cardio excluded)", sum.TotalSets)
	}
	if sum.TotalSessions != 1 || sum.TotalExercises != 2 {
		t.Errorf("sessions/exercises = %d/%d, want 1/2", sum.TotalSessions, sum.TotalExercises)
	}
}

// TestComputeAvgDurationExcludesUndefined verifies sessions without a
// duration are excluded from both numerator and denominator:
// [10, 20, undefined] averages to 15, not 10.
func TestComputeAvgDurationExcludesUndefined(t *testing.T) {
	sessions := []models.Session{
		{ID: "A", Duration: minutes(10)},
		{ID: "B", Duration: minutes(20)},
		{ID: "C"},
	}
	if got := Compute(sessions).AvgSessionDuration; got != 15 {
		t.Errorf("AvgSessionDuration = %d, want 15", got)
	}
}

// TestComputeAvgDurationRounds verifies arithmetic-mean rounding to the
// nearest whole minute.
func TestComputeAvgDurationRounds(t *testing.T) {
	sessions := []models.Session{
		{ID: "A", Duration: minutes(10)},
		{ID: "B", Duration: minutes(11)},
	}
	if got := Compute(sessions).AvgSessionDuration; got != 11 {
		t.Errorf("AvgSessionDuration = %d, want 11 (10.5 rounded)", got)
	}
}

// TestTopExerciseTieBreak verifies the highest-count workout wins and that
// ties go to the first-encountered name in iteration order.
func TestTopExerciseTieBreak(t *testing.T) {
	sessions := []models.Session{
		{ID: "A", Exercises: []models.ExerciseEntry{
			strength("Squat", 100, 5, 5),
			strength("Bench Press", 50, 10, 3),
			strength("Bench Press", 55, 8, 3),
		}},
		{ID: "B", Exercises: []models.ExerciseEntry{
			strength("Squat", 100, 5, 5),
		}},
	}
	// Squat and Bench Press both appear twice; Squat was encountered first.
	if got := Compute(sessions).TopExercise; got != "Squat" {
		t.Errorf("TopExercise = %q, want Squat (first-encountered tie-break)", got)
	}
}

// TestComputeMalformedSessionNotFatal verifies a session with nil
// exercises is excluded from exercise-level stats but still counted in
// TotalSessions.
func TestComputeMalformedSessionNotFatal(t *testing.T) {
	sessions := []models.Session{
		{ID: "broken", Exercises: nil, Duration: minutes(10)},
		{ID: "ok", Exercises: []models.ExerciseEntry{strength("Bench Press", 50, 10, 3)}},
	}
	sum := Compute(sessions)
	if sum.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", sum.TotalSessions)
	}
	if sum.TotalExercises != 1 {
		t.Errorf("TotalExercises = %d, want 1", sum.TotalExercises)
	}
}

// TestComputeEmptyHistory verifies the zero-history case yields an all-zero
// summary with no top exercise.
func TestComputeEmptyHistory(t *testing.T) {
	sum := Compute(nil)
	if sum != (Summary{}) {
		t.Errorf("Compute(nil) = %+v, want zero summary", sum)
	}
}

// TestSeriesWindowAndLabels verifies the chart series covers only the 7
// most recent (first) sessions with positional labels S1..S7.
func TestSeriesWindowAndLabels(t *testing.T) {
	var sessions []models.Session
	for i := 0; i < 9; i++ {
		sessions = append(sessions, models.Session{
			ID: fmt.Sprintf("s%d", i),
			Exercises: []models.ExerciseEntry{
				strength("Bench Press", float64(i+1), 10, 1), // volume = (i+1)*10
			},
		})
	}

	series := VolumeSeries(sessions)
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	for i, p := range series {
		wantLabel := fmt.Sprintf("S%d", i+1)
		if p.Label != wantLabel {
			t.Errorf("label[%d] = %q, want %q", i, p.Label, wantLabel)
		}
		wantValue := float64(i+1) * 10
		if p.Value != wantValue {
			t.Errorf("value[%d] = %v, want %v", i, p.Value, wantValue)
		}
	}
}

// TestCardioSeries verifies per-session cardio minutes, with strength
// entries contributing nothing.
func TestCardioSeries(t *testing.T) {
	sessions := []models.Session{
		{ID: "A", Exercises: []models.ExerciseEntry{cardio("Cycling", 20), strength("Squat", 100, 5, 5)}},
		{ID: "B", Exercises: []models.ExerciseEntry{cardio("Cycling", 15), cardio("Jump Rope", 5)}},
		{ID: "C", Exercises: nil},
	}
	series := CardioSeries(sessions)
	want := []float64{20, 20, 0}
	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3", len(series))
	}
	for i, p := range series {
		if p.Value != want[i] {
			t.Errorf("value[%d] = %v, want %v", i, p.Value, want[i])
		}
	}
}
