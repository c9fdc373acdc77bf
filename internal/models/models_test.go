package models

import (
	"errors"
	"testing"
	"time"
)

// TestMeasurementValidateStrength verifies that non-cardio entries require
// weight, reps, and sets, and that a complete measurement passes.
func TestMeasurementValidateStrength(t *testing.T) {
	cases := []struct {
		name    string
		m       Measurement
		wantErr bool
	}{
		{"complete", Measurement{Weight: 50, Reps: 10, Sets: 3}, false},
		{"missing weight", Measurement{Reps: 10, Sets: 3}, true},
		{"missing reps", Measurement{Weight: 50, Sets: 3}, true},
		{"missing sets", Measurement{Weight: 50, Reps: 10}, true},
		{"all missing", Measurement{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate(CategoryChest)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error %v is not ErrValidation", err)
			}
		})
	}
}

// TestMeasurementValidateCardio verifies that cardio entries require only
// minutes; the strength fields are irrelevant.
func TestMeasurementValidateCardio(t *testing.T) {
	if err := (Measurement{Minutes: 30}).Validate(CategoryCardio); err != nil {
		t.Errorf("cardio with minutes: unexpected error %v", err)
	}
	if err := (Measurement{Weight: 50, Reps: 10, Sets: 3}).Validate(CategoryCardio); err == nil {
		t.Error("cardio without minutes: expected error")
	}
}

// TestVolume verifies the volume formula and that cardio entries always
// contribute zero regardless of stray strength fields.
func TestVolume(t *testing.T) {
	strength := ExerciseEntry{
		Workout: WorkoutDefinition{Category: CategoryChest},
		Weight:  50, Reps: 10, Sets: 3,
	}
	if got := strength.Volume(); got != 1500 {
		t.Errorf("Volume() = %v, want 1500", got)
	}

	cardio := ExerciseEntry{
		Workout: WorkoutDefinition{Category: CategoryCardio},
		Minutes: 30,
	}
	if got := cardio.Volume(); got != 0 {
		t.Errorf("cardio Volume() = %v, want 0", got)
	}
}

// TestStartedOn verifies calendar-date matching in local time: a session
// started at 23:50 matches its own calendar date and not the next day,
// regardless of time of day.
func TestStartedOn(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	start := time.Date(2024, 3, 5, 23, 50, 0, 0, loc)
	s := Session{StartTimestamp: start.UnixMilli()}

	if !s.StartedOn(time.Date(2024, 3, 5, 8, 0, 0, 0, loc)) {
		t.Error("session at 23:50 should match 2024-03-05")
	}
	if s.StartedOn(time.Date(2024, 3, 6, 0, 10, 0, 0, loc)) {
		t.Error("session at 23:50 should not match 2024-03-06")
	}
}

// TestCategoryValid verifies membership of the fixed category set and that
// the "All" sentinel is not itself a category.
func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("Yoga").Valid() {
		t.Error("unknown category should be invalid")
	}
	if Category(CategoryAll).Valid() {
		t.Error("the All sentinel is a filter value, not a category")
	}
}

// TestFormatDuration verifies the duration display rules, including the
// nil (never recorded) and sub-minute cases.
func TestFormatDuration(t *testing.T) {
	ptr := func(m int) *int { return &m }
	cases := []struct {
		in   *int
		want string
	}{
		{nil, "Duration not recorded"},
		{ptr(0), "1 min"},
		{ptr(45), "45 min"},
		{ptr(60), "1h"},
		{ptr(95), "1h 35m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
