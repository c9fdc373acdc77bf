// Package models holds the domain types for workout tracking: workout
// definitions, recorded exercise entries, and sessions. JSON field names
// mirror the persisted record layout so stored data round-trips losslessly.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks rejected user input (blank names, incomplete
// measurements). Callers test for it with errors.Is.
var ErrValidation = errors.New("validation failed")

// Category is a workout category. Cardio is special-cased throughout:
// cardio entries are recorded in minutes and excluded from volume math.
type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryLegs      Category = "Legs"
	CategoryShoulders Category = "Shoulders"
	CategoryArms      Category = "Arms"
	CategoryCore      Category = "Core"
	CategoryCardio    Category = "Cardio"
	CategoryOther     Category = "Other"
)

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "All"

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryChest, CategoryBack, CategoryLegs, CategoryShoulders,
	CategoryArms, CategoryCore, CategoryCardio, CategoryOther,
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// IsCardio reports whether entries under this category are recorded in
// minutes rather than weight/reps/sets.
func (c Category) IsCardio() bool { return c == CategoryCardio }

// WorkoutDefinition is a named, categorized exercise template. Built-in
// definitions carry fixed ids; user-created ones use the custom-<epoch-ms>
// scheme. Definitions are immutable once created.
type WorkoutDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// ExerciseEntry is one recorded performance of a workout within a session.
// Exactly one of weight/reps/sets or minutes is populated, determined by
// the embedded workout's category.
type ExerciseEntry struct {
	ID      string            `json:"id"`
	Workout WorkoutDefinition `json:"workout"`
	Time    string            `json:"time"`
	Weight  float64           `json:"weight,omitempty"`
	Reps    int               `json:"reps,omitempty"`
	Sets    int               `json:"sets,omitempty"`
	Minutes int               `json:"minutes,omitempty"`
}

// Volume returns weight * reps * sets. Cardio entries contribute zero, as
// do entries with missing numeric fields.
func (e ExerciseEntry) Volume() float64 {
	if e.Workout.Category.IsCardio() {
		return 0
	}
	return e.Weight * float64(e.Reps) * float64(e.Sets)
}

// Display layouts follow the locale-formatted strings the client shows:
// full date-time for session boundaries, clock time for entry capture.
const (
	DisplayTimeLayout  = "1/2/2006, 3:04:05 PM"
	DisplayClockLayout = "3:04:05 PM"
)

// Session is one contiguous workout-logging interval. An active session
// has no EndTime/Duration; completion sets both and the session is never
// mutated again.
type Session struct {
	ID             string          `json:"id"`
	StartTime      string          `json:"startTime"`
	StartTimestamp int64           `json:"startTimestamp"` // epoch ms
	Exercises      []ExerciseEntry `json:"exercises"`
	EndTime        string          `json:"endTime,omitempty"`
	Duration       *int            `json:"duration,omitempty"` // minutes
}

// Completed reports whether the session has been ended.
func (s Session) Completed() bool { return s.Duration != nil }

// StartedOn reports whether the session's start timestamp falls on the
// same local calendar date as day. Time of day is ignored.
func (s Session) StartedOn(day time.Time) bool {
	started := time.UnixMilli(s.StartTimestamp).In(day.Location())
	y1, m1, d1 := started.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Measurement carries the numeric input for one exercise entry. Which
// fields are required depends on the workout's category.
type Measurement struct {
	Weight  float64
	Reps    int
	Sets    int
	Minutes int
}

// Validate checks that every field the category requires is present.
// Partial entries are never recorded.
func (m Measurement) Validate(c Category) error {
	if c.IsCardio() {
		if m.Minutes <= 0 {
			return fmt.Errorf("%w: minutes is required for cardio entries", ErrValidation)
		}
		return nil
	}
	if m.Weight <= 0 {
		return fmt.Errorf("%w: weight is required", ErrValidation)
	}
	if m.Reps <= 0 {
		return fmt.Errorf("%w: reps is required", ErrValidation)
	}
	if m.Sets <= 0 {
		return fmt.Errorf("%w: sets is required", ErrValidation)
	}
	return nil
}
