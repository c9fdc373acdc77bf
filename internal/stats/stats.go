// Package stats derives summary statistics and chart-ready series from the
// session history. Everything here is a pure function of its input:
// no side effects, no stored state.
package stats

import (
	"fmt"
	"math"

	"github.com/meltforce/gymtrack/internal/models"
)

// chartWindow is how many of the most recent sessions feed the chart
// series.
const chartWindow = 7

// Summary holds the aggregate statistics over the full history.
type Summary struct {
	TotalSessions      int     `json:"totalSessions"`
	TotalExercises     int     `json:"totalExercises"`
	TotalSets          int     `json:"totalSets"`
	TotalVolume        float64 `json:"totalVolume"`
	TotalCardioMinutes int     `json:"totalCardioMinutes"`
	AvgSessionDuration int     `json:"avgSessionDuration"`
	TopExercise        string  `json:"topExercise,omitempty"`
}

// Compute derives the summary in a single pass over all sessions and
// exercises. Missing or malformed fields aggregate as zero; a session
// with no exercise data still counts toward TotalSessions. Sessions
// without a duration are excluded from the average entirely, not treated
// as zero.
func Compute(sessions []models.Session) Summary {
	sum := Summary{TotalSessions: len(sessions)}

	counts := make(map[string]int)
	var order []string // first-encountered order, for the tie-break
	var totalDuration, withDuration int

	for _, s := range sessions {
		if s.Duration != nil {
			totalDuration += *s.Duration
			withDuration++
		}
		for _, ex := range s.Exercises {
			sum.TotalExercises++
			if ex.Workout.Category.IsCardio() {
				sum.TotalCardioMinutes += ex.Minutes
			} else {
				sum.TotalSets += ex.Sets
				sum.TotalVolume += ex.Volume()
			}

			name := ex.Workout.Name
			if name == "" {
				name = "Unknown"
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	if withDuration > 0 {
		sum.AvgSessionDuration = int(math.Round(float64(totalDuration) / float64(withDuration)))
	}

	// Highest count wins; ties go to the name encountered first.
	top := 0
	for _, name := range order {
		if counts[name] > top {
			top = counts[name]
			sum.TopExercise = name
		}
	}

	return sum
}

// SeriesPoint is one labelled value in a chart series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// VolumeSeries returns per-session strength volume for the most recent
// sessions (history is newest-first, so the first chartWindow entries),
// labelled S1..S7.
func VolumeSeries(sessions []models.Session) []SeriesPoint {
	return series(sessions, func(s models.Session) float64 {
		var v float64
		for _, ex := range s.Exercises {
			v += ex.Volume()
		}
		return v
	})
}

// CardioSeries returns per-session cardio minutes over the same window.
func CardioSeries(sessions []models.Session) []SeriesPoint {
	return series(sessions, func(s models.Session) float64 {
		var mins float64
		for _, ex := range s.Exercises {
			if ex.Workout.Category.IsCardio() {
				mins += float64(ex.Minutes)
			}
		}
		return mins
	})
}

func series(sessions []models.Session, value func(models.Session) float64) []SeriesPoint {
	n := min(len(sessions), chartWindow)
	out := make([]SeriesPoint, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SeriesPoint{
			Label: fmt.Sprintf("S%d", i+1),
			Value: value(sessions[i]),
		})
	}
	return out
}
