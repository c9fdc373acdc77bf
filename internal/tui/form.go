package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meltforce/gymtrack/internal/models"
)

// parseMeasurement converts raw form input into a measurement for the given
// category. Cardio takes minutes only; everything else takes weight, reps
// and sets, all required.
func parseMeasurement(c models.Category, weight, reps, sets, minutes string) (models.Measurement, error) {
	var m models.Measurement

	if c.IsCardio() {
		mins, err := parsePositiveInt("minutes", minutes)
		if err != nil {
			return m, err
		}
		m.Minutes = mins
		return m, nil
	}

	w, err := parsePositiveFloat("weight", weight)
	if err != nil {
		return m, err
	}
	r, err := parsePositiveInt("reps", reps)
	if err != nil {
		return m, err
	}
	s, err := parsePositiveInt("sets", sets)
	if err != nil {
		return m, err
	}

	m.Weight = w
	m.Reps = r
	m.Sets = s
	return m, nil
}

func parsePositiveFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be greater than zero", field)
	}
	return v, nil
}

func parsePositiveInt(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be greater than zero", field)
	}
	return v, nil
}

// barWidth scales a value to a character count for a horizontal bar chart.
// A nonzero value always gets at least one cell so it remains visible.
func barWidth(value, max float64, width int) int {
	if max <= 0 || value <= 0 || width <= 0 {
		return 0
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
