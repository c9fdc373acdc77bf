// Package catalog merges the static built-in workout library with
// user-created custom workout definitions.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/meltforce/gymtrack/internal/clock"
	"github.com/meltforce/gymtrack/internal/models"
)

//go:embed workouts.json
var builtinJSON []byte

const defaultDescription = "Custom workout"

// Catalog holds built-in and custom workout definitions. Built-ins are
// read-only; customs are append-only for the app lifetime.
type Catalog struct {
	clock    clock.Clock
	builtins []models.WorkoutDefinition
	customs  []models.WorkoutDefinition

	// lastCustomMs guards the custom-<epoch-ms> id scheme against two
	// creations landing in the same millisecond.
	lastCustomMs int64
}

// New builds a catalog from the embedded library plus previously persisted
// custom definitions.
func New(clk clock.Clock, customs []models.WorkoutDefinition) (*Catalog, error) {
	var lib struct {
		Workouts []models.WorkoutDefinition `json:"workouts"`
	}
	if err := json.Unmarshal(builtinJSON, &lib); err != nil {
		return nil, fmt.Errorf("parsing builtin workout library: %w", err)
	}

	c := &Catalog{
		clock:    clk,
		builtins: lib.Workouts,
		customs:  append([]models.WorkoutDefinition(nil), customs...),
	}
	for _, w := range customs {
		if ms, ok := customIDMillis(w.ID); ok && ms > c.lastCustomMs {
			c.lastCustomMs = ms
		}
	}
	return c, nil
}

func customIDMillis(id string) (int64, bool) {
	suffix, ok := strings.CutPrefix(id, "custom-")
	if !ok {
		return 0, false
	}
	ms, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}

// All returns built-ins followed by customs, in stable order.
func (c *Catalog) All() []models.WorkoutDefinition {
	out := make([]models.WorkoutDefinition, 0, len(c.builtins)+len(c.customs))
	out = append(out, c.builtins...)
	out = append(out, c.customs...)
	return out
}

// Customs returns the user-created definitions, for persistence snapshots.
func (c *Catalog) Customs() []models.WorkoutDefinition {
	return append([]models.WorkoutDefinition(nil), c.customs...)
}

// ByID looks up a definition across built-ins and customs.
func (c *Catalog) ByID(id string) (models.WorkoutDefinition, bool) {
	for _, w := range c.builtins {
		if w.ID == id {
			return w, true
		}
	}
	for _, w := range c.customs {
		if w.ID == id {
			return w, true
		}
	}
	return models.WorkoutDefinition{}, false
}

// Create adds a custom definition. Name and category are required after
// trimming; the category must be a member of the fixed set. A blank
// description defaults to "Custom workout".
func (c *Catalog) Create(name, category, description string) (models.WorkoutDefinition, error) {
	name = strings.TrimSpace(name)
	cat := models.Category(strings.TrimSpace(category))
	description = strings.TrimSpace(description)

	if name == "" {
		return models.WorkoutDefinition{}, fmt.Errorf("%w: workout name is required", models.ErrValidation)
	}
	if cat == "" {
		return models.WorkoutDefinition{}, fmt.Errorf("%w: category is required", models.ErrValidation)
	}
	if !cat.Valid() {
		return models.WorkoutDefinition{}, fmt.Errorf("%w: unknown category %q", models.ErrValidation, category)
	}
	if description == "" {
		description = defaultDescription
	}

	w := models.WorkoutDefinition{
		ID:          c.nextID(),
		Name:        name,
		Category:    cat,
		Description: description,
	}
	c.customs = append(c.customs, w)
	return w, nil
}

// nextID keeps the custom-<epoch-ms> id shape while guaranteeing that two
// calls in the same millisecond never collide.
func (c *Catalog) nextID() string {
	ms := c.clock.Now().UnixMilli()
	if ms <= c.lastCustomMs {
		ms = c.lastCustomMs + 1
	}
	c.lastCustomMs = ms
	return fmt.Sprintf("custom-%d", ms)
}

// Filter returns definitions whose name contains search (case-insensitive)
// and whose category matches. CategoryAll, or a blank category, passes
// everything.
func (c *Catalog) Filter(search, category string) []models.WorkoutDefinition {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []models.WorkoutDefinition
	for _, w := range c.All() {
		if search != "" && !strings.Contains(strings.ToLower(w.Name), search) {
			continue
		}
		if category != "" && category != models.CategoryAll && string(w.Category) != category {
			continue
		}
		out = append(out, w)
	}
	return out
}
