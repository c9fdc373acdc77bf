// Package history holds the ordered list of completed sessions, newest
// first. Sessions are immutable once here; the store only prepends,
// deletes by id, and clears.
package history

import (
	"slices"
	"strings"
	"time"

	"github.com/meltforce/gymtrack/internal/models"
)

// Store is the newest-first session history. Not safe for concurrent use;
// the application state container serializes access.
type Store struct {
	sessions []models.Session
}

// New builds a store from previously persisted sessions, assumed already
// newest-first.
func New(sessions []models.Session) *Store {
	return &Store{sessions: append([]models.Session(nil), sessions...)}
}

// Prepend adds a freshly completed session to the front.
func (s *Store) Prepend(sess models.Session) {
	s.sessions = append([]models.Session{sess}, s.sessions...)
}

// DeleteByID removes at most one session. An absent id is a no-op, not an
// error. Relative order of the remaining sessions is preserved.
func (s *Store) DeleteByID(id string) bool {
	i := slices.IndexFunc(s.sessions, func(sess models.Session) bool { return sess.ID == id })
	if i < 0 {
		return false
	}
	s.sessions = slices.Delete(s.sessions, i, i+1)
	return true
}

// Clear empties the history unconditionally.
func (s *Store) Clear() {
	s.sessions = nil
}

// Len returns the number of stored sessions.
func (s *Store) Len() int { return len(s.sessions) }

// Sessions returns a copy of the full history, newest first.
func (s *Store) Sessions() []models.Session {
	return append([]models.Session(nil), s.sessions...)
}

// ByID looks up a single session.
func (s *Store) ByID(id string) (models.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}

// Filter selects sessions for Query. Zero-value fields are inactive.
type Filter struct {
	// Search matches workout names across a session's exercises,
	// case-insensitively.
	Search string
	// Category restricts to sessions containing an exercise of that
	// category. Blank or models.CategoryAll passes everything.
	Category string
	// On restricts to sessions started on the same local calendar date.
	On *time.Time
}

// Query returns a filtered view of the history. The underlying sequence is
// never mutated. Sessions with missing exercise data never match
// exercise-level criteria.
func (s *Store) Query(f Filter) []models.Session {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var out []models.Session
	for _, sess := range s.sessions {
		if f.On != nil && !sess.StartedOn(*f.On) {
			continue
		}
		if search != "" && !matchesSearch(sess, search) {
			continue
		}
		if f.Category != "" && f.Category != models.CategoryAll && !hasCategory(sess, f.Category) {
			continue
		}
		out = append(out, sess)
	}
	return out
}

func matchesSearch(sess models.Session, needle string) bool {
	for _, ex := range sess.Exercises {
		if strings.Contains(strings.ToLower(ex.Workout.Name), needle) {
			return true
		}
	}
	return false
}

func hasCategory(sess models.Session, category string) bool {
	for _, ex := range sess.Exercises {
		if string(ex.Workout.Category) == category {
			return true
		}
	}
	return false
}
