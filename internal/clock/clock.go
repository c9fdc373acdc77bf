// Package clock is the wall-clock seam used for id generation, timestamps,
// and duration computation, so tests can substitute a deterministic source.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the real wall clock.
func System() Clock { return systemClock{} }
