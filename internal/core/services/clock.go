package services

import "time"

// Clock abstracts wall-clock time so due dates are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
