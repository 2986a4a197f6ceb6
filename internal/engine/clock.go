package engine

import "github.com/jonboulle/clockwork"

// Clock abstracts time so tests can freeze and advance it deterministically.
// Production code uses the wall clock; tests inject clockwork.NewFakeClock.
type Clock = clockwork.Clock

// RealClock returns a Clock backed by the standard time package.
func RealClock() Clock {
	return clockwork.NewRealClock()
}
