// Package clock abstracts the wall clock so services that stamp their
// output can be tested against a fixed instant instead of real time.
package clock

import "time"

// Clock supplies the current time. Services receive a Clock through their
// constructors and never call time.Now directly.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the real wall clock.
func System() Clock { return systemClock{} }

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time { return c.instant }

// Fixed returns a Clock frozen at the given instant. Intended for tests.
func Fixed(instant time.Time) Clock { return fixedClock{instant: instant} }

// isoLayout renders local time in ISO-8601 form without a UTC offset,
// trimming trailing zeros from the fractional seconds.
const isoLayout = "2006-01-02T15:04:05.999999"

// Timestamp renders the clock's current local time as an ISO-8601 string,
// e.g. "2026-08-26T15:04:05.123456".
func Timestamp(c Clock) string {
	return c.Now().Format(isoLayout)
}
