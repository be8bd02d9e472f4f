// internal/pkg/clock/clock.go
package clock

import "time"

// Clock supplies the current instant. Services take one instead of calling
// time.Now so that status derivation stays deterministic under test.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now implements Clock.
func (f Func) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

type locationClock struct {
	base Clock
	loc  *time.Location
}

func (c locationClock) Now() time.Time { return c.base.Now().In(c.loc) }

// InLocation wraps base so that Now reports times in loc. A nil location
// leaves base untouched.
func InLocation(base Clock, loc *time.Location) Clock {
	if loc == nil {
		return base
	}
	return locationClock{base: base, loc: loc}
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CivilDay returns t's calendar date as a UTC midnight instant so that two
// dates recorded in different locations compare by year, month and day only.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
