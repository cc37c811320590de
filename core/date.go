// Package core provides the fundamental types shared across the unroller:
// temporal arithmetic, coordinates, graph items, the Store, typed errors,
// logging, and tool configuration.
package core

import (
	"fmt"
	"time"
)

// Date is an absolute instant at minute resolution, with no timezone
// attached — the IR and the unroller only ever compare Dates to each other.
type Date struct {
	t time.Time
}

// dateLayoutDay and dateLayoutMinute are the ISO 8601 profiles accepted for
// Date literals: a plain calendar date, optionally with a minute-resolution
// time-of-day.
const (
	dateLayoutDay    = "2006-01-02"
	dateLayoutMinute = "2006-01-02T15:04"
)

// ParseDate parses an ISO 8601 date or date+minute literal. A malformed
// literal reaching the core (it should have been caught by the front-end)
// surfaces as BadDateError.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayoutMinute, s); err == nil {
		return Date{t: t}, nil
	}
	if t, err := time.Parse(dateLayoutDay, s); err == nil {
		return Date{t: t}, nil
	}
	return Date{}, &BadDateError{Literal: s}
}

// NewDate builds a Date from calendar fields, for callers constructing
// literals programmatically (tests, the IR loader).
func NewDate(year int, month time.Month, day, hour, minute int) Date {
	return Date{t: time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

// IsZero reports whether this is the zero Date (used to mean "no date",
// distinct from an undated Coordinate axis, which simply omits the key).
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before, After, Equal order two Dates.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// InRangeHalfOpen reports whether d falls in [start, stop).
func (d Date) InRangeHalfOpen(start, stop Date) bool {
	return !d.Before(start) && d.Before(stop)
}

// Add returns d advanced by dur using calendar arithmetic (§4.1): months
// and years advance the year/month fields and clamp the day into the
// target month; minutes/hours propagate unchanged. Negative durations
// (lags into the past) are handled symmetrically.
func (d Date) Add(dur Duration) Date {
	y, m, day := d.t.Date()
	hh, mm, _ := d.t.Clock()

	totalMonths := dur.years*12 + dur.months
	m2 := int(m) + totalMonths
	y2 := y + (m2-1)/12
	m2 = (m2-1)%12 + 1
	if m2 <= 0 {
		m2 += 12
		y2--
	}

	lastDay := daysInMonth(y2, time.Month(m2))
	day2 := day
	if day2 > lastDay {
		day2 = lastDay
	}

	return Date{t: time.Date(y2, time.Month(m2), day2, hh, mm, 0, 0, time.UTC).Add(
		time.Duration(dur.minutes)*time.Minute + time.Duration(dur.hours)*time.Hour)}
}

func daysInMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.Add(-time.Hour * 24).Day()
}

// String renders the Date in the minute-resolution ISO profile.
func (d Date) String() string {
	if d.t.Second() == 0 && d.t.Nanosecond() == 0 {
		return d.t.Format(dateLayoutMinute)
	}
	return fmt.Sprintf("%v", d.t)
}
