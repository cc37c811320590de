package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration is an ISO 8601 duration restricted to whole months and years
// (e.g. "P2M", "P1Y", "-P6M"); negative durations are legal lags into the
// past. Hours/minutes are accepted too since §4.1 says they "propagate
// unchanged" through calendar arithmetic, but the unroller itself only
// ever constructs month/year lags from the IR.
type Duration struct {
	years, months, hours, minutes int
	negative                      bool
}

// Zero is the empty duration: "no cycling block", per §4.1.
var Zero = Duration{}

// IsZero reports whether this duration advances nothing.
func (d Duration) IsZero() bool {
	return d.years == 0 && d.months == 0 && d.hours == 0 && d.minutes == 0
}

// Negate returns the symmetric duration (used to express a lag as a
// subtraction, per §4.1's "subtracting durations ... is symmetric").
func (d Duration) Negate() Duration {
	d.negative = !d.negative
	d.years, d.months, d.hours, d.minutes = -d.years, -d.months, -d.hours, -d.minutes
	return d
}

// ParseDuration parses an ISO 8601 duration literal restricted to whole
// years, months, hours, minutes: "P2M", "P1Y", "-P6M", "PT1H30M". A
// malformed literal surfaces as BadDurationError.
func ParseDuration(s string) (Duration, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") {
		return Duration{}, &BadDurationError{Literal: orig}
	}
	s = s[1:]

	datePart, timePart, hasTime := strings.Cut(s, "T")

	var d Duration
	var err error
	if datePart != "" {
		if d.years, d.months, err = parseDateDuration(datePart); err != nil {
			return Duration{}, &BadDurationError{Literal: orig, Err: err}
		}
	}
	if hasTime {
		if d.hours, d.minutes, err = parseTimeDuration(timePart); err != nil {
			return Duration{}, &BadDurationError{Literal: orig, Err: err}
		}
	}
	if d.years == 0 && d.months == 0 && d.hours == 0 && d.minutes == 0 && orig != "P0M" && orig != "-P0M" {
		// An empty "P" with nothing parsed is malformed, not zero.
		if datePart == "" && !hasTime {
			return Duration{}, &BadDurationError{Literal: orig}
		}
	}

	if neg {
		d = d.Negate()
	}
	return d, nil
}

func parseDateDuration(s string) (years, months int, err error) {
	num := strings.Builder{}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		case r == 'Y':
			years, err = atoi(num.String())
			num.Reset()
		case r == 'M':
			months, err = atoi(num.String())
			num.Reset()
		case r == 'W' || r == 'D':
			// Weeks/days are out of the restricted month/year profile
			// this core accepts; reject rather than silently truncate.
			return 0, 0, fmt.Errorf("unsupported duration field %q", string(r))
		default:
			return 0, 0, fmt.Errorf("unexpected character %q", string(r))
		}
		if err != nil {
			return 0, 0, err
		}
	}
	if num.Len() > 0 {
		return 0, 0, fmt.Errorf("trailing digits %q without unit", num.String())
	}
	return years, months, nil
}

func parseTimeDuration(s string) (hours, minutes int, err error) {
	num := strings.Builder{}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		case r == 'H':
			hours, err = atoi(num.String())
			num.Reset()
		case r == 'M':
			minutes, err = atoi(num.String())
			num.Reset()
		case r == 'S':
			return 0, 0, fmt.Errorf("unsupported duration field \"S\"")
		default:
			return 0, 0, fmt.Errorf("unexpected character %q", string(r))
		}
		if err != nil {
			return 0, 0, err
		}
	}
	return hours, minutes, nil
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing digits before unit")
	}
	return strconv.Atoi(s)
}

// String renders the duration back to its ISO 8601 literal form.
func (d Duration) String() string {
	sign := ""
	y, m, hh, mm := d.years, d.months, d.hours, d.minutes
	if d.negative {
		sign = "-"
	}
	s := sign + "P"
	if y != 0 {
		s += fmt.Sprintf("%dY", abs(y))
	}
	if m != 0 {
		s += fmt.Sprintf("%dM", abs(m))
	}
	if hh != 0 || mm != 0 {
		s += "T"
		if hh != 0 {
			s += fmt.Sprintf("%dH", abs(hh))
		}
		if mm != 0 {
			s += fmt.Sprintf("%dM", abs(mm))
		}
	}
	if s == sign+"P" {
		return "P0M"
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
