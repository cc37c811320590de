package core

import (
	"fmt"
	"sort"
	"strings"
)

// DateDimension is the reserved dimension name carrying a Date; its absence
// from a Coordinate means "undated" (§3).
const DateDimension = "date"

// Value is a parameter value on a non-date dimension: int, float64, or
// string. The type is opaque to the core; equality is structural (§3).
type Value interface{}

// Coordinate maps dimension name to a single value. Two coordinates are
// equal iff they share the same set of dimension names and equal values on
// each; dimension order is irrelevant (§3).
type Coordinate struct {
	values map[string]Value
}

// EmptyCoordinate is the zero-dimensional coordinate used by one-off items.
func EmptyCoordinate() Coordinate {
	return Coordinate{values: map[string]Value{}}
}

// NewCoordinate builds a Coordinate from a name→value map. Construction
// rejects duplicate dimension names; since a Go map cannot itself hold
// duplicate keys, this constructor exists to make that invariant explicit
// at the call site and to defend against building one from parallel slices.
func NewCoordinate(dims map[string]Value) (Coordinate, error) {
	out := make(map[string]Value, len(dims))
	for k, v := range dims {
		if _, dup := out[k]; dup {
			return Coordinate{}, fmt.Errorf("coordinate: duplicate dimension %q", k)
		}
		out[k] = v
	}
	return Coordinate{values: out}, nil
}

// WithDate returns a copy of c with the date dimension set (or cleared, if
// dated is false).
func (c Coordinate) WithDate(d Date, dated bool) Coordinate {
	out := c.clone()
	if dated {
		out.values[DateDimension] = d
	} else {
		delete(out.values, DateDimension)
	}
	return out
}

func (c Coordinate) clone() Coordinate {
	out := make(map[string]Value, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return Coordinate{values: out}
}

// Dims returns the sorted set of dimension names, for deterministic display
// and for DimensionMismatch comparisons.
func (c Coordinate) Dims() []string {
	dims := make([]string, 0, len(c.values))
	for k := range c.values {
		dims = append(dims, k)
	}
	sort.Strings(dims)
	return dims
}

// Get returns the value on dimension name and whether it is present.
func (c Coordinate) Get(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Date returns the date dimension and whether the coordinate is dated.
func (c Coordinate) Date() (Date, bool) {
	v, ok := c.values[DateDimension]
	if !ok {
		return Date{}, false
	}
	return v.(Date), true
}

// Merge combines c with other; fails if the two share a dimension name
// (§4.2: "merging two coordinates with overlapping names fails").
func (c Coordinate) Merge(other Coordinate) (Coordinate, error) {
	out := c.clone()
	for k, v := range other.values {
		if _, dup := out.values[k]; dup {
			return Coordinate{}, fmt.Errorf("coordinate merge: overlapping dimension %q", k)
		}
		out.values[k] = v
	}
	return out, nil
}

// Project restricts the coordinate to the given set of dimension names;
// names absent from c are silently skipped (the projection discards extra
// dimensions, per §4.4's dimension-inheritance rule).
func (c Coordinate) Project(dims []string) Coordinate {
	out := EmptyCoordinate()
	for _, d := range dims {
		if v, ok := c.values[d]; ok {
			out.values[d] = v
		}
	}
	return out
}

// Set returns a copy of c with dimension name bound to value.
func (c Coordinate) Set(name string, value Value) Coordinate {
	out := c.clone()
	out.values[name] = value
	return out
}

// sameDims reports whether c and o have identical dimension name sets.
func (c Coordinate) sameDims(o Coordinate) bool {
	if len(c.values) != len(o.values) {
		return false
	}
	for k := range c.values {
		if _, ok := o.values[k]; !ok {
			return false
		}
	}
	return true
}

// Equal implements structural equality per §3.
func (c Coordinate) Equal(o Coordinate) bool {
	if !c.sameDims(o) {
		return false
	}
	for k, v := range c.values {
		ov := o.values[k]
		if dv, ok := v.(Date); ok {
			if odv, ok2 := ov.(Date); !ok2 || !dv.Equal(odv) {
				return false
			}
			continue
		}
		if v != ov {
			return false
		}
	}
	return true
}

// MatchesPartial reports whether c agrees with partial on every dimension
// partial declares (used by Store.lookup_partial, §4.3).
func (c Coordinate) MatchesPartial(partial Coordinate) bool {
	for k, v := range partial.values {
		cv, ok := c.values[k]
		if !ok {
			return false
		}
		if dv, isDate := v.(Date); isDate {
			cdv, ok2 := cv.(Date)
			if !ok2 || !dv.Equal(cdv) {
				return false
			}
			continue
		}
		if cv != v {
			return false
		}
	}
	return true
}

// key returns a canonical, hashable string for use as a map key — sorted
// "dim=value" pairs joined by a separator unlikely to appear in values.
func (c Coordinate) key() string {
	dims := c.Dims()
	parts := make([]string, len(dims))
	for i, d := range dims {
		v := c.values[d]
		if dv, ok := v.(Date); ok {
			parts[i] = d + "=" + dv.String()
		} else {
			parts[i] = fmt.Sprintf("%s=%v", d, v)
		}
	}
	return strings.Join(parts, "\x1f")
}

// String renders the coordinate for diagnostics, e.g.
// "{date=2026-03-01T00:00, foo=1}".
func (c Coordinate) String() string {
	dims := c.Dims()
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%s=%v", d, c.values[d])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
