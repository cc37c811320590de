package core

// CycleDates enumerates the finite sequence d0 = start, d1 = d0+period, ...
// stopping before exceeding stop (per §4.1). A zero period means "no
// cycling block" and yields a single undated entry: the returned slice has
// one element whose Dated() is false.
//
// The comparison against stop is half-open on the whole sequence in the
// sense that generation stops as soon as a candidate date would not be
// strictly before stop; start itself is always included when non-empty.
func CycleDates(start, stop Date, period Duration) []CycleDate {
	if period.IsZero() {
		return []CycleDate{{}}
	}

	var out []CycleDate
	for d := start; d.Before(stop); d = d.Add(period) {
		out = append(out, CycleDate{date: d, dated: true})
	}
	return out
}

// CycleDate is one coordinate on the date axis: either a concrete Date, or
// the undated placeholder used by one-off cycles.
type CycleDate struct {
	date  Date
	dated bool
}

// Dated reports whether this cycle date carries an actual Date.
func (c CycleDate) Dated() bool { return c.dated }

// Date returns the concrete date; only meaningful when Dated() is true.
func (c CycleDate) Date() Date { return c.date }

// NewCycleDate wraps a concrete Date as a dated CycleDate, for callers
// (the resolver) that already have a Coordinate's date dimension in hand.
func NewCycleDate(d Date) CycleDate { return CycleDate{date: d, dated: true} }
