package resolve

import "github.com/agoscinski/Sirocco/core"

// dateCandidate is one resolved target date axis: either a concrete Date,
// or explicitly undated.
type dateCandidate struct {
	date  core.Date
	dated bool
}

// dateCandidatesFor applies target_cycle (§4.5 step 2) to the referring
// task's own coordinate, producing one candidate per declared lag (or a
// single candidate for an absolute date pin, or a pass-through when
// target_cycle is absent).
func dateCandidatesFor(taskCoord core.Coordinate, tc *core.TargetCycleIR) ([]dateCandidate, error) {
	taskDate, taskDated := taskCoord.Date()

	if tc == nil {
		return []dateCandidate{{date: taskDate, dated: taskDated}}, nil
	}

	if tc.Date != nil {
		d, err := core.ParseDate(*tc.Date)
		if err != nil {
			return nil, err
		}
		return []dateCandidate{{date: d, dated: true}}, nil
	}

	if len(tc.Lag) > 0 {
		out := make([]dateCandidate, 0, len(tc.Lag))
		for _, lagStr := range tc.Lag {
			lag, err := core.ParseDuration(lagStr)
			if err != nil {
				return nil, err
			}
			if !taskDated {
				// A lag has nothing to offset from; the candidate stays
				// undated rather than fabricating a date.
				out = append(out, dateCandidate{})
				continue
			}
			out = append(out, dateCandidate{date: taskDate.Add(lag), dated: true})
		}
		return out, nil
	}

	return []dateCandidate{{date: taskDate, dated: taskDated}}, nil
}

// candidateCoordinate builds the coordinate to search the target Array
// with: the resolved date axis, plus one value per non-date dimension the
// target declares. A dimension marked "single" keeps the referring task's
// own value; an unmarked dimension is left out of the coordinate entirely,
// which is what makes Array.LookupPartial fan out over it (§4.5 step 3).
func candidateCoordinate(dc dateCandidate, taskCoord core.Coordinate, targetArr *core.Array, modifiers map[string]string) core.Coordinate {
	coord := core.EmptyCoordinate()
	if dc.dated && targetHasDim(targetArr, core.DateDimension) {
		coord = coord.WithDate(dc.date, true)
	}

	for _, dim := range targetArr.DimensionNames() {
		if dim == core.DateDimension {
			continue
		}
		if mod, has := modifiers[dim]; has && mod == "single" {
			if v, ok := taskCoord.Get(dim); ok {
				coord = coord.Set(dim, v)
			}
			continue
		}
		// No modifier: fan out over every value of this dimension by
		// leaving it unconstrained in the candidate.
	}

	return coord
}

// targetHasDim reports whether the target Array was established with dim
// among its dimensions. A target with no date axis (e.g. zero-dimensional
// Available data) must never be searched with a date key in the candidate
// coordinate: Coordinate.MatchesPartial requires every dimension a partial
// declares to be present on the candidate item, so an extraneous date key
// would turn a legitimate guard-gated match into a spurious miss.
func targetHasDim(arr *core.Array, dim string) bool {
	for _, d := range arr.DimensionNames() {
		if d == dim {
			return true
		}
	}
	return false
}

// outOfRange reports whether d falls outside the span of dated items the
// target Array actually holds — the "target_cycle out-of-range" excuse
// from §4.5/§7. An Array with no dated items at all offers no such excuse.
func outOfRange(d core.Date, arr *core.Array) bool {
	var min, max core.Date
	seen := false
	for _, item := range arr.Items() {
		dd, ok := item.Coordinate.Date()
		if !ok {
			continue
		}
		if !seen {
			min, max = dd, dd
			seen = true
			continue
		}
		if dd.Before(min) {
			min = dd
		}
		if dd.After(max) {
			max = dd
		}
	}
	if !seen {
		return false
	}
	return d.Before(min) || d.After(max)
}
