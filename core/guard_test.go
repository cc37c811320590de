package core

import "testing"

func TestGuardEmptyAlwaysPasses(t *testing.T) {
	g := Guard{}
	if !g.Evaluate(NewCycleDate(NewDate(2026, 1, 1, 0, 0))) {
		t.Error("empty guard should pass for a dated cycle")
	}
	if !g.Evaluate(CycleDate{}) {
		t.Error("empty guard should pass for an undated cycle")
	}
}

func TestGuardUndatedAlwaysFailsWithClauses(t *testing.T) {
	at := NewDate(2026, 1, 1, 0, 0)
	g := Guard{At: &at}
	if g.Evaluate(CycleDate{}) {
		t.Error("a guard with a clause must fail on an undated cycle")
	}
}

func TestGuardAt(t *testing.T) {
	at := NewDate(2026, 1, 1, 0, 0)
	g := Guard{At: &at}

	if !g.Evaluate(NewCycleDate(at)) {
		t.Error("at clause should pass when dates are equal")
	}
	if g.Evaluate(NewCycleDate(NewDate(2026, 2, 1, 0, 0))) {
		t.Error("at clause should fail when dates differ")
	}
}

func TestGuardAfterMonotone(t *testing.T) {
	after := NewDate(2026, 1, 1, 0, 0)
	g := Guard{After: &after}

	if g.Evaluate(NewCycleDate(after)) {
		t.Error("after clause should be strict, equal date must fail")
	}
	c1 := NewDate(2026, 2, 1, 0, 0)
	c2 := NewDate(2026, 3, 1, 0, 0)
	if !g.Evaluate(NewCycleDate(c1)) {
		t.Fatal("after clause should pass for a later date")
	}
	if !g.Evaluate(NewCycleDate(c2)) {
		t.Error("guard satisfied at c1 should remain satisfied for a later c2 (monotonicity)")
	}
}

func TestGuardBefore(t *testing.T) {
	before := NewDate(2026, 6, 1, 0, 0)
	g := Guard{Before: &before}

	if g.Evaluate(NewCycleDate(before)) {
		t.Error("before clause should be strict, equal date must fail")
	}
	if !g.Evaluate(NewCycleDate(NewDate(2026, 1, 1, 0, 0))) {
		t.Error("before clause should pass for an earlier date")
	}
}

func TestGuardConjunction(t *testing.T) {
	after := NewDate(2026, 1, 1, 0, 0)
	before := NewDate(2026, 6, 1, 0, 0)
	g := Guard{After: &after, Before: &before}

	if !g.Evaluate(NewCycleDate(NewDate(2026, 3, 1, 0, 0))) {
		t.Error("date within (after, before) should pass")
	}
	if g.Evaluate(NewCycleDate(NewDate(2026, 12, 1, 0, 0))) {
		t.Error("date outside the window should fail")
	}
}
