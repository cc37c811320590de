// Package resolve implements the dependency resolver (§4.5): for every
// input/wait-on reference on a Task, it computes the candidate target
// coordinate(s), looks them up in the Store, and wires edges — enforcing
// the arity rule on named-port inputs along the way.
package resolve

import (
	"github.com/agoscinski/Sirocco/core"
	"github.com/agoscinski/Sirocco/internal/expand"
)

// Resolve walks every Task item already in store (inserted by
// internal/expand) and wires its input/wait-on edges, then runs cycle
// detection over the resulting (Task, Data, Task) projection.
func Resolve(store *core.Store) error {
	var tasks []*core.GraphItem
	store.IterItems(func(item *core.GraphItem) {
		if item.IsTask() {
			tasks = append(tasks, item)
		}
	})

	for _, t := range tasks {
		ref := expand.TaskRef(t)
		for _, in := range ref.Inputs {
			if err := resolveReference(store, t, in, core.RoleInput); err != nil {
				return err
			}
		}
		for _, w := range ref.WaitOn {
			if err := resolveReference(store, t, w, core.RoleWaitOn); err != nil {
				return err
			}
		}
	}

	return detectCycles(tasks)
}

func resolveReference(store *core.Store, taskItem *core.GraphItem, ref core.Reference, role core.Role) error {
	guard, err := buildGuard(ref.When)
	if err != nil {
		return err
	}
	if !guard.Evaluate(cycleDateOf(taskItem.Coordinate)) {
		return nil // when-guard rejection: silent, legal absence (§4.5 step 4).
	}

	targetArr, ok := store.Array(ref.Name)
	if !ok {
		return &core.UnknownNameError{Name: ref.Name, From: taskItem.Name}
	}

	dateCandidates, err := dateCandidatesFor(taskItem.Coordinate, ref.TargetCycle)
	if err != nil {
		return err
	}

	var matched []*core.GraphItem
	unexcusedMiss := false
	for _, dc := range dateCandidates {
		candidate := candidateCoordinate(dc, taskItem.Coordinate, targetArr, ref.Parameters)
		items := targetArr.LookupPartial(candidate)
		if len(items) == 0 {
			if dc.dated && outOfRange(dc.date, targetArr) {
				continue // target_cycle put the date outside all cycling windows: excused.
			}
			unexcusedMiss = true
			continue
		}
		matched = append(matched, items...)
	}

	if len(matched) == 0 {
		if role == core.RoleInput && ref.Port != nil && unexcusedMiss {
			return &core.UnresolvedInputError{
				Task:       taskItem.Name,
				Coordinate: taskItem.Coordinate,
				Port:       portOf(ref.Port),
				Target:     ref.Name,
			}
		}
		return nil
	}

	port := portOf(ref.Port)
	for _, m := range matched {
		edge := core.Edge{Source: m.Ref(), Sink: taskItem.Ref(), Port: port, Role: role}
		switch role {
		case core.RoleInput:
			taskItem.AsTask().AddInput(edge)
		case core.RoleWaitOn:
			taskItem.AsTask().AddWaitOn(edge)
		}
	}
	return nil
}

func portOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func buildGuard(w *core.WhenIR) (core.Guard, error) {
	if w == nil {
		return core.Guard{}, nil
	}
	var g core.Guard
	if w.At != nil {
		d, err := core.ParseDate(*w.At)
		if err != nil {
			return core.Guard{}, err
		}
		g.At = &d
	}
	if w.After != nil {
		d, err := core.ParseDate(*w.After)
		if err != nil {
			return core.Guard{}, err
		}
		g.After = &d
	}
	if w.Before != nil {
		d, err := core.ParseDate(*w.Before)
		if err != nil {
			return core.Guard{}, err
		}
		g.Before = &d
	}
	return g, nil
}

func cycleDateOf(c core.Coordinate) core.CycleDate {
	if d, ok := c.Date(); ok {
		return core.NewCycleDate(d)
	}
	return core.CycleDate{}
}
