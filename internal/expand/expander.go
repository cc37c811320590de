// Package expand implements the template expander (§4.4 of the graph
// unroller spec): it enumerates per-cycle, per-parameter coordinates and
// instantiates Task and Data items into a Store. The only edges it wires are
// each task's Output edges; input and wait-on edges are internal/resolve's
// job, run afterward.
package expand

import (
	"fmt"

	"github.com/agoscinski/Sirocco/core"
)

// Expand walks the IR in the order §4.4 specifies (available data first,
// then cycles in declaration order, then cycle dates, then tasks, then
// parameter products) and populates store with every Task and Data item.
func Expand(ir core.IR, store *core.Store) error {
	ir.Tasks = core.ShallowMergeRoot(ir.Tasks)

	if err := expandAvailableData(ir, store); err != nil {
		return err
	}
	for _, cycle := range ir.Cycles {
		if err := expandCycle(ir, cycle, store); err != nil {
			return err
		}
	}
	return nil
}

func expandAvailableData(ir core.IR, store *core.Store) error {
	for _, d := range ir.Data.Available {
		item := core.NewDataGraphItem(d.Name, core.EmptyCoordinate(), core.Available, DataPayload{Template: d})
		if err := store.Insert(d.Name, item); err != nil {
			return err
		}
	}
	return nil
}

func expandCycle(ir core.IR, cycle core.CycleIR, store *core.Store) error {
	dates, err := cycleDates(cycle)
	if err != nil {
		return err
	}

	for _, d := range dates {
		for _, taskRef := range cycle.TaskRefs {
			if err := expandTaskRef(ir, taskRef, d, store); err != nil {
				return err
			}
		}
	}
	return nil
}

func cycleDates(cycle core.CycleIR) ([]core.CycleDate, error) {
	if cycle.Cycling == nil {
		return []core.CycleDate{{}}, nil
	}
	start, err := core.ParseDate(cycle.Cycling.StartDate)
	if err != nil {
		return nil, err
	}
	stop, err := core.ParseDate(cycle.Cycling.StopDate)
	if err != nil {
		return nil, err
	}
	period, err := core.ParseDuration(cycle.Cycling.Period)
	if err != nil {
		return nil, err
	}
	return core.CycleDates(start, stop, period), nil
}

func expandTaskRef(ir core.IR, ref core.TaskRef, cycleDate core.CycleDate, store *core.Store) error {
	template, ok := ir.Tasks[ref.Name]
	if !ok {
		return &core.UnknownNameError{Name: ref.Name, From: "cycle task list"}
	}

	products, err := cartesianProduct(template.Parameters, ir.Parameters)
	if err != nil {
		return err
	}

	for _, p := range products {
		coord, err := buildCoordinate(cycleDate, p)
		if err != nil {
			return err
		}

		item := core.NewTaskGraphItem(ref.Name, coord, taskPayload{template: template, ref: ref})
		if err := store.Insert(ref.Name, item); err != nil {
			return err
		}

		for _, out := range ref.Outputs {
			if err := expandOutput(ir, out, item, store); err != nil {
				return err
			}
		}
	}
	return nil
}

// taskPayload is the opaque-to-the-core payload carried on each Task
// GraphItem: the plugin/parameter template plus the declaration-order
// reference list the resolver will walk.
type taskPayload struct {
	template core.TaskTemplate
	ref      core.TaskRef
}

// TaskRef returns the declaration-order input/output/wait-on reference
// list a Task GraphItem was expanded from, for internal/resolve to walk.
func TaskRef(item *core.GraphItem) core.TaskRef {
	return item.AsTask().Payload.(taskPayload).ref
}

// TaskTemplate returns the plugin/parameter template a Task GraphItem was
// expanded from.
func TaskTemplate(item *core.GraphItem) core.TaskTemplate {
	return item.AsTask().Payload.(taskPayload).template
}

// expandOutput instantiates the Data item for one declared task output and
// wires its producing Output edge directly (no search is needed: the
// expander already knows the exact producing task and target coordinate,
// unlike an input reference, which the resolver must search for). Two
// distinct tasks producing the same (name, coordinate) is the single-writer
// violation from §3 invariant 5, reported as MultipleWritersError rather
// than the generic DuplicateCoordinateError a second Store.Insert would
// otherwise raise.
func expandOutput(ir core.IR, out core.OutputRef, taskItem *core.GraphItem, store *core.Store) error {
	dt, err := findDataTemplate(ir.Data.Generated, out.Name)
	if err != nil {
		return err
	}

	dims := dt.Parameters
	if _, dated := taskItem.Coordinate.Date(); dated {
		dims = append(append([]string{}, dims...), core.DateDimension)
	}
	outCoord := taskItem.Coordinate.Project(dims)

	if existing, err := store.Lookup(out.Name, outCoord); err == nil {
		return &core.MultipleWritersError{
			DataName:   out.Name,
			Coordinate: outCoord,
			FirstTask:  existing.AsData().Payload.(DataPayload).ProducingTask,
			SecondTask: taskItem.Name,
		}
	}

	port := ""
	if out.Port != nil {
		port = *out.Port
	}
	taskItem.AsTask().AddOutput(core.Edge{
		Source: taskItem.Ref(),
		Sink:   core.Ref{Name: out.Name, Coordinate: outCoord},
		Port:   port,
		Role:   core.RoleOutput,
	})

	item := core.NewDataGraphItem(out.Name, outCoord, core.Generated, DataPayload{Template: dt, ProducingTask: taskItem.Name})
	return store.Insert(out.Name, item)
}

// DataPayload is the payload carried on every Data GraphItem: the template
// fields from the IR, plus (for Generated data) the name of the task that
// produced it.
type DataPayload struct {
	Template      core.DataTemplate
	ProducingTask string
}

func findDataTemplate(templates []core.DataTemplate, name string) (core.DataTemplate, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return core.DataTemplate{}, &core.UnknownNameError{Name: name, From: "task output"}
}

// buildCoordinate merges the cycle date (if any) with the parameter
// product into one Coordinate (§4.4 step "build the task's full
// coordinate").
func buildCoordinate(cycleDate core.CycleDate, product map[string]core.Value) (core.Coordinate, error) {
	coord, err := core.NewCoordinate(product)
	if err != nil {
		return core.Coordinate{}, err
	}
	if cycleDate.Dated() {
		coord = coord.WithDate(cycleDate.Date(), true)
	}
	return coord, nil
}

// cartesianProduct enumerates every combination of values for the given
// dimension names, drawn from the global parameters map. No declared
// dimensions yields the single empty coordinate (§4.4).
func cartesianProduct(dims []string, parameters map[string][]core.Value) ([]map[string]core.Value, error) {
	if len(dims) == 0 {
		return []map[string]core.Value{{}}, nil
	}

	out := []map[string]core.Value{{}}
	for _, dim := range dims {
		values, ok := parameters[dim]
		if !ok {
			return nil, fmt.Errorf("parameter dimension %q has no declared values", dim)
		}

		var next []map[string]core.Value
		for _, partial := range out {
			for _, v := range values {
				merged := make(map[string]core.Value, len(partial)+1)
				for k, pv := range partial {
					merged[k] = pv
				}
				merged[dim] = v
				next = append(next, merged)
			}
		}
		out = next
	}
	return out, nil
}
