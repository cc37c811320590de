package resolve

import "github.com/agoscinski/Sirocco/core"

// detectCycles walks the (Task, output Data, Task consumer) projection
// (§4.5, §3 invariant 4) and fails with CyclicError if a back-edge is
// found. Every edge in the materialized graph either passes through a
// concrete Data item produced at one concrete coordinate or points directly
// at another concrete Task item, so a back-edge here is a genuine circular
// dependency between concrete items. Lags into the past never close one;
// a same-cycle circular reference, or forward lags and date pins that point
// back at their consumer, can. No back-edge is exempted.
func detectCycles(tasks []*core.GraphItem) error {
	byRef := make(map[string]*core.GraphItem, len(tasks))
	for _, t := range tasks {
		byRef[t.Ref().String()] = t
	}

	// producerOf maps a Data item's ref key to the Task that produced it,
	// built from every task's recorded Output edges.
	producerOf := make(map[string]*core.GraphItem)
	for _, t := range tasks {
		for _, e := range t.AsTask().Outputs {
			producerOf[e.Sink.String()] = t
		}
	}

	adj := make(map[string][]*core.GraphItem)
	addEdge := func(from, to *core.GraphItem) {
		key := from.Ref().String()
		adj[key] = append(adj[key], to)
	}

	for _, t := range tasks {
		for _, e := range append(append([]core.Edge{}, t.AsTask().Inputs...), t.AsTask().WaitOns...) {
			if producer, ok := producerOf[e.Source.String()]; ok {
				addEdge(producer, t)
				continue
			}
			if source, ok := byRef[e.Source.String()]; ok {
				addEdge(source, t)
			}
			// Otherwise the source is Available data with no producing
			// task: nothing to add to the task-level projection.
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(tasks))
	var stack []string

	var visit func(t *core.GraphItem) error
	visit = func(t *core.GraphItem) error {
		key := t.Ref().String()
		color[key] = gray
		stack = append(stack, key)

		for _, next := range adj[key] {
			nk := next.Ref().String()
			switch color[nk] {
			case white:
				if err := visit(next); err != nil {
					return err
				}
			case gray:
				cycle := append([]string{}, stack...)
				cycle = append(cycle, nk)
				return &core.CyclicError{Cycle: cutToCycle(cycle, nk)}
			}
		}

		stack = stack[:len(stack)-1]
		color[key] = black
		return nil
	}

	for _, t := range tasks {
		key := t.Ref().String()
		if color[key] == white {
			if err := visit(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// cutToCycle trims a DFS stack trace down to just the repeated-node cycle.
func cutToCycle(stack []string, repeated string) []string {
	for i, s := range stack {
		if s == repeated {
			return stack[i:]
		}
	}
	return stack
}
