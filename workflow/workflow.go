// Package workflow is the top-level orchestrator (§4.6): it owns the
// Store, drives the expander then the resolver, and hands back an
// immutable view over the unrolled graph.
package workflow

import (
	"github.com/agoscinski/Sirocco/core"
	"github.com/agoscinski/Sirocco/internal/expand"
	"github.com/agoscinski/Sirocco/internal/resolve"
)

// Workflow is the frozen result of unrolling an IR: all Task and Data
// items, fully wired with edges. Build is the only mutation entry point;
// once it returns, the Workflow is safe to read concurrently (§5).
type Workflow struct {
	store *core.Store
}

// Build runs the expander and then the resolver over ir and returns the
// resulting Workflow, or the first error either stage raises (§7).
func Build(ir core.IR) (*Workflow, error) {
	store := core.NewStore()

	if err := expand.Expand(ir, store); err != nil {
		return nil, err
	}
	if err := resolve.Resolve(store); err != nil {
		return nil, err
	}

	return &Workflow{store: store}, nil
}

// Tasks returns every Task item, in Store insertion order.
func (w *Workflow) Tasks() []*core.GraphItem {
	var out []*core.GraphItem
	w.store.IterItems(func(item *core.GraphItem) {
		if item.IsTask() {
			out = append(out, item)
		}
	})
	return out
}

// Data returns every Data item, in Store insertion order.
func (w *Workflow) Data() []*core.GraphItem {
	var out []*core.GraphItem
	w.store.IterItems(func(item *core.GraphItem) {
		if item.IsData() {
			out = append(out, item)
		}
	})
	return out
}

// Edges returns every edge in the graph, ordered by sink task insertion
// order and then by each edge list's declaration order: inputs, then
// wait-ons, then the outputs that task itself produces (§4.6).
func (w *Workflow) Edges() []core.Edge {
	var out []core.Edge
	w.store.IterItems(func(item *core.GraphItem) {
		if !item.IsTask() {
			return
		}
		t := item.AsTask()
		out = append(out, t.Inputs...)
		out = append(out, t.WaitOns...)
		out = append(out, t.Outputs...)
	})
	return out
}

// Lookup delegates to the Store's exact-match lookup.
func (w *Workflow) Lookup(name string, coord core.Coordinate) (*core.GraphItem, error) {
	return w.store.Lookup(name, coord)
}

// LookupPartial delegates to the Store's partial-match lookup.
func (w *Workflow) LookupPartial(name string, partial core.Coordinate) []*core.GraphItem {
	return w.store.LookupPartial(name, partial)
}
