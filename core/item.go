package core

import "fmt"

// Availability classifies a Data item: whether it pre-exists or is
// produced by a Task during execution (§3).
type Availability int

const (
	Available Availability = iota
	Generated
)

func (a Availability) String() string {
	if a == Available {
		return "available"
	}
	return "generated"
}

// Role classifies an Edge's relationship to its sink task (§3).
type Role int

const (
	RoleInput Role = iota
	RoleOutput
	RoleWaitOn
)

func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleWaitOn:
		return "wait_on"
	default:
		return "unknown"
	}
}

// Edge is a directed, typed connection between two GraphItems. Edges are
// owned by the sink task for Input/WaitOn roles, by the source task for
// Output (§3); Workflow.Edges() flattens all of them into one ordered view.
type Edge struct {
	Source Ref
	Sink   Ref
	Port   string // "" when the reference or output declares no port
	Role   Role
}

// Ref is a by-name-and-coordinate reference to a GraphItem, resolvable
// through the Store — edges hold Refs rather than direct pointers so the
// graph can be serialized with the Store as the single source of truth
// (§9, Ownership).
type Ref struct {
	Name       string
	Coordinate Coordinate
}

func (r Ref) String() string { return fmt.Sprintf("%s%s", r.Name, r.Coordinate) }

// GraphItem is the closed {Task, Data} variant (§9: "Polymorphism of
// GraphItem"). The common prefix (name, coordinate) is exposed directly;
// the type-specific payload is reached through AsTask/AsData.
type GraphItem struct {
	Name       string
	Coordinate Coordinate

	task *TaskItem
	data *DataItem
}

// Ref returns the by-name-and-coordinate handle for this item.
func (g *GraphItem) Ref() Ref { return Ref{Name: g.Name, Coordinate: g.Coordinate} }

// IsTask / IsData report the variant tag.
func (g *GraphItem) IsTask() bool { return g.task != nil }
func (g *GraphItem) IsData() bool { return g.data != nil }

// AsTask returns the task-specific payload, or nil if this item is Data.
func (g *GraphItem) AsTask() *TaskItem { return g.task }

// AsData returns the data-specific payload, or nil if this item is a Task.
func (g *GraphItem) AsData() *DataItem { return g.data }

func (g *GraphItem) String() string {
	kind := "data"
	if g.IsTask() {
		kind = "task"
	}
	return fmt.Sprintf("%s:%s%s", kind, g.Name, g.Coordinate)
}

// TaskItem holds the task-specific payload: ordered edge lists plus an
// opaque plugin payload carried through from the IR untouched by the core.
type TaskItem struct {
	Inputs  []Edge
	Outputs []Edge
	WaitOns []Edge
	Payload interface{}
}

// NewTaskGraphItem constructs a Task-variant GraphItem.
func NewTaskGraphItem(name string, coord Coordinate, payload interface{}) *GraphItem {
	return &GraphItem{
		Name:       name,
		Coordinate: coord,
		task:       &TaskItem{Payload: payload},
	}
}

// DataItem holds the data-specific payload.
type DataItem struct {
	Availability Availability
	Payload      interface{}
}

// NewDataGraphItem constructs a Data-variant GraphItem.
func NewDataGraphItem(name string, coord Coordinate, availability Availability, payload interface{}) *GraphItem {
	return &GraphItem{
		Name:       name,
		Coordinate: coord,
		data:       &DataItem{Availability: availability, Payload: payload},
	}
}

// AddInput appends an input edge to this task in declaration order.
func (t *TaskItem) AddInput(e Edge) { t.Inputs = append(t.Inputs, e) }

// AddOutput appends an output edge to this task in declaration order.
func (t *TaskItem) AddOutput(e Edge) { t.Outputs = append(t.Outputs, e) }

// AddWaitOn appends a wait-on edge to this task in declaration order.
func (t *TaskItem) AddWaitOn(e Edge) { t.WaitOns = append(t.WaitOns, e) }
