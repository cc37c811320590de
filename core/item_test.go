package core

import "testing"

func TestGraphItemVariantIsClosed(t *testing.T) {
	task := NewTaskGraphItem("icon", EmptyCoordinate(), nil)
	if !task.IsTask() || task.IsData() {
		t.Error("task item should report IsTask true, IsData false")
	}
	if task.AsTask() == nil {
		t.Error("AsTask should return the task payload")
	}
	if task.AsData() != nil {
		t.Error("AsData should return nil on a task item")
	}

	data := NewDataGraphItem("icon_output", EmptyCoordinate(), Generated, nil)
	if !data.IsData() || data.IsTask() {
		t.Error("data item should report IsData true, IsTask false")
	}
	if data.AsData() == nil {
		t.Error("AsData should return the data payload")
	}
	if data.AsTask() != nil {
		t.Error("AsTask should return nil on a data item")
	}
}

func TestTaskItemEdgeOrdering(t *testing.T) {
	item := NewTaskGraphItem("icon", EmptyCoordinate(), nil)
	task := item.AsTask()

	task.AddInput(Edge{Port: "a"})
	task.AddInput(Edge{Port: "b"})
	task.AddWaitOn(Edge{Port: "c"})
	task.AddOutput(Edge{Port: "d"})

	if len(task.Inputs) != 2 || task.Inputs[0].Port != "a" || task.Inputs[1].Port != "b" {
		t.Errorf("expected inputs in declaration order, got %v", task.Inputs)
	}
	if len(task.WaitOns) != 1 {
		t.Errorf("expected one wait-on edge, got %d", len(task.WaitOns))
	}
	if len(task.Outputs) != 1 {
		t.Errorf("expected one output edge, got %d", len(task.Outputs))
	}
}

func TestAvailabilityString(t *testing.T) {
	if Available.String() != "available" {
		t.Errorf("expected 'available', got %q", Available.String())
	}
	if Generated.String() != "generated" {
		t.Errorf("expected 'generated', got %q", Generated.String())
	}
}

func TestRoleString(t *testing.T) {
	cases := map[Role]string{
		RoleInput:  "input",
		RoleOutput: "output",
		RoleWaitOn: "wait_on",
	}
	for role, want := range cases {
		if got := role.String(); got != want {
			t.Errorf("Role(%d).String() = %q, want %q", role, got, want)
		}
	}
}
