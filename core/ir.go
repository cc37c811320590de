package core

// IR is the validated intermediate representation the core consumes (§6).
// Building and validating it is the front-end's job; the core only reads
// it. Field tags carry both a YAML name (for `IRManager`, which
// loads an IR document off disk for the CLI) and the plain Go name the
// in-process caller would otherwise set directly.
type IR struct {
	StartDate string `yaml:"start_date"`
	StopDate  string `yaml:"stop_date"`

	Cycles []CycleIR `yaml:"cycles"`

	Tasks map[string]TaskTemplate `yaml:"tasks"`

	Data struct {
		Available []DataTemplate `yaml:"available"`
		Generated []DataTemplate `yaml:"generated"`
	} `yaml:"data"`

	Parameters map[string][]Value `yaml:"parameters"`
}

// CycleIR describes one cycle block: an optional cycling schedule plus an
// ordered list of task-refs to instantiate at each cycle date.
type CycleIR struct {
	Name     string     `yaml:"name"`
	Cycling  *CyclingIR `yaml:"cycling"`
	TaskRefs []TaskRef  `yaml:"tasks"`
}

// CyclingIR is the date/period schedule for a cycle block. A nil *CyclingIR
// on the enclosing CycleIR means "undated one-off cycle" (§6).
type CyclingIR struct {
	StartDate string `yaml:"start_date"`
	StopDate  string `yaml:"stop_date"`
	Period    string `yaml:"period"`
}

// TaskRef instantiates a task template within a cycle.
type TaskRef struct {
	Name    string       `yaml:"name"`
	Inputs  []Reference  `yaml:"inputs"`
	Outputs []OutputRef  `yaml:"outputs"`
	WaitOn  []Reference  `yaml:"wait_on"`
}

// Reference is one input or wait-on reference (§6).
type Reference struct {
	Name       string                `yaml:"name"`
	Port       *string               `yaml:"port"`
	When       *WhenIR               `yaml:"when"`
	TargetCycle *TargetCycleIR       `yaml:"target_cycle"`
	Parameters map[string]string     `yaml:"parameters"` // dim -> "single"
}

// WhenIR is the guard clause set carried on a Reference, prior to parsing
// its Date literals into core.Guard.
type WhenIR struct {
	At     *string `yaml:"at"`
	After  *string `yaml:"after"`
	Before *string `yaml:"before"`
}

// TargetCycleIR carries the raw lag/date literal(s) on a Reference, prior
// to resolution against the referring task's coordinate.
type TargetCycleIR struct {
	Lag  []string `yaml:"lag"`  // one or more ISO 8601 duration literals
	Date *string  `yaml:"date"` // absolute date pin
}

// OutputRef names a task output and its optional port. The YAML loader
// decodes only the mapping form ({name, port}); a bare string entry is not
// turned into an OutputRef.
type OutputRef struct {
	Name string  `yaml:"name"`
	Port *string `yaml:"port"`
}

// TaskTemplate is the opaque-to-the-core-except-for-parameters task
// definition (plugin, parameters, backend fields). ROOT, if present,
// supplies defaults shallow-merged into every other template (§6, §9 open
// question: shallow merge is the specified behavior).
type TaskTemplate struct {
	Plugin     string   `yaml:"plugin"`
	Parameters []string `yaml:"parameters"`
	Extra      map[string]interface{} `yaml:"-"`
}

// DataTemplate is the opaque-to-the-core-except-for-parameters data
// definition.
type DataTemplate struct {
	Name       string                 `yaml:"name"`
	Parameters []string               `yaml:"parameters"`
	Extra      map[string]interface{} `yaml:"-"`
}

const rootTaskName = "ROOT"

// ShallowMergeRoot merges the ROOT template's scalar fields into every
// other template that does not already set them, per §6/§9's specified
// shallow-merge semantics (the open question about deep- vs shallow-merge
// is resolved in favor of shallow merge, as the core specifies). Exported
// so both the disk-load path (IRManager) and the in-memory entry point
// (expand.Expand) apply the same ROOT-default behavior.
func ShallowMergeRoot(tasks map[string]TaskTemplate) map[string]TaskTemplate {
	root, ok := tasks[rootTaskName]
	if !ok {
		return tasks
	}
	out := make(map[string]TaskTemplate, len(tasks))
	for name, t := range tasks {
		if name == rootTaskName {
			out[name] = t
			continue
		}
		if t.Plugin == "" {
			t.Plugin = root.Plugin
		}
		if len(t.Parameters) == 0 {
			t.Parameters = root.Parameters
		}
		out[name] = t
	}
	return out
}
