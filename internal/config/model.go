package config

// Model is the unified, format-agnostic representation of one behavior
// definition: the behavior header, its states, and the transitions that
// connect them.
type Model struct {
	Behavior    *Behavior
	States      []*State
	Transitions []*Transition
	Wildcards   []*Wildcard
}

// Behavior is the format-agnostic representation of a `behavior` block.
type Behavior struct {
	Name       string
	StartState string
}

// State is the format-agnostic representation of a `state` block.
type State struct {
	Name      string
	Animation string
	Legacy    bool
	Looping   bool
	OnEnter   []string
	OnExit    []string
	Triggers  []*Trigger
}

// Trigger is a timed event fired while a state's clip plays.
type Trigger struct {
	Event         string
	LocalTime     float64
	RelativeToEnd bool
}

// Transition is the format-agnostic representation of a `transition` block.
type Transition struct {
	From  string
	To    string
	Event string
}

// Wildcard is the format-agnostic representation of a `wildcard` block: a
// transition into State that is matchable from any state.
type Wildcard struct {
	State string
	Event string
}
