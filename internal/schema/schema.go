package schema

import "github.com/hashicorp/hcl/v2"

// Behavior represents the `behavior` block from a definition file. At most
// one behavior block is allowed across all loaded files.
type Behavior struct {
	Name       string `hcl:"name,label"`
	StartState string `hcl:"start_state,optional"`
}

// Trigger represents a `trigger` block nested in a state: an event fired at
// a fixed point on the clip's local timeline.
type Trigger struct {
	Event         string  `hcl:"event,label"`
	LocalTime     float64 `hcl:"local_time,optional"`
	RelativeToEnd bool    `hcl:"relative_to_end,optional"`
}

// State represents a `state` block from a definition file. Clip states name
// an animation file; legacy states wrap a named sequence instead and take no
// animation or triggers.
type State struct {
	Name           string         `hcl:"name,label"`
	Animation      string         `hcl:"animation,optional"`
	LegacySequence bool           `hcl:"legacy_sequence,optional"`
	Looping        bool           `hcl:"looping,optional"`
	OnEnter        hcl.Expression `hcl:"on_enter,optional"`
	OnExit         hcl.Expression `hcl:"on_exit,optional"`
	Triggers       []*Trigger     `hcl:"trigger,block"`
}

// Transition represents a `transition` block: an event-driven edge between
// two named states.
type Transition struct {
	From  string `hcl:"from"`
	To    string `hcl:"to"`
	Event string `hcl:"event"`
}

// Wildcard represents a `wildcard` block: an edge into a named state that is
// matchable from any state.
type Wildcard struct {
	State string `hcl:"state"`
	Event string `hcl:"event"`
}

// Root represents the top-level structure of a definition file, containing
// all recognized blocks.
type Root struct {
	Behaviors   []*Behavior   `hcl:"behavior,block"`
	States      []*State      `hcl:"state,block"`
	Transitions []*Transition `hcl:"transition,block"`
	Wildcards   []*Wildcard   `hcl:"wildcard,block"`
	Body        hcl.Body      `hcl:",remain"`
}
