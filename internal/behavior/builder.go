package behavior

import (
	"context"
	"fmt"

	"github.com/vk/behaviorgo/internal/ctxlog"
)

// DefaultName is the behavior name used when none is given, matching the
// naming convention seen in shipped runtime files.
const DefaultName = "defaultNameBehavior"

// placeholderPath is the animation-path value that marks "not filled in".
const placeholderPath = "placeholder"

// Builder accumulates one behavior graph. All counters and name tables are
// owned by the instance, so independent builders never share state.
type Builder struct {
	name string
	tags *tagAllocator

	// objects holds every allocated object in creation (tag) order; the
	// serializer walks it directly.
	objects []object

	events   *eventTable
	strings  *stringData
	valueSet *variableValueSet
	data     *graphData
	blend    *blendEffect

	states       []*stateInfo
	statesByName map[string]*stateInfo
	wildcards    *transitionArray
	startState   int

	finalized bool
	machine   *stateMachine
	graph     *behaviorGraph
}

// New creates an empty builder. The graph-wide objects (name registry,
// variable value set, metadata tables, default blend effect) are allocated
// immediately, in the fixed order the runtime's own files use, so they
// occupy the first four tags after the reserved root tag.
func New(name string) *Builder {
	if name == "" {
		name = DefaultName
	}
	b := &Builder{
		name:         name,
		tags:         newTagAllocator(),
		events:       newEventTable(),
		statesByName: make(map[string]*stateInfo),
	}
	b.strings = &stringData{tag: b.tags.next(), events: b.events}
	b.register(b.strings)
	b.valueSet = &variableValueSet{tag: b.tags.next()}
	b.register(b.valueSet)
	b.data = &graphData{tag: b.tags.next(), events: b.events, valueSet: b.valueSet, strings: b.strings}
	b.register(b.data)
	b.blend = &blendEffect{tag: b.tags.next(), name: "ZeroDuration"}
	b.register(b.blend)
	return b
}

func (b *Builder) register(o object) {
	b.objects = append(b.objects, o)
}

// Name returns the behavior name the graph will be exported under.
func (b *Builder) Name() string {
	return b.name
}

// StateCount returns the number of registered states.
func (b *Builder) StateCount() int {
	return len(b.states)
}

// EventCount returns the number of registered events.
func (b *Builder) EventCount() int {
	return b.events.len()
}

// StateSpec describes one state for AddState. EnterEvents and ExitEvents
// name events to fire on state entry and exit; they are registered through
// the shared event table on use.
type StateSpec struct {
	Name           string
	AnimationPath  string
	Looping        bool
	LegacySequence bool
	EnterEvents    []string
	ExitEvents     []string
}

// AddState registers a new state wrapping a freshly built generator and an
// empty transition table, and assigns it the next sequential state index.
// Duplicate names and missing animation paths return a *Warning and leave
// the graph unchanged.
func (b *Builder) AddState(ctx context.Context, spec StateSpec) error {
	logger := ctxlog.FromContext(ctx)
	if b.finalized {
		return ErrFinalized
	}
	if _, exists := b.statesByName[spec.Name]; exists {
		logger.Warn("State skipped: name already in use.", "state", spec.Name)
		return warnf("state %q already exists, state names must be unique", spec.Name)
	}
	if !spec.LegacySequence && (spec.AnimationPath == "" || spec.AnimationPath == placeholderPath) {
		logger.Warn("State skipped: clip states require a real animation path.", "state", spec.Name)
		return warnf("state %q: a clip state requires an animation path such as animations\\<name>.hkx", spec.Name)
	}

	transitions := &transitionArray{tag: b.tags.next()}
	b.register(transitions)

	gen := &generator{
		tag:           b.tags.next(),
		name:          spec.Name,
		animationPath: spec.AnimationPath,
		looping:       spec.Looping,
	}
	if spec.LegacySequence {
		gen.kind = LegacySequenceGenerator
	}
	b.register(gen)

	var enter, exit *eventPropertyArray
	if len(spec.EnterEvents) > 0 {
		enter = b.newEventPropertyArray(ctx, spec.EnterEvents)
	}
	if len(spec.ExitEvents) > 0 {
		exit = b.newEventPropertyArray(ctx, spec.ExitEvents)
	}

	st := &stateInfo{
		tag:         b.tags.next(),
		name:        spec.Name,
		index:       len(b.states),
		gen:         gen,
		transitions: transitions,
		enterNotify: enter,
		exitNotify:  exit,
	}
	b.register(st)
	b.states = append(b.states, st)
	b.statesByName[spec.Name] = st
	logger.Info("Added state.", "state", spec.Name, "state_id", st.index)
	return nil
}

func (b *Builder) newEventPropertyArray(ctx context.Context, events []string) *eventPropertyArray {
	a := &eventPropertyArray{tag: b.tags.next()}
	for _, name := range events {
		a.eventIDs = append(a.eventIDs, b.events.getOrCreate(ctx, name))
	}
	b.register(a)
	return a
}

// AddClipTrigger appends a timed event to the named state's trigger table,
// creating the table lazily on first use and rebinding the state's clip
// generator to it. The state must exist and must not be backed by a legacy
// sequence generator; both violations are fatal.
func (b *Builder) AddClipTrigger(ctx context.Context, state, event string, relativeToEnd bool, localTime float64) error {
	logger := ctxlog.FromContext(ctx)
	if b.finalized {
		return ErrFinalized
	}
	st, ok := b.statesByName[state]
	if !ok {
		return fmt.Errorf("add clip trigger: %w: %q", ErrUnknownState, state)
	}
	if st.gen.kind == LegacySequenceGenerator {
		return fmt.Errorf("state %q: %w", state, ErrLegacyTriggers)
	}

	if st.gen.triggers == nil {
		arr := &clipTriggerArray{tag: b.tags.next()}
		b.register(arr)
		st.gen.triggers = arr
	}
	eventID := b.events.getOrCreate(ctx, event)
	st.gen.triggers.add(localTime, eventID, relativeToEnd)
	logger.Info("Added clip trigger.", "state", state, "event", event, "local_time", localTime, "relative_to_end", relativeToEnd)
	return nil
}

// ConnectStates appends a local transition from one named state to another,
// fired by the named event (registered on first use). Source and destination
// must be distinct; a self-transition is fatal. A missing state returns a
// *Warning and leaves the graph unchanged.
func (b *Builder) ConnectStates(ctx context.Context, from, to, event string) error {
	logger := ctxlog.FromContext(ctx)
	if b.finalized {
		return ErrFinalized
	}
	if from == to {
		return fmt.Errorf("connect %q to itself: %w", from, ErrSelfTransition)
	}
	src, ok := b.statesByName[from]
	if !ok {
		logger.Warn("Transition skipped: source state does not exist.", "state", from)
		return warnf("transition %s -> %s: source state %q does not exist", from, to, from)
	}
	dst, ok := b.statesByName[to]
	if !ok {
		logger.Warn("Transition skipped: destination state does not exist.", "state", to)
		return warnf("transition %s -> %s: destination state %q does not exist", from, to, to)
	}

	eventID := b.events.getOrCreate(ctx, event)
	src.transitions.add(eventID, dst.index, b.blend, false)
	logger.Info("Connected states.", "from", from, "to", to, "to_state_id", dst.index, "event", event)
	return nil
}

// AddWildcard appends a transition into the named state that is matchable
// from any state. The single graph-wide wildcard table is created lazily on
// first use. A missing state returns a *Warning.
func (b *Builder) AddWildcard(ctx context.Context, state, event string) error {
	logger := ctxlog.FromContext(ctx)
	if b.finalized {
		return ErrFinalized
	}
	st, ok := b.statesByName[state]
	if !ok {
		logger.Warn("Wildcard skipped: state does not exist.", "state", state)
		return warnf("wildcard into %q: state does not exist, create it first", state)
	}

	if b.wildcards == nil {
		b.wildcards = &transitionArray{tag: b.tags.next()}
		b.register(b.wildcards)
	}
	eventID := b.events.getOrCreate(ctx, event)
	b.wildcards.add(eventID, st.index, b.blend, true)
	logger.Info("Added wildcard transition.", "state", state, "state_id", st.index, "event", event)
	return nil
}

// SetStartState selects the machine's start state by name. Unset, the first
// declared state (index 0) starts. An unknown name returns a *Warning and
// keeps the previous selection.
func (b *Builder) SetStartState(ctx context.Context, state string) error {
	logger := ctxlog.FromContext(ctx)
	if b.finalized {
		return ErrFinalized
	}
	st, ok := b.statesByName[state]
	if !ok {
		logger.Warn("Start state ignored: state does not exist.", "state", state)
		return warnf("start state %q does not exist", state)
	}
	b.startState = st.index
	logger.Debug("Start state selected.", "state", state, "state_id", st.index)
	return nil
}

// AddVariable is reserved for future variable-schema coverage; the variable
// value set always serializes empty.
func (b *Builder) AddVariable(ctx context.Context, name string) error {
	return fmt.Errorf("add variable %q: %w", name, ErrNotImplemented)
}

// AddCharacterProperty is reserved for future property-schema coverage.
func (b *Builder) AddCharacterProperty(ctx context.Context, name string) error {
	return fmt.Errorf("add character property %q: %w", name, ErrNotImplemented)
}
