package behavior

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/behaviorgo/internal/ctxlog"
	"github.com/vk/behaviorgo/internal/hkx"
)

// eventTable is the deduplicated registry mapping event name to integer id,
// insertion-ordered, kept in lockstep with the per-event metadata flags.
// getOrCreate is the only mutation entry point; the name entry and its
// metadata entry are appended together, so the two serialized tables can
// never diverge in length.
type eventTable struct {
	names  []string
	flags  []int
	byName map[string]int
}

func newEventTable() *eventTable {
	return &eventTable{byName: make(map[string]int)}
}

// getOrCreate returns the id of an already-registered event, or atomically
// registers a new event plus its metadata entry (default flags 0) and
// returns the fresh id. Ids are stable: repeated calls with the same name
// always return the first assignment.
func (t *eventTable) getOrCreate(ctx context.Context, name string) int {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := len(t.names)
	t.names = append(t.names, name)
	t.flags = append(t.flags, 0)
	t.byName[name] = id
	ctxlog.FromContext(ctx).Debug("Registered new event.", "event", name, "id", id)
	return id
}

// id is the strict lookup path: the caller is expected to have registered
// the event first.
func (t *eventTable) id(name string) (int, error) {
	id, ok := t.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
	return id, nil
}

func (t *eventTable) len() int {
	return len(t.names)
}

// stringData is the graph-wide name registry object
// (hkbBehaviorGraphStringData). Event names render from the shared event
// table; the attribute, variable, and character-property name arrays are
// schema-required but unpopulated.
type stringData struct {
	tag    Tag
	events *eventTable
}

func (s *stringData) objectTag() Tag { return s.tag }

func (s *stringData) render() *hkx.Element {
	e := newObjectElement(s.tag, "hkbBehaviorGraphStringData", "0xc713064e")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	names := addArrayParam(e, "eventNames", s.events.len())
	for _, n := range s.events.names {
		cs := names.Sub("hkcstring")
		cs.Text = n
	}
	addArrayParam(e, "attributeNames", 0)
	addArrayParam(e, "variableNames", 0)
	addArrayParam(e, "characterPropertyNames", 0)
	return e
}

// graphData is the graph-wide metadata object (hkbBehaviorGraphData). Its
// eventInfos array mirrors the event name table one-to-one.
type graphData struct {
	tag      Tag
	events   *eventTable
	valueSet *variableValueSet
	strings  *stringData
}

func (g *graphData) objectTag() Tag { return g.tag }

func (g *graphData) render() *hkx.Element {
	e := newObjectElement(g.tag, "hkbBehaviorGraphData", "0x95aca5d")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addArrayParam(e, "attributeDefaults", 0)
	addArrayParam(e, "variableInfos", 0)
	addArrayParam(e, "characterPropertyInfos", 0)
	infos := addArrayParam(e, "eventInfos", g.events.len())
	for _, f := range g.events.flags {
		o := infos.Sub("hkobject")
		addParam(o, "flags", strconv.Itoa(f))
	}
	addArrayParam(e, "wordMinVariableValues", 0)
	addArrayParam(e, "wordMaxVariableValues", 0)
	addParam(e, "variableInitialValues", string(g.valueSet.tag))
	addParam(e, "stringData", string(g.strings.tag))
	return e
}
