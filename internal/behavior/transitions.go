package behavior

import (
	"strconv"

	"github.com/vk/behaviorgo/internal/hkx"
)

// transitionRecord is one edge: a triggering event id bound to a destination
// state index. Every record carries a fixed zero trigger-window and a
// reference to the graph's shared blend effect.
type transitionRecord struct {
	eventID  int
	toState  int
	wildcard bool
	blend    *blendEffect
}

// transitionArray is an ordered transition table
// (hkbStateMachineTransitionInfoArray). Each state owns one for its local
// transitions; at most one exists graph-wide for wildcard transitions.
type transitionArray struct {
	tag     Tag
	records []transitionRecord
}

func (t *transitionArray) objectTag() Tag { return t.tag }

func (t *transitionArray) add(eventID, toState int, blend *blendEffect, wildcard bool) {
	t.records = append(t.records, transitionRecord{
		eventID:  eventID,
		toState:  toState,
		wildcard: wildcard,
		blend:    blend,
	})
}

func (t *transitionArray) len() int {
	return len(t.records)
}

// ref is nil-safe so optional tables render as the null sentinel.
func (t *transitionArray) ref() string {
	if t == nil {
		return null
	}
	return string(t.tag)
}

func (t *transitionArray) render() *hkx.Element {
	e := newObjectElement(t.tag, "hkbStateMachineTransitionInfoArray", "0xe397b11e")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	arr := addArrayParam(e, "transitions", len(t.records))
	for _, r := range t.records {
		o := arr.Sub("hkobject")
		interval := o.Sub("hkparam")
		interval.SetAttr("name", "triggerInterval")
		iv := interval.Sub("hkobject")
		addParam(iv, "enterEventId", "-1")
		addParam(iv, "exitEventId", "-1")
		addParam(iv, "enterTime", f6(0))
		addParam(iv, "exitTime", f6(0))
		addParam(o, "transition", string(r.blend.tag))
		addParam(o, "condition", null)
		addParam(o, "eventId", strconv.Itoa(r.eventID))
		addParam(o, "toStateId", strconv.Itoa(r.toState))
		addParam(o, "fromNestedStateId", "0")
		addParam(o, "toNestedStateId", "0")
		addParam(o, "priority", "0")
		if r.wildcard {
			addParam(o, "flags", "FLAG_IS_LOCAL_WILDCARD|FLAG_DISABLE_CONDITION")
		} else {
			addParam(o, "flags", "FLAG_DISABLE_CONDITION")
		}
	}
	return e
}
