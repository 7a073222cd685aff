package behavior

import (
	"strconv"

	"github.com/vk/behaviorgo/internal/hkx"
)

// eventPropertyArray is an event-notification list
// (hkbStateMachineEventPropertyArray) attached to a state's enter or exit
// edge. Entries reference registered event ids with no payload.
type eventPropertyArray struct {
	tag      Tag
	eventIDs []int
}

func (a *eventPropertyArray) objectTag() Tag { return a.tag }

// ref is nil-safe so states without notify lists render the null sentinel.
func (a *eventPropertyArray) ref() string {
	if a == nil {
		return null
	}
	return string(a.tag)
}

func (a *eventPropertyArray) render() *hkx.Element {
	e := newObjectElement(a.tag, "hkbStateMachineEventPropertyArray", "0xb07b4388")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	arr := addArrayParam(e, "events", len(a.eventIDs))
	for _, id := range a.eventIDs {
		o := arr.Sub("hkobject")
		addParam(o, "id", strconv.Itoa(id))
		addParam(o, "payload", null)
	}
	return e
}
