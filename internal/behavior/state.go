package behavior

import (
	"strconv"

	"github.com/vk/behaviorgo/internal/hkx"
)

// stateInfo is one node of the state machine (hkbStateMachineStateInfo): a
// generator, an owned transition table, optional enter/exit notification
// lists, and the stable state index assigned in insertion order.
type stateInfo struct {
	tag   Tag
	name  string
	index int

	gen         *generator
	transitions *transitionArray
	enterNotify *eventPropertyArray
	exitNotify  *eventPropertyArray
}

func (s *stateInfo) objectTag() Tag { return s.tag }

func (s *stateInfo) render() *hkx.Element {
	e := newObjectElement(s.tag, "hkbStateMachineStateInfo", "0xed7f9d0")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addParam(e, "variableBindingSet", null)
	addIgnored(e, "cachedBindables", "areBindablesCached")
	addArrayParam(e, "listeners", 0)
	addParam(e, "enterNotifyEvents", s.enterNotify.ref())
	addParam(e, "exitNotifyEvents", s.exitNotify.ref())
	addParam(e, "transitions", string(s.transitions.tag))
	addParam(e, "generator", string(s.gen.tag))
	addParam(e, "name", s.name)
	addParam(e, "stateId", strconv.Itoa(s.index))
	addParam(e, "probability", f6(1))
	addParam(e, "enable", "true")
	return e
}
