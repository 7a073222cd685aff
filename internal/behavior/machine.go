package behavior

import (
	"strconv"
	"strings"

	"github.com/vk/behaviorgo/internal/hkx"
)

// stateMachine is the aggregate machine object (hkbStateMachine): the
// ordered state list, the start-state index, and the optional wildcard
// transition table. Built once, at finalize.
type stateMachine struct {
	tag        Tag
	name       string
	startState int
	states     []*stateInfo
	wildcards  *transitionArray
}

func (m *stateMachine) objectTag() Tag { return m.tag }

func (m *stateMachine) render() *hkx.Element {
	e := newObjectElement(m.tag, "hkbStateMachine", "0x816c1dcb")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addParam(e, "variableBindingSet", null)
	addIgnored(e, "cachedBindables", "areBindablesCached")
	addParam(e, "userData", "0")
	addParam(e, "name", m.name)
	addIgnored(e, "id", "cloneState", "padNode")
	change := e.Sub("hkparam")
	change.SetAttr("name", "eventToSendWhenStateOrTransitionChanges")
	changeObj := change.Sub("hkobject")
	addParam(changeObj, "id", "-1")
	addParam(changeObj, "payload", null)
	changeObj.AddComment(" sender SERIALIZE_IGNORED ")
	addParam(e, "startStateChooser", null)
	addParam(e, "startStateId", strconv.Itoa(m.startState))
	addParam(e, "returnToPreviousStateEventId", "-1")
	addParam(e, "randomTransitionEventId", "-1")
	addParam(e, "transitionToNextHigherStateEventId", "-1")
	addParam(e, "transitionToNextLowerStateEventId", "-1")
	addParam(e, "syncVariableIndex", "-1")
	addIgnored(e, "currentStateId")
	addParam(e, "wrapAroundStateId", "false")
	addParam(e, "maxSimultaneousTransitions", "32")
	addParam(e, "startStateMode", "START_STATE_MODE_DEFAULT")
	addParam(e, "selfTransitionMode", "SELF_TRANSITION_MODE_NO_TRANSITION")
	addIgnored(e, "isActive")
	states := addArrayParam(e, "states", len(m.states))
	if len(m.states) > 0 {
		tags := make([]string, len(m.states))
		for i, s := range m.states {
			tags[i] = string(s.tag)
		}
		// Member tags render as one text run at the array's fixed nesting
		// depth, the shape the runtime's own files use for this field.
		states.Text = "\n\t\t\t\t" + strings.Join(tags, " ") + "\n\t\t\t"
	}
	addParam(e, "wildcardTransitions", m.wildcards.ref())
	addIgnored(e,
		"stateIdToIndexMap",
		"activeTransitions",
		"transitionFlags",
		"wildcardTransitionFlags",
		"delayedTransitions",
		"timeInState",
		"lastLocalTime",
		"previousStateId",
		"nextStartStateIndexOverride",
		"stateOrTransitionChanged",
		"echoNextUpdate",
		"sCurrentStateIndexAndEntered",
	)
	return e
}
