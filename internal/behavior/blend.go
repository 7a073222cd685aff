package behavior

import "github.com/vk/behaviorgo/internal/hkx"

// blendEffect is the shared default transition-blend descriptor
// (hkbBlendingTransitionEffect). Every transition in the graph references
// this single zero-duration effect.
type blendEffect struct {
	tag  Tag
	name string
}

func (b *blendEffect) objectTag() Tag { return b.tag }

func (b *blendEffect) render() *hkx.Element {
	e := newObjectElement(b.tag, "hkbBlendingTransitionEffect", "0xfd8584fe")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addParam(e, "variableBindingSet", null)
	// The runtime reads the effect label out of userData; the name field
	// itself is not load-bearing. Matches the shape of shipped game files.
	addParam(e, "userData", b.name)
	addParam(e, "name", "name")
	addIgnored(e, "id", "cloneState", "padNode")
	addParam(e, "selfTransitionMode", "SELF_TRANSITION_MODE_CONTINUE_IF_CYCLIC_BLEND_IF_ACYCLIC")
	addParam(e, "eventMode", "EVENT_MODE_DEFAULT")
	addIgnored(e, "defaultEventMode")
	addParam(e, "duration", f6(0))
	addParam(e, "toGeneratorStartTimeFraction", f6(0))
	addParam(e, "flags", "0")
	addParam(e, "endMode", "END_MODE_NONE")
	addParam(e, "blendCurve", "BLEND_CURVE_SMOOTH")
	addIgnored(e,
		"fromGenerator",
		"toGenerator",
		"characterPoseAtBeginningOfTransition",
		"timeRemaining",
		"timeInTransition",
		"applySelfTransition",
		"initializeCharacterPose",
	)
	return e
}
