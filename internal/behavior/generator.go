package behavior

import "github.com/vk/behaviorgo/internal/hkx"

// GeneratorKind is the closed set of generator variants a state can play.
type GeneratorKind int

const (
	// ClipGenerator plays a skeletal animation clip from an external .hkx
	// asset (hkbClipGenerator).
	ClipGenerator GeneratorKind = iota
	// LegacySequenceGenerator plays a named pose sequence baked into the
	// source mesh (BGSGamebryoSequenceGenerator). It carries no trigger
	// table; timed events live in the mesh's text keys instead.
	LegacySequenceGenerator
)

// generator is the leaf node describing what animation content a state
// plays.
type generator struct {
	tag  Tag
	kind GeneratorKind
	name string

	// Clip variant only.
	animationPath string
	looping       bool
	triggers      *clipTriggerArray
}

func (g *generator) objectTag() Tag { return g.tag }

func (g *generator) render() *hkx.Element {
	switch g.kind {
	case LegacySequenceGenerator:
		return g.renderSequence()
	default:
		return g.renderClip()
	}
}

func (g *generator) renderClip() *hkx.Element {
	e := newObjectElement(g.tag, "hkbClipGenerator", "0x333b85b9")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addParam(e, "variableBindingSet", null)
	addIgnored(e, "cachedBindables", "areBindablesCached")
	addParam(e, "userData", "0")
	addParam(e, "name", g.name)
	addIgnored(e, "id", "cloneState", "padNode")
	addParam(e, "animationName", g.animationPath)
	addParam(e, "triggers", g.triggers.ref())
	addParam(e, "cropStartAmountLocalTime", f6(0))
	addParam(e, "cropEndAmountLocalTime", f6(0))
	addParam(e, "startTime", f6(0))
	addParam(e, "playbackSpeed", f6(1))
	addParam(e, "enforcedDuration", f6(0))
	addParam(e, "userControlledTimeFraction", f6(0))
	addParam(e, "animationBindingIndex", "-1")
	if g.looping {
		addParam(e, "mode", "MODE_LOOPING")
	} else {
		addParam(e, "mode", "MODE_SINGLE_PLAY")
	}
	addParam(e, "flags", "0")
	addIgnored(e,
		"animDatas",
		"animationControl",
		"originalTriggers",
		"mapperData",
		"binding",
		"mirroredAnimation",
		"extractedMotion",
		"echos",
		"localTime",
		"time",
		"previousUserControlledTimeFraction",
		"bufferSize",
		"echoBufferSize",
		"atEnd",
		"ignoreStartTime",
		"pingPongBackward",
	)
	return e
}

func (g *generator) renderSequence() *hkx.Element {
	e := newObjectElement(g.tag, "BGSGamebryoSequenceGenerator", "0xc8df2d77")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addParam(e, "variableBindingSet", null)
	addIgnored(e, "cachedBindables", "areBindablesCached")
	addParam(e, "userData", "0")
	addParam(e, "name", g.name+"Sequence")
	addIgnored(e, "id", "cloneState", "padNode")
	addParam(e, "pSequence", g.name)
	addParam(e, "eBlendModeFunction", "BMF_NONE")
	addParam(e, "fPercent", f6(1))
	addIgnored(e, "events", "fTime", "bDelayedActivate", "bLooping")
	return e
}
