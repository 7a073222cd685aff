package behavior

import "github.com/vk/behaviorgo/internal/hkx"

// behaviorGraph is the root business object (hkbBehaviorGraph) referencing
// the state machine and the graph-wide metadata tables.
type behaviorGraph struct {
	tag     Tag
	name    string
	machine *stateMachine
	data    *graphData
}

func (g *behaviorGraph) objectTag() Tag { return g.tag }

func (g *behaviorGraph) render() *hkx.Element {
	e := newObjectElement(g.tag, "hkbBehaviorGraph", "0xb1218f86")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addParam(e, "variableBindingSet", null)
	addIgnored(e, "cachedBindables", "areBindablesCached")
	addParam(e, "userData", "0")
	addParam(e, "name", g.name+".hkb")
	addIgnored(e, "id", "cloneState", "padNode")
	addParam(e, "variableMode", "VARIABLE_MODE_DISCARD_WHEN_INACTIVE")
	addIgnored(e,
		"uniqueIdPool",
		"idToStateMachineTemplateMap",
		"mirroredExternalIdMap",
		"pseudoRandomGenerator",
	)
	addParam(e, "rootGenerator", string(g.machine.tag))
	addParam(e, "data", string(g.data.tag))
	addIgnored(e,
		"rootGeneratorClone",
		"activeNodes",
		"activeNodeTemplateToIndexMap",
		"activeNodesChildrenIndices",
		"globalTransitionData",
		"eventIdMap",
		"attributeIdMap",
		"variableIdMap",
		"characterPropertyIdMap",
		"variableValueSet",
		"nodeTemplateToCloneMap",
		"nodeCloneToTemplateMap",
		"stateListenerTemplateToCloneMap",
		"nodePartitionInfo",
		"numIntermediateOutputs",
		"jobs",
		"allPartitionMemory",
		"numStaticNodes",
		"nextUniqueId",
		"isActive",
		"isLinked",
		"updateActiveNodes",
		"stateOrTransitionChanged",
	)
	return e
}

// renderRootContainer emits the top-level container entry that names the
// behavior graph as the single exported variant. It owns the reserved root
// tag.
func renderRootContainer(graph *behaviorGraph) *hkx.Element {
	e := newObjectElement(rootTag, "hkRootLevelContainer", "0x2772c11e")
	variants := addArrayParam(e, "namedVariants", 1)
	v := variants.Sub("hkobject")
	addParam(v, "name", "hkbBehaviorGraph")
	addParam(v, "className", "hkbBehaviorGraph")
	addParam(v, "variant", string(graph.tag))
	return e
}
