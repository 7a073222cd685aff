package behavior

import "github.com/vk/behaviorgo/internal/hkx"

// variableValueSet is the fixed, empty variable container the schema
// requires (hkbVariableValueSet). Reserved for future variable support; all
// three value arrays stay at zero elements.
type variableValueSet struct {
	tag Tag
}

func (v *variableValueSet) objectTag() Tag { return v.tag }

func (v *variableValueSet) render() *hkx.Element {
	e := newObjectElement(v.tag, "hkbVariableValueSet", "0x27812d8d")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	addArrayParam(e, "wordVariableValues", 0)
	addArrayParam(e, "quadVariableValues", 0)
	addArrayParam(e, "variantVariableValues", 0)
	return e
}
