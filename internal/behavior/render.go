package behavior

import (
	"strconv"

	"github.com/vk/behaviorgo/internal/hkx"
)

// object is anything registered in a builder's data section: it owns a tag
// and knows how to render itself into the container tree.
type object interface {
	objectTag() Tag
	render() *hkx.Element
}

// newObjectElement builds the standard object header: name (the tag), class,
// and the fixed structural signature the runtime matches on.
func newObjectElement(tag Tag, class, signature string) *hkx.Element {
	e := hkx.NewElement("hkobject")
	e.SetAttr("name", string(tag))
	e.SetAttr("class", class)
	e.SetAttr("signature", signature)
	return e
}

// addParam appends a scalar field record.
func addParam(e *hkx.Element, name, text string) *hkx.Element {
	p := e.Sub("hkparam")
	p.SetAttr("name", name)
	p.Text = text
	return p
}

// addArrayParam appends an element-array field record annotated with its
// element count.
func addArrayParam(e *hkx.Element, name string, numElements int) *hkx.Element {
	p := e.Sub("hkparam")
	p.SetAttr("name", name)
	p.SetAttr("numelements", strconv.Itoa(numElements))
	return p
}

// addIgnored appends the inert annotations the runtime expects for fields it
// does not persist. Omitting them changes the byte shape the runtime was
// built against, so they are emitted as comments instead.
func addIgnored(e *hkx.Element, fields ...string) {
	for _, f := range fields {
		e.AddComment(" " + f + " SERIALIZE_IGNORED ")
	}
}

// f6 renders a float with the container's fixed six fractional digits.
func f6(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
