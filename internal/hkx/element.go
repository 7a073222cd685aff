package hkx

// Node is a child entry of an Element: either a nested *Element or a Comment.
type Node interface {
	node()
}

// Attr is a single element attribute. Attribute order is significant in the
// output, so attributes are kept as an ordered slice rather than a map.
type Attr struct {
	Key   string
	Value string
}

// Element is one named node in the container tree.
type Element struct {
	Name  string
	Attrs []Attr

	// Text is the scalar payload. It is only written when the element has
	// no children; an element with children renders its children instead.
	Text string

	children []Node
}

// Comment is an inline comment node. The runtime uses these as inert
// annotations for fields it does not persist.
type Comment string

func (*Element) node() {}
func (Comment) node()  {}

// NewElement creates a detached element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttr sets an attribute, replacing an existing value for the same key or
// appending a new attribute in insertion order.
func (e *Element) SetAttr(key, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Sub creates a new child element with the given name, appends it, and
// returns it.
func (e *Element) Sub(name string) *Element {
	child := NewElement(name)
	e.children = append(e.children, child)
	return child
}

// AddComment appends an inline comment node.
func (e *Element) AddComment(text string) {
	e.children = append(e.children, Comment(text))
}

// Append adds an already-constructed node as the last child.
func (e *Element) Append(n Node) {
	e.children = append(e.children, n)
}

// Children returns the ordered child nodes.
func (e *Element) Children() []Node {
	return e.children
}
