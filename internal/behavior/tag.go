package behavior

import "fmt"

// Tag is the stable textual identifier used for cross-object references in
// the serialized container, e.g. "#0052".
type Tag string

// null is the sentinel written for absent object references.
const null = "null"

// rootIndex seeds the object numbering. The runtime's own files start their
// counters here, and the root container always owns the seed value itself.
const rootIndex = 51

// rootTag is the reserved tag of the top-level container object.
var rootTag = formatTag(rootIndex)

func formatTag(n int) Tag {
	return Tag(fmt.Sprintf("#%04d", n))
}

// tagAllocator issues monotonically increasing tags in creation order. Each
// Builder owns exactly one allocator; tags are never reused or reassigned.
type tagAllocator struct {
	counter int
}

func newTagAllocator() *tagAllocator {
	return &tagAllocator{counter: rootIndex}
}

// next increments the counter and returns the fresh tag. The first call
// returns the tag immediately after the reserved root tag.
func (a *tagAllocator) next() Tag {
	a.counter++
	return formatTag(a.counter)
}
