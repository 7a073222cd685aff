package behavior

import (
	"strconv"

	"github.com/vk/behaviorgo/internal/hkx"
)

// clipTrigger is one timed event fired while a clip generator plays.
type clipTrigger struct {
	localTime     float64
	eventID       int
	relativeToEnd bool
}

// clipTriggerArray is a per-state ordered trigger list (hkbClipTriggerArray).
// Insertion order is preserved as given; no time ordering is enforced, the
// runtime sorts or scans linearly.
type clipTriggerArray struct {
	tag      Tag
	triggers []clipTrigger
}

func (c *clipTriggerArray) objectTag() Tag { return c.tag }

func (c *clipTriggerArray) add(localTime float64, eventID int, relativeToEnd bool) {
	c.triggers = append(c.triggers, clipTrigger{
		localTime:     localTime,
		eventID:       eventID,
		relativeToEnd: relativeToEnd,
	})
}

func (c *clipTriggerArray) len() int {
	return len(c.triggers)
}

// ref is nil-safe so generators without triggers render the null sentinel.
func (c *clipTriggerArray) ref() string {
	if c == nil {
		return null
	}
	return string(c.tag)
}

func (c *clipTriggerArray) render() *hkx.Element {
	e := newObjectElement(c.tag, "hkbClipTriggerArray", "0x59c23a0f")
	addIgnored(e, "memSizeAndFlags", "referenceCount")
	arr := addArrayParam(e, "triggers", len(c.triggers))
	for _, t := range c.triggers {
		o := arr.Sub("hkobject")
		addParam(o, "localTime", f6(t.localTime))
		event := o.Sub("hkparam")
		event.SetAttr("name", "event")
		ev := event.Sub("hkobject")
		addParam(ev, "id", strconv.Itoa(t.eventID))
		addParam(ev, "payload", null)
		addParam(o, "relativeToEndOfClip", boolText(t.relativeToEnd))
		addParam(o, "acyclic", "false")
		addParam(o, "isAnnotation", "false")
	}
	return e
}
