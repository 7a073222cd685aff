package behavior

import (
	"errors"
	"fmt"
)

// Fatal structural violations. These abort the triggering operation.
var (
	// ErrFinalized is returned by mutation calls after Finalize.
	ErrFinalized = errors.New("behavior graph is finalized")

	// ErrSelfTransition is returned when a transition names the same state
	// as source and destination.
	ErrSelfTransition = errors.New("transition source and destination must differ")

	// ErrLegacyTriggers is returned when a clip trigger targets a state
	// backed by a legacy sequence generator. The two mechanisms are
	// structurally incompatible in the runtime; legacy sequences carry
	// their timed events in the source asset instead.
	ErrLegacyTriggers = errors.New("clip triggers cannot be attached to a legacy sequence generator")

	// ErrUnknownState is returned by operations that require the named
	// state to already exist.
	ErrUnknownState = errors.New("state not found")

	// ErrUnknownEvent is returned by the strict event lookup path when the
	// event was never registered.
	ErrUnknownEvent = errors.New("event not registered")

	// ErrNotImplemented is returned by operations reserved for schema
	// surface this builder does not yet cover.
	ErrNotImplemented = errors.New("not implemented")
)

// Warning marks a recoverable validation failure: the requested mutation was
// skipped, the graph is unchanged and remains fully usable. Callers that
// only care about fatal conditions can filter with IsWarning.
type Warning struct {
	msg string
}

func (w *Warning) Error() string {
	return w.msg
}

func warnf(format string, args ...any) error {
	return &Warning{msg: fmt.Sprintf(format, args...)}
}

// IsWarning reports whether err (or anything it wraps) is a recoverable
// validation warning rather than a fatal error.
func IsWarning(err error) bool {
	var w *Warning
	return errors.As(err, &w)
}
