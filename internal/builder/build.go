package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/behaviorgo/internal/behavior"
	"github.com/vk/behaviorgo/internal/config"
	"github.com/vk/behaviorgo/internal/ctxlog"
)

// Result reports what composition did: the finalized builder plus the
// warnings that were skipped over along the way.
type Result struct {
	Builder  *behavior.Builder
	Warnings []*behavior.Warning
}

// Compose constructs a complete behavior graph from a definition model.
// Warnings are collected into the result; any other error aborts.
func Compose(ctx context.Context, model *config.Model) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compose: Starting behavior graph composition.")

	var name, startState string
	if model.Behavior != nil {
		name = model.Behavior.Name
		startState = model.Behavior.StartState
	}
	res := &Result{Builder: behavior.New(name)}

	// First pass: create all states so later passes can reference them in
	// any order.
	for _, s := range model.States {
		err := res.Builder.AddState(ctx, behavior.StateSpec{
			Name:           s.Name,
			AnimationPath:  s.Animation,
			Looping:        s.Looping,
			LegacySequence: s.Legacy,
			EnterEvents:    s.OnEnter,
			ExitEvents:     s.OnExit,
		})
		if err := res.collect(err); err != nil {
			return nil, fmt.Errorf("state %q: %w", s.Name, err)
		}
	}
	logger.Debug("Compose: State creation complete.", "state_count", res.Builder.StateCount())

	// Second pass: attach clip triggers.
	for _, s := range model.States {
		for _, t := range s.Triggers {
			err := res.Builder.AddClipTrigger(ctx, s.Name, t.Event, t.RelativeToEnd, t.LocalTime)
			if err := res.collect(err); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("Compose: Trigger attachment complete.")

	// Third pass: connect transitions.
	for _, t := range model.Transitions {
		err := res.Builder.ConnectStates(ctx, t.From, t.To, t.Event)
		if err := res.collect(err); err != nil {
			return nil, err
		}
	}
	logger.Debug("Compose: Transition linking complete.")

	// Fourth pass: wildcard transitions.
	for _, w := range model.Wildcards {
		err := res.Builder.AddWildcard(ctx, w.State, w.Event)
		if err := res.collect(err); err != nil {
			return nil, err
		}
	}
	logger.Debug("Compose: Wildcard linking complete.")

	if startState != "" {
		if err := res.collect(res.Builder.SetStartState(ctx, startState)); err != nil {
			return nil, err
		}
	}

	res.Builder.Finalize(ctx)
	logger.Info("Compose: Behavior graph composition successful.",
		"behavior", res.Builder.Name(),
		"states", res.Builder.StateCount(),
		"events", res.Builder.EventCount(),
		"warnings", len(res.Warnings),
	)
	return res, nil
}

// collect absorbs warnings into the result and passes fatal errors through.
func (r *Result) collect(err error) error {
	if err == nil {
		return nil
	}
	var w *behavior.Warning
	if errors.As(err, &w) {
		r.Warnings = append(r.Warnings, w)
		return nil
	}
	return err
}
