package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/behaviorgo/internal/config"
	"github.com/vk/behaviorgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateState converts the HCL-specific state schema into the agnostic
// model, evaluating the notification-event list expressions.
func (l *Loader) translateState(s *schema.State) (*config.State, error) {
	onEnter, err := stringList(s.OnEnter)
	if err != nil {
		return nil, fmt.Errorf("on_enter: %w", err)
	}
	onExit, err := stringList(s.OnExit)
	if err != nil {
		return nil, fmt.Errorf("on_exit: %w", err)
	}

	st := &config.State{
		Name:      s.Name,
		Animation: s.Animation,
		Legacy:    s.LegacySequence,
		Looping:   s.Looping,
		OnEnter:   onEnter,
		OnExit:    onExit,
	}
	for _, t := range s.Triggers {
		st.Triggers = append(st.Triggers, &config.Trigger{
			Event:         t.Event,
			LocalTime:     t.LocalTime,
			RelativeToEnd: t.RelativeToEnd,
		})
	}
	return st, nil
}

// stringList evaluates a constant expression into a list of strings. A nil
// or null expression yields a nil slice.
func stringList(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("expected a list of event names: %w", err)
	}
	if converted.LengthInt() == 0 {
		return nil, nil
	}
	var out []string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("expected a list of event names: %w", err)
	}
	return out, nil
}
