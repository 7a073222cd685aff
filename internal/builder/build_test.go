package builder

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/behaviorgo/internal/behavior"
	"github.com/vk/behaviorgo/internal/config"
)

func doorModel() *config.Model {
	return &config.Model{
		Behavior: &config.Behavior{Name: "Door", StartState: "Open"},
		States: []*config.State{
			{Name: "Idle", Animation: `animations\Idle.hkx`, Looping: true},
			{
				Name:      "Open",
				Animation: `animations\Open.hkx`,
				Triggers: []*config.Trigger{
					{Event: "SoundPlay", LocalTime: 0.3},
				},
			},
		},
		Transitions: []*config.Transition{
			{From: "Idle", To: "Open", Event: "DoorOpen"},
		},
		Wildcards: []*config.Wildcard{
			{State: "Idle", Event: "DoorReset"},
		},
	}
}

func TestCompose_FullModel(t *testing.T) {
	t.Parallel()

	res, err := Compose(context.Background(), doorModel())
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "Door", res.Builder.Name())
	assert.Equal(t, 2, res.Builder.StateCount())
	// DoorOpen, DoorReset and SoundPlay.
	assert.Equal(t, 3, res.Builder.EventCount())

	var buf bytes.Buffer
	require.NoError(t, res.Builder.Serialize(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<hkparam name="startStateId">1</hkparam>`)
	assert.Contains(t, buf.String(), `<hkparam name="name">Door.hkb</hkparam>`)
}

func TestCompose_WithoutBehaviorBlock(t *testing.T) {
	t.Parallel()
	model := doorModel()
	model.Behavior = nil

	res, err := Compose(context.Background(), model)
	require.NoError(t, err)
	assert.Equal(t, behavior.DefaultName, res.Builder.Name())
}

func TestCompose_CollectsWarnings(t *testing.T) {
	t.Parallel()
	model := doorModel()
	model.States = append(model.States, &config.State{Name: "Idle", Animation: `animations\Other.hkx`})
	model.Transitions = append(model.Transitions, &config.Transition{From: "Idle", To: "Missing", Event: "DoorOpen"})
	model.Behavior.StartState = "Missing"

	res, err := Compose(context.Background(), model)
	require.NoError(t, err, "recoverable problems must not abort composition")
	assert.Len(t, res.Warnings, 3)
	assert.Equal(t, 2, res.Builder.StateCount())
}

func TestCompose_LegacyTriggerIsFatal(t *testing.T) {
	t.Parallel()
	model := &config.Model{
		States: []*config.State{
			{
				Name:     "DoorAnim",
				Legacy:   true,
				Triggers: []*config.Trigger{{Event: "SoundPlay"}},
			},
		},
	}

	_, err := Compose(context.Background(), model)
	require.ErrorIs(t, err, behavior.ErrLegacyTriggers)
}

func TestCompose_SelfTransitionIsFatal(t *testing.T) {
	t.Parallel()
	model := doorModel()
	model.Transitions = append(model.Transitions, &config.Transition{From: "Idle", To: "Idle", Event: "Loop"})

	_, err := Compose(context.Background(), model)
	require.ErrorIs(t, err, behavior.ErrSelfTransition)
}

func TestCompose_FinalizesBuilder(t *testing.T) {
	t.Parallel()

	res, err := Compose(context.Background(), doorModel())
	require.NoError(t, err)
	err = res.Builder.AddWildcard(context.Background(), "Idle", "Late")
	require.ErrorIs(t, err, behavior.ErrFinalized)
}
