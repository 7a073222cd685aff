package behavior

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDoorGraph assembles a small but complete two-state graph exercising
// transitions, wildcards, triggers and notify events.
func buildDoorGraph(t *testing.T) *Builder {
	t.Helper()
	ctx := context.Background()
	b := New("Door")
	require.NoError(t, b.AddState(ctx, StateSpec{Name: "Idle", AnimationPath: `animations\Idle.hkx`, Looping: true}))
	require.NoError(t, b.AddState(ctx, StateSpec{Name: "Open", AnimationPath: `animations\Open.hkx`}))
	require.NoError(t, b.ConnectStates(ctx, "Idle", "Open", "DoorOpen"))
	require.NoError(t, b.ConnectStates(ctx, "Open", "Idle", "DoorClose"))
	require.NoError(t, b.AddClipTrigger(ctx, "Open", "SoundPlay", false, 0.3))
	require.NoError(t, b.AddWildcard(ctx, "Idle", "DoorReset"))
	return b
}

func serialize(t *testing.T, b *Builder) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, b.Serialize(context.Background(), &buf))
	return buf.String()
}

func TestSerialize_Envelope(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	assert.True(t, strings.HasPrefix(doc, "<?xml version='1.0' encoding='ascii'?>\n"))
	assert.Contains(t, doc, `<hkpackfile classversion="8" contentsversion="hk_2010.2.0-r1" toplevelobject="#0051">`)
	assert.Contains(t, doc, `<hksection name="__data__">`)
}

func TestSerialize_ObjectOrder(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	// Creation order: graph-wide objects, the two state triples, the trigger
	// table, the wildcard table, then the finalize pair. The root container
	// is emitted last despite owning the reserved first tag.
	expected := []string{
		`name="#0052" class="hkbBehaviorGraphStringData"`,
		`name="#0053" class="hkbVariableValueSet"`,
		`name="#0054" class="hkbBehaviorGraphData"`,
		`name="#0055" class="hkbBlendingTransitionEffect"`,
		`name="#0056" class="hkbStateMachineTransitionInfoArray"`,
		`name="#0057" class="hkbClipGenerator"`,
		`name="#0058" class="hkbStateMachineStateInfo"`,
		`name="#0059" class="hkbStateMachineTransitionInfoArray"`,
		`name="#0060" class="hkbClipGenerator"`,
		`name="#0061" class="hkbStateMachineStateInfo"`,
		`name="#0062" class="hkbClipTriggerArray"`,
		`name="#0063" class="hkbStateMachineTransitionInfoArray"`,
		`name="#0064" class="hkbStateMachine"`,
		`name="#0065" class="hkbBehaviorGraph"`,
		`name="#0051" class="hkRootLevelContainer"`,
	}
	pos := -1
	for _, want := range expected {
		idx := strings.Index(doc, want)
		require.NotEqual(t, -1, idx, "missing %q", want)
		require.Greater(t, idx, pos, "%q out of order", want)
		pos = idx
	}
}

func TestSerialize_StateMachineFields(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	// Member tags render as a single text run at the array's nesting depth.
	assert.Contains(t, doc, "<hkparam name=\"states\" numelements=\"2\">\n\t\t\t\t#0058 #0061\n\t\t\t</hkparam>")
	assert.Contains(t, doc, `<hkparam name="wildcardTransitions">#0063</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="startStateId">0</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="maxSimultaneousTransitions">32</hkparam>`)
}

func TestSerialize_GraphFields(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	assert.Contains(t, doc, `<hkparam name="name">Door.hkb</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="rootGenerator">#0064</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="data">#0054</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="variableMode">VARIABLE_MODE_DISCARD_WHEN_INACTIVE</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="variant">#0065</hkparam>`)
	assert.Contains(t, doc, "<!-- memSizeAndFlags SERIALIZE_IGNORED -->")
}

func TestSerialize_EventTables(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	// Registration order: DoorOpen, DoorClose, SoundPlay, DoorReset.
	assert.Contains(t, doc, "<hkcstring>DoorOpen</hkcstring>")
	assert.Contains(t, doc, "<hkcstring>DoorReset</hkcstring>")
	assert.Contains(t, doc, `<hkparam name="eventNames" numelements="4">`)
	assert.Contains(t, doc, `<hkparam name="eventInfos" numelements="4">`)
}

func TestSerialize_Transitions(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	assert.Contains(t, doc, `<hkparam name="toStateId">1</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="transition">#0055</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="flags">FLAG_DISABLE_CONDITION</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="flags">FLAG_IS_LOCAL_WILDCARD|FLAG_DISABLE_CONDITION</hkparam>`)

	// One record per local table (Idle and Open) plus one in the wildcard
	// table; array counts match what was added.
	assert.Equal(t, 3, strings.Count(doc, `<hkparam name="transitions" numelements="1">`))
}

func TestSerialize_Triggers(t *testing.T) {
	t.Parallel()
	doc := serialize(t, buildDoorGraph(t))

	assert.Contains(t, doc, `<hkparam name="localTime">0.300000</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="relativeToEndOfClip">false</hkparam>`)
	// The generator with triggers points at its table; the one without
	// renders the null sentinel.
	assert.Contains(t, doc, `<hkparam name="triggers">#0062</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="triggers">null</hkparam>`)
}

func TestSerialize_LegacySequenceGenerator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := New("Door")
	require.NoError(t, b.AddState(ctx, StateSpec{Name: "DoorAnim", LegacySequence: true}))
	doc := serialize(t, b)

	assert.Contains(t, doc, `class="BGSGamebryoSequenceGenerator"`)
	assert.Contains(t, doc, `<hkparam name="name">DoorAnimSequence</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="pSequence">DoorAnim</hkparam>`)
	assert.Contains(t, doc, `<hkparam name="eBlendModeFunction">BMF_NONE</hkparam>`)
}

func TestSerialize_Deterministic(t *testing.T) {
	t.Parallel()
	b := buildDoorGraph(t)

	first := serialize(t, b)
	second := serialize(t, b)
	assert.Equal(t, first, second, "repeated serialization of a finalized graph must be byte-identical")
	assert.Len(t, b.objects, 14, "re-serializing must not allocate new objects")
}

func TestExport_WritesAtomically(t *testing.T) {
	t.Parallel()
	b := buildDoorGraph(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "Door.xml")

	require.NoError(t, b.Export(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml version='1.0' encoding='ascii'?>\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files may remain after export")
}
