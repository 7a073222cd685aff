package behavior

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTable_GetOrCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tbl := newEventTable()

	assert.Equal(t, 0, tbl.getOrCreate(ctx, "DoorOpen"))
	assert.Equal(t, 1, tbl.getOrCreate(ctx, "DoorClose"))

	// Re-registering returns the first assignment.
	assert.Equal(t, 0, tbl.getOrCreate(ctx, "DoorOpen"))
	assert.Equal(t, 2, tbl.len())

	// The metadata table stays in lockstep with the name table.
	assert.Len(t, tbl.flags, tbl.len())
}

func TestEventTable_StrictLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tbl := newEventTable()
	tbl.getOrCreate(ctx, "DoorOpen")

	id, err := tbl.id("DoorOpen")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	_, err = tbl.id("Missing")
	require.ErrorIs(t, err, ErrUnknownEvent)
}
