package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.hcl", "b.yaml", "c.txt", filepath.Join("nested", "d.hcl"), filepath.Join("nested", "e.yml")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	hcl, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "nested", "d.hcl"),
	}, hcl)

	yaml, err := FindFilesByExtension(dir, ".yaml", ".yml")
	require.NoError(t, err)
	assert.Len(t, yaml, 2)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	require.Error(t, err)
}
