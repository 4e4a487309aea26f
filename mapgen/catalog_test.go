package mapgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.gpx"), []byte(validGPX), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.gpx"), []byte("corrupt"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a recording"), 0o644))

	catalog := BuildCatalog(dir)

	require.Len(t, catalog, 1)
	require.Contains(t, catalog, "a.gpx")
	assert.Len(t, catalog["a.gpx"].Coords, 2)
	assert.InDelta(t, 1.11, catalog["a.gpx"].DistanceKm, 0.02)
}

func TestBuildCatalogMissingDir(t *testing.T) {
	catalog := BuildCatalog(filepath.Join(t.TempDir(), "nope"))

	assert.Empty(t, catalog)
}

func TestFindTrackFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.gpx"), []byte(validGPX), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.gpx"), []byte(validGPX), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.gpx"), 0o755))

	paths, err := FindTrackFiles(dir)

	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.gpx", filepath.Base(paths[0]))
	assert.Equal(t, "b.gpx", filepath.Base(paths[1]))
}

func TestFindTrackFilesMissingDir(t *testing.T) {
	_, err := FindTrackFiles(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}
