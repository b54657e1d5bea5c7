package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestDiscoverImageFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.png"))

	files, err := discoverImageFiles([]string{dir}, false, nil, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2, "non-recursive walk must skip subdirectories and non-images")

	files, err = discoverImageFiles([]string{dir}, true, nil, nil)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestDiscoverImageFiles_Patterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "keep.png"))
	touch(t, filepath.Join(dir, "skip.png"))

	files, err := discoverImageFiles([]string{dir}, false, []string{"keep.*"}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "keep.png")

	files, err = discoverImageFiles([]string{dir}, false, nil, []string{"skip.*"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "keep.png")
}

func TestDiscoverImageFiles_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.png")
	touch(t, path)

	files, err := discoverImageFiles([]string{path}, false, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverImageFiles_MissingInput(t *testing.T) {
	_, err := discoverImageFiles([]string{filepath.Join(t.TempDir(), "nope")}, false, nil, nil)
	require.Error(t, err)
}

func TestDiscoverImageFiles_SortedOutput(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.png"))
	touch(t, filepath.Join(dir, "a.png"))

	files, err := discoverImageFiles([]string{dir}, false, nil, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Less(t, files[0], files[1])
}
