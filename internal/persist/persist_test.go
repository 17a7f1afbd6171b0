package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	stems := map[string]string{"کتابها": "کتاب", "رفتم": "رفت"}

	require.NoError(t, SaveSnapshot(path, stems))
	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, stems, got)
}

func TestSaveSnapshotCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "cache.json")

	require.NoError(t, SaveSnapshot(path, nil))
	assert.True(t, Exists(path))

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	got, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSnapshotErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("wrong version", func(t *testing.T) {
		path := filepath.Join(dir, "v9.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":9,"stems":{}}`), 0644))
		_, err := LoadSnapshot(path)
		assert.ErrorIs(t, err, ErrVersion)
	})

	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"stems":`), 0644))
		_, err := LoadSnapshot(path)
		assert.Error(t, err)
	})
}

func TestSaveAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	require.NoError(t, SaveSnapshot(path, map[string]string{"کتب": "کتاب"}))
	require.NoError(t, SaveSnapshot(path, map[string]string{"کتب": "کتاب", "دیندار": "دین"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cache.json", entries[0].Name())

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	require.NoError(t, Remove(path))
	assert.False(t, Exists(path))
	assert.NoError(t, Remove(path), "removing a missing file")
}
