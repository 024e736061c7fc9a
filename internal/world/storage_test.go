package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilefall/internal/tile"
)

// TestMemoryStoreRoundTrip verifies save/load and the missing-chunk sentinel
func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	coord := ChunkCoord{X: 3, Y: 4}

	_, err := s.Load(coord)
	require.ErrorIs(t, err, ErrChunkMissing)

	require.NoError(t, s.Save(coord, []byte{1, 2, 3}))
	got, err := s.Load(coord)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
	assert.Equal(t, 1, s.Len())
}

// TestMemoryStoreCopiesData verifies the store is immune to caller mutation
func TestMemoryStoreCopiesData(t *testing.T) {
	s := NewMemoryStore()
	coord := ChunkCoord{X: 0, Y: 0}

	data := []byte{9, 9, 9}
	require.NoError(t, s.Save(coord, data))
	data[0] = 0

	got, err := s.Load(coord)
	require.NoError(t, err)
	assert.Equal(t, byte(9), got[0], "stored bytes must not alias the caller's slice")
}

// TestFileStoreRoundTrip verifies chunk files round-trip through disk
func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	coord := ChunkCoord{X: 7, Y: 2}

	_, err = s.Load(coord)
	require.ErrorIs(t, err, ErrChunkMissing)

	c := NewChunk(7, 2)
	c.Fill(tile.Stone)
	data := c.Serialize()

	require.NoError(t, s.Save(coord, data))
	got, err := s.Load(coord)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Chunks land in predictable per-chunk files with no leftover temp files.
	_, err = os.Stat(filepath.Join(dir, "c.7.2.dat"))
	assert.NoError(t, err)
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// TestFileStoreOverwrite verifies a re-save replaces the previous copy
func TestFileStoreOverwrite(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	coord := ChunkCoord{X: 0, Y: 0}
	require.NoError(t, s.Save(coord, []byte{1}))
	require.NoError(t, s.Save(coord, []byte{2}))

	got, err := s.Load(coord)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, got)
}

// TestFileStoreCreatesDirectory verifies nested directories are created on demand
func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "world")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
