package world

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrChunkMissing reports that a storage backend holds no persisted copy of
// a chunk. Streaming treats it as benign: the freshly generated chunk stays
// resident. Any other error is a real I/O failure and must surface to the
// caller rather than silently substituting empty chunk data.
var ErrChunkMissing = errors.New("chunk not persisted")

// ChunkStorage is the persistence seam behind streaming. The grid never
// blocks on it directly in-memory; a disk or async backend substitutes here
// without touching the streaming logic.
type ChunkStorage interface {
	Load(coord ChunkCoord) ([]byte, error)
	Save(coord ChunkCoord, data []byte) error
}

// MemoryStore keeps serialized chunks in a map. It backs tests and is the
// default "always resident" stub.
type MemoryStore struct {
	data map[ChunkCoord][]byte
}

// NewMemoryStore creates an empty in-memory chunk store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[ChunkCoord][]byte)}
}

// Load returns the stored bytes for a chunk or ErrChunkMissing.
func (m *MemoryStore) Load(coord ChunkCoord) ([]byte, error) {
	d, ok := m.data[coord]
	if !ok {
		return nil, ErrChunkMissing
	}
	return d, nil
}

// Save stores a copy of the chunk bytes.
func (m *MemoryStore) Save(coord ChunkCoord, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[coord] = cp
	return nil
}

// Len returns the number of persisted chunks.
func (m *MemoryStore) Len() int {
	return len(m.data)
}

// FileStore persists each chunk as its own file under a directory,
// named c.<chunkX>.<chunkY>.dat.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chunk dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(coord ChunkCoord) string {
	return filepath.Join(f.dir, fmt.Sprintf("c.%d.%d.dat", coord.X, coord.Y))
}

// Load reads a chunk file, mapping a missing file to ErrChunkMissing.
func (f *FileStore) Load(coord ChunkCoord) ([]byte, error) {
	d, err := os.ReadFile(f.path(coord))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrChunkMissing
		}
		return nil, fmt.Errorf("reading chunk %d,%d: %w", coord.X, coord.Y, err)
	}
	return d, nil
}

// Save writes a chunk file atomically via rename.
func (f *FileStore) Save(coord ChunkCoord, data []byte) error {
	tmp := f.path(coord) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing chunk %d,%d: %w", coord.X, coord.Y, err)
	}
	if err := os.Rename(tmp, f.path(coord)); err != nil {
		return fmt.Errorf("committing chunk %d,%d: %w", coord.X, coord.Y, err)
	}
	return nil
}
