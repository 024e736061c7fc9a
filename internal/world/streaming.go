package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"tilefall/internal/profiling"
)

// UpdateStreaming loads every chunk within loadDistance (Chebyshev, in
// chunks) of the focus point and unloads every loaded chunk farther than
// unloadDistance, persisting modified chunks on the way out. The gap
// between the two radii is deliberate hysteresis.
//
// Storage I/O errors surface to the caller; a missing persisted copy is
// not an error because freshly generated chunks are already resident.
func (g *Grid) UpdateStreaming(focus mgl64.Vec2) error {
	defer profiling.Track("world.UpdateStreaming")()

	fx := clampInt(int(focus.X()/TileSize)/ChunkSize, 0, g.chunksX-1)
	fy := clampInt(int(focus.Y()/TileSize)/ChunkSize, 0, g.chunksY-1)

	// Load pass.
	for dy := -g.loadDistance; dy <= g.loadDistance; dy++ {
		for dx := -g.loadDistance; dx <= g.loadDistance; dx++ {
			coord := ChunkCoord{X: fx + dx, Y: fy + dy}
			if g.chunkByCoord(coord) == nil {
				continue
			}
			if _, ok := g.loaded[coord]; ok {
				continue
			}
			if err := g.loadChunk(coord); err != nil {
				return err
			}
			g.loaded[coord] = struct{}{}
		}
	}

	// Unload pass.
	for coord := range g.loaded {
		if chebyshev(coord.X-fx, coord.Y-fy) <= g.unloadDistance {
			continue
		}
		if err := g.unloadChunk(coord); err != nil {
			return err
		}
		delete(g.loaded, coord)
	}

	return nil
}

// IsLoaded reports whether a chunk coordinate is in the loaded set.
func (g *Grid) IsLoaded(coord ChunkCoord) bool {
	_, ok := g.loaded[coord]
	return ok
}

// LoadedCount returns the size of the loaded-chunk set.
func (g *Grid) LoadedCount() int {
	return len(g.loaded)
}

// loadChunk applies the persisted copy of a chunk if one exists. Chunks are
// always resident in memory; this seam is where a disk-backed backend
// restores state saved by a previous unload.
func (g *Grid) loadChunk(coord ChunkCoord) error {
	if g.storage == nil {
		return nil
	}
	data, err := g.storage.Load(coord)
	if errors.Is(err, ErrChunkMissing) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading chunk %d,%d: %w", coord.X, coord.Y, err)
	}
	c := g.chunkByCoord(coord)
	if err := c.Deserialize(data); err != nil {
		// Mismatched or corrupt data must never silently load.
		return fmt.Errorf("loading chunk %d,%d: %w", coord.X, coord.Y, err)
	}
	return nil
}

// unloadChunk persists a chunk if it was modified since the last persist.
func (g *Grid) unloadChunk(coord ChunkCoord) error {
	c := g.chunkByCoord(coord)
	if c == nil || !c.Modified() {
		return nil
	}
	if g.storage != nil {
		if err := g.storage.Save(coord, c.Serialize()); err != nil {
			return fmt.Errorf("unloading chunk %d,%d: %w", coord.X, coord.Y, err)
		}
	}
	c.MarkClean()
	delete(g.dirty, coord)
	return nil
}

// PersistDirty saves every chunk modified since the last persist without
// touching the loaded set. The CLI calls this before exit.
func (g *Grid) PersistDirty() (int, error) {
	if g.storage == nil {
		return 0, nil
	}
	saved := 0
	for y := 0; y < g.chunksY; y++ {
		for x := 0; x < g.chunksX; x++ {
			c := g.chunks[y*g.chunksX+x]
			if !c.Modified() {
				continue
			}
			if err := g.storage.Save(c.Coord(), c.Serialize()); err != nil {
				return saved, err
			}
			c.MarkClean()
			delete(g.dirty, c.Coord())
			saved++
		}
	}
	return saved, nil
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
