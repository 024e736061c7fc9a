package world

import "tilefall/internal/tile"

const (
	// ChunkSize is the edge length of a chunk in tiles.
	ChunkSize = 32

	// ChunkArea is the number of cells in one chunk layer.
	ChunkArea = ChunkSize * ChunkSize

	// TileSize is the edge length of a tile in world pixels.
	TileSize = 16.0
)

// ChunkCoord addresses a chunk within the world grid.
type ChunkCoord struct {
	X, Y int
}

// Chunk is a fixed 32x32 cell block of the world: a foreground tile layer,
// a background wall layer, and a cached light layer. Layers are flat
// y*ChunkSize+x buffers rather than nested slices.
type Chunk struct {
	coord ChunkCoord

	tiles [ChunkArea]tile.Type
	walls [ChunkArea]uint8
	light [ChunkArea]uint8

	modified      bool
	lightingDirty bool
}

// NewChunk creates a chunk at the given chunk coordinates. Light starts
// fully lit until the lighting collaborator computes real values, and the
// lighting-dirty flag starts set for the same reason.
func NewChunk(cx, cy int) *Chunk {
	c := &Chunk{
		coord:         ChunkCoord{X: cx, Y: cy},
		lightingDirty: true,
	}
	for i := range c.light {
		c.light[i] = 255
	}
	return c
}

// Coord returns the chunk's immutable coordinates.
func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

func cellIndex(lx, ly int) int {
	return ly*ChunkSize + lx
}

func inChunk(lx, ly int) bool {
	return lx >= 0 && lx < ChunkSize && ly >= 0 && ly < ChunkSize
}

// GetTile returns the tile at local coordinates, or Air out of range.
func (c *Chunk) GetTile(lx, ly int) tile.Type {
	if !inChunk(lx, ly) {
		return tile.Air
	}
	return c.tiles[cellIndex(lx, ly)]
}

// SetTile writes a tile at local coordinates. Out-of-range writes and
// writes of the already-present value are no-ops; the latter matters so
// redundant writes don't invalidate cached lighting.
func (c *Chunk) SetTile(lx, ly int, t tile.Type) {
	if !inChunk(lx, ly) {
		return
	}
	i := cellIndex(lx, ly)
	if c.tiles[i] == t {
		return
	}
	c.tiles[i] = t
	c.modified = true
	c.lightingDirty = true
}

// GetWall returns the background wall at local coordinates, or 0 out of range.
func (c *Chunk) GetWall(lx, ly int) uint8 {
	if !inChunk(lx, ly) {
		return 0
	}
	return c.walls[cellIndex(lx, ly)]
}

// SetWall writes a background wall at local coordinates. Same no-op rules
// as SetTile, but walls do not invalidate cached lighting.
func (c *Chunk) SetWall(lx, ly int, w uint8) {
	if !inChunk(lx, ly) {
		return
	}
	i := cellIndex(lx, ly)
	if c.walls[i] == w {
		return
	}
	c.walls[i] = w
	c.modified = true
}

// GetLight returns the cached light value at local coordinates, or 0 out of range.
func (c *Chunk) GetLight(lx, ly int) uint8 {
	if !inChunk(lx, ly) {
		return 0
	}
	return c.light[cellIndex(lx, ly)]
}

// SetLight writes a cached light value. The lighting collaborator owns this
// layer; writes do not mark the chunk modified.
func (c *Chunk) SetLight(lx, ly int, v uint8) {
	if !inChunk(lx, ly) {
		return
	}
	c.light[cellIndex(lx, ly)] = v
}

// Fill bulk-sets every tile cell and always marks the chunk dirty.
func (c *Chunk) Fill(t tile.Type) {
	for i := range c.tiles {
		c.tiles[i] = t
	}
	c.modified = true
	c.lightingDirty = true
}

// ContainsTile reports whether the world tile coordinate falls inside this chunk.
func (c *Chunk) ContainsTile(wx, wy int) bool {
	return wx/ChunkSize == c.coord.X && wy/ChunkSize == c.coord.Y &&
		wx >= 0 && wy >= 0
}

// WorldToLocal converts a world tile coordinate to this chunk's local space.
func (c *Chunk) WorldToLocal(wx, wy int) (int, int) {
	return wx - c.coord.X*ChunkSize, wy - c.coord.Y*ChunkSize
}

// Bounds returns the chunk's extent in world tile space as (x, y, w, h).
// Renderers use this to cull chunks against a visible rectangle.
func (c *Chunk) Bounds() (x, y, w, h int) {
	return c.coord.X * ChunkSize, c.coord.Y * ChunkSize, ChunkSize, ChunkSize
}

// Modified reports whether any tile or wall changed since the last persist.
func (c *Chunk) Modified() bool {
	return c.modified
}

// MarkClean clears the modified flag. Called after a successful persist.
func (c *Chunk) MarkClean() {
	c.modified = false
}

// LightingDirty reports whether the cached light layer is stale.
func (c *Chunk) LightingDirty() bool {
	return c.lightingDirty
}

// MarkLightingDirty flags the cached light layer as stale.
func (c *Chunk) MarkLightingDirty() {
	c.lightingDirty = true
}

// MarkLit clears the lighting-dirty flag. Only the lighting collaborator
// calls this, after overwriting the light layer.
func (c *Chunk) MarkLit() {
	c.lightingDirty = false
}
