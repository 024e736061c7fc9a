package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"tilefall/internal/tile"
)

// Lighting is the external light-propagation collaborator. The grid only
// notifies it about emitter changes; the collaborator reads the per-chunk
// lighting-dirty flags and overwrites the cached light layers on its own
// schedule.
type Lighting interface {
	AddLightSource(wx, wy int)
	RemoveLightSource(wx, wy int)
}

// Grid is the addressable world: a pre-allocated 2D array of chunks with
// tile/light accessors, physics queries, and streaming load/unload.
// All mutation goes through Grid methods; nothing else touches chunk
// internals.
type Grid struct {
	width, height    int // world size in tiles
	chunksX, chunksY int
	chunks           []*Chunk // flat, chunkY*chunksX+chunkX

	registry *tile.Registry
	lighting Lighting
	storage  ChunkStorage

	loaded map[ChunkCoord]struct{}
	dirty  map[ChunkCoord]struct{}

	lightingDirty bool

	columnBiomes []Biome
	biomeOverlay []Biome // lazily allocated, BiomeUnset = use column biome

	loadDistance   int
	unloadDistance int
}

// Streaming defaults. Unload must exceed load so a chunk sitting exactly on
// the load boundary is not thrashed by small focus movements.
const (
	DefaultLoadDistance   = 4
	DefaultUnloadDistance = 6
)

// NewGrid creates a world of width x height tiles with every chunk
// pre-allocated. Zero or negative dimensions are a programming error.
func NewGrid(width, height int, registry *tile.Registry) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}
	if registry == nil {
		panic("world: nil tile registry")
	}

	cx := (width + ChunkSize - 1) / ChunkSize
	cy := (height + ChunkSize - 1) / ChunkSize

	g := &Grid{
		width:          width,
		height:         height,
		chunksX:        cx,
		chunksY:        cy,
		chunks:         make([]*Chunk, cx*cy),
		registry:       registry,
		loaded:         make(map[ChunkCoord]struct{}),
		dirty:          make(map[ChunkCoord]struct{}),
		columnBiomes:   make([]Biome, width),
		loadDistance:   DefaultLoadDistance,
		unloadDistance: DefaultUnloadDistance,
	}
	for y := 0; y < cy; y++ {
		for x := 0; x < cx; x++ {
			g.chunks[y*cx+x] = NewChunk(x, y)
		}
	}
	return g
}

// Width returns the world width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the world height in tiles.
func (g *Grid) Height() int { return g.height }

// Registry returns the tile property table the grid was built with.
func (g *Grid) Registry() *tile.Registry { return g.registry }

// SetLighting installs the lighting collaborator. A nil collaborator is
// valid; emitter notifications are then dropped.
func (g *Grid) SetLighting(l Lighting) { g.lighting = l }

// SetStorage installs the chunk persistence backend used by streaming.
func (g *Grid) SetStorage(s ChunkStorage) { g.storage = s }

// SetStreamingDistances overrides the load/unload chunk radii.
func (g *Grid) SetStreamingDistances(load, unload int) {
	if unload <= load {
		panic(fmt.Sprintf("world: unload distance %d must exceed load distance %d", unload, load))
	}
	g.loadDistance = load
	g.unloadDistance = unload
}

func (g *Grid) inBounds(wx, wy int) bool {
	return wx >= 0 && wx < g.width && wy >= 0 && wy < g.height
}

// ChunkAt returns the chunk holding world tile (wx, wy), or nil out of bounds.
func (g *Grid) ChunkAt(wx, wy int) *Chunk {
	if !g.inBounds(wx, wy) {
		return nil
	}
	return g.chunks[(wy/ChunkSize)*g.chunksX+wx/ChunkSize]
}

func (g *Grid) chunkByCoord(coord ChunkCoord) *Chunk {
	if coord.X < 0 || coord.X >= g.chunksX || coord.Y < 0 || coord.Y >= g.chunksY {
		return nil
	}
	return g.chunks[coord.Y*g.chunksX+coord.X]
}

// GetTile returns the tile at a world coordinate, or Air out of bounds.
func (g *Grid) GetTile(wx, wy int) tile.Type {
	c := g.ChunkAt(wx, wy)
	if c == nil {
		return tile.Air
	}
	return c.GetTile(wx%ChunkSize, wy%ChunkSize)
}

// SetTile writes a tile at a world coordinate. Out-of-bounds writes are
// silent no-ops. A real change notifies the lighting collaborator about
// emitter transitions and invalidates cached lighting in the written chunk
// and its eight neighbors.
func (g *Grid) SetTile(wx, wy int, t tile.Type) {
	c := g.ChunkAt(wx, wy)
	if c == nil {
		return
	}
	lx, ly := wx%ChunkSize, wy%ChunkSize
	old := c.GetTile(lx, ly)
	if old == t {
		return
	}

	oldLight := g.registry.LightLevel(old)
	newLight := g.registry.LightLevel(t)
	if g.lighting != nil {
		if oldLight == 0 && newLight > 0 {
			g.lighting.AddLightSource(wx, wy)
		} else if oldLight > 0 && newLight == 0 {
			g.lighting.RemoveLightSource(wx, wy)
		}
	}

	c.SetTile(lx, ly, t)
	g.dirty[c.Coord()] = struct{}{}
	g.markLightingDirtyAround(c.Coord())
	g.lightingDirty = true
}

// GetWall returns the background wall at a world coordinate, or 0 out of bounds.
func (g *Grid) GetWall(wx, wy int) uint8 {
	c := g.ChunkAt(wx, wy)
	if c == nil {
		return 0
	}
	return c.GetWall(wx%ChunkSize, wy%ChunkSize)
}

// SetWall writes a background wall at a world coordinate.
func (g *Grid) SetWall(wx, wy int, w uint8) {
	c := g.ChunkAt(wx, wy)
	if c == nil {
		return
	}
	lx, ly := wx%ChunkSize, wy%ChunkSize
	if c.GetWall(lx, ly) == w {
		return
	}
	c.SetWall(lx, ly, w)
	g.dirty[c.Coord()] = struct{}{}
}

// GetLight returns the cached light at a world coordinate, or 0 out of bounds.
func (g *Grid) GetLight(wx, wy int) uint8 {
	c := g.ChunkAt(wx, wy)
	if c == nil {
		return 0
	}
	return c.GetLight(wx%ChunkSize, wy%ChunkSize)
}

// SetLight writes cached light at a world coordinate. Pass-through to the
// owning chunk; the lighting collaborator is the only intended caller.
func (g *Grid) SetLight(wx, wy int, v uint8) {
	c := g.ChunkAt(wx, wy)
	if c == nil {
		return
	}
	c.SetLight(wx%ChunkSize, wy%ChunkSize, v)
}

// IsSolid reports whether the tile at a world coordinate blocks movement.
func (g *Grid) IsSolid(wx, wy int) bool {
	return g.registry.IsSolid(g.GetTile(wx, wy))
}

// IsLiquid reports whether the tile at a world coordinate is a liquid.
func (g *Grid) IsLiquid(wx, wy int) bool {
	return g.registry.IsLiquid(g.GetTile(wx, wy))
}

// IsPlatform reports whether the tile at a world coordinate is a platform.
func (g *Grid) IsPlatform(wx, wy int) bool {
	return g.registry.IsPlatform(g.GetTile(wx, wy))
}

// LightingDirty reports whether any tile changed since the collaborator
// last recomputed light.
func (g *Grid) LightingDirty() bool { return g.lightingDirty }

// ClearLightingDirty resets the world-level flag. The lighting collaborator
// calls this once it has consumed the per-chunk flags.
func (g *Grid) ClearLightingDirty() { g.lightingDirty = false }

func (g *Grid) markLightingDirtyAround(coord ChunkCoord) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if c := g.chunkByCoord(ChunkCoord{X: coord.X + dx, Y: coord.Y + dy}); c != nil {
				c.MarkLightingDirty()
			}
		}
	}
}

// SetColumnBiomes installs the per-column surface biome array produced by
// generation. The slice length must match the world width.
func (g *Grid) SetColumnBiomes(biomes []Biome) {
	if len(biomes) != g.width {
		panic(fmt.Sprintf("world: biome array length %d != width %d", len(biomes), g.width))
	}
	g.columnBiomes = biomes
}

// SetBiomeOverlay assigns an underground biome to a single cell. The
// overlay buffer is allocated on first use.
func (g *Grid) SetBiomeOverlay(wx, wy int, b Biome) {
	if !g.inBounds(wx, wy) {
		return
	}
	if g.biomeOverlay == nil {
		g.biomeOverlay = make([]Biome, g.width*g.height)
	}
	g.biomeOverlay[wy*g.width+wx] = b
}

// GetBiomeAt returns the biome governing a world coordinate: the per-cell
// underground overlay when set, else the column's surface biome.
func (g *Grid) GetBiomeAt(wx, wy int) Biome {
	if !g.inBounds(wx, wy) {
		return BiomeUnset
	}
	if g.biomeOverlay != nil {
		if b := g.biomeOverlay[wy*g.width+wx]; b != BiomeUnset {
			return b
		}
	}
	return g.columnBiomes[wx]
}

// spawnFallbackY is the pixel depth returned when the spawn column has no
// solid tile at all.
const spawnFallbackY = 300.0

// FindSpawnPoint scans the center column top-down for the first solid tile
// and returns a world-pixel point three tiles above it.
func (g *Grid) FindSpawnPoint() mgl64.Vec2 {
	x := g.width / 2
	px := float64(x)*TileSize + TileSize/2
	for y := 0; y < g.height; y++ {
		if g.IsSolid(x, y) {
			return mgl64.Vec2{px, float64(y-3) * TileSize}
		}
	}
	return mgl64.Vec2{px, spawnFallbackY}
}

// Chunks calls fn for every chunk whose bounds intersect the given world
// tile rectangle. Renderers use this to iterate only visible chunks.
func (g *Grid) Chunks(x, y, w, h int, fn func(*Chunk)) {
	if w <= 0 || h <= 0 {
		return
	}
	cx0 := max(x/ChunkSize, 0)
	cy0 := max(y/ChunkSize, 0)
	cx1 := min((x+w-1)/ChunkSize, g.chunksX-1)
	cy1 := min((y+h-1)/ChunkSize, g.chunksY-1)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			fn(g.chunks[cy*g.chunksX+cx])
		}
	}
}
