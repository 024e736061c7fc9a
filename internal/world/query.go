package world

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"tilefall/internal/profiling"
	"tilefall/internal/tile"
)

// Rect is an axis-aligned rectangle in world pixel space.
type Rect struct {
	X, Y, W, H float64
}

// TileRect returns the tile-aligned pixel rectangle covering tile (tx, ty).
func TileRect(tx, ty int) Rect {
	return Rect{X: float64(tx) * TileSize, Y: float64(ty) * TileSize, W: TileSize, H: TileSize}
}

// RaycastResult describes the outcome of a Raycast.
type RaycastResult struct {
	Hit   bool
	Point mgl64.Vec2 // world pixel position of the hit sample
	TileX int
	TileY int
	Tile  tile.Type
}

// raycastStep is a quarter tile. Tiles are grid-aligned unit cells, so a
// sample every quarter tile cannot step over a solid tile.
const raycastStep = TileSize / 4

// Raycast steps from origin along the normalized direction in quarter-tile
// increments, testing solidity at each sample. It returns the first hit, or
// a miss once maxDist pixels have been covered.
func (g *Grid) Raycast(origin, direction mgl64.Vec2, maxDist float64) RaycastResult {
	defer profiling.Track("world.Raycast")()

	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()

	for dist := 0.0; dist <= maxDist; dist += raycastStep {
		p := origin.Add(dir.Mul(dist))
		tx := int(math.Floor(p.X() / TileSize))
		ty := int(math.Floor(p.Y() / TileSize))
		if g.IsSolid(tx, ty) {
			return RaycastResult{
				Hit:   true,
				Point: p,
				TileX: tx,
				TileY: ty,
				Tile:  g.GetTile(tx, ty),
			}
		}
	}
	return RaycastResult{}
}

// tileRange converts a pixel rect into the inclusive tile range it covers.
func tileRange(r Rect) (tx0, ty0, tx1, ty1 int) {
	tx0 = int(math.Floor(r.X / TileSize))
	ty0 = int(math.Floor(r.Y / TileSize))
	tx1 = int(math.Floor((r.X + r.W) / TileSize))
	ty1 = int(math.Floor((r.Y + r.H) / TileSize))
	return
}

// CheckCollision reports whether the rect overlaps any solid tile.
func (g *Grid) CheckCollision(r Rect) bool {
	tx0, ty0, tx1, ty1 := tileRange(r)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if g.IsSolid(tx, ty) {
				return true
			}
		}
	}
	return false
}

// CollidingTiles lazily yields a tile-aligned rect for every solid tile the
// given rect overlaps. The sequence is finite and restartable; solidity is
// re-tested on each pass, never cached.
func (g *Grid) CollidingTiles(r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		tx0, ty0, tx1, ty1 := tileRange(r)
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				if !g.IsSolid(tx, ty) {
					continue
				}
				if !yield(TileRect(tx, ty)) {
					return
				}
			}
		}
	}
}
