package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"tilefall/internal/tile"
)

// flatGroundGrid builds a 64x64 world with solid stone from row 40 down.
func flatGroundGrid(t *testing.T) *Grid {
	t.Helper()
	g := testGrid(t, 64, 64)
	for y := 40; y < 64; y++ {
		for x := 0; x < 64; x++ {
			g.SetTile(x, y, tile.Stone)
		}
	}
	return g
}

// TestRaycastHitsGround verifies a downward ray reports the surface tile
func TestRaycastHitsGround(t *testing.T) {
	g := flatGroundGrid(t)

	origin := mgl64.Vec2{32 * TileSize, 30 * TileSize}
	res := g.Raycast(origin, mgl64.Vec2{0, 1}, 1000)

	if !res.Hit {
		t.Fatal("downward ray over solid ground should hit")
	}
	if res.TileY != 40 {
		t.Errorf("hit tile y = %d, expected 40", res.TileY)
	}
	if res.TileX != 32 {
		t.Errorf("hit tile x = %d, expected 32", res.TileX)
	}
	if res.Tile != tile.Stone {
		t.Errorf("hit tile = %v, expected Stone", res.Tile)
	}

	// The hit sample can overshoot the surface by at most one step.
	surfaceY := 40 * TileSize
	if res.Point.Y() < float64(surfaceY) || res.Point.Y() > float64(surfaceY)+raycastStep {
		t.Errorf("hit point y = %f, expected within a step of %v", res.Point.Y(), surfaceY)
	}
}

// TestRaycastMisses verifies rays through open air and zero directions miss
func TestRaycastMisses(t *testing.T) {
	g := flatGroundGrid(t)

	// Horizontal ray above the ground.
	res := g.Raycast(mgl64.Vec2{0, 10 * TileSize}, mgl64.Vec2{1, 0}, 500)
	if res.Hit {
		t.Errorf("horizontal ray through air hit tile (%d,%d)", res.TileX, res.TileY)
	}

	// Range too short to reach the ground.
	res = g.Raycast(mgl64.Vec2{32 * TileSize, 30 * TileSize}, mgl64.Vec2{0, 1}, 3*TileSize)
	if res.Hit {
		t.Error("ray shorter than the gap should miss")
	}

	// Zero direction.
	res = g.Raycast(mgl64.Vec2{32 * TileSize, 50 * TileSize}, mgl64.Vec2{0, 0}, 100)
	if res.Hit {
		t.Error("zero-direction ray must miss")
	}
}

// TestRaycastNormalizesDirection verifies an unnormalized direction covers maxDist
func TestRaycastNormalizesDirection(t *testing.T) {
	g := flatGroundGrid(t)

	origin := mgl64.Vec2{32 * TileSize, 30 * TileSize}
	big := g.Raycast(origin, mgl64.Vec2{0, 1000}, 1000)
	unit := g.Raycast(origin, mgl64.Vec2{0, 1}, 1000)

	if !big.Hit || !unit.Hit {
		t.Fatal("both rays should hit the ground")
	}
	if big.TileY != unit.TileY || math.Abs(big.Point.Y()-unit.Point.Y()) > 1e-9 {
		t.Errorf("scaled direction changed the hit: (%d, %f) vs (%d, %f)",
			big.TileY, big.Point.Y(), unit.TileY, unit.Point.Y())
	}
}

// TestRaycastDiagonal verifies diagonal rays cannot step through solid tiles
func TestRaycastDiagonal(t *testing.T) {
	g := testGrid(t, 64, 64)
	// A single solid tile in the path of a 45-degree ray.
	g.SetTile(20, 20, tile.Stone)

	origin := mgl64.Vec2{16*TileSize + 8, 16*TileSize + 8}
	res := g.Raycast(origin, mgl64.Vec2{1, 1}, 400)

	if !res.Hit {
		t.Fatal("diagonal ray should hit the tile on its path")
	}
	if res.TileX != 20 || res.TileY != 20 {
		t.Errorf("hit tile = (%d,%d), expected (20,20)", res.TileX, res.TileY)
	}
}

// TestCheckCollision verifies rect-vs-ground overlap detection
func TestCheckCollision(t *testing.T) {
	g := flatGroundGrid(t)

	// Fully airborne rect.
	if g.CheckCollision(Rect{X: 100, Y: 100, W: 20, H: 30}) {
		t.Error("rect in open air should not collide")
	}

	// Rect straddling the surface.
	if !g.CheckCollision(Rect{X: 100, Y: 39*TileSize + 8, W: 20, H: 30}) {
		t.Error("rect overlapping the ground should collide")
	}

	// Rect exactly touching the surface boundary shares the edge tile row.
	if !g.CheckCollision(Rect{X: 100, Y: 38 * TileSize, W: 20, H: 2 * TileSize}) {
		t.Error("rect whose bottom edge lands on the surface row should collide")
	}
}

// TestCollidingTiles verifies the lazy sequence yields each overlapped solid tile
func TestCollidingTiles(t *testing.T) {
	g := flatGroundGrid(t)

	// A 2-tile-wide rect dipping one row into the ground.
	r := Rect{X: 10*TileSize + 4, Y: 39*TileSize + 4, W: TileSize, H: TileSize}

	var tiles []Rect
	for tr := range g.CollidingTiles(r) {
		tiles = append(tiles, tr)
	}

	// Overlaps columns 10-11 and rows 39-40; only row 40 is solid.
	if len(tiles) != 2 {
		t.Fatalf("got %d colliding tiles, expected 2: %v", len(tiles), tiles)
	}
	for _, tr := range tiles {
		if tr.Y != 40*TileSize {
			t.Errorf("colliding tile at y=%f, expected %f", tr.Y, 40.0*TileSize)
		}
		if tr.W != TileSize || tr.H != TileSize {
			t.Errorf("colliding tile rect %v is not tile-aligned", tr)
		}
	}

	// Early break must not panic or over-yield.
	count := 0
	for range g.CollidingTiles(r) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break consumed %d rects, expected 1", count)
	}

	// The sequence restarts cleanly.
	count = 0
	for range g.CollidingTiles(r) {
		count++
	}
	if count != 2 {
		t.Errorf("restarted sequence yielded %d rects, expected 2", count)
	}
}

func BenchmarkRaycast(b *testing.B) {
	g := NewGrid(256, 256, tile.Default())
	for y := 200; y < 256; y++ {
		for x := 0; x < 256; x++ {
			g.SetTile(x, y, tile.Stone)
		}
	}
	origin := mgl64.Vec2{128 * TileSize, 50 * TileSize}
	dir := mgl64.Vec2{0.3, 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Raycast(origin, dir, 4000)
	}
}
