package worldgen

import (
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
	"tilefall/internal/world"
)

// structuresPass places trees on eligible surface columns and buried
// cabins underground.
func (g *Generator) structuresPass() {
	defer profiling.Track("worldgen.structures")()

	g.placeTrees()
	g.placeCabins()
}

// treeChance returns the per-column spawn probability for a biome.
func treeChance(b world.Biome) float64 {
	switch b {
	case world.BiomeJungle:
		return 0.10
	case world.BiomeForest:
		return 0.07
	default:
		return 0.03
	}
}

func (g *Generator) placeTrees() {
	width := g.grid.Width()

	for x := 1; x < width-1; x++ {
		biome := g.biomes[x]
		if biome == world.BiomeDesert {
			continue
		}

		// Only grass-type surfaces grow trees; carving or pooling may have
		// replaced the surface tile since phase 2.
		surfaceTile := g.grid.GetTile(x, g.surface[x])
		if surfaceTile != tile.Grass && surfaceTile != tile.JungleGrass {
			continue
		}

		if g.rng.Float64() >= treeChance(biome) {
			continue
		}

		trunk := 5 + g.rng.Intn(5)
		radius := 2
		if biome == world.BiomeJungle {
			trunk = 7 + g.rng.Intn(7)
			radius = 3
		}

		g.buildTree(x, g.surface[x]-1, trunk, radius)

		// Skip past the canopy so neighboring trees don't overlap.
		x += radius
	}
}

// buildTree grows a trunk upward from the surface and crowns it with a
// rounded canopy: the bounding box with its corner cells dropped, placed
// over air only.
func (g *Generator) buildTree(x, base, trunk, radius int) {
	for i := 0; i < trunk; i++ {
		y := base - i
		if g.grid.GetTile(x, y) != tile.Air {
			break
		}
		g.grid.SetTile(x, y, tile.Wood)
	}

	top := base - trunk
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if abs(dx) == radius && abs(dy) == radius {
				continue // rounded corners
			}
			cx, cy := x+dx, top+dy
			if g.grid.GetTile(cx, cy) == tile.Air {
				g.grid.SetTile(cx, cy, tile.Leaves)
			}
		}
	}
}

// Cabin interior size in tiles.
const (
	cabinWidth  = 8
	cabinHeight = 5
)

// placeCabins buries width/200 small wooden rooms underground, each with a
// chest on the floor and a torch by the wall.
func (g *Generator) placeCabins() {
	width := g.grid.Width()
	count := width / 200

	minY := g.cfg.UndergroundLevel
	maxY := g.grid.Height() - 20 - cabinHeight
	if maxY <= minY {
		return
	}

	for i := 0; i < count; i++ {
		x := 10 + g.rng.Intn(width-20-cabinWidth)
		y := minY + g.rng.Intn(maxY-minY)
		g.buildCabin(x, y)
	}
}

// buildCabin carves the interior, frames it with wood one tile outside,
// and furnishes it.
func (g *Generator) buildCabin(x, y int) {
	for dy := 0; dy < cabinHeight; dy++ {
		for dx := 0; dx < cabinWidth; dx++ {
			g.grid.SetTile(x+dx, y+dy, tile.Air)
		}
	}

	for dx := -1; dx <= cabinWidth; dx++ {
		g.grid.SetTile(x+dx, y-1, tile.Wood)
		g.grid.SetTile(x+dx, y+cabinHeight, tile.Wood)
	}
	for dy := 0; dy < cabinHeight; dy++ {
		g.grid.SetTile(x-1, y+dy, tile.Wood)
		g.grid.SetTile(x+cabinWidth, y+dy, tile.Wood)
	}

	g.grid.SetTile(x+cabinWidth/2, y+cabinHeight-1, tile.Chest)
	g.grid.SetTile(x, y+1, tile.Torch)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
