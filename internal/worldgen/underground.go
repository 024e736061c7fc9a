package worldgen

import (
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
	"tilefall/internal/world"
)

// Underground biome field constants. A slow 2D field splits deep open
// space into crystal caves, mushroom caves and plain deep caves.
const (
	ugBiomeFreq        = 0.006
	crystalThreshold   = 0.45
	mushroomThreshold  = -0.45
	decorationChance   = 0.15
	decorationMinEmpty = 2 // open rows above floor before decorating
)

// undergroundBiomePass classifies every tile below the underground level
// into a cave biome and records the result in a per-tile overlay on the
// grid. Runs only when underground biomes are enabled.
func (g *Generator) undergroundBiomePass() {
	defer profiling.Track("worldgen.ugbiomes")()

	width := g.grid.Width()
	height := g.grid.Height()

	for y := g.cfg.UndergroundLevel; y < height; y++ {
		for x := 0; x < width; x++ {
			g.grid.SetBiomeOverlay(x, y, g.caveBiomeAt(x, y))
		}
	}
}

func (g *Generator) caveBiomeAt(x, y int) world.Biome {
	if y > g.cfg.CavernLevel {
		return world.BiomeDeepCave
	}

	n := g.field.Noise2(float64(x)*ugBiomeFreq+5000, float64(y)*ugBiomeFreq+5000)
	switch {
	case n > crystalThreshold:
		return world.BiomeCrystalCave
	case n < mushroomThreshold:
		return world.BiomeMushroomCave
	default:
		return world.BiomeCave
	}
}

// decorateCavesPass places biome-themed growth on cave floors: crystals in
// crystal caves, mushrooms in mushroom caves. A floor cell is stone with
// enough open rows above it to stand a decoration in.
func (g *Generator) decorateCavesPass() {
	defer profiling.Track("worldgen.ugdecorate")()

	width := g.grid.Width()
	height := g.grid.Height()

	for y := g.cfg.UndergroundLevel; y < height-1; y++ {
		for x := 0; x < width; x++ {
			var deco tile.Type
			switch g.grid.GetBiomeAt(x, y) {
			case world.BiomeCrystalCave:
				deco = tile.Crystal
			case world.BiomeMushroomCave:
				deco = tile.Mushroom
			default:
				continue
			}

			if g.grid.GetTile(x, y+1) != tile.Stone {
				continue
			}
			if !g.openAbove(x, y, decorationMinEmpty) {
				continue
			}
			if g.rng.Float64() < decorationChance {
				g.grid.SetTile(x, y, deco)
			}
		}
	}
}

// openAbove reports whether the cell and rows-1 cells above it are air.
func (g *Generator) openAbove(x, y, rows int) bool {
	for i := 0; i < rows; i++ {
		if g.grid.GetTile(x, y-i) != tile.Air {
			return false
		}
	}
	return true
}
