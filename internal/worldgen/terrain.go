package worldgen

import (
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
)

// terrainPass fills every column top to bottom: air above the surface, the
// biome's surface and subsurface tiles at and just below it, stone beneath,
// and a bedrock floor at the bottom of the world.
func (g *Generator) terrainPass() {
	defer profiling.Track("worldgen.terrain")()

	width := g.grid.Width()
	height := g.grid.Height()

	for x := 0; x < width; x++ {
		surface := g.surface[x]
		biome := g.biomes[x]

		// Subsurface band is 4-8 rows, varied by noise.
		subDepth := 4 + int((g.field.Noise2(float64(x)*0.1, 60)+1)*2)

		for y := 0; y < height; y++ {
			switch {
			case y >= height-2:
				g.grid.SetTile(x, y, tile.Bedrock)
			case y >= height-5:
				if g.rng.Float64() < 0.7 {
					g.grid.SetTile(x, y, tile.Bedrock)
				} else {
					g.grid.SetTile(x, y, tile.Obsidian)
				}
			case y < surface:
				// Air; chunks default to it.
			case y == surface:
				g.grid.SetTile(x, y, biome.SurfaceTile())
			case y <= surface+subDepth:
				g.grid.SetTile(x, y, biome.SubsurfaceTile())
			default:
				g.grid.SetTile(x, y, tile.Stone)
			}
		}
	}
}
