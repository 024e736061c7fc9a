package worldgen

import (
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
)

// Surface pool shape: a 9-column band centered on the dip.
const (
	poolHalfWidth   = 4
	poolChance      = 0.08
	poolExtraDepth  = 3
	ugPoolSpacing   = 20
	ugPoolThreshold = 0.6
	ugPoolWidth     = 7
	ugPoolHeight    = 5
)

// liquidsPass settles water into surface depressions and seeds small
// underground pools on a coarse lattice.
func (g *Generator) liquidsPass() {
	defer profiling.Track("worldgen.liquids")()

	g.surfacePools()
	g.undergroundPools()
}

// surfacePools fills local surface depressions with water. Rows grow
// downward, so a column whose surface row exceeds both neighbors' sits
// lower than them and can hold a pool.
func (g *Generator) surfacePools() {
	width := g.grid.Width()

	for x := 1; x < width-1; x++ {
		dip := g.surface[x]
		if dip <= g.surface[x-1] || dip <= g.surface[x+1] {
			continue
		}
		if g.rng.Float64() >= poolChance {
			continue
		}

		// Water stands from the lower of the two rims down to a few rows
		// below the dip, and only displaces air or dirt - never stone or ore.
		top := max(g.surface[x-1], g.surface[x+1])
		bottom := dip + poolExtraDepth

		for y := top; y <= bottom; y++ {
			for cx := x - poolHalfWidth; cx <= x+poolHalfWidth; cx++ {
				t := g.grid.GetTile(cx, y)
				if t == tile.Air || t == tile.Dirt {
					g.grid.SetTile(cx, y, tile.Water)
				}
			}
		}
	}
}

// undergroundPools samples a noise field on a 20x20 lattice below the
// underground level and fills small pools over air: lava in the caverns,
// water above them.
func (g *Generator) undergroundPools() {
	width := g.grid.Width()
	height := g.grid.Height()

	for y := g.cfg.UndergroundLevel; y < height-ugPoolHeight; y += ugPoolSpacing {
		for x := 0; x < width-ugPoolWidth; x += ugPoolSpacing {
			n := g.field.Noise2(float64(x)*0.05+3000, float64(y)*0.05+3000)
			if n <= ugPoolThreshold {
				continue
			}

			liquid := tile.Water
			if y > g.cfg.CavernLevel {
				liquid = tile.Lava
			}

			for dy := 0; dy < ugPoolHeight; dy++ {
				for dx := 0; dx < ugPoolWidth; dx++ {
					if g.grid.GetTile(x+dx, y+dy) == tile.Air {
						g.grid.SetTile(x+dx, y+dy, liquid)
					}
				}
			}
		}
	}
}
