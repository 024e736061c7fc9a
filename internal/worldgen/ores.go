package worldgen

import (
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
)

// oreConfig describes one ore: where it may appear (depth below the column
// surface), how its seed noise is sampled, and how large a vein may grow.
type oreConfig struct {
	tile      tile.Type
	minDepth  int
	scale     float64
	threshold float64
	maxVein   int
}

// Deeper ores are rarer and grow smaller veins. Each ore offsets its noise
// coordinates so different ores don't co-locate at the same hotspots.
var ores = []oreConfig{
	{tile.CoalOre, 15, 0.10, 0.62, 16},
	{tile.CopperOre, 25, 0.11, 0.66, 12},
	{tile.IronOre, 50, 0.12, 0.70, 10},
	{tile.GoldOre, 90, 0.13, 0.76, 8},
	{tile.Diamond, 140, 0.14, 0.82, 5},
}

// oresPass seeds veins wherever ore noise spikes in deep stone, then grows
// each vein by bounded flood fill.
func (g *Generator) oresPass() {
	defer profiling.Track("worldgen.ores")()

	width := g.grid.Width()
	height := g.grid.Height()

	for i, ore := range ores {
		offset := float64(i+1) * 1000
		for x := 0; x < width; x++ {
			minY := g.surface[x] + ore.minDepth
			for y := minY; y < height; y++ {
				if g.grid.GetTile(x, y) != tile.Stone {
					continue
				}
				n := g.field.Noise2(float64(x)*ore.scale+offset, float64(y)*ore.scale+offset)
				if n > ore.threshold {
					g.growVein(x, y, ore)
				}
			}
		}
	}
}

// growVein converts stone to ore by breadth-first flood fill from the seed
// cell: an explicit worklist with a deduplicating visited set. Each axis
// neighbor is enqueued with probability 0.6, which yields organic,
// variable-shaped clusters. Total placed cells never exceed maxVein.
func (g *Generator) growVein(x, y int, ore oreConfig) {
	type cell struct{ x, y int }

	queue := []cell{{x, y}}
	visited := map[cell]struct{}{{x, y}: {}}
	placed := 0

	for len(queue) > 0 && placed < ore.maxVein {
		c := queue[0]
		queue = queue[1:]

		if g.grid.GetTile(c.x, c.y) != tile.Stone {
			continue
		}
		g.grid.SetTile(c.x, c.y, ore.tile)
		placed++

		for _, n := range []cell{{c.x + 1, c.y}, {c.x - 1, c.y}, {c.x, c.y + 1}, {c.x, c.y - 1}} {
			if _, seen := visited[n]; seen {
				continue
			}
			if g.rng.Float64() < 0.6 {
				visited[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}
}
