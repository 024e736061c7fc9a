package worldgen

import (
	"tilefall/internal/profiling"
	"tilefall/internal/tile"
)

// finalizePass restores the grass skin wherever carving or pooling exposed
// dirt, then runs the details pass.
func (g *Generator) finalizePass() {
	defer profiling.Track("worldgen.finalize")()

	width := g.grid.Width()
	height := g.grid.Height()

	for x := 0; x < width; x++ {
		for y := 1; y < height; y++ {
			if g.grid.GetTile(x, y) == tile.Dirt && g.grid.GetTile(x, y-1) == tile.Air {
				g.grid.SetTile(x, y, tile.Grass)
			}
		}
	}

	g.detailsPass()
}

// detailsPass evaluates decoration-candidate noise (grass density, flower
// and stone placement) without mutating tiles. The candidates are a hook
// for a rendering-side decorator; generation itself stays byte-identical
// whether or not a renderer consumes them.
func (g *Generator) detailsPass() {
	width := g.grid.Width()

	candidates := 0
	for x := 0; x < width; x++ {
		n := g.field.Noise2(float64(x)*0.3, float64(g.surface[x])*0.3)
		if n > 0.35 {
			candidates++
		}
	}
	g.detailCandidates = candidates
}
