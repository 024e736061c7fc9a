package worldgen

import (
	"math"

	"tilefall/internal/profiling"
	"tilefall/internal/tile"
)

// Cave carving constants. The threshold relaxes linearly with depth so
// caves get bigger and more connected the deeper they sit, bottoming out
// at 0.25 by 200 tiles below the surface.
const (
	caveThresholdTop   = 0.40
	caveThresholdFloor = 0.25
	caveThresholdDepth = 200.0
	caveSurfaceMargin  = 15 // no carving within this many rows of the surface
	caveBottomMargin   = 10 // no carving within this many rows of the world floor
	wormTunnelMinDepth = 30
	wormTunnelBand     = 0.05
)

// cavesPass carves blob caves from three octaves of noise and long thin
// worm tunnels from a separate low-frequency field.
func (g *Generator) cavesPass() {
	defer profiling.Track("worldgen.caves")()

	width := g.grid.Width()
	height := g.grid.Height()

	for x := 0; x < width; x++ {
		top := g.surface[x] + caveSurfaceMargin
		bottom := height - caveBottomMargin

		for y := top; y < bottom; y++ {
			fx, fy := float64(x), float64(y)
			depth := float64(y - g.surface[x])

			// Three octaves, weights 1 / 0.5 / 0.25, normalized.
			n := g.field.Noise2(fx*0.04, fy*0.04) +
				0.5*g.field.Noise2(fx*0.08, fy*0.08) +
				0.25*g.field.Noise2(fx*0.16, fy*0.16)
			n /= 1.75

			threshold := caveThresholdTop - depth*(caveThresholdTop-caveThresholdFloor)/caveThresholdDepth
			if threshold < caveThresholdFloor {
				threshold = caveThresholdFloor
			}
			if n > threshold {
				g.grid.SetTile(x, y, tile.Air)
				continue
			}

			// Worm tunnels: a narrow zero-crossing band of a field that
			// varies slowly in x and quickly in y reads as a long thin
			// horizontal passage.
			if depth > wormTunnelMinDepth &&
				math.Abs(g.field.Noise2(fx*0.008, fy*0.06)) < wormTunnelBand {
				g.grid.SetTile(x, y, tile.Air)
			}
		}
	}
}
