package worldgen

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tilefall/internal/config"
	"tilefall/internal/noise"
	"tilefall/internal/profiling"
	"tilefall/internal/world"
)

// Generator runs the multi-phase pipeline that fills a world grid. Phases
// are strictly ordered; each one depends on the output of the previous and
// none is re-entered. Generation has no recoverable-error path: it runs
// once at world creation with fully controlled inputs, so invalid
// preconditions are programming errors and panic.
type Generator struct {
	cfg   config.WorldGen
	field *noise.Field
	rng   *rand.Rand

	grid *world.Grid

	// Per-column transient state, computed in phase 1 and reused by every
	// later phase. Only the biome array outlives generation.
	surface []int
	biomes  []world.Biome

	detailCandidates int
}

// DetailCandidates reports how many surface columns the finalize phase
// flagged for cosmetic decoration. Zero before Generate has run.
func (g *Generator) DetailCandidates() int { return g.detailCandidates }

// New creates a generator over an injected noise field.
func New(cfg config.WorldGen, field *noise.Field) *Generator {
	if field == nil {
		panic("worldgen: nil noise field")
	}
	return &Generator{cfg: cfg, field: field}
}

// GenerateWorld builds a grid-filling generator from a seed and runs it.
func GenerateWorld(grid *world.Grid, cfg config.WorldGen, seed int64) {
	New(cfg, noise.NewField(seed)).Generate(grid, seed)
}

// Generate fills the grid. The same seed and dimensions produce an
// identical tile grid every run.
func (g *Generator) Generate(grid *world.Grid, seed int64) {
	if grid == nil {
		panic("worldgen: nil grid")
	}
	if grid.Width() <= 0 || grid.Height() <= 0 {
		panic("worldgen: zero-size world")
	}

	g.grid = grid
	g.rng = rand.New(rand.NewSource(seed))
	g.surface = make([]int, grid.Width())
	g.biomes = make([]world.Biome, grid.Width())

	g.heightmapPass()
	g.terrainPass()
	g.cavesPass()
	g.oresPass()
	g.structuresPass()
	g.liquidsPass()
	g.finalizePass()

	if g.cfg.UndergroundBiomes {
		g.undergroundBiomePass()
		g.decorateCavesPass()
	}

	grid.SetColumnBiomes(g.biomes)

	// Drop the transient state; the biome array now belongs to the grid.
	g.surface = nil
	g.biomes = nil
	g.grid = nil
}

// Heightmap noise bands, coarse hills down to micro detail.
var heightBands = []struct {
	freq float64
	amp  float64
}{
	{0.004, 22},
	{0.02, 8},
	{0.08, 3},
	{0.25, 1},
}

// Biome thresholds over two independent low-frequency samples.
const (
	biomeFreq       = 0.002
	snowThreshold   = -0.4
	desertThreshold = 0.4
	jungleSecondary = 0.5
	junglePrimary   = -0.1
)

// heightmapPass computes per-column surface height and biome. Columns are
// independent pure-noise evaluations, so they shard across workers; each
// worker writes disjoint indices and the result does not depend on order.
func (g *Generator) heightmapPass() {
	defer profiling.Track("worldgen.heightmap")()

	width := g.grid.Width()
	workers := min(runtime.NumCPU(), width)

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * width / workers
		end := (w + 1) * width / workers
		eg.Go(func() error {
			for x := start; x < end; x++ {
				g.surface[x] = g.surfaceHeightAt(x)
				g.biomes[x] = g.biomeAt(x)
			}
			return nil
		})
	}
	_ = eg.Wait() // workers never fail
}

func (g *Generator) surfaceHeightAt(x int) int {
	h := float64(g.cfg.SurfaceLevel)
	for _, band := range heightBands {
		h += g.field.Noise2(float64(x)*band.freq, 0) * band.amp
	}
	return clamp(int(h), 4, g.grid.Height()-15)
}

func (g *Generator) biomeAt(x int) world.Biome {
	primary := g.field.Noise2(float64(x)*biomeFreq, 400)
	secondary := g.field.Noise2(float64(x)*biomeFreq, 800)

	switch {
	case primary < snowThreshold:
		return world.BiomeSnow
	case primary > desertThreshold:
		return world.BiomeDesert
	case secondary > jungleSecondary && primary > junglePrimary:
		return world.BiomeJungle
	default:
		return world.BiomeForest
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
