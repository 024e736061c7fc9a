// Package preview renders a world grid to a PNG, one pixel per tile, for
// eyeballing generation output without a client attached.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"tilefall/internal/tile"
	"tilefall/internal/world"
)

var palette = map[tile.Type]color.RGBA{
	tile.Air:         {135, 206, 235, 255},
	tile.Dirt:        {121, 85, 58, 255},
	tile.Grass:       {62, 137, 72, 255},
	tile.Stone:       {128, 128, 128, 255},
	tile.Sand:        {219, 199, 127, 255},
	tile.Snow:        {235, 240, 248, 255},
	tile.JungleGrass: {94, 160, 54, 255},
	tile.Mud:         {92, 68, 73, 255},
	tile.Wood:        {151, 107, 75, 255},
	tile.Leaves:      {44, 115, 28, 255},
	tile.Platform:    {172, 128, 86, 255},
	tile.Bedrock:     {51, 51, 51, 255},
	tile.Obsidian:    {58, 44, 92, 255},
	tile.CoalOre:     {60, 60, 60, 255},
	tile.CopperOre:   {184, 115, 51, 255},
	tile.IronOre:     {189, 180, 171, 255},
	tile.GoldOre:     {212, 175, 55, 255},
	tile.Diamond:     {140, 211, 232, 255},
	tile.Water:       {46, 92, 180, 255},
	tile.Lava:        {207, 72, 20, 255},
	tile.Torch:       {255, 221, 128, 255},
	tile.Chest:       {160, 120, 46, 255},
	tile.Crystal:     {186, 114, 234, 255},
	tile.Mushroom:    {120, 160, 212, 255},
}

var unknownColor = color.RGBA{255, 0, 255, 255}

// Render draws the whole grid at one pixel per tile.
func Render(g *world.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, ok := palette[g.GetTile(x, y)]
			if !ok {
				c = unknownColor
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// WritePNG renders the grid scaled by an integer factor and writes it to
// path. Nearest-neighbor scaling keeps tile boundaries crisp.
func WritePNG(path string, g *world.Grid, scale int) error {
	if scale < 1 {
		scale = 1
	}

	img := Render(g)
	out := image.Image(img)
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
		out = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}
