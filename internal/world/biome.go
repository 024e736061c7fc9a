package world

import "tilefall/internal/tile"

// Biome classifies a world column (surface) or a cave region (underground).
type Biome uint8

const (
	// BiomeUnset is the per-cell overlay sentinel meaning "use the column biome".
	BiomeUnset Biome = iota

	// Surface biomes.
	BiomeForest
	BiomeDesert
	BiomeSnow
	BiomeJungle
	BiomeCorruption // reserved for hardmode
	BiomeHallow     // reserved for hardmode

	// Underground biomes.
	BiomeCave
	BiomeCrystalCave
	BiomeMushroomCave
	BiomeDeepCave
)

// String returns the biome's display name.
func (b Biome) String() string {
	switch b {
	case BiomeForest:
		return "Forest"
	case BiomeDesert:
		return "Desert"
	case BiomeSnow:
		return "Snow"
	case BiomeJungle:
		return "Jungle"
	case BiomeCorruption:
		return "Corruption"
	case BiomeHallow:
		return "Hallow"
	case BiomeCave:
		return "Cave"
	case BiomeCrystalCave:
		return "Crystal Cave"
	case BiomeMushroomCave:
		return "Mushroom Cave"
	case BiomeDeepCave:
		return "Deep Cave"
	default:
		return "Unset"
	}
}

// SurfaceTile returns the tile placed at a column's surface row.
func (b Biome) SurfaceTile() tile.Type {
	switch b {
	case BiomeDesert:
		return tile.Sand
	case BiomeSnow:
		return tile.Snow
	case BiomeJungle:
		return tile.JungleGrass
	default:
		return tile.Grass
	}
}

// SubsurfaceTile returns the tile placed just under the surface row.
func (b Biome) SubsurfaceTile() tile.Type {
	switch b {
	case BiomeDesert:
		return tile.Sand
	case BiomeSnow:
		return tile.Snow
	case BiomeJungle:
		return tile.Mud
	default:
		return tile.Dirt
	}
}
