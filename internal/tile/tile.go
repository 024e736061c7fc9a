package tile

// Type identifies a tile material. The set is closed and small; the zero
// value Air doubles as the out-of-bounds and "empty" sentinel everywhere.
type Type uint8

const (
	Air Type = iota
	Dirt
	Grass
	Stone
	Sand
	Snow
	JungleGrass
	Mud
	Wood
	Leaves
	Platform
	Bedrock
	Obsidian
	CoalOre
	CopperOre
	IronOre
	GoldOre
	Diamond
	Water
	Lava
	Torch
	Chest
	Crystal
	Mushroom

	typeCount
)

// Count is the number of defined tile types.
const Count = int(typeCount)

// Properties holds the immutable physical attributes of a tile type.
type Properties struct {
	Solid        bool
	Liquid       bool
	Platform     bool
	Gravity      bool
	Hardness     float32
	Drop         Type
	LightLevel   uint8 // 0 = emits no light
	Reflectivity float32
	Name         string
}
