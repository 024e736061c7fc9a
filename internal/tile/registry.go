package tile

// Registry is the single source of truth for tile physics. It is built once,
// never mutated afterwards, and passed explicitly into anything that needs
// tile predicates (no hidden package state, so tests can run synthetic sets).
type Registry struct {
	props []Properties
}

// New builds a registry from explicit definitions. Index 0 is always forced
// to the Air entry so the sentinel lookup stays well-defined.
func New(defs map[Type]Properties) *Registry {
	r := &Registry{props: make([]Properties, Count)}
	r.props[Air] = Properties{Name: "Air", Reflectivity: 1.0}
	for t, p := range defs {
		if t == Air || int(t) >= Count {
			continue
		}
		r.props[t] = p
	}
	return r
}

// Default returns the registry for the standard tile set.
func Default() *Registry {
	return New(map[Type]Properties{
		Dirt:        {Solid: true, Hardness: 0.5, Drop: Dirt, Reflectivity: 0.1, Name: "Dirt"},
		Grass:       {Solid: true, Hardness: 0.6, Drop: Dirt, Reflectivity: 0.15, Name: "Grass"},
		Stone:       {Solid: true, Hardness: 3.0, Drop: Stone, Reflectivity: 0.2, Name: "Stone"},
		Sand:        {Solid: true, Gravity: true, Hardness: 0.4, Drop: Sand, Reflectivity: 0.35, Name: "Sand"},
		Snow:        {Solid: true, Hardness: 0.4, Drop: Snow, Reflectivity: 0.6, Name: "Snow"},
		JungleGrass: {Solid: true, Hardness: 0.6, Drop: Mud, Reflectivity: 0.15, Name: "Jungle Grass"},
		Mud:         {Solid: true, Hardness: 0.5, Drop: Mud, Reflectivity: 0.08, Name: "Mud"},
		Wood:        {Solid: true, Hardness: 1.5, Drop: Wood, Reflectivity: 0.12, Name: "Wood"},
		Leaves:      {Hardness: 0.1, Drop: Air, Reflectivity: 0.25, Name: "Leaves"},
		Platform:    {Platform: true, Hardness: 1.0, Drop: Platform, Reflectivity: 0.12, Name: "Platform"},
		Bedrock:     {Solid: true, Hardness: 1000, Drop: Air, Reflectivity: 0.05, Name: "Bedrock"},
		Obsidian:    {Solid: true, Hardness: 12, Drop: Obsidian, Reflectivity: 0.3, Name: "Obsidian"},
		CoalOre:     {Solid: true, Hardness: 3.5, Drop: CoalOre, Reflectivity: 0.1, Name: "Coal Ore"},
		CopperOre:   {Solid: true, Hardness: 4.0, Drop: CopperOre, Reflectivity: 0.25, Name: "Copper Ore"},
		IronOre:     {Solid: true, Hardness: 5.0, Drop: IronOre, Reflectivity: 0.25, Name: "Iron Ore"},
		GoldOre:     {Solid: true, Hardness: 6.0, Drop: GoldOre, Reflectivity: 0.4, Name: "Gold Ore"},
		Diamond:     {Solid: true, Hardness: 8.0, Drop: Diamond, LightLevel: 3, Reflectivity: 0.8, Name: "Diamond"},
		Water:       {Liquid: true, Drop: Air, Reflectivity: 0.5, Name: "Water"},
		Lava:        {Liquid: true, Drop: Air, LightLevel: 10, Reflectivity: 0.4, Name: "Lava"},
		Torch:       {Hardness: 0.1, Drop: Torch, LightLevel: 15, Reflectivity: 0.2, Name: "Torch"},
		Chest:       {Solid: true, Hardness: 2.0, Drop: Chest, Reflectivity: 0.15, Name: "Chest"},
		Crystal:     {Hardness: 1.0, Drop: Crystal, LightLevel: 8, Reflectivity: 0.9, Name: "Crystal"},
		Mushroom:    {Hardness: 0.1, Drop: Mushroom, LightLevel: 4, Reflectivity: 0.3, Name: "Glowing Mushroom"},
	})
}

// Properties looks up the attributes of a tile type. The lookup is
// infallible: anything outside the registered range resolves to Air.
func (r *Registry) Properties(t Type) Properties {
	if int(t) >= len(r.props) {
		return r.props[Air]
	}
	return r.props[t]
}

// IsSolid reports whether t blocks movement.
func (r *Registry) IsSolid(t Type) bool { return r.Properties(t).Solid }

// IsLiquid reports whether t is a liquid.
func (r *Registry) IsLiquid(t Type) bool { return r.Properties(t).Liquid }

// IsPlatform reports whether t can be stood on but passed through.
func (r *Registry) IsPlatform(t Type) bool { return r.Properties(t).Platform }

// HasGravity reports whether t falls when unsupported.
func (r *Registry) HasGravity(t Type) bool { return r.Properties(t).Gravity }

// LightLevel returns the light emitted by t, 0 for none.
func (r *Registry) LightLevel(t Type) uint8 { return r.Properties(t).LightLevel }

// Hardness returns the mining hardness of t.
func (r *Registry) Hardness(t Type) float32 { return r.Properties(t).Hardness }

// Drop returns the tile type harvested from t.
func (r *Registry) Drop(t Type) Type { return r.Properties(t).Drop }

// Reflectivity returns the light reflectivity of t in [0,1].
func (r *Registry) Reflectivity(t Type) float32 { return r.Properties(t).Reflectivity }

// Name returns the display name of t.
func (r *Registry) Name(t Type) string { return r.Properties(t).Name }
