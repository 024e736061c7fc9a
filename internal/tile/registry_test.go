package tile

import "testing"

// TestDefaultAirProperties verifies the sentinel tile is fully passive
func TestDefaultAirProperties(t *testing.T) {
	r := Default()
	if r.IsSolid(Air) || r.IsLiquid(Air) || r.IsPlatform(Air) {
		t.Error("Air must be neither solid, liquid, nor platform")
	}
	if r.LightLevel(Air) != 0 {
		t.Errorf("Air light level = %d, expected 0", r.LightLevel(Air))
	}
}

// TestDefaultPredicates spot-checks the standard tile set
func TestDefaultPredicates(t *testing.T) {
	r := Default()

	if !r.IsSolid(Stone) {
		t.Error("Stone should be solid")
	}
	if !r.IsLiquid(Water) || !r.IsLiquid(Lava) {
		t.Error("Water and Lava should be liquids")
	}
	if r.IsSolid(Water) {
		t.Error("Water should not be solid")
	}
	if !r.IsPlatform(Platform) {
		t.Error("Platform should be a platform")
	}
	if r.IsSolid(Platform) {
		t.Error("Platform should not be solid, it is passed through from below")
	}
	if !r.HasGravity(Sand) {
		t.Error("Sand should fall")
	}
	if r.HasGravity(Stone) {
		t.Error("Stone should not fall")
	}
}

// TestDefaultEmitters verifies the light-emitting tiles and their levels
func TestDefaultEmitters(t *testing.T) {
	r := Default()

	cases := []struct {
		tile  Type
		level uint8
	}{
		{Torch, 15},
		{Lava, 10},
		{Crystal, 8},
		{Mushroom, 4},
		{Diamond, 3},
		{Stone, 0},
	}
	for _, c := range cases {
		if got := r.LightLevel(c.tile); got != c.level {
			t.Errorf("%s light level = %d, expected %d", r.Name(c.tile), got, c.level)
		}
	}
}

// TestGrassDropsDirt verifies harvest mapping where drop differs from the tile
func TestGrassDropsDirt(t *testing.T) {
	r := Default()
	if d := r.Drop(Grass); d != Dirt {
		t.Errorf("Grass drop = %v, expected Dirt", d)
	}
	if d := r.Drop(JungleGrass); d != Mud {
		t.Errorf("JungleGrass drop = %v, expected Mud", d)
	}
}

// TestOutOfRangeResolvesToAir verifies the infallible lookup contract
func TestOutOfRangeResolvesToAir(t *testing.T) {
	r := Default()
	bogus := Type(250)
	if r.IsSolid(bogus) {
		t.Errorf("out-of-range tile %d should resolve to Air (not solid)", bogus)
	}
	if r.Name(bogus) != "Air" {
		t.Errorf("out-of-range tile %d name = %q, expected %q", bogus, r.Name(bogus), "Air")
	}
}

// TestSyntheticRegistry verifies New works with a partial custom tile set
func TestSyntheticRegistry(t *testing.T) {
	r := New(map[Type]Properties{
		Stone: {Solid: true, Name: "Rock"},
	})

	if !r.IsSolid(Stone) {
		t.Error("custom Stone should be solid")
	}
	if r.Name(Stone) != "Rock" {
		t.Errorf("custom Stone name = %q, expected %q", r.Name(Stone), "Rock")
	}
	// Undeclared tiles fall back to the zero Properties, not Air's.
	if r.IsSolid(Dirt) {
		t.Error("undeclared Dirt should have zero-value properties")
	}
	// Air cannot be overridden.
	r2 := New(map[Type]Properties{Air: {Solid: true}})
	if r2.IsSolid(Air) {
		t.Error("Air must stay passive even when a definition tries to override it")
	}
}
