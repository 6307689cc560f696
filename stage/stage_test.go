package stage

import "testing"

func TestAtOutOfBounds(t *testing.T) {
	s := New(4, 4)
	cases := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4},
	}
	for _, c := range cases {
		if _, ok := s.At(c.x, c.y); ok {
			t.Errorf("At(%d,%d) ok out of bounds", c.x, c.y)
		}
		if s.Walkable(c.x, c.y) {
			t.Errorf("Walkable(%d,%d) out of bounds", c.x, c.y)
		}
	}
}

func TestWalkableByType(t *testing.T) {
	cases := []struct {
		kind TileType
		want bool
	}{
		{TileEmpty, true},
		{TileGrass, true},
		{TileSand, true},
		{TileRuin, true},
		{TileRail, true},
		{TileWater, false},
		{TileWall, false},
	}
	for _, c := range cases {
		if got := Walkable(c.kind); got != c.want {
			t.Errorf("Walkable(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestBuildableByType(t *testing.T) {
	cases := []struct {
		kind TileType
		want bool
	}{
		{TileEmpty, true},
		{TileGrass, true},
		{TileSand, true},
		{TileWater, false},
		{TileWall, false},
		{TileRuin, false},
		{TileRail, false},
	}
	for _, c := range cases {
		if got := Buildable(c.kind); got != c.want {
			t.Errorf("Buildable(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestDamageBreaksWallToRuin(t *testing.T) {
	s := New(4, 4)
	s.SetType(1, 1, TileWall)

	// Durability 10; three punches of 3 leave it standing, the fourth
	// breaks it through to ruin.
	for i := 0; i < 3; i++ {
		if !s.Damage(1, 1, 3, DamagePunch) {
			t.Fatalf("punch %d did not land", i+1)
		}
		tile, _ := s.At(1, 1)
		if tile.Type != TileWall {
			t.Fatalf("wall broke after %d punches", i+1)
		}
	}

	if !s.Damage(1, 1, 3, DamagePunch) {
		t.Fatal("breaking punch did not land")
	}
	tile, _ := s.At(1, 1)
	if tile.Type != TileRuin {
		t.Errorf("broken wall became %v, want ruin", tile.Type)
	}
	if !Walkable(tile.Type) {
		t.Error("ruin not walkable")
	}
}

func TestDamageIgnoresUnbreakableAndWrongKind(t *testing.T) {
	s := New(4, 4)

	s.SetType(0, 0, TileGrass)
	if s.Damage(0, 0, 100, DamagePunch) {
		t.Error("grass took damage")
	}

	s.SetType(1, 0, TileRuin)
	if s.Damage(1, 0, 100, DamageTrain) {
		t.Error("ruin took damage")
	}

	if s.Damage(-1, -1, 100, DamagePunch) {
		t.Error("out-of-bounds tile took damage")
	}
	if s.Damage(0, 0, 0, DamagePunch) {
		t.Error("zero damage landed")
	}
}

func TestDamageOverkillStillTransitions(t *testing.T) {
	s := New(4, 4)
	s.SetType(2, 2, TileWall)

	if !s.Damage(2, 2, 1000000, DamageTrain) {
		t.Fatal("train damage did not land on wall")
	}
	tile, _ := s.At(2, 2)
	if tile.Type != TileRuin {
		t.Errorf("overkilled wall became %v, want ruin", tile.Type)
	}
	if tile.Durability < 0 {
		t.Errorf("durability went negative: %d", tile.Durability)
	}
}

func TestAnimateWaterFlipsVariants(t *testing.T) {
	s := New(4, 4)
	s.SetType(0, 0, TileWater)
	s.SetType(1, 1, TileGrass)

	s.AnimateWater()
	water, _ := s.At(0, 0)
	if water.Variant != 1 {
		t.Errorf("water variant = %d after flip, want 1", water.Variant)
	}
	grass, _ := s.At(1, 1)
	if grass.Variant != 0 {
		t.Error("grass variant flipped")
	}

	s.AnimateWater()
	water, _ = s.At(0, 0)
	if water.Variant != 0 {
		t.Errorf("water variant = %d after second flip, want 0", water.Variant)
	}
}

func TestDecayShake(t *testing.T) {
	s := New(4, 4)
	s.AddShake(0, 0, 1.0)

	for i := 0; i < 100; i++ {
		s.DecayShake()
	}
	tile, _ := s.At(0, 0)
	if tile.Shake != 0 {
		t.Errorf("shake did not settle to zero, got %f", tile.Shake)
	}
}

func TestGenerateClearsSpawnArea(t *testing.T) {
	s := New(32, 32)
	s.Generate(42)

	// The center area is guaranteed walkable so the player always spawns.
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			x, y := s.CenterX()+dx, s.CenterY()+dy
			if !s.Walkable(x, y) {
				t.Errorf("spawn area tile (%d,%d) not walkable", x, y)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := New(24, 24)
	b := New(24, 24)
	a.Generate(7)
	b.Generate(7)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			ta, _ := a.At(x, y)
			tb, _ := b.At(x, y)
			if ta.Type != tb.Type {
				t.Fatalf("seed 7 diverged at (%d,%d): %v vs %v", x, y, ta.Type, tb.Type)
			}
		}
	}
}
