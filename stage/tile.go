package stage

// TileType is the closed set of terrain kinds.
type TileType int

const (
	TileEmpty TileType = iota
	TileGrass
	TileSand
	TileWater
	TileWall
	TileRuin
	TileRail
)

// DamageKind tags the source of incoming tile damage so each tile type can
// accept or ignore it.
type DamageKind int

const (
	DamagePunch DamageKind = iota
	DamageTrain
)

// Tile is one grid cell. Tiles are mutated in place and never relocated;
// a destroyed tile transitions to its successor type instead of vanishing.
type Tile struct {
	Type          TileType
	Durability    int
	MaxDurability int
	Breakable     bool
	Variant       int
	Rot           float64
	Shake         float64
}

// NewTile builds a tile of the given type with its full durability.
func NewTile(kind TileType) Tile {
	t := Tile{Type: kind}
	switch kind {
	case TileWall:
		t.Breakable = true
		t.Durability = 10
		t.MaxDurability = 10
	case TileRuin:
		t.Breakable = false
	}
	return t
}

// Walkable reports whether entities may stand on this tile type.
func Walkable(kind TileType) bool {
	switch kind {
	case TileEmpty, TileGrass, TileSand, TileRuin, TileRail:
		return true
	default:
		return false
	}
}

// Buildable reports whether a tile may be placed over this terrain.
func Buildable(kind TileType) bool {
	switch kind {
	case TileEmpty, TileGrass, TileSand:
		return true
	default:
		return false
	}
}

// acceptsDamage reports whether a tile type takes a given damage kind.
func acceptsDamage(kind TileType, damage DamageKind) bool {
	switch kind {
	case TileWall:
		return damage == DamagePunch || damage == DamageTrain
	default:
		return false
	}
}

// successor returns the tile type a broken tile becomes.
func successor(kind TileType) TileType {
	switch kind {
	case TileWall:
		return TileRuin
	default:
		return TileEmpty
	}
}
