package stage

// Stage owns the tile grid. All lookups copy the tile out; mutation goes
// through the setter methods so the grid can keep its invariants.
type Stage struct {
	width  int
	height int
	tiles  []Tile
}

// New creates a stage of empty tiles.
func New(width, height int) *Stage {
	return &Stage{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the stage width in tiles.
func (s *Stage) Width() int { return s.width }

// Height returns the stage height in tiles.
func (s *Stage) Height() int { return s.height }

// InBounds reports whether a coordinate is on the stage.
func (s *Stage) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// At returns a copy of the tile at (x, y). Out-of-bounds lookups report
// ok=false; callers treat that as "no tile", never as an error.
func (s *Stage) At(x, y int) (Tile, bool) {
	if !s.InBounds(x, y) {
		return Tile{}, false
	}
	return s.tiles[y*s.width+x], true
}

// Walkable reports whether entities may stand at (x, y). Out of bounds is
// not walkable.
func (s *Stage) Walkable(x, y int) bool {
	t, ok := s.At(x, y)
	return ok && Walkable(t.Type)
}

// SetType replaces the tile at (x, y) with a fresh tile of the given type.
// Out-of-bounds writes are dropped.
func (s *Stage) SetType(x, y int, kind TileType) {
	if !s.InBounds(x, y) {
		return
	}
	s.tiles[y*s.width+x] = NewTile(kind)
}

// SetVariant sets the visual variant of the tile at (x, y).
func (s *Stage) SetVariant(x, y, variant int) {
	if !s.InBounds(x, y) {
		return
	}
	s.tiles[y*s.width+x].Variant = variant
}

// AddShake adds visual jitter to the tile at (x, y).
func (s *Stage) AddShake(x, y int, amount float64) {
	if !s.InBounds(x, y) {
		return
	}
	s.tiles[y*s.width+x].Shake += amount
}

// Damage applies damage of a given kind to the tile at (x, y). The tile
// takes damage only if it is breakable and accepts the kind; durability
// saturates at zero, and reaching zero transitions the tile to its
// successor type. Returns true if any damage landed.
func (s *Stage) Damage(x, y, amount int, kind DamageKind) bool {
	if !s.InBounds(x, y) || amount <= 0 {
		return false
	}
	t := &s.tiles[y*s.width+x]
	if !t.Breakable || !acceptsDamage(t.Type, kind) {
		return false
	}

	t.Durability -= amount
	if t.Durability <= 0 {
		*t = NewTile(successor(t.Type))
	}
	return true
}

// DecayShake fades tile jitter. Called once per tick for animated cells.
func (s *Stage) DecayShake() {
	for i := range s.tiles {
		if s.tiles[i].Shake > 0 {
			s.tiles[i].Shake *= 0.85
			if s.tiles[i].Shake < 0.01 {
				s.tiles[i].Shake = 0
			}
		}
	}
}

// AnimateWater flips the variant of every water tile. The pipeline calls
// this on a fixed period to get a two-frame shimmer.
func (s *Stage) AnimateWater() {
	for i := range s.tiles {
		if s.tiles[i].Type == TileWater {
			s.tiles[i].Variant = 1 - s.tiles[i].Variant
		}
	}
}

// Clear resets every tile to empty.
func (s *Stage) Clear() {
	for i := range s.tiles {
		s.tiles[i] = Tile{}
	}
}

// CenterX returns the x coordinate of the stage center tile.
func (s *Stage) CenterX() int { return s.width / 2 }

// CenterY returns the y coordinate of the stage center tile.
func (s *Stage) CenterY() int { return s.height / 2 }
