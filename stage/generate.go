package stage

import "math/rand"

// Generate seeds the grid with island terrain: grass inland, sand at the
// water line, water pools, and scattered wall clumps. It is purely a
// seeding step; the simulation only reads and writes tiles afterwards.
//
// The shape comes from a few rounds of cellular smoothing over random
// noise, the same approach the dungeon generator used for caves.
func (s *Stage) Generate(seed int64) {
	rng := rand.New(rand.NewSource(seed))

	// Raw noise: mark cells as water candidates.
	water := make([]bool, s.width*s.height)
	for i := range water {
		water[i] = rng.Float64() < 0.38
	}

	// Smooth the noise so water forms pools instead of static.
	for round := 0; round < 4; round++ {
		next := make([]bool, len(water))
		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if nx < 0 || nx >= s.width || ny < 0 || ny >= s.height {
							continue
						}
						if water[ny*s.width+nx] {
							neighbors++
						}
					}
				}
				next[y*s.width+x] = neighbors >= 5 || (water[y*s.width+x] && neighbors >= 3)
			}
		}
		water = next
	}

	// Lay terrain: water pools, sand shores, grass elsewhere.
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if water[y*s.width+x] {
				s.SetType(x, y, TileWater)
				continue
			}
			shore := false
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx >= 0 && nx < s.width && ny >= 0 && ny < s.height && water[ny*s.width+nx] {
					shore = true
					break
				}
			}
			if shore {
				s.SetType(x, y, TileSand)
			} else {
				s.SetType(x, y, TileGrass)
			}
		}
	}

	// Scatter small wall clumps on dry land.
	clumps := s.width * s.height / 300
	for i := 0; i < clumps; i++ {
		cx := rng.Intn(s.width)
		cy := rng.Intn(s.height)
		for j := 0; j < 3+rng.Intn(4); j++ {
			x := cx + rng.Intn(3) - 1
			y := cy + rng.Intn(3) - 1
			if t, ok := s.At(x, y); ok && t.Type == TileGrass {
				s.SetType(x, y, TileWall)
			}
		}
	}

	// The center must be standable: the player spawns there.
	s.clearSpawnArea(s.CenterX(), s.CenterY(), 3)
}

// clearSpawnArea forces a radius of grass around a point.
func (s *Stage) clearSpawnArea(cx, cy, radius int) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if s.InBounds(x, y) {
				s.SetType(x, y, TileGrass)
			}
		}
	}
}
