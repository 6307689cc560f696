// Package world aggregates the simulation state: the entity store, the
// tile grid, the spatial occupancy index, the particle pool and the random
// stream. It holds no rendering or audio types, so the whole simulation
// runs headless in tests.
package world

import (
	"math/rand"

	"ebiten-wilds/entity"
	"ebiten-wilds/particles"
	"ebiten-wilds/spatial"
	"ebiten-wilds/stage"
)

// World is the shared mutable state the tick pipeline operates on. All
// access happens on one goroutine; the only discipline required is that
// nobody holds a resolved entity pointer across a call that can reach the
// store again.
type World struct {
	Store     *entity.Store
	Stage     *stage.Stage
	Grid      *spatial.Index
	Particles *particles.Pool
	Rng       *rand.Rand

	// Player is the zero handle after the player died and was swept.
	Player entity.Handle

	Frame  uint64
	Points int
	Deaths int

	GameOver bool
}

// New builds a fresh world with a seeded terrain. A new world is built on
// every "start playing" transition; nothing persists between runs.
func New(stageWidth, stageHeight int, seed int64) *World {
	w := &World{
		Store:     entity.NewStore(),
		Stage:     stage.New(stageWidth, stageHeight),
		Grid:      spatial.NewIndex(stageWidth, stageHeight),
		Particles: particles.NewPool(),
		Rng:       rand.New(rand.NewSource(seed)),
	}
	w.Stage.Generate(seed)
	return w
}

// PlayerEntity resolves the player handle.
func (w *World) PlayerEntity() (*entity.Entity, bool) {
	return w.Store.Get(w.Player)
}

// PlayerPos returns the player's position, ok=false when there is no live
// player to listen from.
func (w *World) PlayerPos() (x, y float64, ok bool) {
	p, ok := w.Store.Get(w.Player)
	if !ok {
		return 0, 0, false
	}
	return p.X, p.Y, true
}

// PlaceAt sets an entity's position to the center of a tile and registers
// it in the occupancy index. Used at spawn time; later movement goes
// through the movement system.
func (w *World) PlaceAt(h entity.Handle, tileX, tileY int) {
	e, ok := w.Store.Get(h)
	if !ok {
		return
	}
	e.X = float64(tileX) + 0.5
	e.Y = float64(tileY) + 0.5
	w.Grid.Add(h, tileX, tileY)
}

// FindOpenTile looks for a walkable, unoccupied tile near (cx, cy),
// searching outward in rings. ok=false when nothing within radius works.
func (w *World) FindOpenTile(cx, cy, radius int) (x, y int, ok bool) {
	for r := 0; r <= radius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if maxAbs(dx, dy) != r {
					continue
				}
				tx, ty := cx+dx, cy+dy
				if !w.Stage.Walkable(tx, ty) {
					continue
				}
				if w.Grid.OccupiedByImpassable(w.Store, tx, ty, entity.Handle{}) {
					continue
				}
				return tx, ty, true
			}
		}
	}
	return 0, 0, false
}

// RandomOpenTile picks a random walkable, unoccupied tile anywhere on the
// stage. Gives up after a bounded number of throws.
func (w *World) RandomOpenTile() (x, y int, ok bool) {
	for i := 0; i < 200; i++ {
		tx := w.Rng.Intn(w.Stage.Width())
		ty := w.Rng.Intn(w.Stage.Height())
		if !w.Stage.Walkable(tx, ty) {
			continue
		}
		if w.Grid.OccupiedByImpassable(w.Store, tx, ty, entity.Handle{}) {
			continue
		}
		return tx, ty, true
	}
	return 0, 0, false
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
