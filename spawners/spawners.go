// Package spawners creates fully wired game entities: allocate a slot,
// run the template initializer, place the entity on the grid. A false
// return always means the entity pool was exhausted and the spawn was
// skipped.
package spawners

import (
	"ebiten-wilds/entity"
	"ebiten-wilds/item"
	"ebiten-wilds/world"
)

// SpawnPlayer creates the player at the stage center and records the
// handle on the world.
func SpawnPlayer(w *world.World) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsPlayer(e)

	x, y, found := w.FindOpenTile(w.Stage.CenterX(), w.Stage.CenterY(), 8)
	if !found {
		x, y = w.Stage.CenterX(), w.Stage.CenterY()
	}
	w.PlaceAt(h, x, y)
	w.Player = h
	return h, true
}

// SpawnZombie creates a zombie at the given tile.
func SpawnZombie(w *world.World, tileX, tileY int) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsZombie(e, w.Rng)
	w.PlaceAt(h, tileX, tileY)
	return h, true
}

// SpawnChicken creates a chicken at the given tile.
func SpawnChicken(w *world.World, tileX, tileY int) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsChicken(e, w.Rng)
	w.PlaceAt(h, tileX, tileY)
	return h, true
}

// SpawnDroppedItem creates a world entity carrying an item stack.
func SpawnDroppedItem(w *world.World, stack item.Item, tileX, tileY int) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsDroppedItem(e, stack)
	w.PlaceAt(h, tileX, tileY)
	return h, true
}

// SpawnRailLayer creates the scripted rail-laying entity at a tile,
// heading in (dirX, dirY).
func SpawnRailLayer(w *world.World, tileX, tileY, dirX, dirY int) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsRailLayer(e, dirX, dirY)
	e.VacatedX, e.VacatedY = tileX, tileY
	w.PlaceAt(h, tileX, tileY)
	return h, true
}

// SpawnTrain creates a train head at a tile, heading in (dirX, dirY).
func SpawnTrain(w *world.World, tileX, tileY, dirX, dirY int) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsTrain(e, dirX, dirY)
	e.VacatedX, e.VacatedY = tileX-dirX, tileY-dirY
	w.PlaceAt(h, tileX, tileY)
	return h, true
}

// SpawnTrainCar creates a car following the given vehicle.
func SpawnTrainCar(w *world.World, follow entity.Handle, tileX, tileY int) (entity.Handle, bool) {
	h, ok := w.Store.Allocate()
	if !ok {
		return entity.Handle{}, false
	}
	e, _ := w.Store.Get(h)
	entity.InitAsTrainCar(e, follow)
	e.VacatedX, e.VacatedY = tileX, tileY
	w.PlaceAt(h, tileX, tileY)
	return h, true
}

// Populate fills a fresh world with its starting cast: the player plus
// the configured number of roaming creatures.
func Populate(w *world.World, zombies, chickens int) {
	SpawnPlayer(w)

	for i := 0; i < zombies; i++ {
		if x, y, ok := w.RandomOpenTile(); ok {
			SpawnZombie(w, x, y)
		}
	}
	for i := 0; i < chickens; i++ {
		if x, y, ok := w.RandomOpenTile(); ok {
			SpawnChicken(w, x, y)
		}
	}
}
