package systems

import (
	"ebiten-wilds/audio"
	"ebiten-wilds/entity"
	"ebiten-wilds/spawners"
	"ebiten-wilds/stage"
	"ebiten-wilds/world"
)

// Scripted entities: the rail layer converts a straight line of terrain
// into rail, then hands off to a train that barrels down it, flattening
// tiles and creatures and towing a string of cars.

// trainTileDamage is what the train applies to built tiles in its path;
// enough to break anything in one hit.
const trainTileDamage = 1000

// stepRailLayer advances the invisible rail-laying entity. It ignores all
// collision, converts the tile under itself, and on leaving the stage
// marks itself and spawns the train at the start of the line.
func stepRailLayer(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.MarkedForDestruction {
		return
	}
	if !readyToMove(w, h) {
		return
	}

	tileX, tileY := e.TileX(), e.TileY()
	startX, startY := e.VacatedX, e.VacatedY
	dirX, dirY := e.DirX, e.DirY

	w.Stage.SetType(tileX, tileY, stage.TileRail)

	nextX, nextY := tileX+dirX, tileY+dirY
	if !w.Stage.InBounds(nextX, nextY) {
		e.MarkedForDestruction = true
		if _, ok := spawners.SpawnTrain(w, startX, startY, dirX, dirY); ok {
			playAt(w, au, audio.CueTrainHorn, float64(startX)+0.5, float64(startY)+0.5, BaseHearDistance)
		}
		return
	}

	moved := MoveEntity(w, au, h, nextX, nextY, true, true, false)
	if !moved {
		// Should not happen with both collision checks off; bail out
		// rather than loop forever at the edge.
		if e, ok := w.Store.Get(h); ok {
			e.MarkedForDestruction = true
		}
		return
	}
	// Keep the start of the line pinned; MoveEntity overwrote it with the
	// vacated cell.
	if e, ok := w.Store.Get(h); ok {
		e.VacatedX, e.VacatedY = startX, startY
	}
}

// stepTrain advances the train head one rail tile: crush whatever stands
// ahead, break whatever is built ahead, move, and tow new cars onto the
// line until the full consist is out.
func stepTrain(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.MarkedForDestruction {
		return
	}
	if !readyToMove(w, h) {
		return
	}

	tileX, tileY := e.TileX(), e.TileY()
	nextX, nextY := tileX+e.DirX, tileY+e.DirY

	if !w.Stage.InBounds(nextX, nextY) {
		e.MarkedForDestruction = true
		return
	}

	// Flatten everything on the next cell. Copy the handle list: Attack
	// mutates the world while we iterate.
	victims := append([]entity.Handle(nil), w.Grid.HandlesAt(nextX, nextY)...)
	for _, victim := range victims {
		if victim == h {
			continue
		}
		if other, ok := w.Store.Get(victim); ok && other.Attackable {
			Attack(w, au, h, victim, AttackTrain)
		}
	}
	DamageTile(w, au, nextX, nextY, trainTileDamage, stage.DamageTrain)

	if !MoveEntity(w, au, h, nextX, nextY, true, true, false) {
		return
	}

	// Tow another car onto the line behind the tail while cars remain.
	e, ok = w.Store.Get(h)
	if !ok || e.CarsToSpawn <= 0 {
		return
	}
	tail := e.Follow
	if tail.Zero() {
		tail = h
	}
	tailEntity, ok := w.Store.Get(tail)
	if !ok {
		return
	}
	carX, carY := tailEntity.VacatedX, tailEntity.VacatedY
	if carX == tailEntity.TileX() && carY == tailEntity.TileY() {
		return // tail has not vacated a cell yet
	}
	if car, ok := spawners.SpawnTrainCar(w, tail, carX, carY); ok {
		if e, ok := w.Store.Get(h); ok {
			e.Follow = car
			e.CarsToSpawn--
		}
	}
}

// stepTrainCar moves a car into the cell its leader vacated. A car whose
// leader is gone is done and marks itself.
func stepTrainCar(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.MarkedForDestruction {
		return
	}
	if !readyToMove(w, h) {
		return
	}

	leader, ok := w.Store.Get(e.Follow)
	if !ok {
		e.MarkedForDestruction = true
		return
	}
	targetX, targetY := leader.VacatedX, leader.VacatedY
	if targetX == e.TileX() && targetY == e.TileY() {
		return
	}
	MoveEntity(w, au, h, targetX, targetY, true, true, false)
}
