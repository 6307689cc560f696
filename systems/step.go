// Package systems holds the fixed-timestep update pipeline: the phase
// functions that advance the world exactly one tick, in a fixed order,
// and the end-of-tick sweep that reclaims destroyed entities.
package systems

import (
	"ebiten-wilds/entity"
	"ebiten-wilds/input"
	"ebiten-wilds/world"
)

// Snapshot is one tick's worth of player intent.
type Snapshot = input.Snapshot

// waterAnimationPeriod is how many ticks between water variant flips.
const waterAnimationPeriod = 30

// Step advances the world by exactly one tick. Phase order is fixed
// because later phases depend on earlier phases' results:
//
//  1. player movement intent against walkability and occupancy;
//  2. inventory commands (select, drop, pickup, use);
//  3. per-entity behaviors for every other active entity;
//  4. animated tile variants and decaying visuals;
//  5. deferred-destruction sweep.
//
// Destruction inside a tick only marks; the sweep at the end of the same
// tick is the single place entities are physically reclaimed, so no phase
// ever mutates the store out from under another.
func Step(w *world.World, au CuePlayer, snap Snapshot) {
	stepPlayerMovement(w, au, snap)
	stepInventoryCommands(w, au, snap)

	// The player shares the bookkeeping behaviors but not the AI.
	if !w.Player.Zero() {
		dieIfHealthZero(w, au, w.Player)
		stepItemCooldowns(w, w.Player)
		decayShakeAndLean(w, w.Player)
	}

	// Iterate a snapshot of handles: behaviors may spawn entities (train
	// cars, dropped items) or mark others, and new spawns wait until the
	// next tick for their first step.
	for _, h := range w.Store.ActiveHandles() {
		if h == w.Player {
			continue
		}
		stepCreature(w, au, h)
	}

	if w.Frame%waterAnimationPeriod == 0 {
		w.Stage.AnimateWater()
	}
	w.Stage.DecayShake()
	w.Particles.Step()

	sweep(w)
	w.Frame++
}

// sweep physically reclaims every entity marked for destruction during
// the tick: out of the occupancy index, back to the free list, and the
// player handle nulled if it was the player.
func sweep(w *world.World) {
	for _, h := range w.Store.ActiveHandles() {
		e, ok := w.Store.Get(h)
		if !ok || !e.MarkedForDestruction {
			continue
		}
		tileX, tileY := e.TileX(), e.TileY()

		w.Grid.Remove(h, tileX, tileY)
		w.Store.Release(h)

		if h == w.Player {
			w.Player = entity.Handle{}
			w.Deaths++
			w.GameOver = true
		}
	}
}
