package systems

import (
	"ebiten-wilds/config"
	"ebiten-wilds/entity"
	"ebiten-wilds/world"
)

// Per-tick chance that an idle creature vocalizes.
const growlChance = 0.0001

// Chase starts when the player gets this close (Chebyshev tiles) and
// breaks off at the larger radius, so moods don't flap at the boundary.
const (
	chaseStartDistance = 5
	chaseStopDistance  = 8
)

// stepCreature runs the per-tick behaviors of one non-player entity, in
// fixed order. Scripted entities (rail layer, train) have their own step
// functions and skip the creature set.
func stepCreature(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok {
		return
	}

	switch e.Type {
	case entity.TypeRailLayer:
		stepRailLayer(w, au, h)
		return
	case entity.TypeTrain:
		stepTrain(w, au, h)
		return
	case entity.TypeTrainCar:
		stepTrainCar(w, au, h)
		return
	case entity.TypeDroppedItem:
		return
	}

	updateMood(w, h)
	wander(w, au, h)
	chase(w, au, h)
	growlSometimes(w, au, h)
	attackNearby(w, au, h)
	dieIfHealthZero(w, au, h)
	stepAttackCooldown(w, h)
	stepItemCooldowns(w, h)
	decayShakeAndLean(w, h)
}

// updateMood flips hostile wanderers into chase mode when the player is
// close, and back out when they lose them.
func updateMood(w *world.World, h entity.Handle) {
	px, py, ok := w.PlayerPos()
	if !ok {
		return
	}
	e, ok := w.Store.Get(h)
	if !ok || e.Alignment != entity.AlignEnemy {
		return
	}

	dist := chebyshev(e.TileX(), e.TileY(), int(px), int(py))
	switch e.Mood {
	case entity.MoodWander:
		if dist <= chaseStartDistance {
			e.Mood = entity.MoodChase
		}
	case entity.MoodChase:
		if dist > chaseStopDistance {
			e.Mood = entity.MoodWander
		}
	}
}

// wander moves an entity one random step, or holds still, when its move
// cooldown allows.
func wander(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.Mood != entity.MoodWander {
		return
	}
	if !readyToMove(w, h) {
		return
	}

	tileX, tileY := e.TileX(), e.TileY()
	targetX, targetY := pickAdjacentOrCenter(w, tileX, tileY)
	if targetX == tileX && targetY == tileY {
		return
	}
	MoveEntity(w, au, h, targetX, targetY, false, false, false)
}

// chase steps one tile toward the player, preferring the longer axis.
func chase(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.Mood != entity.MoodChase {
		return
	}
	if !readyToMove(w, h) {
		return
	}

	px, py, okPlayer := w.PlayerPos()
	if !okPlayer {
		e.Mood = entity.MoodWander
		return
	}

	tileX, tileY := e.TileX(), e.TileY()
	dx := int(px) - tileX
	dy := int(py) - tileY

	targetX, targetY := tileX, tileY
	if abs(dx) >= abs(dy) && dx != 0 {
		targetX += sign(dx)
	} else if dy != 0 {
		targetY += sign(dy)
	} else {
		return
	}
	MoveEntity(w, au, h, targetX, targetY, false, false, false)
}

// growlSometimes gives creatures an occasional vocalization, scaled by
// distance to the player, with a little shake for anyone watching.
func growlSometimes(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.Type == entity.TypePlayer || e.Growl == 0 {
		return
	}
	if w.Rng.Float64() >= growlChance {
		return
	}

	x, y := e.X, e.Y
	growl := e.Growl
	e.Shake = 0.4

	loudness := Loudness(w, x, y, BaseHearDistance)
	if loudness > 0 {
		au.PlayCueScaled(growl, loudness*0.3)
	}
}

// attackNearby makes hostile creatures scratch any player-aligned entity
// standing on an adjacent tile, gated by the attack cooldown.
func attackNearby(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok || e.Alignment != entity.AlignEnemy {
		return
	}
	if e.AttackCooldownCountdown > 0 {
		return
	}
	tileX, tileY := e.TileX(), e.TileY()

	var target entity.Handle
	for _, adjacent := range w.Grid.AdjacentHandles(tileX, tileY) {
		other, ok := w.Store.Get(adjacent)
		if ok && other.Alignment == entity.AlignPlayer {
			target = adjacent
			break
		}
	}
	if target.Zero() {
		return
	}

	Attack(w, au, h, target, AttackScratch)
	if e, ok := w.Store.Get(h); ok {
		e.AttackCooldownCountdown = e.AttackCooldown
	}
}

func stepAttackCooldown(w *world.World, h entity.Handle) {
	if e, ok := w.Store.Get(h); ok && e.AttackCooldownCountdown > 0 {
		e.AttackCooldownCountdown -= config.TickSeconds
	}
}

func stepItemCooldowns(w *world.World, h entity.Handle) {
	if e, ok := w.Store.Get(h); ok {
		e.Inventory.StepCooldowns(config.TickSeconds)
	}
}

// decayShakeAndLean relaxes the visual jitter and lean back to rest.
func decayShakeAndLean(w *world.World, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok {
		return
	}
	e.Shake *= 0.85
	if e.Shake < 0.01 {
		e.Shake = 0
	}
	e.Rot *= 0.8
	if e.Rot < 0.5 && e.Rot > -0.5 {
		e.Rot = 0
	}
}

func chebyshev(x0, y0, x1, y1 int) int {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
