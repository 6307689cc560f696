package systems

import (
	"ebiten-wilds/config"
	"ebiten-wilds/entity"
	"ebiten-wilds/particles"
	"ebiten-wilds/sprite"
	"ebiten-wilds/world"
)

// MoveEntity attempts to move an entity to a target tile.
//
// The move succeeds only if the destination is walkable (or terrain is
// ignored) and unoccupied by an impassable entity (or entity collision is
// ignored). On success the entity snaps to the tile center, the occupancy
// index is updated, a footstep cue and footprint are emitted, and the move
// cooldown resets. On failure a blocked cue plays and the cooldown still
// resets — a failed move costs the turn, so there is no free wall-hugging
// retry every tick. keepCooldown suppresses the reset in both cases.
func MoveEntity(w *world.World, au CuePlayer, h entity.Handle, tileX, tileY int, ignoreTerrain, ignoreEntities, keepCooldown bool) bool {
	e, ok := w.Store.Get(h)
	if !ok {
		return false
	}
	oldX, oldY := e.TileX(), e.TileY()

	terrainOK := ignoreTerrain || w.Stage.Walkable(tileX, tileY)
	occupancyOK := ignoreEntities || !w.Grid.OccupiedByImpassable(w.Store, tileX, tileY, h)

	if !terrainOK || !occupancyOK {
		playAt(w, au, blockedCue, e.X, e.Y, BaseHearDistance)
		if !keepCooldown {
			resetMoveCooldown(w, h)
		}
		return false
	}

	e.X = float64(tileX) + 0.5
	e.Y = float64(tileY) + 0.5
	e.VacatedX, e.VacatedY = oldX, oldY
	w.Grid.Move(h, oldX, oldY, tileX, tileY)

	// Copy out everything the side effects need before re-entering the
	// store; the particle templates pull on the world's rng.
	x, y := e.X, e.Y
	stepCue := e.StepCue()
	leftFoot := e.StepSound == entity.StepSound1
	footprint := footprintSprite(e.Type)
	e.SwapStepSound()
	e.Rot = w.Rng.Float64()*10 - 5 // slight lean into the step

	playAt(w, au, stepCue, x, y, StepHearDistance)
	particles.Footprint(w.Particles, w.Rng, x, y, leftFoot, footprint)

	if !keepCooldown {
		resetMoveCooldown(w, h)
	}
	return true
}

// readyToMove decrements the move-cooldown countdown and reports whether
// the entity may take a grid step this tick.
func readyToMove(w *world.World, h entity.Handle) bool {
	e, ok := w.Store.Get(h)
	if !ok {
		return false
	}
	if e.MoveCooldownCountdown > 0 {
		e.MoveCooldownCountdown -= config.TickSeconds
		return false
	}
	return true
}

func resetMoveCooldown(w *world.World, h entity.Handle) {
	if e, ok := w.Store.Get(h); ok {
		e.MoveCooldownCountdown = e.MoveCooldown
	}
}

// footprintSprite maps an entity type to its footprint, or None for
// entities that leave no tracks.
func footprintSprite(kind entity.Type) sprite.Sprite {
	switch kind {
	case entity.TypePlayer:
		return sprite.PlayerFootprint
	case entity.TypeZombie:
		return sprite.ZombieFootprint
	default:
		return sprite.None
	}
}

// stepPlayerMovement applies the tick's held movement intent to the
// player: one axis at a time, gated by the move cooldown.
func stepPlayerMovement(w *world.World, au CuePlayer, snap Snapshot) {
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}
	tileX, tileY := p.TileX(), p.TileY()

	if !readyToMove(w, w.Player) {
		return
	}

	targetX, targetY := tileX, tileY
	switch {
	case snap.MoveLeft:
		targetX--
	case snap.MoveRight:
		targetX++
	case snap.MoveUp:
		targetY--
	case snap.MoveDown:
		targetY++
	default:
		return
	}

	MoveEntity(w, au, w.Player, targetX, targetY, false, false, false)
}

// pickAdjacentOrCenter returns a random cardinal neighbor of (x, y), or
// the cell itself, with equal weight. Staying put still costs the turn.
func pickAdjacentOrCenter(w *world.World, x, y int) (int, int) {
	switch w.Rng.Intn(5) {
	case 0:
		return x - 1, y
	case 1:
		return x + 1, y
	case 2:
		return x, y - 1
	case 3:
		return x, y + 1
	default:
		return x, y
	}
}
