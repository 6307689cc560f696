package systems

import (
	"math"

	"ebiten-wilds/audio"
	"ebiten-wilds/entity"
	"ebiten-wilds/particles"
	"ebiten-wilds/sprite"
	"ebiten-wilds/stage"
	"ebiten-wilds/world"
)

// AttackType is the closed set of attack kinds. Damage, impact sprite and
// sound all come from per-type lookups.
type AttackType int

const (
	AttackPunch AttackType = iota
	AttackScratch
	AttackTrain
)

// attackDamage is the fixed damage dealt per attack type.
func attackDamage(kind AttackType) int {
	switch kind {
	case AttackPunch:
		return 10
	case AttackScratch:
		return 5
	case AttackTrain:
		return 1000000
	default:
		return 0
	}
}

func attackCue(kind AttackType) audio.Cue {
	switch kind {
	case AttackPunch:
		return audio.CuePunch
	case AttackScratch:
		return audio.CueScratch
	case AttackTrain:
		return audio.CueBoxBreak
	default:
		return audio.CueNone
	}
}

func attackSprite(kind AttackType) sprite.Sprite {
	switch kind {
	case AttackPunch:
		return sprite.Fist
	case AttackScratch:
		return sprite.ZombieScratch
	default:
		return sprite.None
	}
}

// attackLean is the rotation both participants take during a hit.
const attackLean = 45.0

// Attack resolves one melee hit from attacker to defender. Nothing
// happens unless both handles are live and the defender is attackable.
// Damage saturates at zero health; death itself is detected by the
// separate per-tick health check, not here.
func Attack(w *world.World, au CuePlayer, attacker, defender entity.Handle, kind AttackType) {
	// Snapshot both positions first; every later mutation re-resolves.
	a, ok := w.Store.Get(attacker)
	if !ok {
		return
	}
	attackerX, attackerY := a.X, a.Y

	d, ok := w.Store.Get(defender)
	if !ok || !d.Attackable {
		return
	}
	defenderX, defenderY := d.X, d.Y

	playAt(w, au, attackCue(kind), defenderX, defenderY, BaseHearDistance)

	damage := attackDamage(kind)
	d, _ = w.Store.Get(defender)
	d.Health -= damage
	if d.Health < 0 {
		d.Health = 0
	}
	d.Shake += 0.1

	// Both participants lean with the blow: sideways hits tilt 45
	// degrees toward the defender, vertical hits flip upright/inverted.
	lean := 0.0
	switch {
	case attackerX < defenderX:
		lean = attackLean
	case attackerX > defenderX:
		lean = -attackLean
	case attackerY < defenderY:
		lean = 180
	default:
		lean = 0
	}
	d.Rot = lean
	if a, ok := w.Store.Get(attacker); ok {
		a.Rot = lean
		a.Shake += 0.05
	}

	// Impact flash offset toward the attacker, plus blood.
	offsetX, offsetY := 0.0, 0.0
	switch {
	case attackerX < defenderX:
		offsetX = -0.2
	case attackerX > defenderX:
		offsetX = 0.2
	case attackerY < defenderY:
		offsetY = -0.2
	default:
		offsetY = 0.2
	}
	impactX, impactY := defenderX+offsetX, defenderY+offsetY
	if spr := attackSprite(kind); spr != sprite.None {
		particles.Impact(w.Particles, w.Rng, impactX, impactY, spr)
	}

	dirX, dirY := norm2(attackerX-defenderX, attackerY-defenderY)
	particles.BloodSplatter(w.Particles, w.Rng, impactX, impactY, dirX, dirY, 0.1)
	particles.BloodPuddle(w.Particles, defenderX, defenderY+0.5, 0.3)
}

// DamageTile routes damage into the stage and dresses the hit with shake
// and sound. Returns true if the tile actually took damage.
func DamageTile(w *world.World, au CuePlayer, tileX, tileY, amount int, kind stage.DamageKind) bool {
	before, ok := w.Stage.At(tileX, tileY)
	if !ok {
		return false
	}
	if !w.Stage.Damage(tileX, tileY, amount, kind) {
		return false
	}

	cx, cy := float64(tileX)+0.5, float64(tileY)+0.5
	after, _ := w.Stage.At(tileX, tileY)
	if after.Type != before.Type {
		// The tile broke through to its successor.
		playAt(w, au, audio.CueBoxBreak, cx, cy, BaseHearDistance)
	} else {
		w.Stage.AddShake(tileX, tileY, 0.2)
		playAt(w, au, audio.CueBlocked, cx, cy, BaseHearDistance)
	}
	return true
}

// dieIfHealthZero detects death: zero health on a not-yet-marked entity
// spawns the death effects and marks it for the end-of-tick sweep.
func dieIfHealthZero(w *world.World, au CuePlayer, h entity.Handle) {
	e, ok := w.Store.Get(h)
	if !ok {
		return
	}
	if e.Health > 0 || e.MarkedForDestruction || !e.Attackable {
		return
	}

	x, y, rot := e.X, e.Y, e.Rot
	kind := e.Type
	e.MarkedForDestruction = true
	e.Mood = entity.MoodIdle

	particles.Corpse(w.Particles, x, y, rot, corpseSprite(kind))
	playAt(w, au, deathCue(kind), x, y, BaseHearDistance)
	particles.BloodSplatter(w.Particles, w.Rng, x, y, 0, -1, 0.8)
	particles.BloodPuddle(w.Particles, x, y, 1.0)

	if kind == entity.TypeZombie {
		w.Points++
	}
}

func corpseSprite(kind entity.Type) sprite.Sprite {
	switch kind {
	case entity.TypePlayer:
		return sprite.PlayerDead
	case entity.TypeZombie:
		return sprite.ZombieDead
	case entity.TypeChicken:
		return sprite.ChickenDead
	default:
		return sprite.None
	}
}

func deathCue(kind entity.Type) audio.Cue {
	switch kind {
	case entity.TypePlayer:
		return audio.CueCrunch1
	case entity.TypeZombie, entity.TypeChicken:
		return audio.CueCrunch2
	default:
		return audio.CueBoxBreak
	}
}

func norm2(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}
