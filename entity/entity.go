package entity

import (
	"math/rand"

	"ebiten-wilds/audio"
	"ebiten-wilds/item"
	"ebiten-wilds/sprite"
)

// Handle is a versioned reference to a store slot. It is only valid while
// its generation matches the slot's current generation, so a handle kept
// across a release/reallocate cycle fails to resolve instead of aliasing
// the new occupant.
type Handle struct {
	Index      int
	Generation uint32
}

// Zero reports whether this is the never-valid zero handle.
func (h Handle) Zero() bool {
	return h == Handle{}
}

// Type is the closed set of entity kinds.
type Type int

const (
	TypeNone Type = iota
	TypePlayer
	TypeZombie
	TypeChicken
	TypeDroppedItem
	TypeRailLayer
	TypeTrain
	TypeTrainCar
)

// Mood is an entity's current high-level behavior selector. The behavior
// step functions act only on entities in a matching mood.
type Mood int

const (
	MoodIdle Mood = iota
	MoodWander
	MoodChase
)

// Alignment filters attacks so creatures don't savage their own kind.
type Alignment int

const (
	AlignNeutral Alignment = iota
	AlignPlayer
	AlignEnemy
)

// DrawLayer orders entity rendering.
type DrawLayer int

const (
	LayerBackground DrawLayer = iota
	LayerMiddle
	LayerForeground
)

// StepSound alternates between two footstep samples so walking doesn't
// sound like a metronome.
type StepSound int

const (
	StepSound1 StepSound = iota
	StepSound2
)

// Entity is one fat simulation record, owned exclusively by the Store at a
// fixed slot. Everything a behavior needs lives here; there is no component
// lookup at tick time.
type Entity struct {
	Active               bool
	MarkedForDestruction bool
	Type                 Type
	Handle               Handle

	// Impassable entities occupy their tile for collision purposes.
	Impassable bool
	// Attackable entities can take damage; scripted entities are immune.
	Attackable bool

	X, Y  float64 // world position, tile units, entity centered on tile
	VelX  float64
	VelY  float64
	SizeW float64
	SizeH float64
	Rot   float64 // degrees, leaning/corpse rotation
	Shake float64 // decaying visual jitter magnitude

	Health    int
	MaxHealth int

	MoveCooldown            float64 // seconds between grid moves
	MoveCooldownCountdown   float64
	AttackCooldown          float64
	AttackCooldownCountdown float64

	Alignment Alignment
	Mood      Mood

	// Scripted movement state: the cell this entity vacated last move, and
	// the entity it follows (train cars follow the vehicle ahead).
	VacatedX, VacatedY int
	Follow             Handle
	// Heading for entities that travel in a straight line.
	DirX, DirY int
	// Successor cars a train head still owes.
	CarsToSpawn int

	Growl     audio.Cue // zero CueNone means silent
	StepSound StepSound

	DrawLayer DrawLayer
	Sprite    sprite.Sprite

	Inventory item.Inventory

	// Held is the stack carried by a dropped-item world entity.
	Held item.Item
}

// TileX returns the entity's tile column (floored position).
func (e *Entity) TileX() int {
	return floorInt(e.X)
}

// TileY returns the entity's tile row (floored position).
func (e *Entity) TileY() int {
	return floorInt(e.Y)
}

// SwapStepSound alternates the footstep sample.
func (e *Entity) SwapStepSound() {
	if e.StepSound == StepSound1 {
		e.StepSound = StepSound2
	} else {
		e.StepSound = StepSound1
	}
}

// StepCue returns the audio cue for the entity's current footstep.
func (e *Entity) StepCue() audio.Cue {
	if e.StepSound == StepSound1 {
		return audio.CueStep1
	}
	return audio.CueStep2
}

// RandomizeStepSound gives the entity a random starting foot.
func (e *Entity) RandomizeStepSound(rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		e.StepSound = StepSound1
	} else {
		e.StepSound = StepSound2
	}
}

// reset clears the record back to defaults, preserving slot identity.
func (e *Entity) reset() {
	handle := e.Handle
	*e = Entity{
		Handle:     handle,
		Attackable: true,
		SizeW:      1.0,
		SizeH:      1.0,
		DrawLayer:  LayerMiddle,
	}
}

func floorInt(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
