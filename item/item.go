package item

import "ebiten-wilds/sprite"

// Type is the closed set of item kinds.
type Type int

const (
	TypeNone Type = iota
	TypeWall
	TypeMedkit
	TypeBandage
	TypeBandaid
	TypeFist
	TypeConductorHat
)

// Item is one stack of a single item type. Items exist only inside an
// inventory or inside a dropped-item entity in the world.
type Item struct {
	Type        Type
	Name        string
	Description string

	Placeable bool
	Usable    bool
	Droppable bool

	Count        int
	MaxCount     int
	ConsumeOnUse bool

	UseCooldown          float64 // seconds
	UseCooldownCountdown float64

	// Range checks are inclusive on both ends, in Chebyshev tile distance.
	MinRange int
	Range    int

	// Effect parameters read by the per-type use dispatch.
	HealAmount int
	HitDamage  int

	Sprite sprite.Sprite

	markedForDestruction bool
}

// New builds a fresh single-count stack of the given type.
func New(kind Type) Item {
	switch kind {
	case TypeWall:
		return Item{
			Type:         TypeWall,
			Name:         "Wall",
			Description:  "...a wall",
			Placeable:    true,
			Usable:       true,
			Droppable:    true,
			Count:        1,
			MaxCount:     99,
			ConsumeOnUse: true,
			UseCooldown:  0.1,
			MinRange:     1,
			Range:        2,
			Sprite:       sprite.Wall,
		}
	case TypeMedkit:
		return Item{
			Type:         TypeMedkit,
			Name:         "Medkit",
			Description:  "first aid, second aid, cool-aid",
			Usable:       true,
			Droppable:    true,
			Count:        1,
			MaxCount:     10,
			ConsumeOnUse: true,
			UseCooldown:  5.0,
			HealAmount:   50,
			Sprite:       sprite.Medkit,
		}
	case TypeBandage:
		return Item{
			Type:         TypeBandage,
			Name:         "Bandage",
			Description:  "a bandage to stop the bleeding",
			Usable:       true,
			Droppable:    true,
			Count:        1,
			MaxCount:     10,
			ConsumeOnUse: true,
			UseCooldown:  2.0,
			HealAmount:   20,
			Sprite:       sprite.Bandage,
		}
	case TypeBandaid:
		return Item{
			Type:         TypeBandaid,
			Name:         "Bandaid",
			Description:  "a bandaid for the little scrapes",
			Usable:       true,
			Droppable:    true,
			Count:        1,
			MaxCount:     20,
			ConsumeOnUse: true,
			UseCooldown:  0.2,
			HealAmount:   5,
			Sprite:       sprite.Bandaid,
		}
	case TypeFist:
		return Item{
			Type:        TypeFist,
			Name:        "Fist",
			Description: "your fist",
			Usable:      true,
			Droppable:   true,
			Count:       1,
			MaxCount:    1,
			UseCooldown: 0.2,
			MinRange:    1,
			Range:       1,
			HitDamage:   3,
			Sprite:      sprite.Fist,
		}
	case TypeConductorHat:
		return Item{
			Type:        TypeConductorHat,
			Name:        "Conductor Hat",
			Description: "all aboard",
			Usable:      true,
			Droppable:   true,
			Count:       1,
			MaxCount:    1,
			UseCooldown: 30.0,
			Sprite:      sprite.ConductorHat,
		}
	default:
		return Item{Type: TypeNone}
	}
}

// Stackable reports whether this stack can hold more than one item.
func (it *Item) Stackable() bool {
	return it.MaxCount > 1
}

// CanUse reports whether the item is usable right now.
func (it *Item) CanUse() bool {
	return it.Usable && it.UseCooldownCountdown <= 0 && it.Count > 0
}

// ResetCooldown starts the use cooldown after a successful use.
func (it *Item) ResetCooldown() {
	it.UseCooldownCountdown = it.UseCooldown
}

// MarkForDestruction flags the stack for removal on the next inventory
// cooldown sweep.
func (it *Item) MarkForDestruction() {
	it.markedForDestruction = true
}

// StepCooldown advances the use-cooldown countdown by dt seconds.
func (it *Item) StepCooldown(dt float64) {
	if it.UseCooldownCountdown > 0 {
		it.UseCooldownCountdown -= dt
		if it.UseCooldownCountdown < 0 {
			it.UseCooldownCountdown = 0
		}
	}
}
