package entity

import (
	"math/rand"

	"ebiten-wilds/audio"
	"ebiten-wilds/item"
	"ebiten-wilds/sprite"
)

// Template initializers fill a freshly allocated record for one entity
// kind. Allocation and grid registration are the spawner's job; these only
// set fields.

// InitAsPlayer configures the player record and starting kit.
func InitAsPlayer(e *Entity) {
	e.Type = TypePlayer
	e.Sprite = sprite.Player
	e.Impassable = true
	e.Alignment = AlignPlayer
	e.MoveCooldown = 0.12
	e.Health = 100
	e.MaxHealth = 100

	e.Inventory = item.NewInventory()
	fist := item.New(item.TypeFist)
	e.Inventory.Insert(fist)

	wall := item.New(item.TypeWall)
	wall.Count = 99
	e.Inventory.Insert(wall)

	medkit := item.New(item.TypeMedkit)
	medkit.Count = 2
	e.Inventory.Insert(medkit)

	bandage := item.New(item.TypeBandage)
	bandage.Count = 5
	e.Inventory.Insert(bandage)

	bandaid := item.New(item.TypeBandaid)
	bandaid.Count = 20
	e.Inventory.Insert(bandaid)

	hat := item.New(item.TypeConductorHat)
	e.Inventory.Insert(hat)
}

// InitAsZombie configures a wandering zombie.
func InitAsZombie(e *Entity, rng *rand.Rand) {
	e.Type = TypeZombie
	e.Sprite = sprite.Zombie
	e.Impassable = true
	e.Alignment = AlignEnemy
	e.Mood = MoodWander
	e.MoveCooldown = 0.8
	e.AttackCooldown = 1.0
	e.Health = 40
	e.MaxHealth = 40

	// Desync the horde: random phase on the move timer, random foot.
	e.MoveCooldownCountdown = rng.Float64() * e.MoveCooldown
	e.RandomizeStepSound(rng)

	if rng.Intn(2) == 0 {
		e.Growl = audio.CueZombieGrowl1
	} else {
		e.Growl = audio.CueZombieGrowl2
	}
}

// InitAsChicken configures a neutral wanderer in one of three statures.
func InitAsChicken(e *Entity, rng *rand.Rand) {
	e.Type = TypeChicken
	e.Impassable = true
	e.Alignment = AlignNeutral
	e.Mood = MoodWander

	switch rng.Intn(3) {
	case 0: // chick
		e.Sprite = sprite.Chick
		e.MoveCooldown = 0.3
		e.SizeW, e.SizeH = 0.5, 0.5
		e.Health = 1
		e.MaxHealth = 1
		e.Growl = audio.CueChick
	case 1: // hen
		e.Sprite = sprite.Hen
		e.MoveCooldown = 0.5
		e.Health = 3
		e.MaxHealth = 3
		e.Growl = audio.CueHen
	default: // rooster
		e.Sprite = sprite.Rooster
		e.MoveCooldown = 0.7
		e.Health = 30
		e.MaxHealth = 30
		e.Growl = audio.CueRooster
	}

	e.MoveCooldownCountdown = rng.Float64() * e.MoveCooldown
	e.RandomizeStepSound(rng)
}

// InitAsDroppedItem configures a world entity carrying an item stack.
func InitAsDroppedItem(e *Entity, stack item.Item) {
	e.Type = TypeDroppedItem
	e.Sprite = stack.Sprite
	if e.Sprite == sprite.None {
		e.Sprite = sprite.ItemSack
	}
	e.Impassable = false
	e.Attackable = false
	e.Alignment = AlignNeutral
	e.SizeW, e.SizeH = 0.6, 0.6
	e.DrawLayer = LayerBackground
	e.Health = 1
	e.MaxHealth = 1
	e.Held = stack
}

// InitAsRailLayer configures the invisible scripted entity that zips
// across the stage converting tiles to rail. It ignores collision and
// cannot be hurt.
func InitAsRailLayer(e *Entity, dirX, dirY int) {
	e.Type = TypeRailLayer
	e.Sprite = sprite.None
	e.Impassable = false
	e.Attackable = false
	e.Alignment = AlignNeutral
	e.MoveCooldown = 0.01
	e.MoveCooldownCountdown = e.MoveCooldown
	e.Health = 1
	e.MaxHealth = 1
	e.DirX, e.DirY = dirX, dirY
}

// InitAsTrain configures the train head. It follows rails and flattens
// whatever stands on them.
func InitAsTrain(e *Entity, dirX, dirY int) {
	e.Type = TypeTrain
	e.Sprite = sprite.TrainHead
	e.Impassable = true
	e.Attackable = false
	e.Alignment = AlignNeutral
	e.MoveCooldown = 0.08
	e.MoveCooldownCountdown = e.MoveCooldown
	e.Health = 1
	e.MaxHealth = 1
	e.SizeW, e.SizeH = 1.0, 1.0
	e.DirX, e.DirY = dirX, dirY
	e.CarsToSpawn = 4
}

// InitAsTrainCar configures a car that follows the vehicle ahead of it.
func InitAsTrainCar(e *Entity, follow Handle) {
	e.Type = TypeTrainCar
	e.Sprite = sprite.TrainCar
	e.Impassable = true
	e.Attackable = false
	e.Alignment = AlignNeutral
	e.MoveCooldown = 0.08
	e.MoveCooldownCountdown = e.MoveCooldown
	e.Health = 1
	e.MaxHealth = 1
	e.Follow = follow
}
