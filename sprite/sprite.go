package sprite

import "image/color"

// Sprite identifies one drawable tag. The renderer maps each tag to a
// colored quad; entities and particles only carry the tag.
type Sprite int

const (
	None Sprite = iota
	Player
	PlayerDead
	PlayerFootprint
	Zombie
	ZombieDead
	ZombieFootprint
	ZombieScratch
	Chick
	Hen
	Rooster
	ChickenDead
	Fist
	Wall
	Medkit
	Bandage
	Bandaid
	ConductorHat
	TrainHead
	TrainCar
	Blood
	BloodPuddle
	ItemSack
)

// colors is the per-tag lookup used by the renderer. Unknown tags fall back
// to magenta so a missing mapping is visible instead of invisible.
var colors = map[Sprite]color.RGBA{
	Player:          {235, 235, 235, 255},
	PlayerDead:      {150, 150, 150, 255},
	PlayerFootprint: {90, 90, 90, 255},
	Zombie:          {70, 160, 70, 255},
	ZombieDead:      {50, 100, 50, 255},
	ZombieFootprint: {40, 70, 40, 255},
	ZombieScratch:   {200, 220, 180, 255},
	Chick:           {250, 240, 120, 255},
	Hen:             {230, 220, 200, 255},
	Rooster:         {220, 120, 80, 255},
	ChickenDead:     {160, 140, 120, 255},
	Fist:            {240, 200, 170, 255},
	Wall:            {110, 110, 120, 255},
	Medkit:          {220, 60, 60, 255},
	Bandage:         {240, 240, 240, 255},
	Bandaid:         {250, 210, 170, 255},
	ConductorHat:    {40, 40, 160, 255},
	TrainHead:       {40, 40, 50, 255},
	TrainCar:        {70, 60, 60, 255},
	Blood:           {170, 20, 20, 255},
	BloodPuddle:     {120, 10, 10, 255},
	ItemSack:        {170, 140, 90, 255},
}

// Color returns the draw color for a sprite tag.
func Color(s Sprite) color.RGBA {
	if c, ok := colors[s]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}
