package particles

import (
	"math/rand"

	"ebiten-wilds/sprite"
)

// Effect templates. Each spawns a small arrangement of particles; the
// caller supplies the rng so effects stay on the world's random stream.

// BloodSplatter sprays droplets from a wound, biased along baseDir.
func BloodSplatter(pool *Pool, rng *rand.Rand, x, y, baseDirX, baseDirY, magnitude float64) {
	count := 4 + rng.Intn(5)
	for i := 0; i < count; i++ {
		pool.Spawn(Particle{
			X:        x,
			Y:        y,
			W:        3,
			H:        3,
			Rot:      rng.Float64()*90 - 45,
			Alpha:    0.9,
			Lifetime: 20 + rng.Intn(20),
			VelX:     (baseDirX*0.5 + rng.Float64() - 0.5) * 0.1 * magnitude,
			VelY:     (baseDirY*0.5 + rng.Float64() - 0.5) * 0.1 * magnitude,
			Sprite:   sprite.Blood,
			Layer:    LayerForeground,
		})
	}
}

// BloodPuddle leaves a slow-fading pool at an entity's feet.
func BloodPuddle(pool *Pool, x, y, magnitude float64) {
	pool.Spawn(Particle{
		X:        x,
		Y:        y,
		W:        10 * magnitude,
		H:        6 * magnitude,
		Alpha:    0.8,
		Lifetime: 60 * 20,
		Sprite:   sprite.BloodPuddle,
		Layer:    LayerBackground,
	})
}

// Footprint marks where a foot landed, alternating left and right of the
// walking line.
func Footprint(pool *Pool, rng *rand.Rand, x, y float64, leftFoot bool, spr sprite.Sprite) {
	if spr == sprite.None {
		return
	}
	const feetOffset = 0.2
	offset := feetOffset
	if leftFoot {
		offset = -feetOffset
	}
	pool.Spawn(Particle{
		X:        x + offset,
		Y:        y + 0.5,
		W:        8,
		H:        8,
		Rot:      rng.Float64()*20 - 10,
		Alpha:    0.1,
		Lifetime: 60,
		Sprite:   spr,
		Layer:    LayerBackground,
	})
}

// Corpse leaves a long-lived body sprite with the entity's final rotation.
func Corpse(pool *Pool, x, y, rot float64, spr sprite.Sprite) {
	if spr == sprite.None {
		return
	}
	pool.Spawn(Particle{
		X:        x,
		Y:        y,
		W:        16,
		H:        16,
		Rot:      rot,
		Alpha:    1.0,
		Lifetime: 60 * 15,
		Sprite:   spr,
		Layer:    LayerBackground,
	})
}

// Impact flashes an attack sprite at the point of contact.
func Impact(pool *Pool, rng *rand.Rand, x, y float64, spr sprite.Sprite) {
	pool.Spawn(Particle{
		X:        x,
		Y:        y,
		W:        16,
		H:        16,
		Rot:      rng.Float64()*90 - 45,
		Alpha:    1.0,
		Lifetime: 30,
		Sprite:   spr,
		Layer:    LayerForeground,
	})
}
