package systems

import (
	"math"

	"ebiten-wilds/audio"
	"ebiten-wilds/world"
)

// CuePlayer is the slice of the audio service the simulation needs. The
// real implementation is audio.Audio; tests pass NopAudio.
type CuePlayer interface {
	PlayCue(cue audio.Cue)
	PlayCueScaled(cue audio.Cue, scale float64)
}

// NopAudio is a CuePlayer that discards everything.
type NopAudio struct{}

func (NopAudio) PlayCue(audio.Cue)                {}
func (NopAudio) PlayCueScaled(audio.Cue, float64) {}

// blockedCue is what a failed move sounds like.
const blockedCue = audio.CueBlocked

// Hearing radii in tiles. Footsteps carry half as far as everything else.
const (
	BaseHearDistance = 16.0
	StepHearDistance = 8.0
)

// Loudness computes the linear distance falloff for a sound at (x, y):
// full volume at the listener (the player), zero at hearDistance and
// beyond. With no live player nothing is heard.
func Loudness(w *world.World, x, y, hearDistance float64) float64 {
	px, py, ok := w.PlayerPos()
	if !ok {
		return 0
	}
	dist := math.Hypot(x-px, y-py)
	if dist >= hearDistance {
		return 0
	}
	return 1.0 - dist/hearDistance
}

// playAt plays a cue scaled by distance falloff from the player, dropping
// it entirely when out of earshot.
func playAt(w *world.World, au CuePlayer, cue audio.Cue, x, y, hearDistance float64) {
	loudness := Loudness(w, x, y, hearDistance)
	if loudness > 0 {
		au.PlayCueScaled(cue, loudness)
	}
}
