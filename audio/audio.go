package audio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const sampleRate = 44100

// cueCooldown is the minimum spacing between two plays of the same cue.
// Without it a pile of zombies attacking on the same tick turns into noise.
const cueCooldown = 0.1

// Audio owns the ebiten audio context and all loaded samples. It is the
// "audio service" collaborator: the simulation asks for cues by tag and
// supplies a volume scale; mixing and device handling live here.
type Audio struct {
	ctx *audio.Context

	samples map[Cue][]byte
	songs   map[Song][]byte

	currentSong   Song
	currentPlayer *audio.Player

	musicVolume float64
	sfxVolume   float64

	cooldowns map[Cue]float64
}

// New creates the audio service and loads every known sample from the
// assets directory. Missing or undecodable files are skipped with a
// warning; the game plays silently for those cues.
func New(assetsDir string, musicVolume, sfxVolume float64) *Audio {
	a := &Audio{
		ctx:         audio.NewContext(sampleRate),
		samples:     make(map[Cue][]byte),
		songs:       make(map[Song][]byte),
		musicVolume: clamp01(musicVolume),
		sfxVolume:   clamp01(sfxVolume),
		cooldowns:   make(map[Cue]float64),
	}

	for cue, name := range cueFiles {
		data, err := decodeOgg(filepath.Join(assetsDir, "sounds", name))
		if err != nil {
			log.Warn("sound not loaded", "file", name, "err", err)
			continue
		}
		a.samples[cue] = data
	}
	for song, name := range songFiles {
		data, err := decodeOgg(filepath.Join(assetsDir, "music", name))
		if err != nil {
			log.Warn("music not loaded", "file", name, "err", err)
			continue
		}
		a.songs[song] = data
	}
	log.Info("audio ready", "sounds", len(a.samples), "songs", len(a.songs))
	return a
}

// decodeOgg reads a vorbis file into raw PCM so each play can get its own
// cheap byte-reader player.
func decodeOgg(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := vorbis.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// PlayCue plays a one-shot sound effect at full sfx volume.
func (a *Audio) PlayCue(cue Cue) {
	a.PlayCueScaled(cue, 1.0)
}

// PlayCueScaled plays a one-shot sound effect with the given volume scale.
// The cue is dropped if it is still on its per-cue cooldown.
func (a *Audio) PlayCueScaled(cue Cue, scale float64) {
	if a.cooldowns[cue] > 0 {
		return
	}
	data, ok := a.samples[cue]
	if !ok {
		return
	}

	player := a.ctx.NewPlayerFromBytes(data)
	player.SetVolume(a.sfxVolume * clamp01(scale))
	player.Play()

	a.cooldowns[cue] = cueCooldown
}

// PlaySong starts a music track, stopping any current one. Restarting the
// same track is a no-op.
func (a *Audio) PlaySong(song Song) {
	if a.currentSong == song {
		return
	}
	a.StopSong()

	data, ok := a.songs[song]
	if !ok {
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := a.ctx.NewPlayer(loop)
	if err != nil {
		log.Warn("music player failed", "err", err)
		return
	}
	player.SetVolume(a.musicVolume)
	player.Play()
	a.currentSong = song
	a.currentPlayer = player
}

// StopSong stops the current music track, if any.
func (a *Audio) StopSong() {
	if a.currentPlayer != nil {
		a.currentPlayer.Close()
		a.currentPlayer = nil
	}
	a.currentSong = SongNone
}

// StepCooldowns advances the per-cue cooldown timers. Called once per
// rendered frame with the real elapsed time.
func (a *Audio) StepCooldowns(dt float64) {
	for cue, remaining := range a.cooldowns {
		remaining -= dt
		if remaining <= 0 {
			delete(a.cooldowns, cue)
		} else {
			a.cooldowns[cue] = remaining
		}
	}
}

// SetMusicVolume adjusts the music volume, including the playing track.
func (a *Audio) SetMusicVolume(v float64) {
	a.musicVolume = clamp01(v)
	if a.currentPlayer != nil {
		a.currentPlayer.SetVolume(a.musicVolume)
	}
}

// SetSfxVolume adjusts the volume used for subsequent cues.
func (a *Audio) SetSfxVolume(v float64) {
	a.sfxVolume = clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
