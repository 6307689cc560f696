package audio

// Cue identifies a one-shot sound effect. The simulation requests cues by
// tag; whether a sample is actually loaded for the tag is this package's
// concern alone.
type Cue int

const (
	CueNone Cue = iota
	CueConfirm
	CueStep1
	CueStep2
	CueBlocked
	CuePunch
	CueScratch
	CueZombieGrowl1
	CueZombieGrowl2
	CueChick
	CueHen
	CueRooster
	CueCrunch1
	CueCrunch2
	CueBoxBreak
	CueBlockLand
	CueClothRip
	CueCantUse
	CueTrainHorn
)

// cueFiles maps each cue to its sample under assets/sounds.
var cueFiles = map[Cue]string{
	CueConfirm:      "confirm.ogg",
	CueStep1:        "step1.ogg",
	CueStep2:        "step2.ogg",
	CueBlocked:      "hit_block.ogg",
	CuePunch:        "punch.ogg",
	CueScratch:      "zombie_scratch.ogg",
	CueZombieGrowl1: "zombie_growl1.ogg",
	CueZombieGrowl2: "zombie_growl2.ogg",
	CueChick:        "chick.ogg",
	CueHen:          "hen.ogg",
	CueRooster:      "rooster.ogg",
	CueCrunch1:      "animal_crush1.ogg",
	CueCrunch2:      "animal_crush2.ogg",
	CueBoxBreak:     "box_break.ogg",
	CueBlockLand:    "block_land.ogg",
	CueClothRip:     "cloth_rip.ogg",
	CueCantUse:      "cant_use.ogg",
	CueTrainHorn:    "train_horn.ogg",
}

// Song identifies a looping music track under assets/music.
type Song int

const (
	SongNone Song = iota
	SongTitle
	SongPlaying
)

var songFiles = map[Song]string{
	SongTitle:   "title.ogg",
	SongPlaying: "playing.ogg",
}
