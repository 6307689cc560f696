package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-wilds/audio"
	"ebiten-wilds/config"
)

// TitleScreen is the start menu.
type TitleScreen struct {
	audio *audio.Audio
}

// NewTitleScreen creates the title screen and starts the title music.
func NewTitleScreen(au *audio.Audio) *TitleScreen {
	au.PlaySong(audio.SongTitle)
	return &TitleScreen{audio: au}
}

// Update waits for the player to start or quit.
func (s *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.audio.PlayCue(audio.CueConfirm)
		return ErrStartGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw draws the title card.
func (s *TitleScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 24, 18, 255})

	cx := float32(config.WindowWidth) / 2
	vector.DrawFilledRect(screen, cx-120, 140, 240, 60, color.RGBA{40, 80, 40, 255}, false)

	ebitenutil.DebugPrintAt(screen, "W I L D S", config.WindowWidth/2-30, 165)
	ebitenutil.DebugPrintAt(screen, "Enter: start    Esc: quit", config.WindowWidth/2-80, 260)
	ebitenutil.DebugPrintAt(screen, "WASD move, IJKL use item, E pickup, Q drop, 1-0 select", config.WindowWidth/2-170, 290)
}
