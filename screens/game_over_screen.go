package screens

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-wilds/audio"
	"ebiten-wilds/config"
)

// GameOverScreen shows the run's score and offers a restart.
type GameOverScreen struct {
	audio  *audio.Audio
	points int
	deaths int
}

// NewGameOverScreen creates the game over screen for a finished run.
func NewGameOverScreen(au *audio.Audio, points, deaths int) *GameOverScreen {
	au.StopSong()
	return &GameOverScreen{audio: au, points: points, deaths: deaths}
}

// Update waits for a restart or a return to the title.
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.audio.PlayCue(audio.CueConfirm)
		return ErrStartGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrBackToTitle
	}
	return nil
}

// Draw draws the score card.
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 12, 12, 255})

	cx := float32(config.WindowWidth) / 2
	vector.DrawFilledRect(screen, cx-140, 130, 280, 100, color.RGBA{60, 25, 25, 255}, false)

	ebitenutil.DebugPrintAt(screen, "Y O U   D I E D", config.WindowWidth/2-50, 150)
	ebitenutil.DebugPrintAt(screen, "Points: "+strconv.Itoa(s.points), config.WindowWidth/2-40, 180)
	ebitenutil.DebugPrintAt(screen, "Deaths: "+strconv.Itoa(s.deaths), config.WindowWidth/2-40, 200)
	ebitenutil.DebugPrintAt(screen, "Enter: play again    Esc: title", config.WindowWidth/2-100, 260)
}
