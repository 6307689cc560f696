package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-wilds/audio"
	"ebiten-wilds/config"
	"ebiten-wilds/screens"
)

// Game implements ebiten.Game. It owns the audio service and the current
// screen, and swaps screens when one returns a transition sentinel.
type Game struct {
	settings config.Settings
	audio    *audio.Audio

	screen    screens.Screen
	lastFrame time.Time
}

// NewGame creates the game on the title screen.
func NewGame(settings config.Settings, au *audio.Audio) *Game {
	return &Game{
		settings:  settings,
		audio:     au,
		screen:    screens.NewTitleScreen(au),
		lastFrame: time.Now(),
	}
}

// Update runs the current screen and handles its transition requests.
func (g *Game) Update() error {
	now := time.Now()
	g.audio.StepCooldowns(now.Sub(g.lastFrame).Seconds())
	g.lastFrame = now

	err := g.screen.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrStartGame):
		g.screen = screens.NewPlayingScreen(g.settings, g.audio)
	case errors.Is(err, screens.ErrGameOver):
		points, deaths := 0, 0
		if playing, ok := g.screen.(*screens.PlayingScreen); ok {
			points, deaths = playing.Stats()
		}
		g.screen = screens.NewGameOverScreen(g.audio, points, deaths)
	case errors.Is(err, screens.ErrBackToTitle):
		g.screen = screens.NewTitleScreen(g.audio)
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
	return nil
}

// Draw delegates to the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
}

// Layout reports the fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
