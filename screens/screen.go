package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one game screen (title, playing, game over).
type Screen interface {
	// Update advances the screen by one frame. Transition requests come
	// back as the sentinel errors below.
	Update() error
	// Draw draws the screen
	Draw(screen *ebiten.Image)
}

// Sentinel errors used to request screen transitions
var (
	ErrStartGame   = errors.New("start game")
	ErrGameOver    = errors.New("game over")
	ErrBackToTitle = errors.New("back to title")
	ErrQuit        = errors.New("quit")
)
