package config

import "time"

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Window dimensions in tiles
	ScreenWidth  = 64
	ScreenHeight = 48

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// Simulation timing. One tick is a fixed slice of simulated time; the
// accumulator in game.go drains whole ticks regardless of frame rate.
const (
	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond

	// TickSeconds is the tick length as a float, used for cooldown arithmetic.
	TickSeconds = 1.0 / float64(TicksPerSecond)
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
