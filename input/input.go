// Package input turns raw ebiten key state into the per-tick snapshot the
// simulation consumes. The pipeline never touches ebiten directly; it only
// reads a Snapshot, which is what lets the tick logic run headless.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-wilds/config"
)

// Snapshot is one tick's worth of player intent.
type Snapshot struct {
	// Held movement intent.
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool

	// Edge-triggered item use, aimed at a neighbor tile or at self.
	UseLeft   bool
	UseRight  bool
	UseUp     bool
	UseDown   bool
	UseCenter bool

	Pickup bool
	Drop   bool

	SelectNext bool
	SelectPrev bool
	SelectSlot int // 0..9, or -1 for no selection change

	Confirm bool
	Cancel  bool

	// Pointer position in world tile coordinates.
	MouseTileX float64
	MouseTileY float64
}

// Empty returns a snapshot with no intent set.
func Empty() Snapshot {
	return Snapshot{SelectSlot: -1}
}

var slotKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0,
}

// Poll reads the current ebiten input state into a snapshot. camX/camY is
// the camera's top-left corner in pixels, used to map the pointer into
// world tiles.
func Poll(camX, camY float64) Snapshot {
	s := Empty()

	s.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	s.MoveRight = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	s.MoveUp = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	s.MoveDown = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	s.UseLeft = inpututil.IsKeyJustPressed(ebiten.KeyJ)
	s.UseRight = inpututil.IsKeyJustPressed(ebiten.KeyL)
	s.UseUp = inpututil.IsKeyJustPressed(ebiten.KeyI)
	s.UseDown = inpututil.IsKeyJustPressed(ebiten.KeyK)
	s.UseCenter = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	s.Pickup = inpututil.IsKeyJustPressed(ebiten.KeyE)
	s.Drop = inpututil.IsKeyJustPressed(ebiten.KeyQ)

	s.SelectNext = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	_, wheelY := ebiten.Wheel()
	if wheelY < 0 {
		s.SelectNext = true
	} else if wheelY > 0 {
		s.SelectPrev = true
	}
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectSlot = i
		}
	}

	s.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.Cancel = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	mx, my := ebiten.CursorPosition()
	s.MouseTileX = (float64(mx) + camX) / config.TileSize
	s.MouseTileY = (float64(my) + camY) / config.TileSize

	return s
}
