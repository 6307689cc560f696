package screens

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-wilds/audio"
	"ebiten-wilds/config"
	"ebiten-wilds/entity"
	"ebiten-wilds/input"
	"ebiten-wilds/item"
	"ebiten-wilds/particles"
	"ebiten-wilds/spawners"
	"ebiten-wilds/sprite"
	"ebiten-wilds/stage"
	"ebiten-wilds/systems"
	"ebiten-wilds/world"
)

// maxFrameTime caps how much real time one rendered frame may feed the
// tick accumulator. A long stall (window drag, breakpoint) turns into a
// slow-motion hiccup instead of a burst of hundreds of catch-up ticks.
const maxFrameTime = 250 * time.Millisecond

// cameraLerp is the per-frame fraction the camera closes toward the player.
const cameraLerp = 0.1

// whiteQuad is the 1x1 source image every entity and particle quad is
// drawn from, tinted and transformed per draw call.
var whiteQuad = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// PlayingScreen runs the simulation. Rendering happens every frame; the
// simulation advances only in whole fixed ticks drained from a real-time
// accumulator, so game speed is independent of the frame rate.
type PlayingScreen struct {
	world *world.World
	audio *audio.Audio

	camX, camY  float64 // top-left corner, pixels
	lastFrame   time.Time
	accumulator time.Duration
}

// NewPlayingScreen builds a fresh world from the settings and populates it.
func NewPlayingScreen(settings config.Settings, au *audio.Audio) *PlayingScreen {
	seed := settings.Stage.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := world.New(settings.Stage.Width, settings.Stage.Height, seed)
	spawners.Populate(w, settings.Spawn.Zombies, settings.Spawn.Chickens)

	s := &PlayingScreen{
		world:     w,
		audio:     au,
		lastFrame: time.Now(),
	}
	if x, y, ok := w.PlayerPos(); ok {
		s.camX = x*config.TileSize - config.WindowWidth/2
		s.camY = y*config.TileSize - config.WindowHeight/2
	}
	au.PlaySong(audio.SongPlaying)
	return s
}

// Stats reports the run's score for the game over screen.
func (s *PlayingScreen) Stats() (points, deaths int) {
	return s.world.Points, s.world.Deaths
}

// Update drains whole simulation ticks from the accumulated real time,
// then moves the camera. Edge-triggered intents go to the first drained
// tick only; catch-up ticks see held movement alone, so a lag spike can't
// replay a use or drop command.
func (s *PlayingScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrBackToTitle
	}
	if s.world.GameOver {
		return ErrGameOver
	}

	now := time.Now()
	frameTime := now.Sub(s.lastFrame)
	s.lastFrame = now
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	s.accumulator += frameTime

	snap := input.Poll(s.camX, s.camY)
	first := true
	for s.accumulator >= config.TickDuration {
		if first {
			systems.Step(s.world, s.audio, snap)
			first = false
		} else {
			systems.Step(s.world, s.audio, heldOnly(snap))
		}
		s.accumulator -= config.TickDuration
	}

	s.stepCamera()
	return nil
}

// heldOnly strips a snapshot down to its held movement intent.
func heldOnly(snap input.Snapshot) input.Snapshot {
	out := input.Empty()
	out.MoveLeft = snap.MoveLeft
	out.MoveRight = snap.MoveRight
	out.MoveUp = snap.MoveUp
	out.MoveDown = snap.MoveDown
	return out
}

// stepCamera eases the view toward the player. The camera stays put after
// the player dies so the game over moment doesn't snap away.
func (s *PlayingScreen) stepCamera() {
	x, y, ok := s.world.PlayerPos()
	if !ok {
		return
	}
	targetX := x*config.TileSize - config.WindowWidth/2
	targetY := y*config.TileSize - config.WindowHeight/2
	s.camX += (targetX - s.camX) * cameraLerp
	s.camY += (targetY - s.camY) * cameraLerp
}

// Draw renders terrain, particles, entities and the HUD back to front.
func (s *PlayingScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 14, 255})

	s.drawTiles(screen)
	s.drawParticles(screen, particles.LayerBackground)
	s.drawEntities(screen)
	s.drawParticles(screen, particles.LayerForeground)
	s.drawHUD(screen)
}

// tileColors maps terrain to its draw color. Variant 1 water gets a
// lighter shade in drawTiles for the shimmer.
var tileColors = map[stage.TileType]color.RGBA{
	stage.TileEmpty: {30, 28, 26, 255},
	stage.TileGrass: {52, 96, 50, 255},
	stage.TileSand:  {180, 165, 110, 255},
	stage.TileWater: {40, 70, 140, 255},
	stage.TileWall:  {110, 110, 120, 255},
	stage.TileRuin:  {70, 66, 62, 255},
	stage.TileRail:  {90, 80, 70, 255},
}

func (s *PlayingScreen) drawTiles(screen *ebiten.Image) {
	minX := int(math.Floor(s.camX / config.TileSize))
	minY := int(math.Floor(s.camY / config.TileSize))
	maxX := minX + config.ScreenWidth + 1
	maxY := minY + config.ScreenHeight + 1

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			t, ok := s.world.Stage.At(tx, ty)
			if !ok {
				continue
			}
			c := tileColors[t.Type]
			if t.Type == stage.TileWater && t.Variant == 1 {
				c = color.RGBA{50, 85, 160, 255}
			}

			px := float64(tx)*config.TileSize - s.camX
			py := float64(ty)*config.TileSize - s.camY
			if t.Shake > 0 {
				px += shakeJitter(s.world.Frame, tx, ty) * t.Shake
				py += shakeJitter(s.world.Frame, ty, tx) * t.Shake
			}
			vector.DrawFilledRect(screen, float32(px), float32(py), config.TileSize, config.TileSize, c, false)
		}
	}
}

// shakeJitter derives a small deterministic offset from the frame counter,
// so shaking tiles vibrate without a per-tile rng.
func shakeJitter(frame uint64, a, b int) float64 {
	n := frame*7 + uint64(a)*13 + uint64(b)*31
	return float64(n%5) - 2
}

func (s *PlayingScreen) drawEntities(screen *ebiten.Image) {
	for _, layer := range []entity.DrawLayer{entity.LayerBackground, entity.LayerMiddle, entity.LayerForeground} {
		for _, h := range s.world.Store.ActiveHandles() {
			e, ok := s.world.Store.Get(h)
			if !ok || e.DrawLayer != layer || e.Sprite == sprite.None {
				continue
			}
			s.drawQuad(screen,
				e.X*config.TileSize-s.camX,
				e.Y*config.TileSize-s.camY,
				e.SizeW*config.TileSize, e.SizeH*config.TileSize,
				e.Rot, e.Shake, 1.0, sprite.Color(e.Sprite))
		}
	}
}

func (s *PlayingScreen) drawParticles(screen *ebiten.Image, layer particles.Layer) {
	s.world.Particles.Each(layer, func(pt *particles.Particle) {
		alpha := pt.Alpha
		if pt.Initial > 0 {
			alpha *= float64(pt.Lifetime) / float64(pt.Initial)
		}
		s.drawQuad(screen,
			pt.X*config.TileSize-s.camX,
			pt.Y*config.TileSize-s.camY,
			pt.W, pt.H, pt.Rot, 0, alpha, sprite.Color(pt.Sprite))
	})
}

// drawQuad draws one rotated, tinted quad centered at (px, py) in screen
// pixels.
func (s *PlayingScreen) drawQuad(screen *ebiten.Image, px, py, w, h, rot, shake, alpha float64, c color.RGBA) {
	if shake > 0 {
		px += shakeJitter(s.world.Frame, int(px), int(py)) * shake
		py += shakeJitter(s.world.Frame, int(py), int(px)) * shake
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rot * math.Pi / 180)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(whiteQuad, op)
}

const (
	hudSlotSize = 28
	hudPadding  = 6
)

func (s *PlayingScreen) drawHUD(screen *ebiten.Image) {
	p, alive := s.world.PlayerEntity()

	// Health bar, top left.
	if alive {
		frac := float64(p.Health) / float64(p.MaxHealth)
		vector.DrawFilledRect(screen, 10, 10, 150, 12, color.RGBA{40, 40, 40, 255}, false)
		vector.DrawFilledRect(screen, 10, 10, float32(150*frac), 12, color.RGBA{200, 50, 50, 255}, false)
	}
	ebitenutil.DebugPrintAt(screen, "Points: "+strconv.Itoa(s.world.Points), 10, 28)

	if !alive {
		return
	}

	// Hotbar, bottom center.
	barWidth := item.MaxSlots*(hudSlotSize+hudPadding) - hudPadding
	startX := (config.WindowWidth - barWidth) / 2
	y := config.WindowHeight - hudSlotSize - 10

	for i := 0; i < item.MaxSlots; i++ {
		x := startX + i*(hudSlotSize+hudPadding)

		frame := color.RGBA{60, 60, 60, 255}
		if i == p.Inventory.SelectedIndex {
			frame = color.RGBA{230, 230, 120, 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), hudSlotSize, hudSlotSize, frame, false)
		vector.DrawFilledRect(screen, float32(x+2), float32(y+2), hudSlotSize-4, hudSlotSize-4, color.RGBA{25, 25, 25, 255}, false)

		stack, has := p.Inventory.Get(i)
		if !has {
			continue
		}
		vector.DrawFilledRect(screen, float32(x+6), float32(y+6), hudSlotSize-12, hudSlotSize-12, sprite.Color(stack.Sprite), false)
		if stack.Stackable() {
			ebitenutil.DebugPrintAt(screen, strconv.Itoa(stack.Count), x+2, y+hudSlotSize-16)
		}
		if stack.UseCooldownCountdown > 0 {
			frac := stack.UseCooldownCountdown / stack.UseCooldown
			vector.DrawFilledRect(screen, float32(x+2), float32(y+2), hudSlotSize-4, float32(float64(hudSlotSize-4)*frac), color.RGBA{0, 0, 0, 160}, false)
		}
	}

	if stack, has := p.Inventory.Selected(); has {
		ebitenutil.DebugPrintAt(screen, stack.Name, startX, y-16)
	}
}
