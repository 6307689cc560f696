package systems

import (
	"testing"

	"ebiten-wilds/entity"
	"ebiten-wilds/input"
	"ebiten-wilds/spawners"
	"ebiten-wilds/stage"
)

// countType tallies live entities of one kind.
func countType(store *entity.Store, kind entity.Type) int {
	n := 0
	for _, h := range store.ActiveHandles() {
		if e, ok := store.Get(h); ok && e.Type == kind {
			n++
		}
	}
	return n
}

func TestRailLayerConvertsRowAndSpawnsTrain(t *testing.T) {
	w := newTestWorld(t)
	row := 2 // far from the player so nothing interferes

	if _, ok := spawners.SpawnRailLayer(w, 0, row, 1, 0); !ok {
		t.Fatal("rail layer spawn failed")
	}

	// Enough ticks for the layer to cross and hand off.
	trainSeen := false
	for i := 0; i < 600; i++ {
		Step(w, NopAudio{}, input.Empty())
		if countType(w.Store, entity.TypeTrain) > 0 {
			trainSeen = true
			break
		}
	}
	if !trainSeen {
		t.Fatal("no train after the rail layer crossed the stage")
	}

	for x := 0; x < w.Stage.Width(); x++ {
		tile, _ := w.Stage.At(x, row)
		if tile.Type != stage.TileRail {
			t.Errorf("tile (%d,%d) = %v, want rail", x, row, tile.Type)
		}
	}
	if got := countType(w.Store, entity.TypeRailLayer); got != 0 {
		t.Errorf("%d rail layers still live after the handoff", got)
	}

	// The train starts at the beginning of the line.
	for _, h := range w.Store.ActiveHandles() {
		if e, _ := w.Store.Get(h); e.Type == entity.TypeTrain {
			if e.TileY() != row {
				t.Errorf("train on row %d, want %d", e.TileY(), row)
			}
		}
	}
}

func TestTrainCrushesEntitiesAndBreaksWalls(t *testing.T) {
	w := newTestWorld(t)
	row := 2

	z, ok := spawners.SpawnZombie(w, 10, row)
	if !ok {
		t.Fatal("zombie spawn failed")
	}
	freeze(t, w, z)

	spawners.SpawnRailLayer(w, 0, row, 1, 0)

	// Wait for the handoff, then drop a wall on the line ahead of the
	// train. The layer itself converts terrain, so a wall placed earlier
	// would already be rail.
	for i := 0; i < 600; i++ {
		Step(w, NopAudio{}, input.Empty())
		if countType(w.Store, entity.TypeTrain) > 0 {
			break
		}
	}
	if countType(w.Store, entity.TypeTrain) == 0 {
		t.Fatal("no train to run the crush against")
	}
	w.Stage.SetType(12, row, stage.TileWall)

	for i := 0; i < 3000; i++ {
		Step(w, NopAudio{}, input.Empty())
	}

	if w.Store.Alive(z) {
		t.Error("zombie survived the train")
	}
	if w.Points != 1 {
		t.Errorf("Points = %d after the train kill, want 1", w.Points)
	}
	tile, _ := w.Stage.At(12, row)
	if tile.Type != stage.TileRuin {
		t.Errorf("wall in the train's path = %v, want ruin", tile.Type)
	}
}

func TestTrainConsistLeavesTheStage(t *testing.T) {
	w := newTestWorld(t)
	row := 2
	spawners.SpawnRailLayer(w, 0, row, 1, 0)

	carsSeen := 0
	for i := 0; i < 6000; i++ {
		Step(w, NopAudio{}, input.Empty())
		if n := countType(w.Store, entity.TypeTrainCar); n > carsSeen {
			carsSeen = n
		}
	}

	if carsSeen == 0 {
		t.Error("the train never towed a car")
	}
	if got := countType(w.Store, entity.TypeTrain); got != 0 {
		t.Errorf("%d train heads still live after crossing", got)
	}
	if got := countType(w.Store, entity.TypeTrainCar); got != 0 {
		t.Errorf("%d train cars still live after crossing", got)
	}
	if got := countType(w.Store, entity.TypeRailLayer); got != 0 {
		t.Errorf("%d rail layers still live", got)
	}
}
