package spatial

import (
	"testing"

	"ebiten-wilds/entity"
)

func TestAddRemoveMove(t *testing.T) {
	idx := NewIndex(8, 8)
	h := entity.Handle{Index: 1, Generation: 1}

	idx.Add(h, 2, 3)
	if got := idx.HandlesAt(2, 3); len(got) != 1 || got[0] != h {
		t.Fatalf("HandlesAt(2,3) = %v, want [%v]", got, h)
	}

	idx.Move(h, 2, 3, 4, 3)
	if got := idx.HandlesAt(2, 3); len(got) != 0 {
		t.Errorf("old cell still holds %v after move", got)
	}
	if got := idx.HandlesAt(4, 3); len(got) != 1 || got[0] != h {
		t.Errorf("HandlesAt(4,3) = %v, want [%v]", got, h)
	}

	idx.Remove(h, 4, 3)
	if got := idx.HandlesAt(4, 3); len(got) != 0 {
		t.Errorf("cell still holds %v after remove", got)
	}
}

func TestRemoveAbsentHandleIsNoOp(t *testing.T) {
	idx := NewIndex(8, 8)
	a := entity.Handle{Index: 1, Generation: 1}
	b := entity.Handle{Index: 2, Generation: 1}

	idx.Add(a, 0, 0)
	idx.Remove(b, 0, 0)
	if got := idx.HandlesAt(0, 0); len(got) != 1 || got[0] != a {
		t.Errorf("HandlesAt(0,0) = %v, want [%v]", got, a)
	}
}

func TestOutOfBoundsOperations(t *testing.T) {
	idx := NewIndex(4, 4)
	store := entity.NewStore()
	h := entity.Handle{Index: 1, Generation: 1}

	// Writes outside the grid are dropped, reads come back empty, and
	// occupancy reads as blocked.
	idx.Add(h, -1, 0)
	idx.Add(h, 0, 4)
	if got := idx.HandlesAt(-1, 0); got != nil {
		t.Errorf("HandlesAt(-1,0) = %v, want nil", got)
	}

	cases := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100},
	}
	for _, c := range cases {
		if !idx.OccupiedByImpassable(store, c.x, c.y, entity.Handle{}) {
			t.Errorf("OccupiedByImpassable(%d,%d) = false, want true out of bounds", c.x, c.y)
		}
	}
}

func TestOccupiedByImpassableSkipsStaleHandles(t *testing.T) {
	idx := NewIndex(4, 4)
	store := entity.NewStore()

	h, _ := store.Allocate()
	e, _ := store.Get(h)
	e.Impassable = true
	idx.Add(h, 1, 1)

	if !idx.OccupiedByImpassable(store, 1, 1, entity.Handle{}) {
		t.Fatal("live impassable entity not detected")
	}

	// Release the entity but leave the index entry stale for a tick.
	store.Release(h)
	if idx.OccupiedByImpassable(store, 1, 1, entity.Handle{}) {
		t.Error("stale handle treated as occupying")
	}
}

func TestOccupiedByImpassableIgnoresSelf(t *testing.T) {
	idx := NewIndex(4, 4)
	store := entity.NewStore()

	h, _ := store.Allocate()
	e, _ := store.Get(h)
	e.Impassable = true
	idx.Add(h, 2, 2)

	if idx.OccupiedByImpassable(store, 2, 2, h) {
		t.Error("entity blocks its own cell")
	}

	passable, _ := store.Allocate()
	idx.Add(passable, 2, 2)
	if idx.OccupiedByImpassable(store, 2, 2, h) {
		t.Error("passable entity treated as occupying")
	}
}

func TestAdjacentHandles(t *testing.T) {
	idx := NewIndex(4, 4)
	north := entity.Handle{Index: 1, Generation: 1}
	east := entity.Handle{Index: 2, Generation: 1}
	center := entity.Handle{Index: 3, Generation: 1}
	diagonal := entity.Handle{Index: 4, Generation: 1}

	idx.Add(north, 1, 0)
	idx.Add(east, 2, 1)
	idx.Add(center, 1, 1)
	idx.Add(diagonal, 2, 2)

	got := idx.AdjacentHandles(1, 1)
	if len(got) != 2 {
		t.Fatalf("AdjacentHandles = %v, want the two cardinal neighbors", got)
	}
	seen := map[entity.Handle]bool{}
	for _, h := range got {
		seen[h] = true
	}
	if !seen[north] || !seen[east] {
		t.Errorf("AdjacentHandles = %v, missing cardinal neighbors", got)
	}
	if seen[center] || seen[diagonal] {
		t.Errorf("AdjacentHandles = %v, includes center or diagonal", got)
	}
}

func TestHandlesInRect(t *testing.T) {
	idx := NewIndex(8, 8)
	in := entity.Handle{Index: 1, Generation: 1}
	out := entity.Handle{Index: 2, Generation: 1}

	idx.Add(in, 2, 2)
	idx.Add(out, 5, 5)

	got := idx.HandlesInRect(0, 0, 4, 4)
	if len(got) != 1 || got[0] != in {
		t.Errorf("HandlesInRect = %v, want [%v]", got, in)
	}
}
