package item

import "testing"

func TestInsertMergesIntoExistingStacks(t *testing.T) {
	inv := NewInventory()

	wall := New(TypeWall)
	wall.Count = 90
	inv.Insert(wall)

	more := New(TypeWall)
	more.Count = 20
	if _, ok := inv.Insert(more); !ok {
		t.Fatal("insert with free slots reported overflow")
	}

	// 90 + 20 = one full stack of 99 plus a remainder of 11.
	if got := inv.TotalCount(TypeWall); got != 110 {
		t.Errorf("TotalCount = %d, want 110", got)
	}
	first, _ := inv.Get(0)
	if first.Count != 99 {
		t.Errorf("first stack = %d, want full 99", first.Count)
	}
	second, _ := inv.Get(1)
	if second.Count != 11 {
		t.Errorf("remainder stack = %d, want 11", second.Count)
	}
}

func TestInsertSwapsWhenFull(t *testing.T) {
	inv := NewInventory()
	for i := 0; i < MaxSlots; i++ {
		full := New(TypeWall)
		full.Count = full.MaxCount
		inv.Insert(full)
	}
	inv.SetSelected(3)

	incoming := New(TypeMedkit)
	displaced, ok := inv.Insert(incoming)
	if ok {
		t.Fatal("insert into a full inventory reported full absorption")
	}
	if displaced.Type != TypeWall || displaced.Count != 99 {
		t.Errorf("displaced stack = %+v, want full wall stack", displaced)
	}
	selected, _ := inv.Selected()
	if selected.Type != TypeMedkit {
		t.Errorf("selected slot holds %v after swap, want medkit", selected.Type)
	}

	// Nothing was created or destroyed: 9 full wall stacks remain.
	if got := inv.TotalCount(TypeWall); got != 9*99 {
		t.Errorf("wall count after swap = %d, want %d", got, 9*99)
	}
}

func TestInsertNonStackableTakesOwnSlot(t *testing.T) {
	inv := NewInventory()
	inv.Insert(New(TypeFist))
	inv.Insert(New(TypeFist))

	if got := inv.TotalCount(TypeFist); got != 2 {
		t.Fatalf("TotalCount = %d, want 2", got)
	}
	a, _ := inv.Get(0)
	b, _ := inv.Get(1)
	if a.Count != 1 || b.Count != 1 {
		t.Error("non-stackable items merged into one slot")
	}
}

func TestSelectionWraps(t *testing.T) {
	inv := NewInventory()

	inv.SelectPrev()
	if inv.SelectedIndex != MaxSlots-1 {
		t.Errorf("SelectPrev from 0 = %d, want %d", inv.SelectedIndex, MaxSlots-1)
	}
	inv.SelectNext()
	if inv.SelectedIndex != 0 {
		t.Errorf("SelectNext wrap = %d, want 0", inv.SelectedIndex)
	}

	inv.SetSelected(-1)
	inv.SetSelected(MaxSlots)
	if inv.SelectedIndex != 0 {
		t.Errorf("out-of-range SetSelected moved selection to %d", inv.SelectedIndex)
	}
}

func TestCooldownGatesUse(t *testing.T) {
	inv := NewInventory()
	inv.Insert(New(TypeBandage))

	it := inv.SelectedMut()
	if !it.CanUse() {
		t.Fatal("fresh item not usable")
	}
	it.ResetCooldown()
	if it.CanUse() {
		t.Fatal("item usable while cooling down")
	}

	// 2.0 seconds of cooldown at dt 0.5 per step.
	for i := 0; i < 3; i++ {
		inv.StepCooldowns(0.5)
	}
	if inv.SelectedMut().CanUse() {
		t.Error("item usable before cooldown elapsed")
	}
	inv.StepCooldowns(0.5)
	if !inv.SelectedMut().CanUse() {
		t.Error("item not usable after cooldown elapsed")
	}
}

func TestStepCooldownsSweepsSpentStacks(t *testing.T) {
	inv := NewInventory()
	inv.Insert(New(TypeBandaid))

	it := inv.SelectedMut()
	it.Count = 0
	it.MarkForDestruction()

	inv.StepCooldowns(0.1)
	if _, ok := inv.Selected(); ok {
		t.Error("spent stack survived the cooldown sweep")
	}
	if got := inv.TotalCount(TypeBandaid); got != 0 {
		t.Errorf("TotalCount = %d, want 0", got)
	}
}

func TestRemoveCountClearsEmptiedSlot(t *testing.T) {
	inv := NewInventory()
	wall := New(TypeWall)
	wall.Count = 3
	inv.Insert(wall)

	inv.RemoveCount(0, 2)
	if got := inv.TotalCount(TypeWall); got != 1 {
		t.Errorf("TotalCount = %d, want 1", got)
	}
	inv.RemoveCount(0, 5)
	if _, ok := inv.Get(0); ok {
		t.Error("slot not cleared after count hit zero")
	}
}
