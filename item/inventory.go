package item

// MaxSlots is the fixed number of slots in any inventory.
const MaxSlots = 10

// Inventory is a fixed-slot container of item stacks with one selected
// slot. An entity owns its inventory outright.
type Inventory struct {
	slots         [MaxSlots]Item
	SelectedIndex int
}

// NewInventory creates an empty inventory with slot 0 selected.
func NewInventory() Inventory {
	return Inventory{}
}

// Insert adds a stack to the inventory.
//
// Priority order:
//  1. merge into existing non-full stacks of the same type, scanning every
//     slot;
//  2. place any remainder in the first empty slot;
//  3. if the inventory is completely full, swap with the selected slot.
//
// The returned item is the displaced stack (or unabsorbed remainder) and
// ok=false; the caller is responsible for dropping it into the world so
// nothing is silently destroyed. ok=true means everything was absorbed.
func (inv *Inventory) Insert(incoming Item) (Item, bool) {
	if incoming.Type == TypeNone || incoming.Count <= 0 {
		return Item{}, true
	}

	if incoming.Stackable() {
		for i := range inv.slots {
			slot := &inv.slots[i]
			if slot.Type != incoming.Type || slot.Count >= slot.MaxCount {
				continue
			}
			space := slot.MaxCount - slot.Count
			moved := min(space, incoming.Count)
			slot.Count += moved
			incoming.Count -= moved
			if incoming.Count == 0 {
				return Item{}, true
			}
		}
	}

	for i := range inv.slots {
		if inv.slots[i].Type == TypeNone {
			inv.slots[i] = incoming
			return Item{}, true
		}
	}

	// Inventory is full: swap with the selected slot.
	displaced := inv.slots[inv.SelectedIndex]
	inv.slots[inv.SelectedIndex] = incoming
	return displaced, false
}

// Get returns a copy of the stack at a slot index.
func (inv *Inventory) Get(index int) (Item, bool) {
	if index < 0 || index >= MaxSlots || inv.slots[index].Type == TypeNone {
		return Item{}, false
	}
	return inv.slots[index], true
}

// GetMut returns a pointer to the stack at a slot index, or nil if empty.
// The pointer must not be retained across inventory mutations.
func (inv *Inventory) GetMut(index int) *Item {
	if index < 0 || index >= MaxSlots || inv.slots[index].Type == TypeNone {
		return nil
	}
	return &inv.slots[index]
}

// Selected returns a copy of the selected stack.
func (inv *Inventory) Selected() (Item, bool) {
	return inv.Get(inv.SelectedIndex)
}

// SelectedMut returns a pointer to the selected stack, or nil if empty.
func (inv *Inventory) SelectedMut() *Item {
	return inv.GetMut(inv.SelectedIndex)
}

// RemoveCount removes up to count items from a slot, clearing the slot if
// it reaches zero.
func (inv *Inventory) RemoveCount(index, count int) {
	it := inv.GetMut(index)
	if it == nil {
		return
	}
	it.Count -= count
	if it.Count <= 0 {
		inv.slots[index] = Item{}
	}
}

// Clear empties a slot without returning its contents.
func (inv *Inventory) Clear(index int) {
	if index >= 0 && index < MaxSlots {
		inv.slots[index] = Item{}
	}
}

// SetSelected sets the selected slot, ignoring out-of-range indices.
func (inv *Inventory) SetSelected(index int) {
	if index >= 0 && index < MaxSlots {
		inv.SelectedIndex = index
	}
}

// SelectNext moves the selection to the next slot, wrapping around.
func (inv *Inventory) SelectNext() {
	inv.SelectedIndex = (inv.SelectedIndex + 1) % MaxSlots
}

// SelectPrev moves the selection to the previous slot, wrapping around.
func (inv *Inventory) SelectPrev() {
	inv.SelectedIndex = (inv.SelectedIndex + MaxSlots - 1) % MaxSlots
}

// StepCooldowns advances every stack's use cooldown and sweeps out stacks
// whose count was used down to zero.
func (inv *Inventory) StepCooldowns(dt float64) {
	for i := range inv.slots {
		if inv.slots[i].Type == TypeNone {
			continue
		}
		inv.slots[i].StepCooldown(dt)
		if inv.slots[i].markedForDestruction || inv.slots[i].Count <= 0 {
			inv.slots[i] = Item{}
		}
	}
}

// TotalCount sums the counts of every stack of the given type.
func (inv *Inventory) TotalCount(kind Type) int {
	total := 0
	for i := range inv.slots {
		if inv.slots[i].Type == kind {
			total += inv.slots[i].Count
		}
	}
	return total
}
