package systems

import (
	"ebiten-wilds/audio"
	"ebiten-wilds/entity"
	"ebiten-wilds/item"
	"ebiten-wilds/spawners"
	"ebiten-wilds/stage"
	"ebiten-wilds/world"
)

// stepInventoryCommands resolves the tick's slot selection, drop, pickup
// and item-use intents against the player's inventory.
func stepInventoryCommands(w *world.World, au CuePlayer, snap Snapshot) {
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}

	switch {
	case snap.SelectSlot >= 0:
		p.Inventory.SetSelected(snap.SelectSlot)
	case snap.SelectNext:
		p.Inventory.SelectNext()
	case snap.SelectPrev:
		p.Inventory.SelectPrev()
	}

	if snap.Drop {
		dropSelected(w, au)
	}
	if snap.Pickup {
		pickupNearby(w, au)
	}

	if dirX, dirY, aimed := useAim(snap); aimed {
		useSelected(w, au, dirX, dirY)
	}
}

// useAim extracts the use direction from the snapshot. (0,0) aims at the
// player's own tile.
func useAim(snap Snapshot) (dirX, dirY int, aimed bool) {
	switch {
	case snap.UseLeft:
		return -1, 0, true
	case snap.UseRight:
		return 1, 0, true
	case snap.UseUp:
		return 0, -1, true
	case snap.UseDown:
		return 0, 1, true
	case snap.UseCenter:
		return 0, 0, true
	default:
		return 0, 0, false
	}
}

// dropSelected moves the selected stack out of the inventory into a
// dropped-item entity on a nearby open tile.
func dropSelected(w *world.World, au CuePlayer) {
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}
	stack, has := p.Inventory.Selected()
	if !has || !stack.Droppable {
		au.PlayCue(audio.CueCantUse)
		return
	}
	slot := p.Inventory.SelectedIndex
	tileX, tileY := p.TileX(), p.TileY()

	dropX, dropY, found := w.FindOpenTile(tileX, tileY, 1)
	if !found {
		dropX, dropY = tileX, tileY
	}

	// The stack only leaves the inventory if the entity spawn succeeds;
	// a full pool must not eat the player's items.
	if _, ok := spawners.SpawnDroppedItem(w, stack, dropX, dropY); !ok {
		au.PlayCue(audio.CueCantUse)
		return
	}
	if p, ok := w.PlayerEntity(); ok {
		p.Inventory.Clear(slot)
	}
	au.PlayCue(audio.CueConfirm)
}

// pickupNearby collects the first dropped item on the player's tile or a
// neighboring one. A swap-out displaced by a full inventory goes straight
// back to the ground where the pickup came from.
func pickupNearby(w *world.World, au CuePlayer) {
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}
	tileX, tileY := p.TileX(), p.TileY()

	candidates := append([]entity.Handle(nil), w.Grid.HandlesAt(tileX, tileY)...)
	candidates = append(candidates, w.Grid.AdjacentHandles(tileX, tileY)...)

	for _, h := range candidates {
		e, ok := w.Store.Get(h)
		if !ok || e.Type != entity.TypeDroppedItem || e.MarkedForDestruction {
			continue
		}
		stack := e.Held
		groundX, groundY := e.TileX(), e.TileY()
		e.MarkedForDestruction = true

		displaced := item.Item{}
		absorbed := true
		if p, ok := w.PlayerEntity(); ok {
			displaced, absorbed = p.Inventory.Insert(stack)
		}
		if !absorbed && displaced.Type != item.TypeNone {
			spawners.SpawnDroppedItem(w, displaced, groundX, groundY)
		}
		au.PlayCue(audio.CueConfirm)
		return
	}
}

// useSelected dispatches the selected item's effect at the aimed tile and,
// on success, pays the cooldown and consumption cost.
func useSelected(w *world.World, au CuePlayer, dirX, dirY int) {
	p, ok := w.PlayerEntity()
	if !ok {
		return
	}
	stack, has := p.Inventory.Selected()
	if !has {
		return
	}
	if !stack.CanUse() {
		au.PlayCue(audio.CueCantUse)
		return
	}
	slot := p.Inventory.SelectedIndex
	targetX := p.TileX() + dirX
	targetY := p.TileY() + dirY

	used := false
	switch {
	case stack.HealAmount > 0:
		used = useHeal(w, au, stack)
	case stack.Type == item.TypeWall:
		used = usePlaceWall(w, au, stack, targetX, targetY)
	case stack.Type == item.TypeFist:
		used = useFist(w, au, stack, targetX, targetY, dirX, dirY)
	case stack.Type == item.TypeConductorHat:
		used = useConductorHat(w, au)
	}

	if !used {
		au.PlayCue(audio.CueCantUse)
		return
	}

	// Re-acquire the slot: the effect may have re-entered the store.
	p, ok = w.PlayerEntity()
	if !ok {
		return
	}
	it := p.Inventory.GetMut(slot)
	if it == nil {
		return
	}
	it.ResetCooldown()
	if it.ConsumeOnUse && it.Stackable() {
		it.Count--
		if it.Count <= 0 {
			it.MarkForDestruction()
		}
	}
}

// useHeal restores the player's health; a full player can't burn the item.
func useHeal(w *world.World, au CuePlayer, stack item.Item) bool {
	p, ok := w.PlayerEntity()
	if !ok || p.Health >= p.MaxHealth {
		return false
	}
	p.Health += stack.HealAmount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	au.PlayCue(audio.CueClothRip)
	return true
}

// usePlaceWall builds a wall tile at the aimed cell: in range, on
// buildable ground, and not under anyone's feet.
func usePlaceWall(w *world.World, au CuePlayer, stack item.Item, targetX, targetY int) bool {
	p, ok := w.PlayerEntity()
	if !ok {
		return false
	}
	dist := chebyshev(p.TileX(), p.TileY(), targetX, targetY)
	if dist < stack.MinRange || dist > stack.Range {
		return false
	}
	t, inBounds := w.Stage.At(targetX, targetY)
	if !inBounds || !stage.Buildable(t.Type) {
		return false
	}
	if w.Grid.OccupiedByImpassable(w.Store, targetX, targetY, entity.Handle{}) {
		return false
	}

	w.Stage.SetType(targetX, targetY, stage.TileWall)
	playAt(w, au, audio.CueBlockLand, float64(targetX)+0.5, float64(targetY)+0.5, BaseHearDistance)
	return true
}

// useFist punches the aimed tile: a live attackable entity first, the
// terrain second.
func useFist(w *world.World, au CuePlayer, stack item.Item, targetX, targetY, dirX, dirY int) bool {
	if dirX == 0 && dirY == 0 {
		return false // no punching yourself
	}
	p, ok := w.PlayerEntity()
	if !ok {
		return false
	}
	dist := chebyshev(p.TileX(), p.TileY(), targetX, targetY)
	if dist < stack.MinRange || dist > stack.Range {
		return false
	}

	for _, h := range w.Grid.HandlesAt(targetX, targetY) {
		if h == w.Player {
			continue
		}
		if e, ok := w.Store.Get(h); ok && e.Attackable {
			Attack(w, au, w.Player, h, AttackPunch)
			return true
		}
	}

	return DamageTile(w, au, targetX, targetY, stack.HitDamage, stage.DamagePunch)
}

// useConductorHat summons the rail layer at the stage edge on the
// player's row. All aboard.
func useConductorHat(w *world.World, au CuePlayer) bool {
	p, ok := w.PlayerEntity()
	if !ok {
		return false
	}
	row := p.TileY()
	if _, ok := spawners.SpawnRailLayer(w, 0, row, 1, 0); !ok {
		return false
	}
	au.PlayCue(audio.CueTrainHorn)
	return true
}
