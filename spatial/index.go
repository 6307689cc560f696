// Package spatial maintains the per-tile occupancy index: for every grid
// cell, the handles of entities believed to stand there. Cells may lag one
// tick behind a destroyed entity, so every consumer resolves handles
// through the entity store and skips the stale ones.
package spatial

import "ebiten-wilds/entity"

// Index is a grid of handle lists sized to the stage.
type Index struct {
	width  int
	height int
	cells  [][]entity.Handle
}

// NewIndex creates an empty index covering width x height tiles.
func NewIndex(width, height int) *Index {
	return &Index{
		width:  width,
		height: height,
		cells:  make([][]entity.Handle, width*height),
	}
}

func (idx *Index) inBounds(x, y int) bool {
	return x >= 0 && x < idx.width && y >= 0 && y < idx.height
}

// Add registers a handle at a cell. Out-of-bounds coordinates are dropped.
func (idx *Index) Add(h entity.Handle, x, y int) {
	if !idx.inBounds(x, y) {
		return
	}
	idx.cells[y*idx.width+x] = append(idx.cells[y*idx.width+x], h)
}

// Remove deletes a handle from a cell. Out-of-bounds coordinates and
// absent handles are no-ops.
func (idx *Index) Remove(h entity.Handle, x, y int) {
	if !idx.inBounds(x, y) {
		return
	}
	cell := idx.cells[y*idx.width+x]
	for i := range cell {
		if cell[i] == h {
			cell[i] = cell[len(cell)-1]
			idx.cells[y*idx.width+x] = cell[:len(cell)-1]
			return
		}
	}
}

// Move relocates a handle between cells, as remove-then-add.
func (idx *Index) Move(h entity.Handle, fromX, fromY, toX, toY int) {
	idx.Remove(h, fromX, fromY)
	idx.Add(h, toX, toY)
}

// HandlesAt returns the handles recorded at a cell. The returned slice is
// the live cell; callers must not mutate it.
func (idx *Index) HandlesAt(x, y int) []entity.Handle {
	if !idx.inBounds(x, y) {
		return nil
	}
	return idx.cells[y*idx.width+x]
}

// OccupiedByImpassable reports whether any live impassable entity other
// than ignore stands at the cell. Stale handles are skipped, not treated
// as occupying. Out-of-bounds cells always read as occupied, so movement
// code needs no separate bounds check.
func (idx *Index) OccupiedByImpassable(store *entity.Store, x, y int, ignore entity.Handle) bool {
	if !idx.inBounds(x, y) {
		return true
	}
	for _, h := range idx.cells[y*idx.width+x] {
		if h == ignore {
			continue
		}
		e, ok := store.Get(h)
		if !ok {
			continue
		}
		if e.Impassable {
			return true
		}
	}
	return false
}

// AdjacentHandles collects handles from the four cardinal neighbor cells.
func (idx *Index) AdjacentHandles(x, y int) []entity.Handle {
	var out []entity.Handle
	for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if !idx.inBounds(nx, ny) {
			continue
		}
		out = append(out, idx.cells[ny*idx.width+nx]...)
	}
	return out
}

// HandlesInRect collects handles from every cell in [x0,x1) x [y0,y1).
func (idx *Index) HandlesInRect(x0, y0, x1, y1 int) []entity.Handle {
	var out []entity.Handle
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !idx.inBounds(x, y) {
				continue
			}
			out = append(out, idx.cells[y*idx.width+x]...)
		}
	}
	return out
}

// Clear empties every cell.
func (idx *Index) Clear() {
	for i := range idx.cells {
		idx.cells[i] = nil
	}
}
