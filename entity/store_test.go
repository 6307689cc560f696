package entity

import "testing"

func TestAllocateAndResolve(t *testing.T) {
	s := NewStore()

	h, ok := s.Allocate()
	if !ok {
		t.Fatal("allocate failed on a fresh store")
	}
	e, ok := s.Get(h)
	if !ok {
		t.Fatal("fresh handle did not resolve")
	}
	if !e.Active {
		t.Error("allocated entity not active")
	}
	if e.Handle != h {
		t.Errorf("entity records handle %+v, allocated %+v", e.Handle, h)
	}
	if !e.Attackable || e.SizeW != 1.0 || e.DrawLayer != LayerMiddle {
		t.Error("allocated entity missing reset defaults")
	}
}

func TestStaleHandleDoesNotResolve(t *testing.T) {
	s := NewStore()

	first, _ := s.Allocate()
	s.Release(first)

	// The slot gets reused; the old handle must not alias the new occupant.
	second, _ := s.Allocate()
	if second.Index != first.Index {
		t.Fatalf("expected slot reuse, got index %d then %d", first.Index, second.Index)
	}
	if second.Generation == first.Generation {
		t.Fatal("generation did not advance on reuse")
	}

	if _, ok := s.Get(first); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	if s.Alive(first) {
		t.Error("stale handle reported alive")
	}
	if _, ok := s.Get(second); !ok {
		t.Error("fresh handle did not resolve")
	}
}

func TestReleaseStaleHandleIsNoOp(t *testing.T) {
	s := NewStore()

	h, _ := s.Allocate()
	s.Release(h)
	reused, _ := s.Allocate()

	// Releasing the stale handle again must not free the reused slot.
	s.Release(h)
	if !s.Alive(reused) {
		t.Error("stale release freed a live slot")
	}
	if got := s.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount = %d, want 1", got)
	}
}

func TestZeroHandleNeverResolves(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get(Handle{}); ok {
		t.Error("zero handle resolved")
	}

	// Even after the pool has been churned.
	h, _ := s.Allocate()
	s.Release(h)
	s.Allocate()
	if _, ok := s.Get(Handle{}); ok {
		t.Error("zero handle resolved after churn")
	}
}

func TestExhaustion(t *testing.T) {
	s := NewStore()

	handles := make([]Handle, 0, MaxEntities)
	for i := 0; i < MaxEntities; i++ {
		h, ok := s.Allocate()
		if !ok {
			t.Fatalf("allocate %d failed before capacity", i)
		}
		handles = append(handles, h)
	}

	if _, ok := s.Allocate(); ok {
		t.Error("allocate succeeded past capacity")
	}

	// Freeing one slot makes exactly one allocation possible again.
	s.Release(handles[len(handles)/2])
	if _, ok := s.Allocate(); !ok {
		t.Error("allocate failed after a release")
	}
	if _, ok := s.Allocate(); ok {
		t.Error("allocate succeeded past capacity after refill")
	}
}

func TestActiveHandlesSnapshot(t *testing.T) {
	s := NewStore()

	a, _ := s.Allocate()
	b, _ := s.Allocate()
	c, _ := s.Allocate()
	s.Release(b)

	handles := s.ActiveHandles()
	if len(handles) != 2 {
		t.Fatalf("ActiveHandles returned %d handles, want 2", len(handles))
	}
	seen := map[Handle]bool{}
	for _, h := range handles {
		seen[h] = true
	}
	if !seen[a] || !seen[c] {
		t.Errorf("ActiveHandles missing live handles: %v", handles)
	}
	if seen[b] {
		t.Error("ActiveHandles contains a released handle")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.Allocate()
	}
	s.Clear()

	if got := s.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after Clear = %d, want 0", got)
	}
	if _, ok := s.Allocate(); !ok {
		t.Error("allocate failed after Clear")
	}
}
