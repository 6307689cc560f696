package entity

import "github.com/charmbracelet/log"

// MaxEntities is the fixed capacity of the store.
const MaxEntities = 1024

// Store is a fixed-capacity generational pool of entity records. Nobody
// stores pointers to entities; every access goes through a handle so a
// reference can never dangle into a reused slot.
type Store struct {
	entities []Entity
	freeList []int
}

// NewStore creates a store with every slot on the free list.
func NewStore() *Store {
	s := &Store{
		entities: make([]Entity, MaxEntities),
		freeList: make([]int, 0, MaxEntities),
	}
	for i := range s.entities {
		s.entities[i].Handle = Handle{Index: i}
		s.entities[i].reset()
	}
	// Push in reverse so low indices allocate first.
	for i := MaxEntities - 1; i >= 0; i-- {
		s.freeList = append(s.freeList, i)
	}
	return s
}

// Allocate pops a free slot, bumps its generation and marks it active.
// Returns ok=false when the pool is exhausted; callers skip the spawn, the
// condition is never fatal.
func (s *Store) Allocate() (Handle, bool) {
	if len(s.freeList) == 0 {
		log.Warn("entity pool exhausted")
		return Handle{}, false
	}
	index := s.freeList[len(s.freeList)-1]
	s.freeList = s.freeList[:len(s.freeList)-1]

	e := &s.entities[index]
	e.reset()
	e.Handle.Generation++
	e.Active = true
	return e.Handle, true
}

// Get resolves a handle to its entity. Returns nil, false unless the slot
// is active and the generation matches. The pointer must not be retained
// across any call that can reach the store again; copy out what you need.
func (s *Store) Get(h Handle) (*Entity, bool) {
	if h.Index < 0 || h.Index >= len(s.entities) {
		return nil, false
	}
	e := &s.entities[h.Index]
	if !e.Active || e.Handle.Generation != h.Generation {
		return nil, false
	}
	return e, true
}

// Alive reports whether a handle still resolves.
func (s *Store) Alive(h Handle) bool {
	_, ok := s.Get(h)
	return ok
}

// Release marks a slot inactive and returns it to the free list. Releasing
// a stale handle is a no-op.
func (s *Store) Release(h Handle) {
	e, ok := s.Get(h)
	if !ok {
		return
	}
	e.Active = false
	s.freeList = append(s.freeList, h.Index)
}

// ActiveHandles collects the handles of every active entity. The pipeline
// iterates this snapshot so behaviors that spawn or destroy entities never
// mutate the collection they are walking.
func (s *Store) ActiveHandles() []Handle {
	handles := make([]Handle, 0, MaxEntities-len(s.freeList))
	for i := range s.entities {
		if s.entities[i].Active {
			handles = append(handles, s.entities[i].Handle)
		}
	}
	return handles
}

// ActiveCount counts active entities. Walks the whole pool; keep it out of
// per-entity loops.
func (s *Store) ActiveCount() int {
	return MaxEntities - len(s.freeList)
}

// Clear deactivates every entity and rebuilds the free list.
func (s *Store) Clear() {
	s.freeList = s.freeList[:0]
	for i := MaxEntities - 1; i >= 0; i-- {
		s.entities[i].Active = false
		s.entities[i].Type = TypeNone
		s.freeList = append(s.freeList, i)
	}
}
