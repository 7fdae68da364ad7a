// Package arena implements a generational-index arena.
// Values are stored in slots and addressed by small copyable handles; a
// handle outliving its value is detected at lookup time instead of aliasing
// the slot's next occupant.
package arena

import (
	"math"

	"github.com/gammazero/deque"
)

// slot holds one stored value.
type slot[T any] struct {
	value    T
	occupied bool
}

// Arena stores values of type T behind generational handles.
// Not goroutine-safe; callers must serialize access.
type Arena[T any] struct {
	slots       []slot[T]
	generations []uint64            // parallel to slots
	free        deque.Deque[uint32] // freed indexes, oldest first
	live        int
}

// New creates an empty Arena.
func New[T any](opts ...Option) *Arena[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	a := &Arena[T]{}
	if cfg.capacityHint > 0 {
		a.slots = make([]slot[T], 0, cfg.capacityHint)
		a.generations = make([]uint64, 0, cfg.capacityHint)
	}
	return a
}

// Insert stores v and returns its handle. The oldest freed slot is reused
// first; the table only grows when no freed slot is available.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if a.free.Len() > 0 {
		idx = a.free.PopFront()
	} else {
		idx = a.grow()
	}

	a.slots[idx] = slot[T]{value: v, occupied: true}
	a.live++
	return Handle{index: idx, generation: a.generations[idx]}
}

// Remove frees the slot h refers to. Every copy of h, and of any other
// handle issued for that slot, becomes stale.
func (a *Arena[T]) Remove(h Handle) error {
	if st := a.check(h); st != StatusFound {
		return &HandleError{Op: "remove", Handle: h, Err: st.Err()}
	}

	a.slots[h.index] = slot[T]{}
	a.generations[h.index]++
	a.free.PushBack(h.index)
	a.live--
	return nil
}

// Get returns a copy of the value h refers to. The value is only
// meaningful when the status is StatusFound.
func (a *Arena[T]) Get(h Handle) (T, Status) {
	if st := a.check(h); st != StatusFound {
		var zero T
		return zero, st
	}
	return a.slots[h.index].value, StatusFound
}

// GetMut returns a pointer to the value h refers to, or nil with the
// failing status. The pointer is valid until the next Insert or Remove.
func (a *Arena[T]) GetMut(h Handle) (*T, Status) {
	if st := a.check(h); st != StatusFound {
		return nil, st
	}
	return &a.slots[h.index].value, StatusFound
}

// Lookup is Get with the status reported as an error.
func (a *Arena[T]) Lookup(h Handle) (T, error) {
	v, st := a.Get(h)
	if st != StatusFound {
		return v, &HandleError{Op: "lookup", Handle: h, Err: st.Err()}
	}
	return v, nil
}

// Contains reports whether h refers to a live value.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.check(h) == StatusFound
}

// IsEmpty reports whether the arena holds no values.
func (a *Arena[T]) IsEmpty() bool {
	return a.live == 0
}

// Capacity returns the number of slots ever allocated, free or not.
// It never decreases.
func (a *Arena[T]) Capacity() int {
	return len(a.slots)
}

// LiveCount returns the number of slots currently holding a value.
func (a *Arena[T]) LiveCount() int {
	return a.live
}

// FreeSlots returns the number of freed slots waiting for reuse.
func (a *Arena[T]) FreeSlots() int {
	return a.free.Len()
}

// check resolves h. Bounds are checked before the generation table is read.
func (a *Arena[T]) check(h Handle) Status {
	if uint64(h.index) >= uint64(len(a.slots)) {
		return StatusOutOfBounds
	}
	if a.generations[h.index] != h.generation {
		return StatusOutdatedGeneration
	}
	if !a.slots[h.index].occupied {
		return StatusEmpty
	}
	return StatusFound
}

// grow appends a fresh slot at generation 0 and returns its index.
func (a *Arena[T]) grow() uint32 {
	n := len(a.slots)
	if uint64(n) > math.MaxUint32 {
		panic("arena: slot index space exhausted")
	}
	a.slots = append(a.slots, slot[T]{})
	a.generations = append(a.generations, 0)
	return uint32(n)
}
