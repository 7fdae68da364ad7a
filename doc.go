// Package arena implements a generational-index arena for Go.
//
// # Overview
//
// An Arena stores values in a table of slots and hands out a Handle for
// each value. A handle is an (index, generation) pair: small, comparable
// and safe to copy into as many places as needed. This is useful for:
//
//   - Object graphs with back-references
//   - Entity tables in games and simulations
//   - Scene graphs and other structures where pointers would dangle
//
// # Basic Usage
//
//	a := arena.New[string]()
//
//	h := a.Insert("hello")
//	v, st := a.Get(h) // "hello", arena.StatusFound
//
//	if p, st := a.GetMut(h); st == arena.StatusFound {
//		*p = "world"
//	}
//
//	_ = a.Remove(h)
//	_, st = a.Get(h) // arena.StatusOutdatedGeneration
//
// # Generations
//
// Every slot carries a generation counter starting at 0. Removing a value
// increments its slot's generation, so every handle issued before the
// removal stops matching. Freed slots are reused oldest first, and the
// handle returned for a reused slot carries the bumped generation.
//
// # Lookup Outcomes
//
// Get and GetMut report one of four statuses, checked in this order:
//
//   - StatusOutOfBounds: the index is not a slot of this arena
//   - StatusOutdatedGeneration: the value was removed after the handle was issued
//   - StatusEmpty: the slot has no value (never happens unless invariants are broken)
//   - StatusFound: the handle is live
//
// Remove and Lookup report the same conditions as a *HandleError wrapping
// ErrOutOfBounds, ErrOutdatedGeneration or ErrEmptySlot.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Wrap it in a mutex if several
// goroutines share it. Handles themselves are plain values and may cross
// goroutines freely.
//
// # Logging
//
// Handle implements fmt.Stringer, slog.LogValuer and zapcore.ObjectMarshaler:
//
//	logger.Info("spawned", slog.Any("handle", h))
//	zlog.Info("spawned", zap.Object("handle", h))
//
// # Performance Characteristics
//
//   - Insert: O(1) amortized
//   - Remove, Get, GetMut: O(1)
//   - Memory overhead: one generation counter per slot plus the free-list
package arena
