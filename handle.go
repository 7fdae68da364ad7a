package arena

import (
	"fmt"
	"log/slog"

	"go.uber.org/zap/zapcore"
)

// Handle references a value stored in an Arena. It is plain data: copy it,
// compare it, store it anywhere. A handle that outlives its value is
// reported as stale by the arena instead of aliasing whatever reuses the slot.
type Handle struct {
	index      uint32
	generation uint64
}

// HandleFromParts builds a handle from a raw index and generation.
func HandleFromParts(index uint32, generation uint64) Handle {
	return Handle{index: index, generation: generation}
}

// Index returns the slot position the handle points at.
func (h Handle) Index() uint32 {
	return h.index
}

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint64 {
	return h.generation
}

// String renders the handle as "(index: N, generation: G)".
func (h Handle) String() string {
	return fmt.Sprintf("(index: %d, generation: %d)", h.index, h.generation)
}

// LogValue implements slog.LogValuer.
func (h Handle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("index", uint64(h.index)),
		slog.Uint64("generation", h.generation),
	)
}

// MarshalLogObject implements zapcore.ObjectMarshaler so a handle can be
// logged with zap.Object.
func (h Handle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("index", h.index)
	enc.AddUint64("generation", h.generation)
	return nil
}
