package arena

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.LiveCount()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:    a.Capacity(),
		LiveCount:   a.LiveCount(),
		FreeSlots:   a.FreeSlots(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Capacity    int     // Slots ever allocated
	LiveCount   int     // Slots holding a value
	FreeSlots   int     // Freed slots awaiting reuse
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}
