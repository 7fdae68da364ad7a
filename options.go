package arena

type config struct {
	capacityHint int
}

// Option configures an Arena at construction time.
type Option func(*config)

// WithCapacityHint pre-sizes the arena's internal tables for about n values.
// It does not change Capacity, which only counts slots handed out by Insert.
// Non-positive hints are ignored.
func WithCapacityHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacityHint = n
		}
	}
}
