package arena

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena[T]) NumChunks() int {
	return a.store.NumChunks()
}

// SlotCapacity returns the number of slots across all chunks, used or not.
func (a *Arena[T]) SlotCapacity() int {
	return a.store.SlotCapacity()
}

// Utilization returns the ratio of used slots to SlotCapacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.SlotCapacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Len()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() Metrics {
	return Metrics{
		Len:           a.Len(),
		NumChunks:     a.NumChunks(),
		ChunkCapacity: a.ChunkCapacity(),
		SlotCapacity:  a.SlotCapacity(),
		Utilization:   a.Utilization(),
		Allocs:        a.allocs,
		Promotions:    a.promotions,
		Freezes:       a.freezes,
		Generation:    a.gen,
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Len           int     // Values currently stored
	NumChunks     int     // Number of chunks
	ChunkCapacity int     // Slots per chunk
	SlotCapacity  int     // Slots across all chunks
	Utilization   float64 // Ratio of used to total slots (0.0-1.0)

	// Counters are cumulative over the arena's lifetime and survive Reset.
	Allocs     uint64 // Slots allocated, including promotions
	Promotions uint64 // Promote and PromoteMut calls
	Freezes    uint64 // MutRef.Freeze calls
	Generation uint64 // Incremented by Reset
}
