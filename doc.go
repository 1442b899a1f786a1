// Package arena implements a typed, chunked arena with shared and exclusive
// handles.
//
// # Overview
//
// An Arena[T] stores values of one type in fixed-capacity chunks. When the
// last chunk fills up a new one is appended; existing chunks are never
// resized or moved, so a value keeps its (chunk, slot) position and its
// address for the lifetime of the arena. This is useful for:
//
//   - Graphs and trees whose nodes refer to each other by handle
//   - Batch-built data that is frozen and then only read
//   - Copy-on-write updates of shared values
//
// # Basic Usage
//
//	a := arena.New[Point](1024) // 1024 slots per chunk
//	defer a.Release()
//
//	m := a.AllocMut(Point{X: 1})  // exclusive handle
//	m.Update(func(p *Point) { p.Y = 2 })
//	r := m.Freeze()               // shared handle to the same slot
//
//	c := r.Promote()              // exclusive handle to a clone
//	c.Update(func(p *Point) { p.X = 10 }) // r still reads X == 1
//
// # Handles
//
// Ref[T] is a shared handle: a small value that can be copied freely and
// only gives read access. *MutRef[T] is an exclusive handle: the arena
// creates exactly one per slot, and Freeze consumes it. Using a MutRef after
// Freeze panics with ErrFrozen.
//
// Handles remember the arena and generation that produced them. Passing a
// handle to another arena panics with ErrForeignHandle, using it after Reset
// panics with ErrStaleHandle, and using it after Release panics with
// ErrReleased.
//
// # Several Payload Types
//
// Multi keeps one Arena per payload type, which lets recursive or
// variant-shaped data store children as handles:
//
//	m := arena.NewMulti(256)
//	leaf := arena.AllocIn(m, Leaf{Value: 1})
//	node := arena.AllocIn(m, Node{Left: leaf})
//
// # Thread Safety
//
// Arena, Store and Multi are not goroutine-safe. Collector is, because it
// only holds snapshots pushed by the arena's owner.
//
// # Performance Characteristics
//
//   - Alloc, AllocMut, Freeze: O(1) amortized, Freeze never allocates
//   - Promote: O(size of T) for the clone
//   - Reset: O(1) plus clearing the first chunk
//   - Release: O(1)
//
// # Metrics and Monitoring
//
//	metrics := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization * 100)
//	fmt.Printf("Values: %d in %d chunks\n", metrics.Len, metrics.NumChunks)
//
// Collector exports the same snapshot to Prometheus.
package arena
