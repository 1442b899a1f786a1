package arena

import "log/slog"

// DefaultChunkCapacity is the default number of slots per chunk.
const DefaultChunkCapacity = 256

// Pos identifies a slot inside a Store.
type Pos struct {
	Chunk int
	Slot  int
}

// Store is chunked, append-only storage for values of type T.
// Chunks have a fixed capacity and are never resized, so the address of a
// stored value stays the same until the store is reset or released.
// Not goroutine-safe.
type Store[T any] struct {
	chunks    [][]T
	capacity  int
	maxChunks int
	logger    *slog.Logger
	name      string
}

// NewStore creates a Store holding one empty chunk of the given capacity.
// If capacity <= 0, DefaultChunkCapacity is used.
func NewStore[T any](capacity int, opts ...Option) *Store[T] {
	c := newConfig(opts)
	return newStore[T](capacity, c)
}

func newStore[T any](capacity int, c config) *Store[T] {
	if capacity <= 0 {
		capacity = DefaultChunkCapacity
	}
	s := &Store[T]{
		capacity:  capacity,
		maxChunks: c.maxChunks,
		logger:    c.logger,
		name:      c.name,
	}
	s.chunks = [][]T{make([]T, 0, capacity)}
	return s
}

// Alloc appends v and returns its position. When the last chunk is full a
// new chunk is appended first and v lands at slot 0 of it.
func (s *Store[T]) Alloc(v T) Pos {
	s.panicIfReleased()

	ci := len(s.chunks) - 1
	if len(s.chunks[ci]) == s.capacity {
		s.grow()
		ci++
	}
	// Slot is the chunk length before insertion.
	slot := len(s.chunks[ci])
	s.chunks[ci] = append(s.chunks[ci], v)
	return Pos{Chunk: ci, Slot: slot}
}

// At returns a pointer to the value stored at p. p must come from Alloc on
// this store; other positions panic with an index out of range.
func (s *Store[T]) At(p Pos) *T {
	s.panicIfReleased()
	return &s.chunks[p.Chunk][p.Slot]
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	if s.chunks == nil {
		return 0
	}
	return s.capacity*(len(s.chunks)-1) + len(s.chunks[len(s.chunks)-1])
}

// IsEmpty reports whether the store holds a single, empty chunk.
func (s *Store[T]) IsEmpty() bool {
	return len(s.chunks) == 1 && len(s.chunks[0]) == 0
}

// ChunkCapacity returns the configured number of slots per chunk.
// It is not a running total; see SlotCapacity for that.
func (s *Store[T]) ChunkCapacity() int {
	return s.capacity
}

// NumChunks returns the number of chunks currently held.
func (s *Store[T]) NumChunks() int {
	return len(s.chunks)
}

// SlotCapacity returns the number of slots across all chunks.
func (s *Store[T]) SlotCapacity() int {
	return s.capacity * len(s.chunks)
}

// Reset keeps the first chunk, truncated to zero length, and drops the rest.
// Every position issued before Reset becomes invalid.
func (s *Store[T]) Reset() {
	s.panicIfReleased()
	first := s.chunks[0]
	clear(first)
	s.chunks = [][]T{first[:0]}
}

// Release drops all chunks and makes the store unusable.
// Any subsequent Alloc or At will panic.
func (s *Store[T]) Release() {
	s.chunks = nil
}

// released reports whether Release has been called.
func (s *Store[T]) released() bool {
	return s.chunks == nil
}

// grow appends a new empty chunk, enforcing the chunk limit.
func (s *Store[T]) grow() {
	if s.maxChunks > 0 && len(s.chunks) >= s.maxChunks {
		panic(&AllocationError{Chunks: len(s.chunks), ChunkCapacity: s.capacity})
	}
	s.chunks = append(s.chunks, make([]T, 0, s.capacity))
	s.logger.Debug("arena: grew",
		"arena", s.name,
		"chunks", len(s.chunks),
		"chunk_capacity", s.capacity,
	)
}

func (s *Store[T]) panicIfReleased() {
	if s.chunks == nil {
		panic(ErrReleased)
	}
}
