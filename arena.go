// Package arena implements a typed, chunked arena with position-stable
// handles. Values are appended to fixed-capacity chunks and addressed by
// (chunk, slot) pairs. Handles come in two kinds: Ref, a freely copyable
// read-only handle, and MutRef, a single-owner read/write handle that can be
// frozen into a Ref. Promote clones a value into a fresh slot for
// copy-on-write updates.
package arena

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

var arenaIDs atomic.Uint64

// Allocator is the allocation contract of a typed arena.
type Allocator[T any] interface {
	Alloc(v T) Ref[T]
	AllocMut(v T) *MutRef[T]
	Promote(r Ref[T]) *MutRef[T]
	PromoteMut(m *MutRef[T]) *MutRef[T]
	Len() int
	IsEmpty() bool
	ChunkCapacity() int
}

var _ Allocator[int] = (*Arena[int])(nil)

// Arena owns every value of type T allocated from it. Not goroutine-safe.
type Arena[T any] struct {
	store  *Store[T]
	id     uint64
	gen    uint64
	name   string
	logger *slog.Logger

	allocs     uint64
	promotions uint64
	freezes    uint64
}

// New creates an Arena whose chunks hold chunkCapacity values each.
// If chunkCapacity <= 0, DefaultChunkCapacity is used.
func New[T any](chunkCapacity int, opts ...Option) *Arena[T] {
	c := newConfig(opts)
	a := &Arena[T]{
		id:     arenaIDs.Add(1),
		gen:    1,
		name:   c.name,
		logger: c.logger,
	}
	if a.name == "" {
		a.name = fmt.Sprintf("arena-%d", a.id)
		c.name = a.name
	}
	a.store = newStore[T](chunkCapacity, c)
	return a
}

// ID returns an identifier unique to this arena within the process.
func (a *Arena[T]) ID() uint64 {
	return a.id
}

// Name returns the label used in logs and metrics.
func (a *Arena[T]) Name() string {
	return a.name
}

// Alloc stores v and returns a shared, read-only handle to it.
func (a *Arena[T]) Alloc(v T) Ref[T] {
	pos := a.store.Alloc(v)
	a.allocs++
	return Ref[T]{arena: a, gen: a.gen, pos: pos}
}

// AllocMut stores v and returns an exclusive handle to it.
func (a *Arena[T]) AllocMut(v T) *MutRef[T] {
	pos := a.store.Alloc(v)
	a.allocs++
	return &MutRef[T]{arena: a, gen: a.gen, pos: pos}
}

// Load returns a copy of the value behind r. It panics if r was issued by
// another arena.
func (a *Arena[T]) Load(r Ref[T]) T {
	a.checkOwner(r.arena)
	return *a.at(r.gen, r.pos)
}

// Promote clones the value behind r into a new slot and returns an
// exclusive handle to the clone. The slot behind r is not modified.
func (a *Arena[T]) Promote(r Ref[T]) *MutRef[T] {
	a.checkOwner(r.arena)
	return a.promote(r.gen, r.pos)
}

// PromoteMut is Promote for an exclusive handle. m stays valid.
func (a *Arena[T]) PromoteMut(m *MutRef[T]) *MutRef[T] {
	if m == nil {
		panic(ErrNilHandle)
	}
	a.checkOwner(m.arena)
	m.checkLive()
	return a.promote(m.gen, m.pos)
}

func (a *Arena[T]) promote(gen uint64, pos Pos) *MutRef[T] {
	v := cloneValue(a.at(gen, pos))
	a.promotions++
	return a.AllocMut(v)
}

// Len returns the number of values in the arena.
func (a *Arena[T]) Len() int {
	return a.store.Len()
}

// IsEmpty reports whether nothing has been allocated since creation or the
// last Reset.
func (a *Arena[T]) IsEmpty() bool {
	return a.store.IsEmpty()
}

// ChunkCapacity returns the configured number of slots per chunk.
func (a *Arena[T]) ChunkCapacity() int {
	return a.store.ChunkCapacity()
}

// Reset empties the arena for reuse. Handles issued before Reset become
// stale and panic with ErrStaleHandle when used.
func (a *Arena[T]) Reset() {
	a.store.Reset()
	a.gen++
	a.logger.Debug("arena: reset", "arena", a.name, "generation", a.gen)
}

// Release drops all storage and makes the arena unusable.
// Any subsequent operation on the arena or its handles will panic.
func (a *Arena[T]) Release() {
	a.store.Release()
	a.logger.Debug("arena: released", "arena", a.name)
}

// at resolves a handle position after validating its generation.
func (a *Arena[T]) at(gen uint64, pos Pos) *T {
	if a.store.released() {
		panic(ErrReleased)
	}
	if gen != a.gen {
		panic(violation(ErrStaleHandle, "%s generation %d, handle generation %d", a.name, a.gen, gen))
	}
	return a.store.At(pos)
}

func (a *Arena[T]) checkOwner(owner *Arena[T]) {
	if owner == nil {
		panic(ErrNilHandle)
	}
	if owner != a {
		panic(violation(ErrForeignHandle, "handle from %s passed to %s", owner.name, a.name))
	}
}
