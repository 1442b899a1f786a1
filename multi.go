package arena

import (
	"log/slog"
	"reflect"
	"strconv"
)

// subArena is the type-erased view of an *Arena[T] held by a Multi.
type subArena interface {
	Name() string
	Len() int
	IsEmpty() bool
	Metrics() Metrics
	Reset()
	Release()
}

// Multi hosts one Arena per payload type, so recursive or variant-shaped
// data can keep child handles of several types under one owner.
// Sub-arenas are created on first use and share the Multi's chunk capacity
// and options. Not goroutine-safe.
type Multi struct {
	chunkCapacity int
	opts          []Option
	logger        *slog.Logger
	arenas        map[reflect.Type]subArena
	order         []reflect.Type
	names         map[string]struct{}
	released      bool
}

// NewMulti creates an empty Multi. If chunkCapacity <= 0,
// DefaultChunkCapacity is used for every sub-arena.
func NewMulti(chunkCapacity int, opts ...Option) *Multi {
	if chunkCapacity <= 0 {
		chunkCapacity = DefaultChunkCapacity
	}
	c := newConfig(opts)
	return &Multi{
		chunkCapacity: chunkCapacity,
		opts:          opts,
		logger:        c.logger,
		arenas:        make(map[reflect.Type]subArena),
		names:         make(map[string]struct{}),
	}
}

// Of returns the sub-arena for payload type T, creating it if needed.
func Of[T any](m *Multi) *Arena[T] {
	if m.released {
		panic(ErrReleased)
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if sa, ok := m.arenas[typ]; ok {
		return sa.(*Arena[T])
	}
	name := m.label(typ)
	opts := append(m.opts[:len(m.opts):len(m.opts)], WithName(name))
	a := New[T](m.chunkCapacity, opts...)
	m.arenas[typ] = a
	m.order = append(m.order, typ)
	m.logger.Debug("arena: sub-arena created", "arena", name, "type", typ.String(), "chunk_capacity", m.chunkCapacity)
	return a
}

// label names the sub-arena for typ. Named types are qualified by their
// full package path; distinct types that still collide (function-local
// types of the same name) get their creation index appended.
func (m *Multi) label(typ reflect.Type) string {
	name := typ.String()
	if typ.PkgPath() != "" && typ.Name() != "" {
		name = typ.PkgPath() + "." + typ.Name()
	}
	if _, taken := m.names[name]; taken {
		name += "#" + strconv.Itoa(len(m.order))
	}
	m.names[name] = struct{}{}
	return name
}

// AllocIn stores v in the sub-arena for T and returns a shared handle.
func AllocIn[T any](m *Multi, v T) Ref[T] {
	return Of[T](m).Alloc(v)
}

// AllocMutIn stores v in the sub-arena for T and returns an exclusive handle.
func AllocMutIn[T any](m *Multi, v T) *MutRef[T] {
	return Of[T](m).AllocMut(v)
}

// PromoteIn clones the value behind r within the sub-arena for T.
func PromoteIn[T any](m *Multi, r Ref[T]) *MutRef[T] {
	return Of[T](m).Promote(r)
}

// PromoteMutIn clones the value behind r within the sub-arena for T.
func PromoteMutIn[T any](m *Multi, r *MutRef[T]) *MutRef[T] {
	return Of[T](m).PromoteMut(r)
}

// Len returns the number of values across all sub-arenas.
func (m *Multi) Len() int {
	n := 0
	for _, typ := range m.order {
		n += m.arenas[typ].Len()
	}
	return n
}

// IsEmpty reports whether every sub-arena is empty. A released Multi is
// never empty, matching Arena.IsEmpty after Release.
func (m *Multi) IsEmpty() bool {
	if m.released {
		return false
	}
	for _, typ := range m.order {
		if !m.arenas[typ].IsEmpty() {
			return false
		}
	}
	return true
}

// ChunkCapacity returns the per-chunk slot count used by every sub-arena.
func (m *Multi) ChunkCapacity() int {
	return m.chunkCapacity
}

// Types returns the sub-arena labels in creation order. Builtin and
// unnamed types are labelled by their type string ("int", "[]byte"), named
// types by package path and name.
func (m *Multi) Types() []string {
	names := make([]string, len(m.order))
	for i, typ := range m.order {
		names[i] = m.arenas[typ].Name()
	}
	return names
}

// Metrics returns a snapshot per sub-arena, keyed by the labels of Types.
func (m *Multi) Metrics() map[string]Metrics {
	out := make(map[string]Metrics, len(m.order))
	for _, typ := range m.order {
		sa := m.arenas[typ]
		out[sa.Name()] = sa.Metrics()
	}
	return out
}

// Reset resets every sub-arena; all outstanding handles become stale.
func (m *Multi) Reset() {
	if m.released {
		panic(ErrReleased)
	}
	for _, typ := range m.order {
		m.arenas[typ].Reset()
	}
}

// Release releases every sub-arena and makes the Multi unusable.
func (m *Multi) Release() {
	for _, typ := range m.order {
		m.arenas[typ].Release()
	}
	m.released = true
}
