package arena

import "fmt"

// Handle is the read side shared by Ref and *MutRef.
type Handle[T any] interface {
	Value() T
	Pos() Pos
	Promote() *MutRef[T]
}

var (
	_ Handle[int] = Ref[int]{}
	_ Handle[int] = (*MutRef[int])(nil)
)

// Ref is a shared, read-only handle. Refs are plain values and may be
// copied freely. The zero Ref is not valid.
type Ref[T any] struct {
	arena *Arena[T]
	gen   uint64
	pos   Pos
}

// Value returns a copy of the referenced value.
func (r Ref[T]) Value() T {
	return *r.resolve()
}

// Pos returns the slot coordinates of r.
func (r Ref[T]) Pos() Pos {
	return r.pos
}

// IsZero reports whether r is the zero Ref.
func (r Ref[T]) IsZero() bool {
	return r.arena == nil
}

// Promote clones the referenced value into a new slot of the same arena and
// returns an exclusive handle to it.
func (r Ref[T]) Promote() *MutRef[T] {
	if r.arena == nil {
		panic(ErrNilHandle)
	}
	return r.arena.Promote(r)
}

func (r Ref[T]) String() string {
	if r.arena == nil {
		return "Ref(nil)"
	}
	return fmt.Sprintf("Ref(%s[%d:%d])", r.arena.name, r.pos.Chunk, r.pos.Slot)
}

func (r Ref[T]) resolve() *T {
	if r.arena == nil {
		panic(ErrNilHandle)
	}
	return r.arena.at(r.gen, r.pos)
}

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MutRef is an exclusive, read/write handle. The arena creates exactly one
// MutRef per slot and hands it out by pointer; Freeze consumes it.
// Writes go through Set and Update only, so no pointer into the slot
// escapes the handle; fn passed to Update must not retain its argument.
type MutRef[T any] struct {
	_      noCopy
	arena  *Arena[T]
	gen    uint64
	pos    Pos
	frozen bool
}

// Value returns a copy of the referenced value.
func (m *MutRef[T]) Value() T {
	return *m.resolve()
}

// Set overwrites the referenced value.
func (m *MutRef[T]) Set(v T) {
	*m.resolve() = v
}

// Update calls fn with a pointer to the referenced value.
func (m *MutRef[T]) Update(fn func(*T)) {
	fn(m.resolve())
}

// Pos returns the slot coordinates of m. It panics with ErrNilHandle on a
// nil or zero MutRef.
func (m *MutRef[T]) Pos() Pos {
	if m == nil || m.arena == nil {
		panic(ErrNilHandle)
	}
	return m.pos
}

// Frozen reports whether Freeze has been called on m. A nil MutRef is not
// frozen.
func (m *MutRef[T]) Frozen() bool {
	return m != nil && m.frozen
}

// Freeze gives up write access and returns a shared handle to the same
// slot. Nothing is copied or allocated. Any further use of m panics with
// ErrFrozen; there is no way back to write access on this slot.
func (m *MutRef[T]) Freeze() Ref[T] {
	m.checkLive()
	m.arena.at(m.gen, m.pos)
	m.frozen = true
	m.arena.freezes++
	return Ref[T]{arena: m.arena, gen: m.gen, pos: m.pos}
}

// Promote clones the referenced value into a new slot and returns an
// exclusive handle to the clone. m keeps its own slot and stays usable.
func (m *MutRef[T]) Promote() *MutRef[T] {
	m.checkLive()
	return m.arena.PromoteMut(m)
}

func (m *MutRef[T]) String() string {
	if m == nil || m.arena == nil {
		return "MutRef(nil)"
	}
	state := ""
	if m.frozen {
		state = " frozen"
	}
	return fmt.Sprintf("MutRef(%s[%d:%d]%s)", m.arena.name, m.pos.Chunk, m.pos.Slot, state)
}

func (m *MutRef[T]) resolve() *T {
	m.checkLive()
	return m.arena.at(m.gen, m.pos)
}

func (m *MutRef[T]) checkLive() {
	if m == nil || m.arena == nil {
		panic(ErrNilHandle)
	}
	if m.frozen {
		panic(violation(ErrFrozen, "%s[%d:%d]", m.arena.name, m.pos.Chunk, m.pos.Slot))
	}
}
