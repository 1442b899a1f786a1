package arena

// Cloner is implemented by payload types that need a deep copy on Promote,
// for example values holding slices or maps. Types that do not implement it
// are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// cloneValue returns a copy of *p, using Clone when T or *T implements Cloner.
func cloneValue[T any](p *T) T {
	if c, ok := any(*p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	return *p
}

// AllocMany stores every value in vs and returns shared handles in the
// same order. Returns nil if vs is empty.
func (a *Arena[T]) AllocMany(vs ...T) []Ref[T] {
	if len(vs) == 0 {
		return nil
	}
	refs := make([]Ref[T], len(vs))
	for i, v := range vs {
		refs[i] = a.Alloc(v)
	}
	return refs
}

// Collect returns copies of the values behind refs, in order.
func Collect[T any](refs []Ref[T]) []T {
	if len(refs) == 0 {
		return nil
	}
	out := make([]T, len(refs))
	for i, r := range refs {
		out[i] = r.Value()
	}
	return out
}
