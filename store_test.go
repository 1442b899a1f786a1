package arena

import (
	"errors"
	"testing"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default chunk capacity", 0, DefaultChunkCapacity},
		{"negative chunk capacity", -1, DefaultChunkCapacity},
		{"custom chunk capacity", 16, 16},
		{"single slot chunks", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore[int](tt.capacity)
			if s.ChunkCapacity() != tt.expected {
				t.Errorf("NewStore(%d) chunk capacity = %d, want %d", tt.capacity, s.ChunkCapacity(), tt.expected)
			}
			if s.NumChunks() != 1 {
				t.Errorf("NewStore(%d) chunks = %d, want 1", tt.capacity, s.NumChunks())
			}
			if s.Len() != 0 || !s.IsEmpty() {
				t.Errorf("NewStore(%d) Len = %d IsEmpty = %v, want 0 true", tt.capacity, s.Len(), s.IsEmpty())
			}
		})
	}
}

func TestStoreAllocPositions(t *testing.T) {
	s := NewStore[int](4)

	want := []Pos{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 0},
	}
	for i, w := range want {
		got := s.Alloc(i)
		if got != w {
			t.Errorf("Alloc #%d position = %+v, want %+v", i, got, w)
		}
	}
	if s.NumChunks() != 3 {
		t.Errorf("NumChunks = %d, want 3", s.NumChunks())
	}
	if s.Len() != len(want) {
		t.Errorf("Len = %d, want %d", s.Len(), len(want))
	}
	if s.ChunkCapacity() != 4 {
		t.Errorf("ChunkCapacity = %d, want 4 (not a running total)", s.ChunkCapacity())
	}
	if s.SlotCapacity() != 12 {
		t.Errorf("SlotCapacity = %d, want 12", s.SlotCapacity())
	}
}

func TestStoreNewChunkStartsAtSlotZero(t *testing.T) {
	s := NewStore[string](1)
	for i := 0; i < 5; i++ {
		p := s.Alloc("x")
		if p.Slot != 0 || p.Chunk != i {
			t.Fatalf("Alloc #%d = %+v, want {%d 0}", i, p, i)
		}
	}
}

func TestStoreAtReadWrite(t *testing.T) {
	s := NewStore[int](2)
	p := s.Alloc(1)
	*s.At(p) = 5
	if got := *s.At(p); got != 5 {
		t.Errorf("At after write = %d, want 5", got)
	}
}

func TestStoreAddressStability(t *testing.T) {
	s := NewStore[[8]int64](3)
	p := s.Alloc([8]int64{7})
	addr := s.At(p)

	for i := 0; i < 100; i++ {
		s.Alloc([8]int64{int64(i)})
	}

	if s.At(p) != addr {
		t.Error("address of first value changed after growth")
	}
	if addr[0] != 7 {
		t.Errorf("first value = %d, want 7", addr[0])
	}
}

func TestStoreIsEmpty(t *testing.T) {
	s := NewStore[int](1)
	if !s.IsEmpty() {
		t.Error("new store should be empty")
	}
	s.Alloc(1)
	if s.IsEmpty() {
		t.Error("store with one value should not be empty")
	}
	s.Alloc(2)
	if s.IsEmpty() {
		t.Error("store with two chunks should not be empty")
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore[int](2)
	for i := 0; i < 5; i++ {
		s.Alloc(i)
	}

	s.Reset()
	if !s.IsEmpty() || s.Len() != 0 {
		t.Errorf("after Reset Len = %d IsEmpty = %v, want 0 true", s.Len(), s.IsEmpty())
	}
	if s.NumChunks() != 1 {
		t.Errorf("after Reset NumChunks = %d, want 1", s.NumChunks())
	}
	if p := s.Alloc(9); p != (Pos{0, 0}) {
		t.Errorf("first Alloc after Reset = %+v, want {0 0}", p)
	}
}

func TestStoreRelease(t *testing.T) {
	s := NewStore[int](2)
	p := s.Alloc(1)

	s.Release()

	if s.Len() != 0 || s.NumChunks() != 0 {
		t.Errorf("after Release Len = %d NumChunks = %d, want 0 0", s.Len(), s.NumChunks())
	}

	for name, fn := range map[string]func(){
		"Alloc": func() { s.Alloc(2) },
		"At":    func() { s.At(p) },
		"Reset": func() { s.Reset() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if err, ok := r.(error); !ok || !errors.Is(err, ErrReleased) {
					t.Errorf("%s after Release: recovered %v, want ErrReleased", name, r)
				}
			}()
			fn()
		})
	}
}

func TestStoreMaxChunks(t *testing.T) {
	s := NewStore[int](2, WithMaxChunks(2))
	for i := 0; i < 4; i++ {
		s.Alloc(i)
	}

	defer func() {
		r := recover()
		var allocErr *AllocationError
		err, ok := r.(error)
		if !ok || !errors.As(err, &allocErr) {
			t.Fatalf("recovered %v, want *AllocationError", r)
		}
		if !errors.Is(err, ErrMaxChunksExceeded) {
			t.Errorf("error %v does not wrap ErrMaxChunksExceeded", err)
		}
		if allocErr.Chunks != 2 || allocErr.ChunkCapacity != 2 {
			t.Errorf("AllocationError = %+v, want Chunks 2 ChunkCapacity 2", allocErr)
		}
		if s.Len() != 4 {
			t.Errorf("Len after failed Alloc = %d, want 4", s.Len())
		}
	}()
	s.Alloc(4)
}

func BenchmarkStoreAlloc(b *testing.B) {
	s := NewStore[int64](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Alloc(int64(i))
		if i%100000 == 99999 {
			s.Reset()
		}
	}
}
