package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is the panic cause when an arena or a handle into it is used after Release().
	ErrReleased = errors.New("arena: use after Release()")
	// ErrStaleHandle is the panic cause when a handle issued before Reset() is used afterwards.
	ErrStaleHandle = errors.New("arena: stale handle")
	// ErrForeignHandle is the panic cause when a handle is passed to an arena that did not issue it.
	ErrForeignHandle = errors.New("arena: handle belongs to a different arena")
	// ErrFrozen is the panic cause when an exclusive handle is used after Freeze().
	ErrFrozen = errors.New("arena: exclusive handle used after Freeze()")
	// ErrNilHandle is the panic cause when a zero-value handle is dereferenced.
	ErrNilHandle = errors.New("arena: nil handle")
	// ErrMaxChunksExceeded is wrapped by AllocationError when the chunk limit is reached.
	ErrMaxChunksExceeded = errors.New("arena: max chunks exceeded")
)

// AllocationError reports that the arena could not grow its chunk list.
// It is always raised through panic; allocation failure is not recoverable.
type AllocationError struct {
	Chunks        int
	ChunkCapacity int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("arena: cannot allocate chunk %d (chunk capacity %d): %v",
		e.Chunks+1, e.ChunkCapacity, ErrMaxChunksExceeded)
}

func (e *AllocationError) Unwrap() error { return ErrMaxChunksExceeded }

func violation(err error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
}
