package buffer

import "github.com/cwbudde/algo-fftviz/dsp/core"

// Sample is the element type a Buffer can hold.
type Sample interface {
	~float64 | ~complex128
}

// Buffer wraps a sample slice with reuse-friendly semantics.
type Buffer[T Sample] struct {
	samples []T
}

// New returns a zero-filled Buffer of the given length.
func New[T Sample](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{samples: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[T Sample](s []T) *Buffer[T] {
	return &Buffer[T]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	s := core.EnsureLen(b.samples, n)
	if n > cap(b.samples) {
		core.CopyInto(s, b.samples)
	}
	b.samples = s
	// The backing array may hold data from a previous use.
	if n > oldLen {
		core.Zero(b.samples[oldLen:n])
	}
}

// Zero sets all samples to 0.
func (b *Buffer[T]) Zero() {
	core.Zero(b.samples)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() *Buffer[T] {
	s := make([]T, len(b.samples))
	core.CopyInto(s, b.samples)
	return &Buffer[T]{samples: s}
}
