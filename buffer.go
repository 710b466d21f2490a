package vector

// OwningBuffer is the exclusive owner of one fixed-size allocation of T.
// Vector uses it while reallocating: the new allocation belongs to the
// buffer until every element has been written, and is only then handed to
// the container with Release.
type OwningBuffer[T any] struct {
	items []T
}

// NewOwningBuffer allocates a buffer of n zeroed elements.
// Returns an empty buffer if n <= 0.
func NewOwningBuffer[T any](n int) *OwningBuffer[T] {
	if n <= 0 {
		return &OwningBuffer[T]{}
	}
	return &OwningBuffer[T]{items: make([]T, n)}
}

// Get returns the owned allocation, or nil if the buffer is empty.
// The caller must not keep the slice after Release.
func (b *OwningBuffer[T]) Get() []T {
	return b.items
}

// Len returns the number of element slots owned by the buffer.
func (b *OwningBuffer[T]) Len() int {
	return len(b.items)
}

// Release hands the allocation to the caller and leaves the buffer empty.
func (b *OwningBuffer[T]) Release() []T {
	items := b.items
	b.items = nil
	return items
}

// CapacityHint selects the constructor variant that reserves capacity
// without creating elements. See NewWithHint.
type CapacityHint struct {
	capacity int
}

// Reserve returns a CapacityHint for n slots.
func Reserve(n int) CapacityHint {
	return CapacityHint{capacity: n}
}

// Capacity returns the number of slots the hint asks for.
func (h CapacityHint) Capacity() int {
	return h.capacity
}
