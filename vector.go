// Package vector implements a growable, contiguous, random-access sequence
// container with explicit control over capacity versus size.
package vector

import (
	"fmt"
	"iter"
)

// Vector is a dynamic array. The zero value is an empty vector ready to use.
// Not goroutine-safe.
type Vector[T any] struct {
	items         []T // backing allocation, len(items) == capacity
	size          int // valid elements are items[:size]
	reallocations int
}

// New returns an empty vector without an allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector holding n zero values.
func NewSized[T any](n int) *Vector[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a vector holding n copies of value, with capacity n.
// It panics if n is negative.
func NewFilled[T any](n int, value T) *Vector[T] {
	if n < 0 {
		panic("vector: negative size")
	}
	v := &Vector[T]{}
	if n == 0 {
		return v
	}
	buf := NewOwningBuffer[T](n)
	items := buf.Get()
	for i := range items {
		items[i] = value
	}
	v.items = buf.Release()
	v.size = n
	return v
}

// Of returns a vector holding values in order, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(values) == 0 {
		return v
	}
	buf := NewOwningBuffer[T](len(values))
	copy(buf.Get(), values)
	v.items = buf.Release()
	v.size = len(values)
	return v
}

// NewCopy returns a vector with the same elements and the same capacity as
// other. The two vectors share no storage.
func NewCopy[T any](other *Vector[T]) *Vector[T] {
	v := &Vector[T]{}
	v.copyFrom(other)
	return v
}

// MoveFrom transfers the contents of other into a new vector in O(1).
// other is left empty, without an allocation.
func MoveFrom[T any](other *Vector[T]) *Vector[T] {
	v := &Vector[T]{}
	v.Swap(other)
	return v
}

// NewWithHint returns an empty vector with capacity h.Capacity().
//
//	v := vector.NewWithHint[int](vector.Reserve(64))
func NewWithHint[T any](h CapacityHint) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(h.Capacity())
	return v
}

// Clone is NewCopy(v).
func (v *Vector[T]) Clone() *Vector[T] {
	return NewCopy(v)
}

// Assign replaces the contents of v with a copy of other, including its
// capacity. Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	v.copyFrom(other)
}

func (v *Vector[T]) copyFrom(other *Vector[T]) {
	buf := NewOwningBuffer[T](other.Cap())
	copy(buf.Get(), other.Values())
	v.items = buf.Release()
	v.size = other.size
	v.reallocations = 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.items)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element. It is a valid
// insertion position meaning "append".
func (v *Vector[T]) End() int {
	return v.size
}

// Get returns the element at i. i must be in [0, Len()); this is only
// checked in builds with the vectordebug tag. Use At for a checked read.
func (v *Vector[T]) Get(i int) T {
	v.mustIndex(i)
	return v.items[i]
}

// Set replaces the element at i. Same contract as Get.
func (v *Vector[T]) Set(i int, value T) {
	v.mustIndex(i)
	v.items[i] = value
}

// Ref returns a pointer to the element at i in the current buffer. Same
// contract as Get. The pointer is stale after the next reallocation.
func (v *Vector[T]) Ref(i int) *T {
	v.mustIndex(i)
	return &v.items[i]
}

// At returns the element at i, or an error wrapping ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.items[i], nil
}

// SetAt replaces the element at i, or returns an error wrapping
// ErrOutOfRange and leaves v unchanged.
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return outOfRange(i, v.size)
	}
	v.items[i] = value
	return nil
}

// RefAt is the checked form of Ref.
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.items[i], nil
}

// Values returns the valid elements as a slice of the current buffer.
// Its capacity is clipped, so appending to it never writes into v.
// The slice is invalidated by any operation that reallocates or shifts.
func (v *Vector[T]) Values() []T {
	return v.items[:v.size:v.size]
}

// ToSlice returns a copy of the valid elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	copy(out, v.items[:v.size])
	return out
}

// All iterates over positions and values from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Backward iterates over positions and values from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Clear removes all elements and keeps the allocation for reuse.
func (v *Vector[T]) Clear() {
	clear(v.items[:v.size])
	v.size = 0
}

// Resize changes the number of elements to n. New elements are zero values.
// When n exceeds the capacity, the capacity grows to max(n, 2*Cap()).
// It panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
	switch {
	case n > len(v.items):
		buf := NewOwningBuffer[T](max(n, len(v.items)*2))
		copy(buf.Get(), v.items[:v.size])
		v.adopt(buf)
	case n > v.size:
		clear(v.items[v.size:n])
	case n < v.size:
		clear(v.items[n:v.size])
	}
	v.size = n
}

// Reserve grows the capacity to exactly n if n > Cap(). It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.items) {
		return
	}
	buf := NewOwningBuffer[T](n)
	copy(buf.Get(), v.items[:v.size])
	v.adopt(buf)
}

// PushBack appends value. Equivalent to Insert(End(), value).
func (v *Vector[T]) PushBack(value T) {
	v.Insert(v.size, value)
}

// PushBackMove appends *value and resets *value to the zero value.
func (v *Vector[T]) PushBackMove(value *T) {
	v.InsertMove(v.size, value)
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if debugAssertions && v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	var zero T
	v.items[v.size-1] = zero
	v.size--
}

// Insert places value at pos, shifting the elements at [pos, Len()) one
// slot to the right, and returns the position of the inserted element.
// pos must be in [0, Len()]. A full vector doubles its capacity (or
// allocates one slot when empty).
func (v *Vector[T]) Insert(pos int, value T) int {
	if debugAssertions && (pos < 0 || pos > v.size) {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", pos, v.size))
	}
	if v.size < len(v.items) {
		copy(v.items[pos+1:v.size+1], v.items[pos:v.size])
		v.items[pos] = value
	} else {
		buf := NewOwningBuffer[T](max(len(v.items)*2, 1))
		items := buf.Get()
		copy(items, v.items[:pos])
		items[pos] = value
		copy(items[pos+1:], v.items[pos:v.size])
		v.adopt(buf)
	}
	v.size++
	return pos
}

// InsertMove inserts *value at pos like Insert and resets *value to the
// zero value, so the caller no longer refers to what it handed over.
func (v *Vector[T]) InsertMove(pos int, value *T) int {
	pos = v.Insert(pos, *value)
	var zero T
	*value = zero
	return pos
}

// Erase removes the element at pos, shifting the rest one slot to the left,
// and returns pos, which now holds the successor of the erased element.
// pos must be in [0, Len()).
func (v *Vector[T]) Erase(pos int) int {
	if debugAssertions && (pos < 0 || pos >= v.size) {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	copy(v.items[pos:], v.items[pos+1:v.size])
	var zero T
	v.items[v.size-1] = zero
	v.size--
	return pos
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items, other.items = other.items, v.items
	v.size, other.size = other.size, v.size
	v.reallocations, other.reallocations = other.reallocations, v.reallocations
}

// String formats the valid elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Values())
}

// adopt takes the allocation out of buf. The previous buffer is dropped
// only after the new one is fully populated.
func (v *Vector[T]) adopt(buf *OwningBuffer[T]) {
	v.items = buf.Release()
	v.reallocations++
}

func (v *Vector[T]) mustIndex(i int) {
	if debugAssertions && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
}
