// Package vector implements a growable, contiguous, random-access sequence
// container (a dynamic array) for Go.
//
// # Overview
//
// A Vector owns one contiguous buffer and tracks two numbers: the size
// (how many elements are valid) and the capacity (how many slots are
// allocated). Unlike a builtin slice, the growth policy and the moment of
// reallocation are explicit and documented:
//
//   - Insert and PushBack double the capacity when the vector is full
//     (one slot when starting from zero)
//   - Resize grows to max(n, 2*capacity)
//   - Reserve grows to exactly the requested capacity
//   - Nothing ever shrinks the capacity except a fresh copy or a move
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)          // [1 2 3]
//
//	v.Insert(1, 99)        // [1 99 2 3]
//	v.Erase(2)             // [1 99 3]
//
//	x, err := v.At(5)      // errors.Is(err, vector.ErrOutOfRange)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction
//
//	vector.New[int]()                         // empty, no allocation
//	vector.NewFilled(4, "x")                  // four copies of "x"
//	vector.Of(1, 2, 3)                        // from a list
//	vector.NewCopy(v)                         // deep copy of the buffer, same capacity
//	vector.MoveFrom(v)                        // O(1) transfer, v left empty
//	vector.NewWithHint[int](vector.Reserve(64)) // empty, capacity 64
//
// # Positions
//
// Positions are integer indices in [Begin(), End()]. Values, Ref and the
// iterators refer to the buffer that is live when they are called; any
// operation that reallocates or shifts elements invalidates them. Insert and
// Erase return positions, never pointers, so the result is always valid for
// the buffer that exists after the call.
//
// # Checked and Unchecked Access
//
// Get, Set, Ref, Erase, Insert and PopBack expect the caller to uphold their
// preconditions. Building with -tags vectordebug turns the preconditions
// into panics. At, SetAt and RefAt are the checked forms and report
// ErrOutOfRange without touching the vector.
//
// # Thread Safety
//
// A Vector has a single owner. It is not safe for concurrent use.
//
// # Comparison
//
// Equal, NotEqual, Less, LessOrEqual, Greater, GreaterOrEqual and Compare
// compare two vectors element by element. EqualFunc and CompareFunc accept
// a custom element comparison.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// The promvector package exports these values to Prometheus.
package vector
