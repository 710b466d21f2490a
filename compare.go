package vector

import "cmp"

// Equal reports whether a and b have the same length and equal elements in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	bv := b.Values()
	for i, x := range a.Values() {
		if !eq(x, bv[i]) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b, and +1 if a > b. A vector that is a prefix of another is less.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares elements with c.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], c func(T, U) int) int {
	av, bv := a.Values(), b.Values()
	for i := 0; i < len(av) && i < len(bv); i++ {
		if r := c(av[i], bv[i]); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(av), len(bv))
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
