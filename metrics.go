package vector

// Utilization returns the ratio of valid elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.items) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.items))
}

// Reallocations returns how many times the vector replaced its buffer with
// a larger one. Copies start from zero; moves and swaps carry the count along.
func (v *Vector[T]) Reallocations() int {
	return v.reallocations
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.Len(),
		Capacity:      v.Cap(),
		Reallocations: v.Reallocations(),
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Valid elements
	Capacity      int     // Allocated slots
	Reallocations int     // Buffer replacements caused by growth
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
