package shadowlayout

// Uniform is either a single value applied to all four sides or corners,
// or a marker meaning "keep the individual values".
//
// The zero value is UseIndividual.
type Uniform[T int | float64] struct {
	value T
	set   bool
}

// UniformOf returns a Uniform applying v to every component.
// Negative values behave like UseIndividual.
func UniformOf[T int | float64](v T) Uniform[T] {
	return Uniform[T]{value: v, set: v >= 0}
}

// UseIndividual returns a Uniform that leaves per-component values alone.
func UseIndividual[T int | float64]() Uniform[T] {
	return Uniform[T]{}
}

// Get returns the uniform value and whether one is set.
func (u Uniform[T]) Get() (T, bool) {
	return u.value, u.set
}

// IsSet reports whether the Uniform carries a value.
func (u Uniform[T]) IsSet() bool { return u.set }
