package symbol

// Optional formally represents a value that may be absent
type Optional[T any] struct {
	value *T
}

// Some returns an Optional holding the given value
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: &value}
}

// None returns an empty Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Present returns true if a value is present
func (o Optional[T]) Present() bool {
	return o.value != nil
}

// Get returns the value, and whether it was present
func (o Optional[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// OrElse returns the value if present, and the fallback otherwise
func (o Optional[T]) OrElse(fallback T) T {
	if o.value == nil {
		return fallback
	}
	return *o.value
}
