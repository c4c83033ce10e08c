package sanitizer

// Apply runs the value through each transform in order and returns the
// result.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a single reusable transform out of a pipeline. Prefer it
// over repeated Apply calls when the same chain is used in several places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
