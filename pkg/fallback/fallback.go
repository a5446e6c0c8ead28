package fallback

// Resolve returns primary if it is set, otherwise fallback.
// The second result reports whether any of them is set.
// A value is considered set when it is not the zero value of T.
func Resolve[T comparable](primary, fallback T) (T, bool) {
	var zero T
	if primary != zero {
		return primary, true
	}
	if fallback != zero {
		return fallback, true
	}
	return zero, false
}
