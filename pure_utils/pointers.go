package pure_utils

// PtrValueOrDefault dereferences ptr, or returns def for a nil pointer.
func PtrValueOrDefault[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
