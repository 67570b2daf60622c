package helpers

// NonNil returns s, or an empty slice when s is nil, so JSON encodes [] instead of null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
