package collections

import "strings"

// Get reads a value from a nested map[string]any using a dot-separated path.
//
//	m := map[string]any{"user": map[string]any{"address": map[string]any{"city": "London"}}}
//	collections.Get(m, "user.address.city") // "London", true
//
// The boolean is false when any segment is missing or an intermediate value
// is not a map[string]any.
func Get(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}
