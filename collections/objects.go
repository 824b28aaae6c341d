package collections

// Extend copies every entry of each source into target and returns target.
// Later sources override earlier ones and target's own entries. A nil target
// is replaced by a new map.
//
//	opts := collections.Extend(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
//	// → map[a:2 b:3]
func Extend[V any](target map[string]V, sources ...map[string]V) map[string]V {
	return assign(target, sources, true)
}

// Defaults is like [Extend] but never overwrites a key that target already
// holds when the entry is copied, so the first source to supply a key wins.
func Defaults[V any](target map[string]V, sources ...map[string]V) map[string]V {
	return assign(target, sources, false)
}

func assign[V any](target map[string]V, sources []map[string]V, overwrite bool) map[string]V {
	if target == nil {
		target = make(map[string]V)
	}
	Sequence[map[string]V](sources).Each(func(src map[string]V, _ Key, _ Enumerable[map[string]V]) {
		Keyed[V](src).Each(func(v V, k Key, _ Enumerable[V]) {
			if _, exists := target[k.Name()]; exists && !overwrite {
				return
			}
			target[k.Name()] = v
		})
	})
	return target
}
