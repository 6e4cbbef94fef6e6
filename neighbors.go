package ordmap

// Min returns the entry with the smallest key, or absent for an empty map.
func (m Map[K, V]) Min() (Entry[K, V], bool) {
	key, value, ok := m.tree.Min()
	return Entry[K, V]{Key: key, Value: value}, ok
}

// Max returns the entry with the greatest key, or absent for an empty map.
func (m Map[K, V]) Max() (Entry[K, V], bool) {
	key, value, ok := m.tree.Max()
	return Entry[K, V]{Key: key, Value: value}, ok
}

// LookupLT returns the entry with the greatest key strictly less than key,
// or absent if no such key exists. The search is a single descent.
func (m Map[K, V]) LookupLT(key K) (Entry[K, V], bool) {
	k, v, ok := m.tree.SearchLT(key)
	return Entry[K, V]{Key: k, Value: v}, ok
}

// LookupLE returns the entry with the greatest key less than or equal to
// key. An entry for key itself is preferred over any strictly smaller key.
func (m Map[K, V]) LookupLE(key K) (Entry[K, V], bool) {
	k, v, ok := m.tree.SearchLE(key)
	return Entry[K, V]{Key: k, Value: v}, ok
}

// LookupGT returns the entry with the smallest key strictly greater than
// key, or absent if no such key exists.
func (m Map[K, V]) LookupGT(key K) (Entry[K, V], bool) {
	k, v, ok := m.tree.SearchGT(key)
	return Entry[K, V]{Key: k, Value: v}, ok
}

// LookupGE returns the entry with the smallest key greater than or equal to
// key. An entry for key itself is preferred over any strictly greater key.
func (m Map[K, V]) LookupGE(key K) (Entry[K, V], bool) {
	k, v, ok := m.tree.SearchGE(key)
	return Entry[K, V]{Key: k, Value: v}, ok
}
