package ordmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// FromPairs builds a map from pairs, folded in sequence order. On duplicate
// keys the later pair wins, consistent with Insert's replace semantics.
// An empty sequence yields the empty map.
func FromPairs[K cmp.Ordered, V any](pairs ...Entry[K, V]) Map[K, V] {
	return FromPairsFunc(cmp.Compare[K], pairs...)
}

// FromPairsFunc is FromPairs with a caller-supplied total order on keys.
func FromPairsFunc[K, V any](compare func(a, b K) int, pairs ...Entry[K, V]) Map[K, V] {
	T().Debugf("ordmap: building map from %d pairs", len(pairs))
	m := NewWith[K, V](compare)
	for _, pair := range pairs {
		m = m.Insert(pair.Key, pair.Value)
	}
	return m
}

// FromPairsWith builds a map from pairs, folded in sequence order. On a
// duplicate key the stored value becomes combine(incoming, accumulated),
// with the incoming value first; combine need not be commutative.
func FromPairsWith[K cmp.Ordered, V any](combine func(incoming, accumulated V) V, pairs ...Entry[K, V]) Map[K, V] {
	assert(combine != nil, "FromPairsWith requires a combine function")
	m := New[K, V]()
	for _, pair := range pairs {
		m = Map[K, V]{tree: m.tree.InsertWith(combine, pair.Key, pair.Value)}
	}
	return m
}

// Frequencies builds a map from each distinct item to its occurrence count.
func Frequencies[T cmp.Ordered](items ...T) Map[T, int] {
	pairs := make([]Entry[T, int], len(items))
	for i, item := range items {
		pairs[i] = Entry[T, int]{Key: item, Value: 1}
	}
	return FromPairsWith(func(incoming, accumulated int) int {
		return incoming + accumulated
	}, pairs...)
}

// Union merges two maps. On a key collision the receiver's entry wins;
// entries present on only one side pass through unchanged. Union is
// idempotent: merging the result with other again changes nothing.
//
// Both maps must have been built over an equivalent key order.
func (m Map[K, V]) Union(other Map[K, V]) Map[K, V] {
	if m.tree == nil {
		return other
	}
	if other.tree == nil {
		return m
	}
	T().Debugf("ordmap: union of %d and %d entries", m.Size(), other.Size())
	return Map[K, V]{tree: m.tree.Union(other.tree, nil)}
}

// UnionWith merges two maps. On a key collision the stored value becomes
// combine(receiverValue, otherValue), with the receiver's value first;
// entries present on only one side pass through unchanged.
func (m Map[K, V]) UnionWith(combine func(left, right V) V, other Map[K, V]) Map[K, V] {
	assert(combine != nil, "UnionWith requires a combine function")
	if m.tree == nil {
		return other
	}
	if other.tree == nil {
		return m
	}
	T().Debugf("ordmap: union-with of %d and %d entries", m.Size(), other.Size())
	return Map[K, V]{tree: m.tree.Union(other.tree, combine)}
}
