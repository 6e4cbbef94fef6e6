package ordmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordmap/wbtree"
)

// Entry is one key-value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map stores key-value entries in a persistent weight-balanced search tree.
//
// A map produced by New, NewWith or one of the bulk constructors is
// immutable: every operation returns a new, independently valid map which
// shares all untouched subtrees with its inputs. Old map values stay fully
// usable, which makes concurrent readers safe without synchronization.
//
// The zero value of Map behaves like an empty map for all read operations.
// Write operations require a map obtained from a constructor, since the
// zero value carries no key comparator.
type Map[K, V any] struct {
	tree *wbtree.Tree[K, V]
}

// New creates an empty map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return NewWith[K, V](cmp.Compare[K])
}

// NewWith creates an empty map ordered by a caller-supplied total order on
// keys: compare returns a negative value if a sorts before b, zero if both
// are equal, a positive value if a sorts after b.
func NewWith[K, V any](compare func(a, b K) int) Map[K, V] {
	tree, err := wbtree.New[K, V](wbtree.Config[K]{Compare: compare})
	assert(err == nil, "NewWith requires a non-nil comparator")
	return Map[K, V]{tree: tree}
}

// Size returns the number of entries in the map.
func (m Map[K, V]) Size() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Lookup returns the value bound to key.
func (m Map[K, V]) Lookup(key K) (V, bool) {
	return m.tree.Lookup(key)
}

// Insert returns a map with key bound to value. An existing binding for key
// is replaced, last writer wins. The receiver stays unchanged.
func (m Map[K, V]) Insert(key K, value V) Map[K, V] {
	assert(m.tree != nil, "write on zero-value map; use New, NewWith or a bulk constructor")
	return Map[K, V]{tree: m.tree.Insert(key, value)}
}

// Delete returns a map without key. Deleting an absent key returns a map
// observably identical to the receiver.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	if m.tree == nil {
		return m
	}
	return Map[K, V]{tree: m.tree.Delete(key)}
}

// Pop removes key and additionally returns the value that was bound to it
// before the removal. Popping an absent key returns the receiver unchanged.
func (m Map[K, V]) Pop(key K) (V, bool, Map[K, V]) {
	if m.tree == nil {
		var zero V
		return zero, false, m
	}
	value, ok, tree := m.tree.Pop(key)
	return value, ok, Map[K, V]{tree: tree}
}

// Range returns an iterator over all entries in ascending key order.
func (m Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.ForEach(yield)
	}
}

// Pairs returns every entry exactly once. The order is deterministic but
// not part of the contract; clients that rely on ascending key order should
// call AscPairs, which currently shares the same in-order walk.
func (m Map[K, V]) Pairs() []Entry[K, V] {
	return m.AscPairs()
}

// AscPairs returns every entry exactly once, strictly ascending by key.
func (m Map[K, V]) AscPairs() []Entry[K, V] {
	if m.tree.IsEmpty() {
		return nil
	}
	entries := make([]Entry[K, V], 0, m.tree.Len())
	m.tree.ForEach(func(key K, value V) bool {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
		return true
	})
	return entries
}

// Check validates the structural invariants of the underlying tree: strict
// key order, balance bound and cached-size coherence. It is meant for tests
// and diagnostics; map operations never call it.
func (m Map[K, V]) Check() error {
	return m.tree.Check()
}

// EqualFunc reports whether both maps contain the same key set with equal
// values per key, as decided by eq. Tree shape is irrelevant: maps with the
// same entries compare equal regardless of their construction history.
func (m Map[K, V]) EqualFunc(other Map[K, V], eq func(a, b V) bool) bool {
	if m.Size() != other.Size() {
		return false
	}
	if m.Size() == 0 {
		return true
	}
	return m.tree.Equal(other.tree, eq)
}

// Equal reports whether both maps contain the same key set with ==-equal
// values per key.
func Equal[K any, V comparable](a, b Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// MapValues returns a map with the identical key set where every value v is
// replaced by f(key, v). The key set, and therefore the tree shape, is
// unchanged; no rebalancing occurs.
func MapValues[K, V, W any](m Map[K, V], f func(key K, value V) W) Map[K, W] {
	if m.tree == nil {
		return Map[K, W]{}
	}
	return Map[K, W]{tree: wbtree.Transform(m.tree, f)}
}

// String renders the map as "{k: v, …}" in ascending key order. This may be
// an expensive operation for large maps.
func (m Map[K, V]) String() string {
	var bf strings.Builder
	bf.WriteByte('{')
	sep := ""
	m.tree.ForEach(func(key K, value V) bool {
		fmt.Fprintf(&bf, "%s%v: %v", sep, key, value)
		sep = ", "
		return true
	})
	bf.WriteByte('}')
	return bf.String()
}
