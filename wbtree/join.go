package wbtree

// join builds a tree from a pivot entry and two balanced subtrees, where
// every key in left compares less than key and every key in right compares
// greater. The pivot descends the heavier spine until the weight bound
// admits it, and every unwind level routes through balance (Adams' concat3
// discipline), so the result is balanced for arbitrarily sized inputs.
func join[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	switch {
	case weight(left) > delta*weight(right):
		return balance(left.key, left.value, left.left, join(key, value, left.right, right))
	case weight(right) > delta*weight(left):
		return balance(right.key, right.value, join(key, value, left, right.left), right.right)
	}
	return mkNode(key, value, left, right)
}

// splitNode partitions n around key: left holds all entries with smaller
// keys, right all entries with greater keys, and value/found report a
// binding for key itself. Both fragments are balanced; untouched subtrees
// are shared with n.
func (t *Tree[K, V]) splitNode(n *node[K, V], key K) (left *node[K, V], value V, found bool, right *node[K, V]) {
	var zero V
	if n == nil {
		return nil, zero, false, nil
	}
	c := t.cfg.Compare(key, n.key)
	switch {
	case c < 0:
		l, v, ok, m := t.splitNode(n.left, key)
		return l, v, ok, join(n.key, n.value, m, n.right)
	case c > 0:
		m, v, ok, r := t.splitNode(n.right, key)
		return join(n.key, n.value, n.left, m), v, ok, r
	}
	return n.left, n.value, true, n.right
}

// Union merges the receiver with another tree built over an equivalent key
// order. Entries whose key occurs on one side only pass through unchanged.
// On a key collision the receiver's value wins when combine is nil;
// otherwise the stored value becomes combine(receiverValue, otherValue).
//
// The merge is split/join driven, its cost follows the smaller structure's
// contribution rather than folding the right operand entry by entry.
// Behavior is undefined if the trees disagree on the key order.
func (t *Tree[K, V]) Union(other *Tree[K, V], combine func(left, right V) V) *Tree[K, V] {
	if t == nil {
		return other
	}
	if other == nil || other.root == nil {
		return t
	}
	if t.root == nil {
		return t.derive(other.root)
	}
	return t.derive(t.unionNodes(t.root, other.root, combine))
}

func (t *Tree[K, V]) unionNodes(a, b *node[K, V], combine func(V, V) V) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	bl, bv, found, br := t.splitNode(b, a.key)
	value := a.value
	if found && combine != nil {
		value = combine(a.value, bv)
	}
	return join(a.key, value,
		t.unionNodes(a.left, bl, combine),
		t.unionNodes(a.right, br, combine))
}
