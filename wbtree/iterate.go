package wbtree

// ForEach walks entries in ascending key order.
//
// Iteration stops early if the callback returns false. The walk never
// mutates the tree.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode[K, V any](n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return forEachNode(n.right, fn)
}

// Equal reports whether both trees hold the same key set with equal values
// per key, as decided by eq. Tree shape is irrelevant: two trees holding
// the same entries compare equal regardless of their insertion history.
func (t *Tree[K, V]) Equal(other *Tree[K, V], eq func(a, b V) bool) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	assert(eq != nil, "Equal requires a value equality function")
	entries := make([]*node[K, V], 0, other.Len())
	collect(other.root, &entries)
	i := 0
	same := true
	forEachNode(t.root, func(key K, value V) bool {
		o := entries[i]
		i++
		if t.cfg.Compare(key, o.key) != 0 || !eq(value, o.value) {
			same = false
			return false
		}
		return true
	})
	return same
}

func collect[K, V any](n *node[K, V], out *[]*node[K, V]) {
	if n == nil {
		return
	}
	collect(n.left, out)
	*out = append(*out, n)
	collect(n.right, out)
}

// Transform produces a tree with the identical key set where every value v
// is replaced by f(key, v). The key set, and therefore the shape and all
// cached sizes, is unchanged; no rebalancing occurs.
func Transform[K, V, W any](t *Tree[K, V], f func(key K, value V) W) *Tree[K, W] {
	assert(t != nil, "Transform called on nil tree")
	assert(f != nil, "Transform requires a mapping function")
	return &Tree[K, W]{cfg: t.cfg, root: transformNode(t.root, f)}
}

func transformNode[K, V, W any](n *node[K, V], f func(K, V) W) *node[K, W] {
	if n == nil {
		return nil
	}
	return &node[K, W]{
		key:   n.key,
		value: f(n.key, n.value),
		left:  transformNode(n.left, f),
		right: transformNode(n.right, f),
		size:  n.size,
	}
}
