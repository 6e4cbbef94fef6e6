package wbtree

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (K, V, bool) {
	var zk K
	var zv V
	if t == nil || t.root == nil {
		return zk, zv, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the entry with the greatest key.
func (t *Tree[K, V]) Max() (K, V, bool) {
	var zk K
	var zv V
	if t == nil || t.root == nil {
		return zk, zv, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// SearchLT returns the entry with the greatest key strictly less than key.
//
// All neighbor searches are single descents which track the best candidate
// seen so far; there is no lookup-then-walk second pass.
func (t *Tree[K, V]) SearchLT(key K) (K, V, bool) {
	var best *node[K, V]
	if t != nil {
		for n := t.root; n != nil; {
			if t.cfg.Compare(n.key, key) < 0 {
				best = n
				n = n.right
			} else {
				n = n.left
			}
		}
	}
	return candidate(best)
}

// SearchLE returns the entry with the greatest key less than or equal to
// key; an exact match is preferred over any strictly smaller key.
func (t *Tree[K, V]) SearchLE(key K) (K, V, bool) {
	var best *node[K, V]
	if t != nil {
		for n := t.root; n != nil; {
			c := t.cfg.Compare(n.key, key)
			if c == 0 {
				return n.key, n.value, true
			}
			if c < 0 {
				best = n
				n = n.right
			} else {
				n = n.left
			}
		}
	}
	return candidate(best)
}

// SearchGT returns the entry with the smallest key strictly greater than key.
func (t *Tree[K, V]) SearchGT(key K) (K, V, bool) {
	var best *node[K, V]
	if t != nil {
		for n := t.root; n != nil; {
			if t.cfg.Compare(n.key, key) > 0 {
				best = n
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	return candidate(best)
}

// SearchGE returns the entry with the smallest key greater than or equal to
// key; an exact match is preferred over any strictly greater key.
func (t *Tree[K, V]) SearchGE(key K) (K, V, bool) {
	var best *node[K, V]
	if t != nil {
		for n := t.root; n != nil; {
			c := t.cfg.Compare(n.key, key)
			if c == 0 {
				return n.key, n.value, true
			}
			if c > 0 {
				best = n
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	return candidate(best)
}

func candidate[K, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.key, n.value, true
}
