package wbtree

// balance is the single point of invariant restoration. Given a pivot entry
// and two subtrees which are each individually balanced, but whose mutual
// balance may have been violated by one structural step at the child level,
// it produces a node that satisfies the weight bound, preserves key order
// and preserves the in-order entry sequence.
//
// Single vs. double rotation is chosen by inspecting the grandchild weights,
// so the rotation cannot re-violate the bound one level up.
func balance[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	switch {
	case weight(right) > delta*weight(left):
		if weight(right.left) < ratio*weight(right.right) {
			return singleLeft(key, value, left, right)
		}
		return doubleLeft(key, value, left, right)
	case weight(left) > delta*weight(right):
		if weight(left.right) < ratio*weight(left.left) {
			return singleRight(key, value, left, right)
		}
		return doubleRight(key, value, left, right)
	}
	return mkNode(key, value, left, right)
}

func singleLeft[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	assert(right != nil, "singleLeft requires a right subtree")
	return mkNode(right.key, right.value,
		mkNode(key, value, left, right.left),
		right.right)
}

func singleRight[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	assert(left != nil, "singleRight requires a left subtree")
	return mkNode(left.key, left.value,
		left.left,
		mkNode(key, value, left.right, right))
}

func doubleLeft[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	assert(right != nil && right.left != nil, "doubleLeft requires an inner grandchild")
	rl := right.left
	return mkNode(rl.key, rl.value,
		mkNode(key, value, left, rl.left),
		mkNode(right.key, right.value, rl.right, right.right))
}

func doubleRight[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	assert(left != nil && left.right != nil, "doubleRight requires an inner grandchild")
	lr := left.right
	return mkNode(lr.key, lr.value,
		mkNode(left.key, left.value, left.left, lr.left),
		mkNode(key, value, lr.right, right))
}
