package wbtree

const (
	// delta bounds the weight ratio between sibling subtrees; ratio selects
	// single vs. double rotation. <3,2> is a proven-sound parameter pair for
	// the node-weight balance condition (Hirai/Yamamoto, JFP 2011).
	delta = 3
	ratio = 2
)

// node is one immutable tree cell. A node is never mutated after it became
// reachable from a published tree; structural change allocates fresh nodes
// along the touched path only (path-copying) and shares everything else.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	// size caches 1 + size(left) + size(right).
	size int
}

func size[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// weight is the subtree size counting the empty slot as one. Balancing is
// expressed in weights rather than raw sizes, so empty and singleton
// subtrees need no special casing.
func weight[K, V any](n *node[K, V]) int {
	return size(n) + 1
}

func mkNode[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
		left:  left,
		right: right,
		size:  1 + size(left) + size(right),
	}
}
