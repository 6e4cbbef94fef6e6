package wbtree

// Tree is a persistent ordered key-value map, balanced by subtree weight.
//
// K is the key type, ordered by the configured comparator; V is
// unconstrained. All mutating operations return a new tree and leave the
// receiver untouched.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// derive wraps a root into a tree sharing the receiver's configuration.
// An unchanged root reuses the receiver handle.
func (t *Tree[K, V]) derive(root *node[K, V]) *Tree[K, V] {
	if root == t.root {
		return t
	}
	return &Tree[K, V]{cfg: t.cfg, root: root}
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return size(t.root)
}

// Height returns the length of the longest root-to-leaf path, with 0 for an
// empty tree. It walks the whole tree and is meant for diagnostics only;
// the balance invariant keeps the result in O(log n).
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return subtreeHeight(t.root)
}

func subtreeHeight[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}

// Lookup returns the value bound to key.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return zero, false
}

// Insert returns a tree with key bound to value. An existing binding for
// key is replaced, last writer wins.
func (t *Tree[K, V]) Insert(key K, value V) *Tree[K, V] {
	assert(t != nil, "Insert called on nil tree")
	return t.derive(t.insertNode(t.root, key, value, nil))
}

// InsertWith is Insert with duplicate resolution: an existing binding for
// key is replaced by combine(value, existing). The argument order is fixed,
// combine need not be commutative.
func (t *Tree[K, V]) InsertWith(combine func(incoming, existing V) V, key K, value V) *Tree[K, V] {
	assert(t != nil, "InsertWith called on nil tree")
	assert(combine != nil, "InsertWith requires a combine function")
	return t.derive(t.insertNode(t.root, key, value, combine))
}

func (t *Tree[K, V]) insertNode(n *node[K, V], key K, value V, combine func(V, V) V) *node[K, V] {
	if n == nil {
		return mkNode(key, value, nil, nil)
	}
	c := t.cfg.Compare(key, n.key)
	switch {
	case c < 0:
		return balance(n.key, n.value, t.insertNode(n.left, key, value, combine), n.right)
	case c > 0:
		return balance(n.key, n.value, n.left, t.insertNode(n.right, key, value, combine))
	}
	if combine != nil {
		value = combine(value, n.value)
	}
	return mkNode(key, value, n.left, n.right)
}

// Delete returns a tree without key. Deleting an absent key returns the
// receiver handle unchanged.
//
// Internal entries are substituted by their in-order successor (the minimum
// of the right subtree); the left subtree takes over only when the right
// subtree is empty.
func (t *Tree[K, V]) Delete(key K) *Tree[K, V] {
	if t == nil || t.root == nil {
		return t
	}
	root, removed := t.deleteNode(t.root, key)
	if !removed {
		return t
	}
	return t.derive(root)
}

func (t *Tree[K, V]) deleteNode(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	c := t.cfg.Compare(key, n.key)
	switch {
	case c < 0:
		left, removed := t.deleteNode(n.left, key)
		if !removed {
			return n, false
		}
		return balance(n.key, n.value, left, n.right), true
	case c > 0:
		right, removed := t.deleteNode(n.right, key)
		if !removed {
			return n, false
		}
		return balance(n.key, n.value, n.left, right), true
	}
	return glue(n.left, n.right), true
}

// glue joins the two subtrees of a removed entry. All keys in left compare
// less than all keys in right, and the pair satisfied the balance bound at
// the removed parent, so promoting the successor needs one repair step.
func glue[K, V any](left, right *node[K, V]) *node[K, V] {
	switch {
	case right == nil:
		return left
	case left == nil:
		return right
	}
	key, value, rest := popMinNode(right)
	return balance(key, value, left, rest)
}

func popMinNode[K, V any](n *node[K, V]) (K, V, *node[K, V]) {
	assert(n != nil, "popMinNode called with nil node")
	if n.left == nil {
		return n.key, n.value, n.right
	}
	key, value, left := popMinNode(n.left)
	return key, value, balance(n.key, n.value, left, n.right)
}

// Pop removes key and returns the value that was bound to it before the
// removal, in a single descent. Popping an absent key returns the receiver
// handle unchanged.
func (t *Tree[K, V]) Pop(key K) (V, bool, *Tree[K, V]) {
	var zero V
	if t == nil || t.root == nil {
		return zero, false, t
	}
	value, removed, root := t.popNode(t.root, key)
	if !removed {
		return zero, false, t
	}
	return value, true, t.derive(root)
}

func (t *Tree[K, V]) popNode(n *node[K, V], key K) (V, bool, *node[K, V]) {
	var zero V
	if n == nil {
		return zero, false, nil
	}
	c := t.cfg.Compare(key, n.key)
	switch {
	case c < 0:
		value, removed, left := t.popNode(n.left, key)
		if !removed {
			return zero, false, n
		}
		return value, true, balance(n.key, n.value, left, n.right)
	case c > 0:
		value, removed, right := t.popNode(n.right, key)
		if !removed {
			return zero, false, n
		}
		return value, true, balance(n.key, n.value, n.left, right)
	}
	return n.value, true, glue(n.left, n.right)
}
