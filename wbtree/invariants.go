package wbtree

import "fmt"

// Check validates structural tree invariants: strict key order, cached-size
// coherence, and the weight-balance bound at every node.
//
// This checker is intentionally strict and meant for tests and diagnostics;
// no production operation calls it. An error here indicates an
// implementation defect, not an input error.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	_, err := t.checkNode(t.root, nil, nil)
	return err
}

// checkNode verifies the subtree under n and returns its recounted size.
// lo and hi are exclusive key bounds inherited from ancestors; nil means
// unbounded.
func (t *Tree[K, V]) checkNode(n *node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cfg.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not above left bound %v", ErrInvariantViolated, n.key, *lo)
	}
	if hi != nil && t.cfg.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not below right bound %v", ErrInvariantViolated, n.key, *hi)
	}
	if weight(n.left) > delta*weight(n.right) || weight(n.right) > delta*weight(n.left) {
		return 0, fmt.Errorf("%w: weight balance violated at key %v (left=%d, right=%d)",
			ErrInvariantViolated, n.key, size(n.left), size(n.right))
	}
	key := n.key
	leftSize, err := t.checkNode(n.left, lo, &key)
	if err != nil {
		return 0, err
	}
	rightSize, err := t.checkNode(n.right, &key, hi)
	if err != nil {
		return 0, err
	}
	if n.size != 1+leftSize+rightSize {
		return 0, fmt.Errorf("%w: cached size %d at key %v, recount is %d",
			ErrInvariantViolated, n.size, n.key, 1+leftSize+rightSize)
	}
	return n.size, nil
}
