/*
Package wbtree provides a persistent weight-balanced search tree, the engine
underneath package ordmap.

The tree keeps key-value entries in strict key order and bounds the weight
ratio between sibling subtrees, which guarantees O(log n) height without
tracking heights explicitly. Every structural operation is path-copying:
new nodes are allocated only along the root-to-target path, all untouched
subtrees are shared by reference, and previously published trees stay valid
and independently usable. This persistence contract is what makes
concurrent readers safe without synchronization.

Design points:
  - distinct balancing entry point (`balance`) through which every
    structural operation routes its unwind path,
  - cached subtree sizes on nodes, driving both balancing decisions and
    O(log n) operations,
  - weight-guided split/join primitives for set-algebraic merging, so that
    union cost follows the smaller contribution instead of a per-entry fold,
  - a strict structural checker (`Tree.Check`) for tests and diagnostics.

The package is intentionally free of tracing and I/O; facade-level
convenience lives in package ordmap.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package wbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
