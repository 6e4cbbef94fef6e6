/*
Package ordmap offers a persistent, ordered key-value map.

Ordered persistent maps

The map keeps its entries sorted by key in a weight-balanced search tree.
Every operation that changes the map returns a new map value and leaves the
old one untouched: new tree cells are allocated
only along the path from the root to the changed position, and all other
subtrees are shared by reference between the old and the new map
(path-copying). Past versions therefore stay fully valid and independently
usable.

From a paper by Stephen Adams, 1992 (Implementing Sets Efficiently in a
Functional Language):

In a functional language, persistence comes for free if the representation
is never updated in place. The problem is to make the persistent structure
efficient: balanced binary trees give logarithmic access while allowing
derived versions to share almost all of their substance.

This persistence contract is what grants concurrency safety: any number of
goroutines may hold and read distinct (or the same) map values without
synchronization, because no operation ever mutates a node another reference
still observes.

Performance characteristics:

	Operation     |   Map           |  built-in map
	--------------+-----------------+--------------
	Lookup        |   O(log n)      |   O(1)
	Insert        |   O(log n)      |   O(1) amortized
	Delete        |   O(log n)      |   O(1)
	Min/Max       |   O(log n)      |   O(n)
	Neighbor      |   O(log n)      |   O(n)
	Merge (union) |   O(m log(n/m)) |   O(m)
	Snapshot      |   O(1)          |   O(n)

For use cases that need ordered iteration, nearest-key queries, cheap
snapshots or set-algebraic merging, the persistent map has stable
performance and space characteristics. When none of those matter, the
built-in map is the better tool.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package ordmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
