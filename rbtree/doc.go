/*
Package rbtree provides an ordered, node-based red-black tree with a
sentinel end node and bidirectional iterators.

The tree is the balancing engine behind the associative containers of
package ordered (Set, Multiset, Map). It supports two insertion policies,
unique keys and non-unique keys, so that a single engine can back both
set-like and multiset-like containers. Ordering is injected as a strategy
function through Config, never discovered via reflection or runtime
interfaces.

Structure invariants maintained across every mutation:

  - the root is black,
  - no red node has a red child,
  - every path from the root to a leaf position passes the same number of
    black nodes,
  - in-order traversal yields values in comparator order,
  - the sentinel end node stays black and its parent pointer caches the
    current maximum node (nil for an empty tree).

The sentinel is never linked into the left/right child structure; it exists
solely as the canonical End() target and as the anchor that lets End()
decrement to the maximum element.

Trees are not safe for concurrent use. Iterators are unsynchronized views
that become invalid when the node they address is erased.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
