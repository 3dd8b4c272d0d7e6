package rbtree

// Tree is an ordered, node-based red-black tree with a sentinel end node.
//
// T is the element type; ordering is provided by Config.Less. A tree created
// by New is empty. The zero Tree value is not usable; operations on it will
// panic on the missing comparator.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
	// end is the persistent sentinel. It is always black, carries no value,
	// and is never linked as a physical child. Its parent pointer caches the
	// current maximum node, nil when the tree is empty.
	end  *node[T]
	size int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{
		cfg: cfg,
		end: &node[T]{color: black},
	}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.Size() == 0
}

// Begin returns an iterator at the minimum element, or End for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[T]{node: minimum(t.root), end: t.end}
}

// End returns the past-the-last iterator. Decrementing it yields the maximum
// element of a non-empty tree.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{node: t.end, end: t.end}
}

// Clear detaches and releases all elements. The sentinel survives; iterators
// into the old structure become invalid.
func (t *Tree[T]) Clear() {
	if t.root != nil {
		dropSubtree(t.root)
		t.root = nil
	}
	t.end.parent = nil
	t.end.left = nil
	t.end.right = nil
	t.size = 0
}

// dropSubtree tombstones every node under n so that stale iterators are
// detected instead of silently walking freed structure.
func dropSubtree[T any](n *node[T]) {
	if n == nil {
		return
	}
	dropSubtree(n.left)
	dropSubtree(n.right)
	n.tombstone()
}

// Clone returns a deep copy: every node is duplicated preserving color and
// relative structure, with a fresh sentinel relinked to the copy's maximum.
// The clone shares no nodes with the receiver.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := &Tree[T]{
		cfg:  t.cfg,
		end:  &node[T]{color: black},
		size: t.size,
	}
	cloned.root = cloneSubtree(t.root, nil)
	if cloned.root != nil {
		cloned.end.parent = maximum(cloned.root)
	}
	return cloned
}

// cloneSubtree is a pre-order structural copy.
func cloneSubtree[T any](n *node[T], parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	copied := &node[T]{
		value:  n.value,
		parent: parent,
		color:  n.color,
	}
	copied.left = cloneSubtree(n.left, copied)
	copied.right = cloneSubtree(n.right, copied)
	return copied
}

// Swap exchanges the contents of two trees in O(1). Each sentinel stays with
// its tree object, so End iterators remain bound to their tree.
func (t *Tree[T]) Swap(other *Tree[T]) {
	if t == other || other == nil {
		return
	}
	t.cfg, other.cfg = other.cfg, t.cfg
	t.root, other.root = other.root, t.root
	t.size, other.size = other.size, t.size
	t.refreshMax()
	other.refreshMax()
}

// Merge reinserts every element of other into t under the unique-key policy
// and then clears other, but only if at least one element was visited, so a
// merge from an empty tree leaves other untouched. Elements already present
// in t are dropped, not retained in other: merge absorbs what it can and
// discards the rest. Merging a tree with itself is a no-op.
func (t *Tree[T]) Merge(other *Tree[T]) {
	t.merge(other, true)
}

// MergeNonUnique is Merge under the non-unique insertion policy; every
// element of other is transferred, duplicates included.
func (t *Tree[T]) MergeNonUnique(other *Tree[T]) {
	t.merge(other, false)
}

func (t *Tree[T]) merge(other *Tree[T], unique bool) {
	if t == other || other == nil || other.root == nil {
		return
	}
	merged := false
	for it := other.Begin(); it != other.End(); it = it.Next() {
		if unique {
			t.insertUnique(it.node.value)
		} else {
			t.insertNonUnique(it.node.value)
		}
		merged = true
	}
	if merged {
		tracer().Debugf("merge transferred source tree (%d elements) into destination", other.size)
		other.Clear()
	}
}

// refreshMax recomputes the sentinel's cached maximum pointer.
//
// Any recompute strategy is acceptable as long as end.parent addresses the
// rightmost node afterwards; an O(log n) descent after each structural
// mutation keeps the bookkeeping in one place.
func (t *Tree[T]) refreshMax() {
	if t.root == nil {
		t.end.parent = nil
		return
	}
	t.end.parent = maximum(t.root)
}
