package rbtree

import "fmt"

// Iterator is a bidirectional cursor over tree elements.
//
// Iterators have value semantics and are comparable with ==. The zero
// Iterator is invalid. An iterator becomes invalid when the element it
// addresses is erased or its tree is cleared; tree mutation does not
// otherwise invalidate it.
type Iterator[T any] struct {
	node *node[T]
	end  *node[T]
}

// IsValid reports whether the iterator addresses a live element. The End
// iterator is not valid in this sense: it cannot be dereferenced.
func (it Iterator[T]) IsValid() bool {
	return it.node != nil && it.node != it.end && !it.node.isTombstone()
}

// IsEnd reports whether the iterator is the past-the-last position.
func (it Iterator[T]) IsEnd() bool {
	return it.node != nil && it.node == it.end
}

// Value returns the element the iterator addresses.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if !it.IsValid() {
		return zero, fmt.Errorf("%w: cannot dereference", ErrInvalidIterator)
	}
	return it.node.value, nil
}

// MustValue is Value for positions known to be valid; it panics otherwise.
func (it Iterator[T]) MustValue() T {
	v, err := it.Value()
	assert(err == nil, "MustValue on an invalid iterator")
	return v
}

// Next returns the iterator at the in-order successor. Advancing from the
// maximum lands on End; advancing from End stays at End. Advancing from a
// stale iterator lands on End, consistent with stale detection in IsValid.
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil || it.node == it.end {
		return it
	}
	if it.node.isTombstone() {
		return Iterator[T]{node: it.end, end: it.end}
	}
	n := it.node
	if n.right != nil {
		return Iterator[T]{node: minimum(n.right), end: it.end}
	}
	parent := n.parent
	for parent != nil && n == parent.right {
		n = parent
		parent = parent.parent
	}
	if parent == nil {
		return Iterator[T]{node: it.end, end: it.end}
	}
	return Iterator[T]{node: parent, end: it.end}
}

// Prev returns the iterator at the in-order predecessor. Stepping back from
// End yields the maximum element; stepping back from the minimum or from a
// stale iterator lands on End.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.node == nil {
		return Iterator[T]{node: it.end, end: it.end}
	}
	if it.node != it.end && it.node.isTombstone() {
		return Iterator[T]{node: it.end, end: it.end}
	}
	if it.node == it.end {
		if it.end.parent == nil {
			return it // empty tree
		}
		return Iterator[T]{node: it.end.parent, end: it.end}
	}
	n := it.node
	if n.left != nil {
		return Iterator[T]{node: maximum(n.left), end: it.end}
	}
	parent := n.parent
	for parent != nil && n == parent.left {
		n = parent
		parent = parent.parent
	}
	if parent == nil {
		return Iterator[T]{node: it.end, end: it.end}
	}
	return Iterator[T]{node: parent, end: it.end}
}
