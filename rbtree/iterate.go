package rbtree

import "iter"

// All returns an in-order iterator over all elements.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil || t.root == nil {
			return
		}
		walkInOrder(t.root, yield)
	}
}

func walkInOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	if !walkInOrder(n.left, yield) {
		return false
	}
	if !yield(n.value) {
		return false
	}
	return walkInOrder(n.right, yield)
}

// ForEach visits all elements in order. Iteration stops early if the
// callback returns false.
func (t *Tree[T]) ForEach(fn func(value T) bool) {
	if fn == nil {
		return
	}
	for v := range t.All() {
		if !fn(v) {
			return
		}
	}
}
