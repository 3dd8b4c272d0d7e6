package rbtree

import "fmt"

// Erase removes the element addressed by pos.
//
// It fails with ErrInvalidIterator for a default-constructed iterator, an
// iterator belonging to another tree, an iterator whose node has already
// been erased, and the End iterator. The tree is left unchanged on error.
//
// Two-children removal uses successor transplant: the in-order successor
// node is detached from its position and relinked into the target's slot,
// taking over the target's color. Iterators addressing the successor stay
// valid; iterators addressing the erased position become invalid.
func (t *Tree[T]) Erase(pos Iterator[T]) error {
	if pos.node == nil {
		return fmt.Errorf("%w: default-constructed iterator", ErrInvalidIterator)
	}
	if pos.end != t.end {
		return fmt.Errorf("%w: iterator belongs to a different tree", ErrInvalidIterator)
	}
	if pos.node == t.end {
		return fmt.Errorf("%w: cannot erase the end iterator", ErrInvalidIterator)
	}
	if pos.node.isTombstone() {
		return fmt.Errorf("%w: element already erased", ErrInvalidIterator)
	}

	z := pos.node
	y := z
	yColor := y.color
	var x, xParent *node[T]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		t.fixErase(x, xParent)
	}
	z.tombstone()
	t.size--
	t.refreshMax()
	return nil
}

// Replace substitutes the payload of the element at pos with value.
//
// The new value must compare equivalent to the old one (the ordering key of
// a linked node must never change) and must pass the validation hook. This
// backs in-place mapped-value assignment in the Map adapter.
func (t *Tree[T]) Replace(pos Iterator[T], value T) error {
	if pos.node == nil || pos.node == t.end || pos.end != t.end || pos.node.isTombstone() {
		return fmt.Errorf("%w: cannot replace through this iterator", ErrInvalidIterator)
	}
	if err := t.cfg.check(value); err != nil {
		return err
	}
	if !t.cfg.equiv(pos.node.value, value) {
		return fmt.Errorf("%w: replacement does not compare equal to the element", ErrInvalidValue)
	}
	pos.node.value = value
	return nil
}
