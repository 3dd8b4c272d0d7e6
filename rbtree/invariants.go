package rbtree

import "fmt"

// Check validates structural red-black invariants.
//
// This checker is intentionally strict and is meant to be called from tests
// after every mutation batch. It verifies:
//
//   - the root is black,
//   - no red node has a red child,
//   - uniform black-height on every root-to-leaf path,
//   - in-order values are non-decreasing per the comparator,
//   - parent back-links mirror the child links,
//   - the sentinel is black, unlinked, and caches the maximum node,
//   - the recorded size matches the node count.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.end == nil {
		return fmt.Errorf("%w: missing sentinel", ErrInvalidConfig)
	}
	if t.end.color != black {
		return fmt.Errorf("%w: sentinel must be black", ErrInvalidConfig)
	}
	if t.end.left != nil || t.end.right != nil {
		return fmt.Errorf("%w: sentinel must not have children", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvalidConfig, t.size)
		}
		if t.end.parent != nil {
			return fmt.Errorf("%w: sentinel of empty tree must not cache a maximum", ErrInvalidConfig)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root must not have a parent", ErrInvalidConfig)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root must be black", ErrInvalidConfig)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidConfig, count, t.size)
	}
	if t.end.parent != maximum(t.root) {
		return fmt.Errorf("%w: sentinel does not cache the maximum node", ErrInvalidConfig)
	}
	if err := t.checkOrdering(); err != nil {
		return err
	}
	return nil
}

// checkNode returns node count and black-height of the subtree at n.
func (t *Tree[T]) checkNode(n *node[T]) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n == t.end {
		return 0, 0, fmt.Errorf("%w: sentinel linked as a child", ErrInvalidConfig)
	}
	if n.isRed() && (n.left.isRed() || n.right.isRed()) {
		return 0, 0, fmt.Errorf("%w: red node with red child", ErrInvalidConfig)
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link on left child", ErrInvalidConfig)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link on right child", ErrInvalidConfig)
	}
	leftCount, leftBlack, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightBlack, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftBlack != rightBlack {
		return 0, 0, fmt.Errorf("%w: black-height mismatch (%d != %d)", ErrInvalidConfig, leftBlack, rightBlack)
	}
	if n.isBlack() {
		leftBlack++
	}
	return leftCount + rightCount + 1, leftBlack, nil
}

// checkOrdering walks in order and verifies a non-decreasing sequence.
func (t *Tree[T]) checkOrdering() error {
	var prev T
	first := true
	violated := false
	t.ForEach(func(v T) bool {
		if !first && t.cfg.Less(v, prev) {
			violated = true
			return false
		}
		prev = v
		first = false
		return true
	})
	if violated {
		return fmt.Errorf("%w: in-order traversal is not sorted", ErrInvalidConfig)
	}
	return nil
}
