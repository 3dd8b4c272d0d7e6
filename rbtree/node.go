package rbtree

type nodeColor bool

const (
	red   nodeColor = true
	black nodeColor = false
)

// node is a single tree element. The tree exclusively owns its nodes; parent
// links are navigation aids, never ownership edges.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	color  nodeColor
}

func (n *node[T]) isRed() bool {
	return n != nil && n.color == red
}

func (n *node[T]) isBlack() bool {
	return n == nil || n.color == black
}

// tombstone marks n as detached so that stale iterators can be recognized.
// Live nodes never point at themselves: the root's parent is nil and every
// other node's parent is a distinct node.
func (n *node[T]) tombstone() {
	n.left = nil
	n.right = nil
	n.parent = n
}

func (n *node[T]) isTombstone() bool {
	return n.parent == n
}

// minimum returns the leftmost node of the subtree rooted at n.
func minimum[T any](n *node[T]) *node[T] {
	assert(n != nil, "minimum called with nil subtree")
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
func maximum[T any](n *node[T]) *node[T] {
	assert(n != nil, "maximum called with nil subtree")
	for n.right != nil {
		n = n.right
	}
	return n
}
