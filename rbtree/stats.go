package rbtree

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats carries structural diagnostics of a tree.
type Stats struct {
	Size        int // number of elements
	Height      int // longest root-to-leaf path, 0 for an empty tree
	BlackHeight int // black nodes on any root-to-leaf path
}

// Stats collects size, height and black-height of the tree.
func (t *Tree[T]) Stats() Stats {
	if t == nil || t.root == nil {
		return Stats{}
	}
	s := Stats{Size: t.size}
	s.Height = height(t.root)
	for n := t.root; n != nil; n = n.left {
		if n.isBlack() {
			s.BlackHeight++
		}
	}
	return s
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func (s Stats) String() string {
	return fmt.Sprintf("%s nodes, height %d, black-height %d",
		humanize.Comma(int64(s.Size)), s.Height, s.BlackHeight)
}
