package rbtree

// leftRotate pivots the subtree at x around its right child. In-order
// sequence is preserved; only parent/child links change.
func (t *Tree[T]) leftRotate(x *node[T]) {
	y := x.right
	assert(y != nil, "leftRotate requires a right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rightRotate is the mirror of leftRotate.
func (t *Tree[T]) rightRotate(x *node[T]) {
	y := x.left
	assert(y != nil, "rightRotate requires a left child")
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// in u's parent link. It does not rebalance and does not touch u's children.
func (t *Tree[T]) transplant(u, v *node[T]) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// fixInsert restores red-black invariants after linking the red node z.
//
// The loop runs while z's parent is red. Since the root stays black, a red
// parent always has a grandparent, so the uncle lookups below are safe.
func (t *Tree[T]) fixInsert(z *node[T]) {
	for z != t.root && z.parent.isRed() {
		parent := z.parent
		grandparent := parent.parent
		if parent == grandparent.left {
			uncle := grandparent.right
			if uncle.isRed() {
				// case 1: red uncle, recolor and continue at the grandparent
				parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == parent.right {
					// case 2: inner child, rotate onto the outer track
					z = parent
					t.leftRotate(z)
					parent = z.parent
				}
				// case 3: outer child, recolor and rotate the grandparent
				parent.color = black
				grandparent.color = red
				t.rightRotate(grandparent)
			}
		} else {
			uncle := grandparent.left
			if uncle.isRed() {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == parent.left {
					z = parent
					t.rightRotate(z)
					parent = z.parent
				}
				parent.color = black
				grandparent.color = red
				t.leftRotate(grandparent)
			}
		}
	}
	t.root.color = black
}

// fixErase restores red-black invariants after unlinking a black node.
//
// x is the replacement that inherited the missing blackness; it may be nil
// (a leaf position), which is why the parent is tracked explicitly instead
// of being read off x.
func (t *Tree[T]) fixErase(x *node[T], parent *node[T]) {
	for x != t.root && x.isBlack() {
		if parent == nil {
			break
		}
		if x == parent.left {
			sibling := parent.right
			assert(sibling != nil, "erase fixup: double-black node has no right sibling")
			if sibling.isRed() {
				// case 1: red sibling, rotate to expose a black sibling
				sibling.color = black
				parent.color = red
				t.leftRotate(parent)
				sibling = parent.right
			}
			if sibling.left.isBlack() && sibling.right.isBlack() {
				// case 2: black sibling and black nephews, push blackness up
				sibling.color = red
				x = parent
				parent = x.parent
			} else {
				if sibling.right.isBlack() {
					// case 3: near nephew red, far nephew black
					if sibling.left != nil {
						sibling.left.color = black
					}
					sibling.color = red
					t.rightRotate(sibling)
					sibling = parent.right
				}
				// case 4: far nephew red, terminal rotation
				sibling.color = parent.color
				parent.color = black
				if sibling.right != nil {
					sibling.right.color = black
				}
				t.leftRotate(parent)
				x = t.root
				parent = nil
			}
		} else {
			sibling := parent.left
			assert(sibling != nil, "erase fixup: double-black node has no left sibling")
			if sibling.isRed() {
				sibling.color = black
				parent.color = red
				t.rightRotate(parent)
				sibling = parent.left
			}
			if sibling.right.isBlack() && sibling.left.isBlack() {
				sibling.color = red
				x = parent
				parent = x.parent
			} else {
				if sibling.left.isBlack() {
					if sibling.right != nil {
						sibling.right.color = black
					}
					sibling.color = red
					t.leftRotate(sibling)
					sibling = parent.left
				}
				sibling.color = parent.color
				parent.color = black
				if sibling.left != nil {
					sibling.left.color = black
				}
				t.rightRotate(parent)
				x = t.root
				parent = nil
			}
		}
	}
	if x != nil {
		x.color = black
	}
}
