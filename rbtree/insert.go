package rbtree

// Insert adds value under the unique-key policy.
//
// If an equivalent element already exists, the tree is left unchanged and
// the iterator addresses the existing element with inserted == false.
// A validation error (Config.Validate) leaves the tree unchanged.
func (t *Tree[T]) Insert(value T) (pos Iterator[T], inserted bool, err error) {
	if err := t.cfg.check(value); err != nil {
		return t.End(), false, err
	}
	pos, inserted = t.insertUnique(value)
	return pos, inserted, nil
}

// InsertNonUnique adds value under the non-unique policy. Equivalent elements
// form a contiguous in-order run; ties descend to the right so later
// duplicates land behind earlier ones.
func (t *Tree[T]) InsertNonUnique(value T) (Iterator[T], error) {
	if err := t.cfg.check(value); err != nil {
		return t.End(), err
	}
	return t.insertNonUnique(value), nil
}

// insertUnique is the validation-free unique insertion used by Insert and
// Merge.
func (t *Tree[T]) insertUnique(value T) (Iterator[T], bool) {
	var parent *node[T]
	current := t.root
	for current != nil {
		parent = current
		switch {
		case t.cfg.Less(value, current.value):
			current = current.left
		case t.cfg.Less(current.value, value):
			current = current.right
		default:
			return Iterator[T]{node: current, end: t.end}, false
		}
	}
	n := t.attach(value, parent, parent != nil && t.cfg.Less(value, parent.value))
	return Iterator[T]{node: n, end: t.end}, true
}

// insertNonUnique is the validation-free non-unique insertion used by
// InsertNonUnique and MergeNonUnique.
func (t *Tree[T]) insertNonUnique(value T) Iterator[T] {
	var parent *node[T]
	current := t.root
	for current != nil {
		parent = current
		if t.cfg.Less(value, current.value) {
			current = current.left
		} else {
			current = current.right
		}
	}
	n := t.attach(value, parent, parent != nil && t.cfg.Less(value, parent.value))
	return Iterator[T]{node: n, end: t.end}
}

// attach links a fresh red node below parent (left if asLeft), rebalances,
// and refreshes the sentinel's maximum cache.
func (t *Tree[T]) attach(value T, parent *node[T], asLeft bool) *node[T] {
	n := &node[T]{value: value, parent: parent, color: red}
	if parent == nil {
		t.root = n
	} else if asLeft {
		parent.left = n
	} else {
		parent.right = n
	}
	t.fixInsert(n)
	t.refreshMax()
	t.size++
	return n
}
