package rbtree

// Find returns an iterator at a node equivalent to key, or End.
func (t *Tree[T]) Find(key T) Iterator[T] {
	current := t.root
	for current != nil {
		switch {
		case t.cfg.Less(key, current.value):
			current = current.left
		case t.cfg.Less(current.value, key):
			current = current.right
		default:
			return Iterator[T]{node: current, end: t.end}
		}
	}
	return t.End()
}

// Contains reports whether an element equivalent to key is present.
func (t *Tree[T]) Contains(key T) bool {
	return t.Find(key) != t.End()
}

// LowerBound returns an iterator at the first element not less than key,
// or End if every element is less.
func (t *Tree[T]) LowerBound(key T) Iterator[T] {
	current := t.root
	var result *node[T]
	for current != nil {
		if !t.cfg.Less(current.value, key) {
			result = current
			current = current.left
		} else {
			current = current.right
		}
	}
	if result == nil {
		return t.End()
	}
	return Iterator[T]{node: result, end: t.end}
}

// UpperBound returns an iterator at the first element strictly greater than
// key, or End if no such element exists.
func (t *Tree[T]) UpperBound(key T) Iterator[T] {
	current := t.root
	var result *node[T]
	for current != nil {
		if t.cfg.Less(key, current.value) {
			result = current
			current = current.left
		} else {
			current = current.right
		}
	}
	if result == nil {
		return t.End()
	}
	return Iterator[T]{node: result, end: t.end}
}
