package ordered

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
)

// Multiset is an ordered collection of keys in which equal keys may repeat.
// Equal keys form a contiguous run in iteration order.
//
// A Multiset must be created with NewMultiset, NewMultisetFunc or
// NewMultisetWith; the zero value is not usable.
type Multiset[T any] struct {
	less func(a, b T) bool
	tree *rbtree.Tree[T]
}

// NewMultiset creates an empty multiset over a naturally ordered key type.
func NewMultiset[T cmp.Ordered]() *Multiset[T] {
	m, err := NewMultisetFunc(func(a, b T) bool { return a < b })
	assert(err == nil, "NewMultiset: cannot create tree for ordered key type")
	return m
}

// NewMultisetFunc creates an empty multiset ordered by less.
func NewMultisetFunc[T any](less func(a, b T) bool) (*Multiset[T], error) {
	return NewMultisetWith(rbtree.Config[T]{Less: less})
}

// NewMultisetWith creates an empty multiset from a full tree configuration.
func NewMultisetWith[T any](cfg rbtree.Config[T]) (*Multiset[T], error) {
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Multiset[T]{less: cfg.Less, tree: tree}, nil
}

// Size returns the number of keys, duplicates counted.
func (m *Multiset[T]) Size() int { return m.tree.Size() }

// IsEmpty reports whether the multiset has no keys.
func (m *Multiset[T]) IsEmpty() bool { return m.tree.IsEmpty() }

// Begin returns an iterator at the smallest key, or End for an empty
// multiset.
func (m *Multiset[T]) Begin() rbtree.Iterator[T] { return m.tree.Begin() }

// End returns the past-the-last iterator.
func (m *Multiset[T]) End() rbtree.Iterator[T] { return m.tree.End() }

// All returns an in-order iterator over all keys, duplicates included.
func (m *Multiset[T]) All() iter.Seq[T] { return m.tree.All() }

// Insert adds key; duplicates are always accepted.
func (m *Multiset[T]) Insert(key T) (rbtree.Iterator[T], error) {
	return m.tree.InsertNonUnique(key)
}

// InsertMany adds keys with all-or-nothing semantics: if any insertion is
// rejected, every key inserted by this call is rolled back before the error
// returns.
func (m *Multiset[T]) InsertMany(keys ...T) ([]rbtree.Iterator[T], error) {
	results := make([]rbtree.Iterator[T], 0, len(keys))
	for _, key := range keys {
		pos, err := m.tree.InsertNonUnique(key)
		if err != nil {
			rollback(m.tree, results)
			return nil, err
		}
		results = append(results, pos)
	}
	return results, nil
}

// Erase removes the single element addressed by pos.
func (m *Multiset[T]) Erase(pos rbtree.Iterator[T]) error {
	return m.tree.Erase(pos)
}

// EraseKey removes every element equal to key and reports how many were
// removed.
func (m *Multiset[T]) EraseKey(key T) int {
	count := 0
	for it := m.tree.Find(key); it != m.tree.End(); it = m.tree.Find(key) {
		err := m.tree.Erase(it)
		assert(err == nil, "EraseKey found a key it cannot erase")
		count++
	}
	return count
}

// Clear removes all keys.
func (m *Multiset[T]) Clear() { m.tree.Clear() }

// Swap exchanges the contents of two multisets in O(1).
func (m *Multiset[T]) Swap(other *Multiset[T]) {
	if m == other || other == nil {
		return
	}
	m.less, other.less = other.less, m.less
	m.tree.Swap(other.tree)
}

// Merge transfers every key of other into m, duplicates included, then
// clears other if anything was transferred.
func (m *Multiset[T]) Merge(other *Multiset[T]) {
	if m == other || other == nil {
		return
	}
	m.tree.MergeNonUnique(other.tree)
}

// Clone returns a deep copy sharing no state with m.
func (m *Multiset[T]) Clone() *Multiset[T] {
	return &Multiset[T]{less: m.less, tree: m.tree.Clone()}
}

// Find returns an iterator at some element equal to key, or End.
func (m *Multiset[T]) Find(key T) rbtree.Iterator[T] { return m.tree.Find(key) }

// Contains reports whether at least one element equals key.
func (m *Multiset[T]) Contains(key T) bool { return m.tree.Contains(key) }

// Count returns the number of elements equal to key, computed as the
// length of the equal range.
func (m *Multiset[T]) Count(key T) int {
	lower, upper := m.EqualRange(key)
	n := 0
	for it := lower; it != upper; it = it.Next() {
		n++
	}
	return n
}

// LowerBound returns an iterator at the first element not less than key.
func (m *Multiset[T]) LowerBound(key T) rbtree.Iterator[T] { return m.tree.LowerBound(key) }

// UpperBound returns an iterator at the first element greater than key.
func (m *Multiset[T]) UpperBound(key T) rbtree.Iterator[T] { return m.tree.UpperBound(key) }

// EqualRange returns the iterator span [lower, upper) of elements equal to
// key.
func (m *Multiset[T]) EqualRange(key T) (lower, upper rbtree.Iterator[T]) {
	return m.tree.LowerBound(key), m.tree.UpperBound(key)
}

// KeyComp returns the ordering function.
func (m *Multiset[T]) KeyComp() func(a, b T) bool { return m.less }
