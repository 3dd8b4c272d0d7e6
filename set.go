package ordered

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
)

// Set is an ordered collection of unique keys.
//
// A Set must be created with NewSet, NewSetFunc or NewSetWith; the zero
// value is not usable.
type Set[T any] struct {
	less func(a, b T) bool
	tree *rbtree.Tree[T]
}

// InsertResult reports the outcome of one element of a bulk insertion.
type InsertResult[T any] struct {
	Pos      rbtree.Iterator[T]
	Inserted bool
}

// NewSet creates an empty set over a naturally ordered key type.
func NewSet[T cmp.Ordered]() *Set[T] {
	s, err := NewSetFunc(func(a, b T) bool { return a < b })
	assert(err == nil, "NewSet: cannot create tree for ordered key type")
	return s
}

// NewSetFunc creates an empty set ordered by less.
func NewSetFunc[T any](less func(a, b T) bool) (*Set[T], error) {
	return NewSetWith(rbtree.Config[T]{Less: less})
}

// NewSetWith creates an empty set from a full tree configuration, including
// an optional validation hook consulted on every insertion.
func NewSetWith[T any](cfg rbtree.Config[T]) (*Set[T], error) {
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Set[T]{less: cfg.Less, tree: tree}, nil
}

// Size returns the number of keys.
func (s *Set[T]) Size() int { return s.tree.Size() }

// IsEmpty reports whether the set has no keys.
func (s *Set[T]) IsEmpty() bool { return s.tree.IsEmpty() }

// Begin returns an iterator at the smallest key, or End for an empty set.
func (s *Set[T]) Begin() rbtree.Iterator[T] { return s.tree.Begin() }

// End returns the past-the-last iterator.
func (s *Set[T]) End() rbtree.Iterator[T] { return s.tree.End() }

// All returns an in-order iterator over all keys.
func (s *Set[T]) All() iter.Seq[T] { return s.tree.All() }

// Insert adds key. If an equal key is already present, the set is unchanged
// and the returned iterator addresses the existing key.
func (s *Set[T]) Insert(key T) (pos rbtree.Iterator[T], inserted bool, err error) {
	return s.tree.Insert(key)
}

// InsertMany adds keys with all-or-nothing semantics: if any insertion is
// rejected, every key inserted by this call is rolled back before the error
// returns.
func (s *Set[T]) InsertMany(keys ...T) ([]InsertResult[T], error) {
	results := make([]InsertResult[T], 0, len(keys))
	var inserted []rbtree.Iterator[T]
	for _, key := range keys {
		pos, ok, err := s.tree.Insert(key)
		if err != nil {
			rollback(s.tree, inserted)
			return nil, err
		}
		results = append(results, InsertResult[T]{Pos: pos, Inserted: ok})
		if ok {
			inserted = append(inserted, pos)
		}
	}
	return results, nil
}

// rollback erases, in reverse order, elements inserted by a failed bulk
// operation.
func rollback[T any](tree *rbtree.Tree[T], inserted []rbtree.Iterator[T]) {
	for i := len(inserted) - 1; i >= 0; i-- {
		err := tree.Erase(inserted[i])
		assert(err == nil, "bulk-insert rollback must erase freshly inserted elements")
	}
	if len(inserted) > 0 {
		tracer().Debugf("bulk insert rolled back %d elements", len(inserted))
	}
}

// Erase removes the key addressed by pos.
func (s *Set[T]) Erase(pos rbtree.Iterator[T]) error {
	return s.tree.Erase(pos)
}

// EraseKey removes key if present and reports how many elements were
// removed (0 or 1).
func (s *Set[T]) EraseKey(key T) int {
	it := s.tree.Find(key)
	if it == s.tree.End() {
		return 0
	}
	err := s.tree.Erase(it)
	assert(err == nil, "EraseKey found a key it cannot erase")
	return 1
}

// Clear removes all keys.
func (s *Set[T]) Clear() { s.tree.Clear() }

// Swap exchanges the contents of two sets in O(1).
func (s *Set[T]) Swap(other *Set[T]) {
	if s == other || other == nil {
		return
	}
	s.less, other.less = other.less, s.less
	s.tree.Swap(other.tree)
}

// Merge transfers the keys of other into s, then clears other if anything
// was transferred. Keys already present in s are discarded, not retained in
// other.
func (s *Set[T]) Merge(other *Set[T]) {
	if s == other || other == nil {
		return
	}
	s.tree.Merge(other.tree)
}

// Clone returns a deep copy sharing no state with s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{less: s.less, tree: s.tree.Clone()}
}

// Find returns an iterator at key, or End.
func (s *Set[T]) Find(key T) rbtree.Iterator[T] { return s.tree.Find(key) }

// Contains reports membership of key.
func (s *Set[T]) Contains(key T) bool { return s.tree.Contains(key) }

// Count returns 1 if key is present, 0 otherwise.
func (s *Set[T]) Count(key T) int {
	if s.tree.Contains(key) {
		return 1
	}
	return 0
}

// LowerBound returns an iterator at the first key not less than key.
func (s *Set[T]) LowerBound(key T) rbtree.Iterator[T] { return s.tree.LowerBound(key) }

// UpperBound returns an iterator at the first key greater than key.
func (s *Set[T]) UpperBound(key T) rbtree.Iterator[T] { return s.tree.UpperBound(key) }

// EqualRange returns the iterator span [lower, upper) of keys equal to key.
func (s *Set[T]) EqualRange(key T) (lower, upper rbtree.Iterator[T]) {
	return s.tree.LowerBound(key), s.tree.UpperBound(key)
}

// KeyComp returns the ordering function.
func (s *Set[T]) KeyComp() func(a, b T) bool { return s.less }
