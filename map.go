package ordered

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
)

// Pair is a key/value element of a Map. Ordering considers the key only;
// the mapped value may change while the pair is linked into a map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered collection of key/value pairs with unique keys.
//
// A Map must be created with NewMap, NewMapFunc or NewMapWith; the zero
// value is not usable.
type Map[K, V any] struct {
	less func(a, b K) bool
	tree *rbtree.Tree[Pair[K, V]]
}

// NewMap creates an empty map over a naturally ordered key type.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMapFunc[K, V](func(a, b K) bool { return a < b })
	assert(err == nil, "NewMap: cannot create tree for ordered key type")
	return m
}

// NewMapFunc creates an empty map with keys ordered by less.
func NewMapFunc[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	return NewMapWith[K, V](less, nil)
}

// NewMapWith creates an empty map with keys ordered by less and an optional
// validation hook consulted on every insertion.
func NewMapWith[K, V any](less func(a, b K) bool, validate func(key K, value V) error) (*Map[K, V], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: comparator is required", ErrIllegalArguments)
	}
	cfg := rbtree.Config[Pair[K, V]]{
		Less: func(a, b Pair[K, V]) bool { return less(a.Key, b.Key) },
	}
	if validate != nil {
		cfg.Validate = func(p Pair[K, V]) error { return validate(p.Key, p.Value) }
	}
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{less: less, tree: tree}, nil
}

// probe builds a lookup pair carrying only the key; the comparator never
// reads the value slot.
func (m *Map[K, V]) probe(key K) Pair[K, V] {
	return Pair[K, V]{Key: key}
}

// Size returns the number of pairs.
func (m *Map[K, V]) Size() int { return m.tree.Size() }

// IsEmpty reports whether the map has no pairs.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Begin returns an iterator at the pair with the smallest key, or End for
// an empty map.
func (m *Map[K, V]) Begin() rbtree.Iterator[Pair[K, V]] { return m.tree.Begin() }

// End returns the past-the-last iterator.
func (m *Map[K, V]) End() rbtree.Iterator[Pair[K, V]] { return m.tree.End() }

// All returns an in-order iterator over keys and values.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Insert adds the pair (key, value). If the key is already present, the map
// is unchanged and the returned iterator addresses the existing pair.
func (m *Map[K, V]) Insert(key K, value V) (pos rbtree.Iterator[Pair[K, V]], inserted bool, err error) {
	return m.tree.Insert(Pair[K, V]{Key: key, Value: value})
}

// InsertMany adds pairs with all-or-nothing semantics: if any insertion is
// rejected, every pair inserted by this call is rolled back before the
// error returns.
func (m *Map[K, V]) InsertMany(pairs ...Pair[K, V]) ([]InsertResult[Pair[K, V]], error) {
	results := make([]InsertResult[Pair[K, V]], 0, len(pairs))
	var inserted []rbtree.Iterator[Pair[K, V]]
	for _, p := range pairs {
		pos, ok, err := m.tree.Insert(p)
		if err != nil {
			rollback(m.tree, inserted)
			return nil, err
		}
		results = append(results, InsertResult[Pair[K, V]]{Pos: pos, Inserted: ok})
		if ok {
			inserted = append(inserted, pos)
		}
	}
	return results, nil
}

// Put inserts the pair (key, value), or assigns value to an already present
// key.
func (m *Map[K, V]) Put(key K, value V) error {
	pos, inserted, err := m.Insert(key, value)
	if err != nil {
		return err
	}
	if inserted {
		return nil
	}
	return m.tree.Replace(pos, Pair[K, V]{Key: key, Value: value})
}

// GetOrInsert returns the value mapped to key, inserting fallback first if
// the key is absent.
func (m *Map[K, V]) GetOrInsert(key K, fallback V) (V, error) {
	pos, _, err := m.Insert(key, fallback)
	if err != nil {
		var zero V
		return zero, err
	}
	p, err := pos.Value()
	assert(err == nil, "GetOrInsert holds an iterator it cannot dereference")
	return p.Value, err
}

// At returns the value mapped to key. An absent key is an error
// (ErrKeyNotFound).
func (m *Map[K, V]) At(key K) (V, error) {
	it := m.tree.Find(m.probe(key))
	if it == m.tree.End() {
		var zero V
		return zero, fmt.Errorf("%w: map has no such key", ErrKeyNotFound)
	}
	return it.MustValue().Value, nil
}

// Get returns the value mapped to key and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.tree.Find(m.probe(key))
	if it == m.tree.End() {
		var zero V
		return zero, false
	}
	return it.MustValue().Value, true
}

// Erase removes the pair addressed by pos.
func (m *Map[K, V]) Erase(pos rbtree.Iterator[Pair[K, V]]) error {
	return m.tree.Erase(pos)
}

// EraseKey removes key if present and reports how many pairs were removed
// (0 or 1).
func (m *Map[K, V]) EraseKey(key K) int {
	it := m.tree.Find(m.probe(key))
	if it == m.tree.End() {
		return 0
	}
	err := m.tree.Erase(it)
	assert(err == nil, "EraseKey found a key it cannot erase")
	return 1
}

// Clear removes all pairs.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Swap exchanges the contents of two maps in O(1).
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	if m == other || other == nil {
		return
	}
	m.less, other.less = other.less, m.less
	m.tree.Swap(other.tree)
}

// Merge transfers the pairs of other into m, then clears other if anything
// was transferred. Pairs whose key is already present in m are discarded.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if m == other || other == nil {
		return
	}
	m.tree.Merge(other.tree)
}

// Clone returns a deep copy sharing no state with m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{less: m.less, tree: m.tree.Clone()}
}

// Find returns an iterator at the pair with key, or End.
func (m *Map[K, V]) Find(key K) rbtree.Iterator[Pair[K, V]] {
	return m.tree.Find(m.probe(key))
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(m.probe(key))
}

// Count returns 1 if key is present, 0 otherwise.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// LowerBound returns an iterator at the first pair whose key is not less
// than key.
func (m *Map[K, V]) LowerBound(key K) rbtree.Iterator[Pair[K, V]] {
	return m.tree.LowerBound(m.probe(key))
}

// UpperBound returns an iterator at the first pair whose key is greater
// than key.
func (m *Map[K, V]) UpperBound(key K) rbtree.Iterator[Pair[K, V]] {
	return m.tree.UpperBound(m.probe(key))
}

// EqualRange returns the iterator span [lower, upper) of pairs whose key
// equals key.
func (m *Map[K, V]) EqualRange(key K) (lower, upper rbtree.Iterator[Pair[K, V]]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// KeyComp returns the key ordering function.
func (m *Map[K, V]) KeyComp() func(a, b K) bool { return m.less }
