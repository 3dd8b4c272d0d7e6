package ordered

import (
	"fmt"
	"testing"

	"github.com/npillmayer/ordered/rbtree"
	"github.com/stretchr/testify/require"
)

func TestMapInsertAndLookup(t *testing.T) {
	m := NewMap[string, int]()
	_, inserted, err := m.Insert("one", 1)
	require.NoError(t, err)
	require.True(t, inserted)
	_, inserted, err = m.Insert("one", 111)
	require.NoError(t, err)
	require.False(t, inserted, "duplicate key must not insert")

	v, err := m.At("one")
	require.NoError(t, err)
	require.Equal(t, 1, v, "rejected insert must not overwrite the mapped value")

	_, err = m.At("two")
	require.ErrorIs(t, err, ErrKeyNotFound)

	v, ok := m.Get("one")
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = m.Get("two")
	require.False(t, ok)
}

func TestMapPutOverwrites(t *testing.T) {
	m := NewMap[string, int]()
	require.NoError(t, m.Put("k", 1))
	require.NoError(t, m.Put("k", 2))
	require.Equal(t, 1, m.Size())
	v, err := m.At("k")
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestMapGetOrInsert(t *testing.T) {
	m := NewMap[string, int]()
	v, err := m.GetOrInsert("k", 42)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	v, err = m.GetOrInsert("k", 99)
	require.NoError(t, err)
	require.Equal(t, 42, v, "present key must keep its value")
	require.Equal(t, 1, m.Size())
}

func TestMapIterationOrder(t *testing.T) {
	m := NewMap[int, string]()
	_, err := m.InsertMany(
		Pair[int, string]{Key: 3, Value: "c"},
		Pair[int, string]{Key: 1, Value: "a"},
		Pair[int, string]{Key: 2, Value: "b"},
	)
	require.NoError(t, err)
	var keys []int
	var values []string
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal(t, []int{1, 2, 3}, keys)
	require.Equal(t, []string{"a", "b", "c"}, values)
}

func TestMapInsertManyRollsBack(t *testing.T) {
	m, err := NewMapWith(
		func(a, b string) bool { return a < b },
		func(key string, value int) error {
			if value < 0 {
				return fmt.Errorf("negative value for key %q", key)
			}
			return nil
		},
	)
	require.NoError(t, err)
	_, _, err = m.Insert("a", 1)
	require.NoError(t, err)

	results, err := m.InsertMany(
		Pair[string, int]{Key: "b", Value: 2},
		Pair[string, int]{Key: "c", Value: -3},
		Pair[string, int]{Key: "d", Value: 4},
	)
	require.ErrorIs(t, err, rbtree.ErrInvalidValue)
	require.Nil(t, results)
	require.Equal(t, 1, m.Size(), "failed bulk insert must leave the pre-call state")
	require.False(t, m.Contains("b"))
	require.False(t, m.Contains("d"))
}

func TestMapEraseAndBounds(t *testing.T) {
	m := NewMap[int, string]()
	for _, k := range []int{10, 20, 30} {
		require.NoError(t, m.Put(k, "v"))
	}
	require.Equal(t, 1, m.EraseKey(20))
	require.Equal(t, 0, m.EraseKey(20))
	require.Equal(t, 2, m.Size())
	require.Equal(t, 30, m.LowerBound(15).MustValue().Key)
	require.Equal(t, m.End(), m.UpperBound(30))
	require.Equal(t, 1, m.Count(10))
	require.Equal(t, 0, m.Count(20))
}

func TestMapMergeAndClone(t *testing.T) {
	a := NewMap[int, string]()
	b := NewMap[int, string]()
	require.NoError(t, a.Put(1, "a1"))
	require.NoError(t, a.Put(2, "a2"))
	require.NoError(t, b.Put(2, "b2"))
	require.NoError(t, b.Put(3, "b3"))

	a.Merge(b)
	require.Equal(t, 3, a.Size())
	require.True(t, b.IsEmpty())
	v, err := a.At(2)
	require.NoError(t, err)
	require.Equal(t, "a2", v, "merge must keep the target's pair for a shared key")

	clone := a.Clone()
	require.Equal(t, 1, clone.EraseKey(1))
	require.True(t, a.Contains(1))
	require.False(t, clone.Contains(1))
}

func TestMapRejectsNilComparator(t *testing.T) {
	_, err := NewMapFunc[string, int](nil)
	require.ErrorIs(t, err, ErrIllegalArguments)
}
