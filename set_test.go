package ordered

import (
	"fmt"
	"testing"

	"github.com/npillmayer/ordered/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestSetInsertFindErase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	set := NewSet[int]()
	for _, v := range []int{10, 20, 30} {
		_, inserted, err := set.Insert(v)
		require.NoError(t, err)
		require.True(t, inserted)
	}
	require.Equal(t, 3, set.Size())
	require.Equal(t, 10, set.Begin().MustValue())
	require.Equal(t, 30, set.End().Prev().MustValue())

	_, inserted, err := set.Insert(20)
	require.NoError(t, err)
	require.False(t, inserted, "duplicate key must not insert")
	require.Equal(t, 3, set.Size())

	require.Equal(t, 1, set.EraseKey(20))
	require.Equal(t, 0, set.EraseKey(20))
	require.False(t, set.Contains(20))
	require.Equal(t, 2, set.Size())
}

func TestSetCountAndBounds(t *testing.T) {
	set := NewSet[string]()
	_, err := set.InsertMany("pear", "apple", "quince")
	require.NoError(t, err)
	require.Equal(t, 1, set.Count("pear"))
	require.Equal(t, 0, set.Count("plum"))
	require.Equal(t, "pear", set.LowerBound("banana").MustValue())
	require.Equal(t, set.End(), set.UpperBound("quince"))
	lower, upper := set.EqualRange("pear")
	require.Equal(t, "pear", lower.MustValue())
	require.Equal(t, upper, lower.Next())
}

func TestSetInsertManyRollsBack(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	set, err := NewSetWith(rbtree.Config[int]{
		Less: func(a, b int) bool { return a < b },
		Validate: func(v int) error {
			if v < 0 {
				return fmt.Errorf("negative key %d", v)
			}
			return nil
		},
	})
	require.NoError(t, err)
	_, _, err = set.Insert(1)
	require.NoError(t, err)

	results, err := set.InsertMany(2, 3, -4, 5)
	require.ErrorIs(t, err, rbtree.ErrInvalidValue)
	require.Nil(t, results)
	require.Equal(t, 1, set.Size(), "failed bulk insert must leave the pre-call state")
	require.True(t, set.Contains(1))
	require.False(t, set.Contains(2))
	require.False(t, set.Contains(3))
	require.False(t, set.Contains(5))
}

func TestSetMergeAbsorbsAndClearsSource(t *testing.T) {
	a := NewSet[int]()
	b := NewSet[int]()
	_, err := a.InsertMany(1, 2)
	require.NoError(t, err)
	_, err = b.InsertMany(2, 3)
	require.NoError(t, err)

	a.Merge(b)
	require.Equal(t, 3, a.Size())
	require.True(t, b.IsEmpty(), "source must be drained by merge")
	var got []int
	for v := range a.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestSetCloneIndependence(t *testing.T) {
	set := NewSet[int]()
	_, err := set.InsertMany(1, 2, 3)
	require.NoError(t, err)
	clone := set.Clone()
	require.Equal(t, 1, clone.EraseKey(2))
	require.Equal(t, 3, set.Size())
	require.True(t, set.Contains(2))
	require.False(t, clone.Contains(2))
}

func TestSetSwap(t *testing.T) {
	a := NewSet[int]()
	b := NewSet[int]()
	_, err := a.InsertMany(1, 2)
	require.NoError(t, err)
	_, err = b.InsertMany(7, 8, 9)
	require.NoError(t, err)
	a.Swap(b)
	require.Equal(t, 3, a.Size())
	require.Equal(t, 2, b.Size())
	require.True(t, a.Contains(9))
	require.True(t, b.Contains(1))
}

func TestSetCustomComparator(t *testing.T) {
	set, err := NewSetFunc(func(a, b int) bool { return a > b }) // descending
	require.NoError(t, err)
	_, err = set.InsertMany(1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, set.Begin().MustValue())
	require.Equal(t, 1, set.End().Prev().MustValue())
	require.True(t, set.KeyComp()(5, 4))
}

func TestSetFuncRejectsNilComparator(t *testing.T) {
	_, err := NewSetFunc[int](nil)
	require.ErrorIs(t, err, rbtree.ErrInvalidConfig)
}
