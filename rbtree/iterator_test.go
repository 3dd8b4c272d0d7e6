package rbtree

import (
	"errors"
	"testing"
)

func TestIterateForwardAndBackward(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 2, 4, 6, 8)
	var forward []int
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		forward = append(forward, it.MustValue())
	}
	var backward []int
	for it := tree.End().Prev(); ; it = it.Prev() {
		backward = append(backward, it.MustValue())
		if it == tree.Begin() {
			break
		}
	}
	if len(forward) != 4 || len(backward) != 4 {
		t.Fatalf("traversal lengths: fwd=%d bwd=%d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Fatalf("forward %v and backward %v are not mirrors", forward, backward)
		}
	}
}

func TestPrevFromEndIsMaximum(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 10, 30, 20)
	if v := tree.End().Prev().MustValue(); v != 30 {
		t.Fatalf("Prev(End) = %d, want 30", v)
	}
	if err := tree.Erase(tree.Find(30)); err != nil {
		t.Fatalf("Erase(30) failed: %v", err)
	}
	if v := tree.End().Prev().MustValue(); v != 20 {
		t.Fatalf("Prev(End) after erasing the maximum = %d, want 20", v)
	}
}

func TestPrevFromBeginIsEnd(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 1, 2, 3)
	if it := tree.Begin().Prev(); it != tree.End() {
		t.Fatalf("Prev(Begin) must land on End")
	}
}

func TestNextFromEndStaysAtEnd(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 1)
	if it := tree.End().Next(); it != tree.End() {
		t.Fatalf("Next(End) must stay at End")
	}
}

func TestEmptyTreeIteration(t *testing.T) {
	tree := newIntTree(t)
	if it := tree.End().Prev(); it != tree.End() {
		t.Fatalf("Prev(End) of empty tree must stay at End")
	}
	if tree.End().IsValid() {
		t.Fatalf("End iterator must not be dereferenceable")
	}
	if _, err := tree.End().Value(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Value of End: got %v", err)
	}
}

func TestEraseRejectsBadIterators(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 1, 2)
	if err := tree.Erase(Iterator[int]{}); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Erase of zero iterator: got %v", err)
	}
	if err := tree.Erase(tree.End()); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Erase of End iterator: got %v", err)
	}
	other := newIntTree(t)
	mustInsert(t, other, 1)
	if err := tree.Erase(other.Find(1)); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Erase of foreign iterator: got %v", err)
	}
	if tree.Size() != 2 || other.Size() != 1 {
		t.Fatalf("failed erase mutated a tree")
	}
}

func TestEraseDetectsStaleIterator(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 1, 2)
	it := tree.Find(1)
	if err := tree.Erase(it); err != nil {
		t.Fatalf("first Erase failed: %v", err)
	}
	if err := tree.Erase(it); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("second Erase of the same iterator: got %v", err)
	}
	if tree.Size() != 1 {
		t.Fatalf("double erase changed size to %d", tree.Size())
	}
}

func TestStaleIteratorNavigationLandsOnEnd(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 1, 2, 3)
	it := tree.Find(2)
	if err := tree.Erase(it); err != nil {
		t.Fatalf("Erase(2) failed: %v", err)
	}
	if next := it.Next(); next != tree.End() {
		t.Fatalf("Next of stale iterator must land on End")
	}
	if prev := it.Prev(); prev != tree.End() {
		t.Fatalf("Prev of stale iterator must land on End")
	}
	cleared := tree.Find(1)
	tree.Clear()
	if cleared.Next() != tree.End() || cleared.Prev() != tree.End() {
		t.Fatalf("navigation from an iterator into a cleared tree must land on End")
	}
}

func TestEraseKeepsSuccessorIteratorValid(t *testing.T) {
	tree := newIntTree(t)
	mustInsert(t, tree, 50, 30, 70, 60, 80)
	succ := tree.Find(60) // in-order successor of 50
	if err := tree.Erase(tree.Find(50)); err != nil {
		t.Fatalf("Erase(50) failed: %v", err)
	}
	// successor-transplant policy: the successor node itself survives the
	// two-children erase and moves into the erased position
	if !succ.IsValid() {
		t.Fatalf("iterator at successor invalidated by two-children erase")
	}
	if v := succ.MustValue(); v != 60 {
		t.Fatalf("successor iterator now addresses %d, want 60", v)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
}
