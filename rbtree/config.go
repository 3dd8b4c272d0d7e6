package rbtree

import "fmt"

// Config configures a red-black tree.
type Config[T any] struct {
	// Less is the strict weak ordering used to arrange values. Two values a, b
	// are considered equivalent iff !Less(a,b) && !Less(b,a).
	Less func(a, b T) bool
	// Validate, if non-nil, is consulted before a value enters the tree.
	// A non-nil return rejects the insertion; the tree is left unchanged.
	Validate func(value T) error
}

func (cfg Config[T]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// check runs the optional validation hook for a value about to be inserted.
func (cfg Config[T]) check(value T) error {
	if cfg.Validate == nil {
		return nil
	}
	if err := cfg.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

// equiv reports comparator equivalence of two values.
func (cfg Config[T]) equiv(a, b T) bool {
	return !cfg.Less(a, b) && !cfg.Less(b, a)
}
