package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvalidIterator signals an operation on a default-constructed,
	// already-erased, foreign or end iterator.
	ErrInvalidIterator = errors.New("rbtree: invalid iterator")
	// ErrInvalidValue signals a value that was rejected by the configured
	// validation hook, or a replacement value that does not compare equal to
	// the value it replaces.
	ErrInvalidValue = errors.New("rbtree: invalid value")
)
