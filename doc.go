/*
Package ordered provides ordered associative containers for Go: Set,
Multiset and Map.

All three containers are thin adapters over a common red-black tree engine
(package rbtree). They keep their elements permanently sorted by an injected
comparator and expose iterator-based navigation in both directions:

	set := ordered.NewSet[int]()
	set.Insert(10)
	set.Insert(20)
	set.Insert(30)
	for v := range set.All() {
		…
	}

Operation cost follows the usual balanced-tree characteristics:

	Operation     |  Set/Multiset/Map
	--------------+------------------
	Insert        |   O(log n)
	Erase         |   O(log n)
	Find/Bounds   |   O(log n)
	Iterate       |   O(n)

Containers are not safe for concurrent use; synchronization, if needed, is
the caller's responsibility.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package ordered

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the package-internal alias for T. Generic functions must use it,
// since the identifier T denotes their type parameter there.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// ContainerError is an error type for the ordered module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged by keyed require-operations (Map.At) when the
// key is absent.
const ErrKeyNotFound = ContainerError("key not found")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")
