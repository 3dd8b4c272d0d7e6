package rbtree

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
