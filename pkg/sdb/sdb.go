// Package sdb implements the core of the debugger shell: the pipeline
// language, the command registry, and the dispatch machinery that moves
// typed objects from one command to the next.
//
// A pipeline is built from one line of input. Each stage consumes a lazy
// stream of objects and produces another; an optional trailing shell
// escape feeds the rendered output of the last stage to an external
// command. Streams are pull-based, so consuming k objects downstream
// forces at most the upstream work needed to produce those k objects.
package sdb

import (
	"iter"

	"github.com/delphix/sdb-go/pkg/target"
)

// Stream is a lazy sequence of objects flowing between pipeline stages.
type Stream = iter.Seq[target.Object]

// Values returns a stream that yields the given objects in order.
func Values(objs ...target.Object) Stream {
	return func(yield func(target.Object) bool) {
		for _, obj := range objs {
			if !yield(obj) {
				return
			}
		}
	}
}

// Empty is the stream that yields nothing.
func Empty(func(target.Object) bool) {}

// forward pumps s into yield, returning false as soon as the consumer
// stops.
func forward(s Stream, yield func(target.Object) bool) bool {
	for obj := range s {
		if !yield(obj) {
			return false
		}
	}
	return true
}

// peek pulls the first object of s. The returned stream re-yields that
// object followed by the rest of s; ok is false if s was empty.
func peek(s Stream) (first target.Object, rest Stream, ok bool) {
	next, stop := iter.Pull(s)
	first, ok = next()
	if !ok {
		stop()
		return target.Object{}, Empty, false
	}
	rest = func(yield func(target.Object) bool) {
		defer stop()
		if !yield(first) {
			return
		}
		for {
			obj, ok := next()
			if !ok {
				return
			}
			if !yield(obj) {
				return
			}
		}
	}
	return first, rest, true
}
