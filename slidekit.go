// Package slidekit provides suffix-aware forward traversal over contiguous sequences.
//
// # Summary
//
// Traversing a sequence often requires looking at "everything after the current element",
// for example when an argument decides how the remaining arguments must be interpreted.
// Doing this by hand means index bookkeeping and re-slicing at every step.
// slidekit packages this into a single primitive:
// for each element of a sequence, in order, it produces the element
// together with the suffix of all elements strictly after it.
// The suffix, when present, is guaranteed to contain at least one element,
// so consumers may index into it right after a presence check, without a length check.
// On the last element the suffix is absent rather than empty.
//
// The traversal never mutates, consumes or copies the underlying sequence,
// it only ever holds a read-only view on the caller's storage.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package slidekit

import "iter"

// Iter is a sliding view over a contiguous sequence.
// It walks the sequence strictly forward and produces for every element
// the pair of the element itself and the suffix of all elements after it.
//
// The view references the caller's storage directly.
// Mutating the backing sequence while the view is in use is a caller error,
// the same discipline as not mutating a collection while ranging over it.
//
// The zero Iter is an exhausted view over an empty sequence.
type Iter[T any] struct {
	view []T
	pos  int

	value T
	rest  []T
}

// From returns a sliding view over the given slice with its cursor at the first element.
// The slice is borrowed, not copied; it must not be mutated while the view is in use.
// A nil or empty slice yields a view that is exhausted from the start.
func From[T any](s []T) *Iter[T] {
	return &Iter[T]{view: s}
}

// Next produces the next item of the traversal.
// It ensures that Value and Rest return the element and suffix of that item.
// Next reports false once the sequence is exhausted,
// and keeps reporting false on every further call.
func (i *Iter[T]) Next() bool {
	if len(i.view) <= i.pos {
		return false
	}
	i.value = i.view[i.pos]
	i.pos++
	if i.pos < len(i.view) {
		i.rest = i.view[i.pos:]
	} else {
		i.rest = nil
	}
	return true
}

// Value returns the element of the last produced item.
// The action is repeatable without side effects.
// Its result is meaningful only after Next reported true.
func (i *Iter[T]) Value() T {
	return i.value
}

// Rest returns the suffix of the last produced item: every element strictly after Value,
// and reports whether such a suffix is present.
// A present suffix always contains at least one element;
// on the last element of the sequence the suffix is absent.
// The returned slice aliases the backing sequence storage.
func (i *Iter[T]) Rest() ([]T, bool) {
	return i.rest, i.rest != nil
}

// Len reports the exact number of items the view can still produce,
// which is the sequence length minus the items already produced.
func (i *Iter[T]) Len() int {
	return len(i.view) - i.pos
}

// Slider is the capability of a contiguous read-only sequence representation
// to produce a sliding view over its elements.
// Any type that can expose its elements as a contiguous read-only range
// can supply this capability, which lets consumers traverse it
// without type specific code.
type Slider[T any] interface {
	// Slide returns a fresh sliding view over the sequence with its cursor at the first element.
	Slide() *Iter[T]
}

// Slice is a plain slice with the Slider capability.
type Slice[T any] []T

// Slide returns a sliding view bound directly to the slice's storage.
func (s Slice[T]) Slide() *Iter[T] {
	return From(s)
}

var _ Slider[any] = Slice[any]{}

// All returns the traversal as an iter.Seq2 over (element, suffix) pairs,
// where a nil suffix marks absence and a non-nil suffix is never empty.
// The sequence is finite and can be ranged over multiple times,
// each range traverses the slice from the beginning with a fresh view.
func All[T any](s []T) iter.Seq2[T, []T] {
	return func(yield func(T, []T) bool) {
		itr := From(s)
		for itr.Next() {
			rest, _ := itr.Rest()
			if !yield(itr.Value(), rest) {
				return
			}
		}
	}
}
