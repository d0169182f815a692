package slidekit

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/port/ds"
)

// List is a growable ordered sequence backed by contiguous storage.
// The zero List is an empty sequence ready to use.
//
// List exists as the growable counterpart of Slice:
// both supply the Slider capability over their contiguous elements.
type List[T any] struct {
	vs []T
}

var _ interface {
	ds.List[any]
	ds.ReadOnlySequence[any]
	ds.SliceConvertible[any]
	ds.Len
	Slider[any]
} = (*List[any])(nil)

// Append adds the values to the end of the list.
//
// Appending may reallocate the backing storage,
// which invalidates sliding views taken before the append.
func (l *List[T]) Append(vs ...T) {
	l.vs = append(l.vs, vs...)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.vs)
}

// Lookup returns the element at the given zero based index.
func (l *List[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(l.vs) <= index {
		return *new(T), false
	}
	return l.vs[index], true
}

// Values returns an iterator over the elements of the list in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, v := range l.vs {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the list's elements.
func (l *List[T]) ToSlice() []T {
	return slices.Clone(l.vs)
}

// Slide returns a sliding view bound directly to the list's backing storage.
// The list must not be appended to while the view is in use.
func (l *List[T]) Slide() *Iter[T] {
	if l == nil {
		return From[T](nil)
	}
	return From(l.vs)
}
