// Package heap provides a binary heap on a contiguous backing slice: pushes
// and pops are O(log n), reading the top element is O(1). A maximum size can
// be configured, in which case the heap keeps the best elements seen so far
// by evicting the top on push. The heap is not thread safe; it has no
// concurrency concerns by design.
package heap

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-collections/collections/commonerrors"
	"github.com/ARM-software/golang-collections/collections/field"
)

// New returns an empty heap ordered by the given comparison function: the
// element for which `less` holds against every other is kept at the top.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewOrdered returns an empty min-heap over an ordered type.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewFrom returns a heap holding the given elements, which are not required
// to form a heap. Complexity is linear in the number of elements.
func NewFrom[T any](less func(a, b T) bool, elements ...T) *Heap[T] {
	h := New(less)
	h.Assign(elements...)
	return h
}

type Heap[T any] struct {
	less     func(a, b T) bool
	elements []T
	// Maximum number of elements, nil when unbounded. The heap may hold more
	// than the maximum if it already did when the bound was set; see Push.
	maximum *int
}

func (h *Heap[T]) IsEmpty() bool {
	return len(h.elements) == 0
}

func (h *Heap[T]) Len() int {
	return len(h.elements)
}

func (h *Heap[T]) Clear() {
	h.elements = nil
}

// SetMax bounds the number of elements the heap retains; see Push. The bound
// does not evict elements already in the heap. A negative size is a
// programming error and results in a panic.
func (h *Heap[T]) SetMax(size int) {
	if size < 0 {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "invalid maximum size [%d]", size))
	}
	h.maximum = field.ToOptionalInt(size)
}

// SetUnbounded removes the maximum size, the default state of a new heap.
func (h *Heap[T]) SetUnbounded() {
	h.maximum = nil
}

// Max returns the maximum size of the heap. bounded is false when no maximum
// was set, in which case size is meaningless.
func (h *Heap[T]) Max() (size int, bounded bool) {
	return field.OptionalInt(h.maximum, 0), h.maximum != nil
}

// Peek returns the top element without removing it. It returns ok true if
// the heap is not empty.
func (h *Heap[T]) Peek() (element T, ok bool) {
	if len(h.elements) == 0 {
		return
	}
	return h.elements[0], true
}

// Pop removes and returns the top element. It returns ok true if the heap is
// not empty.
func (h *Heap[T]) Pop() (element T, ok bool) {
	if len(h.elements) == 0 {
		return
	}
	ok = true
	element = h.elements[0]
	last := len(h.elements) - 1
	h.elements[0] = h.elements[last]
	var zero T
	h.elements[last] = zero
	h.elements = h.elements[:last]
	h.heapify(0)
	return
}

// Push adds an element to the heap. If no maximum size is configured, or
// fewer elements than the maximum are held, the element is always added and
// Push returns true. Otherwise, if the element compares less than the top
// element, the top is evicted to make room and Push returns true; if not,
// the heap is left untouched and Push returns false.
func (h *Heap[T]) Push(element T) bool {
	if h.maximum != nil && len(h.elements) >= *h.maximum {
		if len(h.elements) == 0 || !h.less(element, h.elements[0]) {
			return false
		}
		_, _ = h.Pop()
	}
	h.elements = append(h.elements, element)
	h.elevate(len(h.elements) - 1)
	return true
}

// ReplaceElements replaces the content of the heap with the given elements
// and returns the previous content. The heap order of the new elements is
// restored in linear time.
func (h *Heap[T]) ReplaceElements(elements []T) (previous []T) {
	previous = h.elements
	h.elements = elements
	h.Rebuild()
	return
}

// Assign replaces the content of the heap with a copy of the given elements.
func (h *Heap[T]) Assign(elements ...T) {
	h.elements = slices.Clone(elements)
	h.Rebuild()
}

// Remove removes the element at the given position (in Values order).
// Complexity is linear in the number of elements. It returns ok true if the
// position is valid.
func (h *Heap[T]) Remove(index int) (element T, ok bool) {
	if index < 0 || index >= len(h.elements) {
		return
	}
	ok = true
	element = h.elements[index]
	h.elements = slices.Delete(h.elements, index, index+1)
	h.Rebuild()
	return
}

// Values returns the elements in backing order, top first. The order of the
// remaining elements is the heap layout, not the comparison order. Elements
// mutated whilst iterating require a Rebuild for the heap order to hold
// again.
func (h *Heap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range h.elements {
			if !yield(h.elements[i]) {
				return
			}
		}
	}
}

// Rebuild restores the heap order, for instance after element values have
// been mutated. Complexity is linear in the number of elements.
func (h *Heap[T]) Rebuild() {
	for i := len(h.elements)/2 - 1; i >= 0; i-- {
		h.heapify(i)
	}
}

// heapify restores the heap order of the subtree rooted at the given index,
// assuming both child subtrees are already heaps.
func (h *Heap[T]) heapify(index int) {
	for {
		best := index
		if left := 2*index + 1; left < len(h.elements) && h.less(h.elements[left], h.elements[best]) {
			best = left
		}
		if right := 2*index + 2; right < len(h.elements) && h.less(h.elements[right], h.elements[best]) {
			best = right
		}
		if best == index {
			return
		}
		h.elements[best], h.elements[index] = h.elements[index], h.elements[best]
		index = best
	}
}

// elevate moves the element at the given index up the tree until it finds
// its place in the heap.
func (h *Heap[T]) elevate(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !h.less(h.elements[index], h.elements[parent]) {
			return
		}
		h.elements[index], h.elements[parent] = h.elements[parent], h.elements[index]
		index = parent
	}
}
