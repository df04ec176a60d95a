package deque

import (
	"iter"

	"github.com/ARM-software/golang-collections/collections/bitops"
	"github.com/ARM-software/golang-collections/collections/commonerrors"
)

const minimumCapacity = 8

// NewDeque returns a deque which is not thread safe.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// NewDequeWithCapacity returns a deque which is not thread safe, preallocated
// for holding at least `capacity` elements.
func NewDequeWithCapacity[T any](capacity int) *Deque[T] {
	d := &Deque[T]{}
	if capacity > 0 {
		d.buffer = make([]T, bitops.Max(minimumCapacity, bitops.RoundUpToPowerOfTwo(capacity)))
	}
	return d
}

// Deque is a double-ended collection backed by a growable ring buffer. The
// buffer length is always a power of two so that indices wrap without
// division.
type Deque[T any] struct {
	buffer []T
	front  int
	length int
}

func (d *Deque[T]) IsEmpty() bool {
	return d.length == 0
}

func (d *Deque[T]) Len() int {
	return d.length
}

func (d *Deque[T]) Clear() {
	d.buffer = nil
	d.front = 0
	d.length = 0
}

func (d *Deque[T]) PushBack(value T) {
	d.grow()
	d.buffer[d.index(d.length)] = value
	d.length++
}

func (d *Deque[T]) PushFront(value T) {
	d.grow()
	d.front = bitops.AddMod(d.front, len(d.buffer)-1, len(d.buffer))
	d.buffer[d.front] = value
	d.length++
}

func (d *Deque[T]) PopBack() (element T, ok bool) {
	if d.length == 0 {
		return
	}
	ok = true
	var zero T
	i := d.index(d.length - 1)
	element = d.buffer[i]
	d.buffer[i] = zero
	d.length--
	return
}

func (d *Deque[T]) PopFront() (element T, ok bool) {
	if d.length == 0 {
		return
	}
	ok = true
	var zero T
	element = d.buffer[d.front]
	d.buffer[d.front] = zero
	d.front = d.index(1)
	d.length--
	return
}

func (d *Deque[T]) PeekBack() (element T, ok bool) {
	if d.length == 0 {
		return
	}
	return d.buffer[d.index(d.length-1)], true
}

func (d *Deque[T]) PeekFront() (element T, ok bool) {
	if d.length == 0 {
		return
	}
	return d.buffer[d.front], true
}

// SwapWithEmpty exchanges the whole content of the deque with the empty
// destination in O(1). It panics if the destination is nil or not empty as
// this denotes a bug in the calling code.
func (d *Deque[T]) SwapWithEmpty(destination *Deque[T]) {
	if destination == nil {
		panic(commonerrors.UndefinedVariable("destination deque"))
	}
	if !destination.IsEmpty() {
		panic(commonerrors.New(commonerrors.ErrInvalidDestination, "destination deque must be empty"))
	}
	*d, *destination = *destination, *d
}

// Values returns all the elements in the deque, front to back. The deque will
// be empty as a result.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		length := d.Len()
		for i := 0; i < length; i++ {
			v, ok := d.PopFront()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// index translates an offset from the front into a position in the ring.
func (d *Deque[T]) index(offset int) int {
	return bitops.AddMod(d.front, offset, len(d.buffer))
}

func (d *Deque[T]) grow() {
	if d.length < len(d.buffer) {
		return
	}
	buffer := make([]T, bitops.Max(minimumCapacity, bitops.RoundUpToPowerOfTwo(2*bitops.Max(1, d.length))))
	for i := 0; i < d.length; i++ {
		buffer[i] = d.buffer[d.index(i)]
	}
	d.buffer = buffer
	d.front = 0
}
