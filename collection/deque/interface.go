package deque

import "iter"

// IDeque specifies the behaviour of a double-ended collection: queue
// semantics are provided by PushBack/PopFront and stack semantics by
// PushBack/PopBack. It is inspired by the work of
// https://github.com/golang-collections/collections and
// https://github.com/ava-labs/avalanchego/tree/master/utils/buffer.
type IDeque[T any] interface {
	// PushBack adds an element to the back of the deque.
	PushBack(value T)
	// PushFront adds an element to the front of the deque.
	PushFront(value T)
	// PopBack removes and returns the element at the back of the deque. It returns ok true if the deque is not empty.
	PopBack() (element T, ok bool)
	// PopFront removes and returns the element at the front of the deque. It returns ok true if the deque is not empty.
	PopFront() (element T, ok bool)
	// PeekBack returns the element at the back of the deque without removing it. It returns ok true if the deque is not empty.
	PeekBack() (element T, ok bool)
	// PeekFront returns the element at the front of the deque without removing it. It returns ok true if the deque is not empty.
	PeekFront() (element T, ok bool)
	// IsEmpty states whether the deque is empty.
	IsEmpty() bool
	// Len returns the number of elements in the deque.
	Len() int
	// Clear removes all elements from the deque.
	Clear()
	// SwapWithEmpty exchanges the whole content of the deque with the empty
	// destination deque in O(1), an effective way of retrieving all elements
	// at once. Supplying a nil or non-empty destination is a programming
	// error and results in a panic.
	SwapWithEmpty(destination *Deque[T])
	// Values returns all the elements in the deque, front to back. The deque will be empty as a result.
	Values() iter.Seq[T]
}

// IBlockingDeque specifies the behaviour of a double-ended collection with
// blocking semantics for both overflow and underflow: pushes suspend the
// calling goroutine whilst the deque is full and pops suspend it whilst the
// deque is empty. All waiters are released by Stop.
type IBlockingDeque[T any] interface {
	// PushBack adds an element to the back of the deque, waiting for capacity
	// to be available if the deque is full. It returns false if the deque is
	// stopped before or whilst waiting, true otherwise.
	PushBack(value T) bool
	// PushFront adds an element to the front of the deque, waiting for
	// capacity to be available if the deque is full. It returns false if the
	// deque is stopped before or whilst waiting, true otherwise.
	PushFront(value T) bool
	// PopBack removes and returns the element at the back of the deque,
	// waiting for an element to appear if the deque is empty. It returns ok
	// false if the deque is stopped before or whilst waiting.
	PopBack() (element T, ok bool)
	// PopFront removes and returns the element at the front of the deque,
	// waiting for an element to appear if the deque is empty. It returns ok
	// false if the deque is stopped before or whilst waiting.
	PopFront() (element T, ok bool)
	// PeekBack returns the element at the back of the deque without removing it. It does not block.
	PeekBack() (element T, ok bool)
	// PeekFront returns the element at the front of the deque without removing it. It does not block.
	PeekFront() (element T, ok bool)
	// IsEmpty states whether the deque is empty.
	IsEmpty() bool
	// Len returns the number of elements in the deque.
	Len() int
	// Clear removes all elements from the deque and releases any producer waiting for capacity.
	Clear()
	// SwapWithEmpty exchanges the whole content of the deque with the empty
	// destination deque in O(1) and releases any producer waiting for
	// capacity. Supplying a nil or non-empty destination is a programming
	// error and results in a panic.
	SwapWithEmpty(destination *Deque[T])
	// SetCapacity bounds the number of elements the deque accepts. Pushes
	// block whilst the deque holds `limit` elements or more; a limit of zero
	// pauses all producers. Lowering the limit under the current length does
	// not evict any element. A negative limit is a programming error and
	// results in a panic.
	SetCapacity(limit int)
	// SetUnbounded removes the capacity bound, the default state of a new deque.
	SetUnbounded()
	// Capacity returns the current capacity bound. bounded is false when the
	// deque is unbounded, in which case limit is meaningless.
	Capacity() (limit int, bounded bool)
	// Stop releases all the goroutines blocked in a push or a pop, which then
	// return false. Any push or pop starting afterwards fails immediately
	// without blocking. Stopping is final and idempotent; non-blocking
	// operations remain usable so that the deque can be drained.
	Stop()
	// Stopped states whether Stop was called.
	Stopped() bool
}
