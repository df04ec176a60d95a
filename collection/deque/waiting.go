package deque

import (
	"sync"

	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-collections/collections/commonerrors"
	"github.com/ARM-software/golang-collections/collections/field"
)

// NewBlockingDeque returns a thread safe deque which allows waiting for
// elements to appear or to be consumed. A new deque is unbounded; use
// SetCapacity or NewBoundedBlockingDeque to apply backpressure to producers.
func NewBlockingDeque[T any]() IBlockingDeque[T] {
	q := &BlockingDeque[T]{
		elements: NewDeque[T](),
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// NewBoundedBlockingDeque returns a blocking deque bounded by `capacity`.
// Capacity must be >= 0; zero pauses all producers until the bound is raised.
func NewBoundedBlockingDeque[T any](capacity int) (IBlockingDeque[T], error) {
	if capacity < 0 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "invalid capacity value [%d]", capacity)
	}
	q := NewBlockingDeque[T]()
	q.SetCapacity(capacity)
	return q, nil
}

// BlockingDeque is a double-ended collection guarded by one mutex and two
// condition variables, `notFull` and `notEmpty`. Pushes wait whilst the deque
// is at capacity and pops wait whilst it is empty; both conditions are
// re-checked in a loop on every wake as wakeups may be spurious and several
// waiters may race for a single notification. Stop releases every waiter,
// once and for all.
//
// The capacity bound is an explicit optional: a nil pointer means unbounded.
type BlockingDeque[T any] struct {
	mu       deadlock.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	elements *Deque[T]
	capacity *int
	stopped  bool
}

func (q *BlockingDeque[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.elements.IsEmpty()
}

func (q *BlockingDeque[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.elements.Len()
}

func (q *BlockingDeque[T]) PushBack(value T) bool {
	return q.push(value, true)
}

func (q *BlockingDeque[T]) PushFront(value T) bool {
	return q.push(value, false)
}

func (q *BlockingDeque[T]) PopBack() (element T, ok bool) {
	return q.pop(true)
}

func (q *BlockingDeque[T]) PopFront() (element T, ok bool) {
	return q.pop(false)
}

func (q *BlockingDeque[T]) PeekBack() (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.elements.PeekBack()
}

func (q *BlockingDeque[T]) PeekFront() (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.elements.PeekFront()
}

// Clear removes all elements. The deque can no longer be full and so, all the
// producers waiting for capacity are released to re-check their condition.
func (q *BlockingDeque[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.elements.Clear()
	q.notFull.Broadcast()
}

// SwapWithEmpty exchanges the whole content of the deque with the empty
// destination in O(1). The destination then exclusively owns the elements.
// As for Clear, all the producers waiting for capacity are released.
// It panics if the destination is nil or not empty as this denotes a bug in
// the calling code.
func (q *BlockingDeque[T]) SwapWithEmpty(destination *Deque[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.elements.SwapWithEmpty(destination)
	q.notFull.Broadcast()
}

// SetCapacity bounds the number of elements the deque accepts. Lowering the
// bound under the current length does not evict any element; it only pauses
// producers until enough elements are consumed. A negative limit denotes a
// bug in the calling code and results in a panic.
func (q *BlockingDeque[T]) SetCapacity(limit int) {
	if limit < 0 {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "invalid capacity value [%d]", limit))
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.capacity = field.ToOptionalInt(limit)
	// The bound may have been raised; waiting producers re-check it.
	q.notFull.Broadcast()
}

// SetUnbounded removes the capacity bound, the default state of a new deque.
func (q *BlockingDeque[T]) SetUnbounded() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.capacity = nil
	q.notFull.Broadcast()
}

func (q *BlockingDeque[T]) Capacity() (limit int, bounded bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return field.OptionalInt(q.capacity, 0), q.capacity != nil
}

// Stop releases all the goroutines blocked in a push or a pop, which then
// return false, and makes any subsequent push or pop fail immediately.
// Stopping is final: there is no way of restarting a stopped deque. It is
// safe to call Stop several times or concurrently with pushes and pops.
func (q *BlockingDeque[T]) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopped = true
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

func (q *BlockingDeque[T]) Stopped() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stopped
}

func (q *BlockingDeque[T]) push(value T, toBack bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.stopped {
			return false
		}
		if !q.full() {
			break
		}
		q.notFull.Wait()
	}
	if q.elements.IsEmpty() {
		// Exactly one element becomes available; one consumer is enough.
		q.notEmpty.Signal()
	}
	if toBack {
		q.elements.PushBack(value)
	} else {
		q.elements.PushFront(value)
	}
	return true
}

func (q *BlockingDeque[T]) pop(fromBack bool) (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.stopped {
			return
		}
		if !q.elements.IsEmpty() {
			break
		}
		q.notEmpty.Wait()
	}
	if fromBack {
		element, ok = q.elements.PopBack()
	} else {
		element, ok = q.elements.PopFront()
	}
	if q.capacity == nil || q.elements.Len() < *q.capacity {
		// Exactly one slot was freed; one producer is enough.
		q.notFull.Signal()
	}
	return
}

// full must be called with the lock held.
func (q *BlockingDeque[T]) full() bool {
	if q.capacity == nil {
		return false
	}
	return q.elements.Len() >= *q.capacity
}
