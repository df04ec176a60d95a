package deque

import (
	"iter"

	"github.com/sasha-s/go-deadlock"
)

// NewThreadSafeDeque returns a thread safe deque. Every operation is atomic
// but none ever blocks: pops on an empty deque report emptiness instead of
// waiting.
func NewThreadSafeDeque[T any]() IDeque[T] {
	return &SafeDeque[T]{
		d: NewDeque[T](),
	}
}

type SafeDeque[T any] struct {
	d  *Deque[T]
	mu deadlock.Mutex
}

func (q *SafeDeque[T]) PushBack(value T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.PushBack(value)
}

func (q *SafeDeque[T]) PushFront(value T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.PushFront(value)
}

func (q *SafeDeque[T]) PopBack() (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.PopBack()
}

func (q *SafeDeque[T]) PopFront() (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.PopFront()
}

func (q *SafeDeque[T]) PeekBack() (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.PeekBack()
}

func (q *SafeDeque[T]) PeekFront() (element T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.PeekFront()
}

func (q *SafeDeque[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.IsEmpty()
}

func (q *SafeDeque[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.Len()
}

func (q *SafeDeque[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.Clear()
}

func (q *SafeDeque[T]) SwapWithEmpty(destination *Deque[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.SwapWithEmpty(destination)
}

// Values returns all the elements in the deque, front to back. The deque will
// be empty as a result. Unlike iterating with PopFront, the whole content is
// captured atomically.
func (q *SafeDeque[T]) Values() iter.Seq[T] {
	drained := NewDeque[T]()
	q.SwapWithEmpty(drained)
	return drained.Values()
}
