package deque

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-collections/collections/commonerrors"
)

func TestDeque(t *testing.T) {
	tests := []struct {
		details     string
		constructor func() IDeque[int]
	}{
		{
			details:     "unsafe deque",
			constructor: func() IDeque[int] { return NewDeque[int]() },
		},
		{
			details:     "preallocated deque",
			constructor: func() IDeque[int] { return NewDequeWithCapacity[int](100) },
		},
		{
			details:     "thread safe deque",
			constructor: NewThreadSafeDeque[int],
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.details, func(t *testing.T) {
			t.Run("new deque is empty", func(t *testing.T) {
				d := test.constructor()
				assert.True(t, d.IsEmpty())
				assert.Zero(t, d.Len())
				_, ok := d.PopBack()
				assert.False(t, ok)
				_, ok = d.PopFront()
				assert.False(t, ok)
				_, ok = d.PeekBack()
				assert.False(t, ok)
				_, ok = d.PeekFront()
				assert.False(t, ok)
			})
			t.Run("queue semantics (PushBack/PopFront)", func(t *testing.T) {
				d := test.constructor()
				for i := 1; i <= 100; i++ {
					d.PushBack(i)
				}
				require.Equal(t, 100, d.Len())
				for i := 1; i <= 100; i++ {
					v, ok := d.PopFront()
					require.True(t, ok)
					assert.Equal(t, i, v)
				}
				assert.True(t, d.IsEmpty())
			})
			t.Run("stack semantics (PushBack/PopBack)", func(t *testing.T) {
				d := test.constructor()
				for i := 1; i <= 100; i++ {
					d.PushBack(i)
				}
				for i := 100; i >= 1; i-- {
					v, ok := d.PopBack()
					require.True(t, ok)
					assert.Equal(t, i, v)
				}
				assert.True(t, d.IsEmpty())
			})
			t.Run("front insertion mirrors back insertion", func(t *testing.T) {
				d := test.constructor()
				for i := 1; i <= 50; i++ {
					d.PushFront(i)
				}
				// PushFront/PopFront is a stack.
				for i := 50; i >= 26; i-- {
					v, ok := d.PopFront()
					require.True(t, ok)
					assert.Equal(t, i, v)
				}
				// PushFront/PopBack is a queue.
				for i := 1; i <= 25; i++ {
					v, ok := d.PopBack()
					require.True(t, ok)
					assert.Equal(t, i, v)
				}
				assert.True(t, d.IsEmpty())
			})
			t.Run("peeks do not remove", func(t *testing.T) {
				d := test.constructor()
				d.PushBack(1)
				d.PushBack(2)
				front, ok := d.PeekFront()
				require.True(t, ok)
				back, ok := d.PeekBack()
				require.True(t, ok)
				assert.Equal(t, 1, front)
				assert.Equal(t, 2, back)
				assert.Equal(t, 2, d.Len())
			})
			t.Run("clear removes everything", func(t *testing.T) {
				d := test.constructor()
				for i := 0; i < 10; i++ {
					d.PushBack(i)
				}
				d.Clear()
				assert.True(t, d.IsEmpty())
				d.PushBack(72)
				v, ok := d.PopFront()
				require.True(t, ok)
				assert.Equal(t, 72, v)
			})
			t.Run("values drains front to back", func(t *testing.T) {
				d := test.constructor()
				for i := 1; i <= 5; i++ {
					d.PushBack(i)
				}
				assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(d.Values()))
				assert.True(t, d.IsEmpty())
			})
			t.Run("swap with empty transfers everything", func(t *testing.T) {
				d := test.constructor()
				for i := 1; i <= 10; i++ {
					d.PushBack(i)
				}
				destination := NewDeque[int]()
				d.SwapWithEmpty(destination)
				assert.True(t, d.IsEmpty())
				assert.Equal(t, 10, destination.Len())
				v, ok := destination.PopFront()
				require.True(t, ok)
				assert.Equal(t, 1, v)
			})
			t.Run("swap with a non-empty destination panics", func(t *testing.T) {
				d := test.constructor()
				destination := NewDeque[int]()
				destination.PushBack(72)
				assert.PanicsWithError(t, commonerrors.New(commonerrors.ErrInvalidDestination, "destination deque must be empty").Error(), func() {
					d.SwapWithEmpty(destination)
				})
			})
			t.Run("swap with a nil destination panics", func(t *testing.T) {
				d := test.constructor()
				assert.Panics(t, func() {
					d.SwapWithEmpty(nil)
				})
			})
			t.Run("count conservation over interleavings", func(t *testing.T) {
				d := test.constructor()
				pushes, pops := 0, 0
				for i := 0; i < 1000; i++ {
					d.PushBack(i)
					pushes++
					if i%3 == 0 {
						if _, ok := d.PopFront(); ok {
							pops++
						}
					}
					if i%7 == 0 {
						if _, ok := d.PopBack(); ok {
							pops++
						}
					}
				}
				assert.Equal(t, pushes-pops, d.Len())
			})
		})
	}
}

func TestDequeWraparound(t *testing.T) {
	// Exercise the ring indices across many wraps with a buffer kept small.
	d := NewDeque[int]()
	next, expected := 0, 0
	for i := 0; i < 5; i++ {
		d.PushBack(next)
		next++
	}
	for round := 0; round < 1000; round++ {
		for i := 0; i < 3; i++ {
			d.PushBack(next)
			next++
		}
		for i := 0; i < 3; i++ {
			v, ok := d.PopFront()
			require.True(t, ok)
			require.Equal(t, expected, v)
			expected++
		}
	}
	assert.Equal(t, 5, d.Len())
}

func TestDequeGrowthPreservesOrder(t *testing.T) {
	d := NewDeque[string]()
	d.PushFront("b")
	d.PushFront("a")
	for i := 0; i < 100; i++ {
		d.PushBack("x")
	}
	front, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", front)
	front, ok = d.PopFront()
	require.True(t, ok)
	assert.Equal(t, "b", front)
	assert.Equal(t, 100, d.Len())
}

func TestDequeZeroesVacatedSlots(t *testing.T) {
	// Popped slots must not retain references which would keep values alive.
	d := NewDeque[*int]()
	v := 72
	d.PushBack(&v)
	popped, ok := d.PopBack()
	require.True(t, ok)
	require.Same(t, &v, popped)
	require.True(t, d.IsEmpty())
	d.PushBack(nil)
	element, ok := d.PopFront()
	require.True(t, ok)
	assert.Nil(t, element)
}
