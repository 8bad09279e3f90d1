package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceQueue_FIFO(t *testing.T) {
	q := NewSliceQueue[int](4)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Length())

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	assert.Equal(t, 3, q.Length())
	assert.False(t, q.IsEmpty())

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, head, "Peek must not remove the head")
	assert.Equal(t, 3, q.Length())

	for want := 1; want <= 3; want++ {
		item, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, item)
	}
	assert.True(t, q.IsEmpty())
}

func TestSliceQueue_DequeueEmpty(t *testing.T) {
	q := NewSliceQueue[string](0)

	item, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", item)

	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestSliceQueue_Reset(t *testing.T) {
	q := NewSliceQueue[int](2)
	q.Enqueue(10)
	q.Enqueue(20)
	q.Reset()

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Length())

	// Queue remains usable after Reset.
	q.Enqueue(30)
	item, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 30, item)
}
