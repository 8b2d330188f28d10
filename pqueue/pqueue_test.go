// Package pqueue_test contains unit tests for the generic min-priority queue.
package pqueue_test

import (
	"testing"

	"github.com/katalvlaran/numkit/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZeroValueIsEmpty verifies that the zero value behaves as a fresh queue.
func TestZeroValueIsEmpty(t *testing.T) {
	var q pqueue.Queue[string] // zero value, no constructor

	assert.True(t, q.IsEmpty(), "zero-value queue must be empty")
	assert.Equal(t, 0, q.Len(), "zero-value queue must have length 0")

	_, ok := q.Peek()
	assert.False(t, ok, "Peek on empty queue must signal absence")

	_, ok = q.Dequeue()
	assert.False(t, ok, "Dequeue on empty queue must signal absence")
}

// TestEnqueueMakesNonEmpty verifies the size transition on insertion.
func TestEnqueueMakesNonEmpty(t *testing.T) {
	q := pqueue.New[string]() // explicit constructor form

	q.Enqueue("x", 5) // single insertion

	assert.False(t, q.IsEmpty(), "queue with one entry must not be empty")
	assert.Equal(t, 1, q.Len(), "length must track insertions")
}

// TestMinFirstExtractionOrder verifies min-priority-first semantics on the
// reference sequence: a(3), b(1), c(2) extract as b, c, a.
func TestMinFirstExtractionOrder(t *testing.T) {
	var q pqueue.Queue[string]
	q.Enqueue("a", 3) // highest priority value, extracted last
	q.Enqueue("b", 1) // smallest priority value, extracted first
	q.Enqueue("c", 2) // middle

	v, ok := q.Peek() // Peek selects like Dequeue but does not remove
	require.True(t, ok, "Peek on non-empty queue must succeed")
	require.Equal(t, "b", v, "Peek must report the minimum-priority value")
	require.Equal(t, 3, q.Len(), "Peek must not remove entries")

	v, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "b", v, "first extraction is the smallest priority")

	v, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "c", v, "second extraction is the next smallest")

	v, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "a", v, "last extraction is the largest priority")

	_, ok = q.Dequeue()
	require.False(t, ok, "exhausted queue must signal absence")
	require.True(t, q.IsEmpty(), "queue must be empty after draining")
}

// TestStableTieBreaking verifies the earliest-inserted minimum wins ties.
func TestStableTieBreaking(t *testing.T) {
	var q pqueue.Queue[string]
	q.Enqueue("x", 1) // inserted first at priority 1
	q.Enqueue("y", 1) // same priority, inserted second

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "x", v, "ties must resolve to the earliest insertion")

	v, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "y", v, "remaining tie partner extracts next")
}

// TestStableTieBreakingAfterRemoval verifies stability holds against the
// current backing order, not just the original one.
func TestStableTieBreakingAfterRemoval(t *testing.T) {
	var q pqueue.Queue[string]
	q.Enqueue("a", 2)
	q.Enqueue("b", 1)
	q.Enqueue("c", 2) // ties with "a"; "a" precedes it in backing order

	v, _ := q.Dequeue() // removes "b" (priority 1)
	require.Equal(t, "b", v)

	v, _ = q.Dequeue() // between the tied a/c, "a" is earlier
	require.Equal(t, "a", v)

	v, _ = q.Dequeue()
	require.Equal(t, "c", v)
}

// TestDuplicatesPermitted verifies that equal values and priorities coexist.
func TestDuplicatesPermitted(t *testing.T) {
	var q pqueue.Queue[int]
	q.Enqueue(7, 0) // duplicate value and priority
	q.Enqueue(7, 0)
	q.Enqueue(7, 0)

	require.Equal(t, 3, q.Len(), "duplicates must all be stored")

	for i := 0; i < 3; i++ {
		v, ok := q.Dequeue() // each call removes exactly one entry
		require.True(t, ok)
		require.Equal(t, 7, v)
	}
	require.True(t, q.IsEmpty())
}

// TestNegativePriorities verifies ordering over the full int range semantics.
func TestNegativePriorities(t *testing.T) {
	var q pqueue.Queue[string]
	q.Enqueue("zero", 0)
	q.Enqueue("neg", -10) // numerically smallest, extracted first
	q.Enqueue("pos", 10)

	v, _ := q.Dequeue()
	assert.Equal(t, "neg", v, "negative priorities precede zero and positive")
	v, _ = q.Dequeue()
	assert.Equal(t, "zero", v)
	v, _ = q.Dequeue()
	assert.Equal(t, "pos", v)
}

// TestLenTracksOperations verifies the size counter is exact.
func TestLenTracksOperations(t *testing.T) {
	var q pqueue.Queue[int]
	for i := 0; i < 5; i++ {
		q.Enqueue(i, i) // five insertions
	}
	require.Equal(t, 5, q.Len(), "length must equal the number of insertions")

	_, _ = q.Dequeue() // one extraction shrinks by exactly one
	require.Equal(t, 4, q.Len(), "extraction must shrink length by one")
}

// TestClear verifies Clear resets a populated queue to empty.
func TestClear(t *testing.T) {
	var q pqueue.Queue[string]
	q.Enqueue("a", 1)
	q.Enqueue("b", 2)

	q.Clear() // drop everything

	assert.True(t, q.IsEmpty(), "Clear must leave the queue empty")
	_, ok := q.Dequeue()
	assert.False(t, ok, "Dequeue after Clear must signal absence")

	q.Enqueue("c", 3) // the queue stays usable after Clear
	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}
