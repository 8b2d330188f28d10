// SPDX-License-Identifier: MIT

package pqueue

// entry is one (value, priority) pair in the backing slice.
// The slice keeps pure insertion order; ordering by priority is recomputed
// lazily at read time, which is what makes tie-breaking stable.
type entry[T any] struct {
	value    T   // caller payload, returned by Dequeue/Peek
	priority int // lower value means higher precedence
}

// Queue is a min-priority queue of (value, priority) pairs.
// The zero value is an empty queue ready for use.
//
// Invariants:
//   - the backing slice is kept in insertion order (never sorted),
//   - Dequeue removes exactly one entry per call,
//   - among equal priorities, the earliest-inserted entry is selected first.
type Queue[T any] struct {
	entries []entry[T] // insertion-ordered backing store
}

// New returns an empty queue. Equivalent to the zero value; provided for
// call sites that prefer explicit construction.
// Complexity: O(1).
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of entries currently queued.
// Complexity: O(1).
func (q *Queue[T]) Len() int {
	return len(q.entries)
}

// IsEmpty reports whether the queue holds no entries.
// Complexity: O(1).
func (q *Queue[T]) IsEmpty() bool {
	return len(q.entries) == 0
}

// Enqueue appends the pair unconditionally: no validation, no capacity
// bound, duplicate values and duplicate priorities are permitted.
// Complexity: amortized O(1).
func (q *Queue[T]) Enqueue(value T, priority int) {
	q.entries = append(q.entries, entry[T]{value: value, priority: priority})
}

// minIndex returns the position of the entry with the smallest priority.
// The scan proceeds in insertion order with a strict < comparison, so the
// earliest-inserted minimum wins ties. Caller must ensure the queue is
// non-empty.
// Complexity: O(n).
func (q *Queue[T]) minIndex() int {
	best := 0 // earliest entry is the provisional minimum
	for i := 1; i < len(q.entries); i++ {
		// Strict < keeps the earliest entry on equal priorities.
		if q.entries[i].priority < q.entries[best].priority {
			best = i
		}
	}

	return best
}

// Peek returns the value that Dequeue would extract next, without removing
// it. An empty queue yields (zero, false) — absence, never an error.
// Complexity: O(n).
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}

	return q.entries[q.minIndex()].value, true
}

// Dequeue removes and returns the value with the smallest priority, ties
// resolved to the earliest-inserted entry. An empty queue yields
// (zero, false) — absence, never an error.
//
// Implementation:
//   - Stage 1: linear scan for the minimum index (insertion order, strict <).
//   - Stage 2: close the gap with copy, clear the vacated tail slot so the
//     slice does not pin the removed value, shrink by one.
//
// Complexity: O(n).
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}

	// Select the stable minimum.
	idx := q.minIndex()
	out := q.entries[idx].value

	// Remove exactly that entry, preserving the order of the rest.
	last := len(q.entries) - 1
	copy(q.entries[idx:], q.entries[idx+1:])
	q.entries[last] = entry[T]{} // release the payload for GC
	q.entries = q.entries[:last]

	return out, true
}

// Clear removes all entries, leaving the queue empty. The backing storage
// is dropped so large payloads become collectable.
// Complexity: O(1).
func (q *Queue[T]) Clear() {
	q.entries = nil
}
