// Package pqueue provides a minimal generic min-priority queue of
// (value, priority) pairs with stable tie-breaking.
//
// 🚀 What is pqueue?
//
//	A queue where Dequeue always returns the value with the numerically
//	smallest priority. Among equal priorities the earliest-inserted entry
//	wins, so the extraction order is fully deterministic.
//
// ✨ Key features:
//   - min-priority-first semantics: lower integer priority ⇒ higher precedence
//   - stable ties: the first-enqueued minimum is always extracted first
//   - absence, not error: Dequeue/Peek on an empty queue return (zero, false)
//   - unbounded: Enqueue always succeeds; duplicates are permitted
//   - zero value ready: var q pqueue.Queue[string] is a usable empty queue
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/pqueue"
//
//	var q pqueue.Queue[string]
//	q.Enqueue("compact", 3)
//	q.Enqueue("flush", 1)
//	q.Enqueue("snapshot", 2)
//
//	v, ok := q.Dequeue() // "flush", true — smallest priority first
//
// Performance:
//
//   - Enqueue / IsEmpty / Len: O(1) (amortized for Enqueue)
//   - Dequeue / Peek: O(n) linear scan of the backing slice
//
// The linear scan is a deliberate simplicity choice: a binary heap would
// reorder equal-priority entries during sifting and break the stable
// tie-breaking contract above. Use this queue for small to moderate n; it
// is not a performance structure.
//
// Concurrency: Queue has no internal synchronization; callers sharing one
// instance across goroutines must serialize access themselves.
package pqueue
