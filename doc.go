// Package numkit is a small collection of self-contained numeric and
// ordering primitives — a dense float64 matrix with arithmetic kernels
// and a stable min-priority queue.
//
// 🚀 What is numkit?
//
//	A pure-Go library of two independent leaf components:
//		• matrix/ — dense row-major matrices: construction, indexed access,
//		  transpose, element-wise and linear-algebraic operators
//		• pqueue/ — generic (value, priority) queue with min-first extraction
//		  and stable earliest-insertion tie-breaking
//
// ✨ Why choose numkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors, deterministic loop orders, no hidden state
//   - Pure Go – no cgo, no hidden deps beyond test tooling
//   - Value semantics – operators allocate fresh results, never alias operands
//
// Both packages are single-threaded value types: no goroutines, no locks,
// no I/O. Callers sharing instances across goroutines must synchronize
// externally (one exclusive lock per instance, or treat instances as
// immutable after construction).
//
//	go get github.com/katalvlaran/numkit
package numkit
