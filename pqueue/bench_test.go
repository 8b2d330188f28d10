// Package pqueue_test provides benchmarks for the linear-scan queue, sized
// to document the O(n) Dequeue cost.
package pqueue_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/pqueue"
)

// benchSizes are the queue fill levels to benchmark.
var benchSizes = []int{64, 512, 4096}

// sink to defeat dead-code elimination
var sinkInt int

func BenchmarkEnqueue(b *testing.B) {
	b.ReportAllocs()
	var q pqueue.Queue[int]
	rng := rand.New(rand.NewSource(1337))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i, rng.Int())
	}
}

func BenchmarkDequeue(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			var q pqueue.Queue[int]
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Refill when drained so every Dequeue scans ~n entries.
				if q.IsEmpty() {
					b.StopTimer()
					for j := 0; j < n; j++ {
						q.Enqueue(j, rng.Int())
					}
					b.StartTimer()
				}
				v, ok := q.Dequeue()
				if !ok {
					b.Fatal("unexpected empty queue")
				}
				sinkInt = v
			}
		})
	}
}

func BenchmarkPeek(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			var q pqueue.Queue[int]
			for j := 0; j < n; j++ {
				q.Enqueue(j, rng.Int())
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, ok := q.Peek()
				if !ok {
					b.Fatal("unexpected empty queue")
				}
				sinkInt = v
			}
		})
	}
}
