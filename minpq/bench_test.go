package minpq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/minpq"
)

// BenchmarkAddRemove measures a full fill-and-drain cycle of 10k items.
// Complexity: O(n log n) per iteration.
func BenchmarkAddRemove(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq := minpq.New[int]()
		for j, p := range prios {
			_ = pq.Add(j, p)
		}
		for pq.Size() > 0 {
			_, _ = pq.RemoveSmallest()
		}
	}
}

// BenchmarkChangePriority measures decrease-key on a queue of 10k items.
func BenchmarkChangePriority(b *testing.B) {
	const n = 10000
	pq := minpq.New[int]()
	for j := 0; j < n; j++ {
		_ = pq.Add(j, float64(n+j))
	}
	rng := rand.New(rand.NewSource(2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pq.ChangePriority(rng.Intn(n), rng.Float64()*float64(2*n))
	}
}
