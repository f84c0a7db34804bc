package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mkerr316/multiscale-tda-geomorphology/builder"
	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// sink to defeat dead-code elimination
var sinkC *core.Complex

func BenchmarkBottomUp(b *testing.B) {
	b.ReportAllocs()
	probs := map[int]float64{1: 0.5, 2: 0.4, 3: 0.3}
	for _, n := range []int{10, 14, 18} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			for i := 0; i < b.N; i++ {
				c, err := builder.RandomBottomUp(rng, n, probs)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = c
			}
		})
	}
}

func BenchmarkTopDown(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 10, 12} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			for i := 0; i < b.N; i++ {
				c, err := builder.RandomTopDown(rng, n, 0.9)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = c
			}
		})
	}
}
