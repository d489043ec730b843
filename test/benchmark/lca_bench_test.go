// Package benchmark provides performance benchmarks for the assessment
// pipeline. A full product assessment should stay well under a millisecond
// once the resolver cache is warm.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecolens/lca-engine/internal/lca"
	"github.com/ecolens/lca-engine/internal/refdata"
)

func benchCalculator(b *testing.B) *lca.Calculator {
	b.Helper()
	table, err := refdata.NewClient(zerolog.Nop())
	if err != nil {
		b.Fatalf("failed to load emission table: %v", err)
	}
	return lca.NewCalculator(table)
}

var benchInput = lca.ProductInput{
	Name:     "Herbal Shampoo",
	Category: "shampoo",
	Ingredients: []string{
		"Water", "Sodium Laureth Sulfate", "Cocamidopropyl Betaine",
		"Glycerin", "Fragrance", "Citric Acid",
	},
	Weight:         "250ml",
	PackagingType:  "plastic",
	Latitude:       12.9716,
	Longitude:      77.5946,
	UsageFrequency: "daily",
}

// BenchmarkCalculate measures a full assessment with a warm resolver cache.
func BenchmarkCalculate(b *testing.B) {
	calc := benchCalculator(b)
	calc.Calculate(benchInput)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.Calculate(benchInput)
	}
}

// BenchmarkCalculate_ColdCache measures assessments whose ingredients all
// miss the cache and walk the full resolver tiers.
func BenchmarkCalculate_ColdCache(b *testing.B) {
	input := benchInput
	input.Ingredients = []string{
		"Glycerinn", "Unknown Botanical Blend", "Sodim Laureth Sulfate",
		"Mystery Compound Nine", "Cocamidopropil Betaine",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Fresh calculator each round so fuzzy matching actually runs.
		b.StopTimer()
		calc := benchCalculator(b)
		b.StartTimer()
		calc.Calculate(input)
	}
}

// BenchmarkCalculate_Parallel measures throughput under concurrent load.
func BenchmarkCalculate_Parallel(b *testing.B) {
	calc := benchCalculator(b)
	calc.Calculate(benchInput)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			calc.Calculate(benchInput)
		}
	})
}
