package benchmarks

import (
	"testing"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/dataset"
)

// --- Deck generation benchmarks ---

func BenchmarkDemoDeckBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := compose.BuildDemoDeck(42); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDemoDeckBytes(b *testing.B) {
	prs, err := compose.BuildDemoDeck(42)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prs.Bytes(); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Frame pipeline benchmarks ---

func BenchmarkDemoDataset(b *testing.B) {
	for i := 0; i < b.N; i++ {
		dataset.Demo(42)
	}
}

func BenchmarkPivotPipeline(b *testing.B) {
	data := dataset.Demo(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wide, err := data.Pivot("Region", "Year", "Sales")
		if err != nil {
			b.Fatal(err)
		}
		if err := wide.AddTotalsRow("Total"); err != nil {
			b.Fatal(err)
		}
		if _, err := wide.GrowthAcross(1); err != nil {
			b.Fatal(err)
		}
	}
}
