package basis_test

import (
	"testing"

	"github.com/katalvlaran/cyclespace/basis"
	"github.com/katalvlaran/cyclespace/builder"
)

func BenchmarkFundamentalCycles_N200(b *testing.B) {
	g, err := builder.Synthesize(200, 0.05, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = basis.FundamentalCycles(g); err != nil {
			b.Fatal(err)
		}
	}
}
