package movegraph_test

import (
	"testing"

	"github.com/zayadnimrod/fairychess/movegraph"
	"github.com/zayadnimrod/fairychess/moveexpr"
	"github.com/zayadnimrod/fairychess/parser"
)

var benchSinkGraph *movegraph.MoveGraph

func mustLower(b *testing.B, notation string) *moveexpr.MoveExpr {
	raw, err := parser.Parse(notation)
	if err != nil {
		b.Fatalf("parsing %q: %v", notation, err)
	}
	return moveexpr.Lower(raw)
}

// BenchmarkCompile_Knight measures compile+deflate cost for a single
// unmodified jump, the cheapest possible MoveExpr.
func BenchmarkCompile_Knight(b *testing.B) {
	e := mustLower(b, "[1,2]")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkGraph = movegraph.Compile(e)
	}
}

// BenchmarkCompile_Knightrider measures compile+deflate cost for a
// fully-mirrored, infinitely-repeated jump, which produces the widest
// choice fan-out the deflater has to collapse.
func BenchmarkCompile_Knightrider(b *testing.B) {
	e := mustLower(b, "[1,2]^*|-/")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkGraph = movegraph.Compile(e)
	}
}

// BenchmarkCompile_Sequence measures compile+deflate cost for a long
// sequence of optional jumps, stressing the Rule A/B fixpoint loop.
func BenchmarkCompile_Sequence(b *testing.B) {
	e := mustLower(b, "[1,0]*[0,1]*{[1,1],[-1,1]}^[0..3]")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkGraph = movegraph.Compile(e)
	}
}
