package reachability_test

import (
	"testing"

	"github.com/zayadnimrod/fairychess/board"
	"github.com/zayadnimrod/fairychess/moveexpr"
	"github.com/zayadnimrod/fairychess/movegraph"
	"github.com/zayadnimrod/fairychess/parser"
	"github.com/zayadnimrod/fairychess/reachability"
)

func mustCompile(b *testing.B, notation string) *movegraph.MoveGraph {
	raw, err := parser.Parse(notation)
	if err != nil {
		b.Fatalf("parsing %q: %v", notation, err)
	}
	return movegraph.Compile(moveexpr.Lower(raw))
}

var benchSinkTrace reachability.MoveTrace

// BenchmarkCheckMove_Knight measures a single-hop, fixed-size move — the
// cheapest CheckMove call, all overhead and no traversal depth.
func BenchmarkCheckMove_Knight(b *testing.B) {
	g := mustCompile(b, "[1,2]|-/")
	bd := board.RectBoard{XMin: 0, XMax: 7, YMin: 0, YMax: 7}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkTrace, _ = reachability.CheckMove(g, bd, [2]int{4, 4}, [2]int{5, 6})
	}
}

// BenchmarkCheckMove_Knightrider measures an infinitely-repeatable jump
// on an open board, stressing the worklist under unbounded fan-out.
func BenchmarkCheckMove_Knightrider(b *testing.B) {
	g := mustCompile(b, "[1,2]^*|-/")
	bd := board.RectBoard{XMin: 0, XMax: 8, YMin: 0, YMax: 8}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkTrace, _ = reachability.CheckMove(g, bd, [2]int{2, 2}, [2]int{8, 5})
	}
}

// BenchmarkCheckMove_InfiniteKing measures an unbounded, every-direction
// crawl, the worst case for the visited-set's growth.
func BenchmarkCheckMove_InfiniteKing(b *testing.B) {
	g := mustCompile(b, "{[1,0]/,[1,1]}|-^*")
	bd := board.RectBoard{XMin: -20, XMax: 20, YMin: -20, YMax: 20}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkTrace, _ = reachability.CheckMove(g, bd, [2]int{0, 0}, [2]int{10, 10})
	}
}

// BenchmarkCheckMove_Skirmisher measures a short optional-hop move,
// exercising the dummy-required follow-up expansion phase.
func BenchmarkCheckMove_Skirmisher(b *testing.B) {
	g := mustCompile(b, "[1,2]|-/*[0,1]?")
	bd := board.RectBoard{XMin: 0, XMax: 9, YMin: 0, YMax: 9}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkTrace, _ = reachability.CheckMove(g, bd, [2]int{1, 1}, [2]int{3, 3})
	}
}

// BenchmarkCheckMove_BlockedKnightrider measures the same knightrider
// move against a board with an impassable island, exercising the
// per-step TileAt filtering path rather than an always-Empty board.
func BenchmarkCheckMove_BlockedKnightrider(b *testing.B) {
	g := mustCompile(b, "[1,2]^*|-/")
	bd := funcBoard(func(x, y int) board.TileState {
		if x < 0 || x > 8 || y < 0 || y > 8 {
			return board.Impassable
		}
		if x >= 3 && x <= 5 && y >= 3 && y <= 5 && !(x == 4 && y == 4) {
			return board.Impassable
		}
		return board.Empty
	})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkTrace, _ = reachability.CheckMove(g, bd, [2]int{2, 2}, [2]int{8, 5})
	}
}
