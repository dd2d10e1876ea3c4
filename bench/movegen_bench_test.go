package bench

import (
	"testing"

	"github.com/MSwiderski999/brainrotAI/board"
	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

const (
	fenKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	fenPos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func mustParse(b *testing.B, fen string) *board.Position {
	b.Helper()
	p, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return p
}

func benchGenerateMoves(b *testing.B, fen string) {
	p := mustParse(b, fen)
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.GenerateMovesInto(buf[:0])
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, board.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, fenKiwipete)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	benchGenerateMoves(b, fenPos6)
}

func BenchmarkGeneratePseudoMoves_Kiwipete(b *testing.B) {
	p := mustParse(b, fenKiwipete)
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.GeneratePseudoMovesInto(buf[:0])
	}
}

// The iterator stops after one move, the way a beta cutoff on the first
// child does.
func BenchmarkMoveIterator_FirstOnly(b *testing.B) {
	p := mustParse(b, fenKiwipete)
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := p.Moves(buf)
		it.Next()
	}
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	p := mustParse(b, board.FENStartPos)
	moves := p.GenerateMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			p.MakeMove(m)
			p.UnmakeMove()
		}
	}
}

// Baseline: the bitboard generator from GooseEngineMG on the same position.
func BenchmarkGooseGenerateMoves_Kiwipete(b *testing.B) {
	gb, err := gm.ParseFEN(fenKiwipete)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]gm.Move, 0, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = gb.GenerateMovesInto(buf[:0])
	}
}
