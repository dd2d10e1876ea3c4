package board

import "testing"

const (
	fenKiwipete   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	fenPos3       = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	fenPos4       = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	fenPos5       = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	fenPromotions = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
	fenEnPassant  = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"
	fenItalian    = "r1bqkb1r/1ppp1ppp/p1n2n2/4p3/B3P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1"
	fenFoolsMate  = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	fenStalemate  = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// suite lists positions that exercise castling, promotion and en passant.
var suite = []string{
	FENStartPos,
	fenKiwipete,
	fenPos3,
	fenPos4,
	fenPos5,
	fenPromotions,
	fenEnPassant,
	fenItalian,
}

func mustParse(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return p
}

// samePosition compares every field, history included.
func samePosition(a, b *Position) bool {
	if a.board != b.board ||
		a.sideToMove != b.sideToMove ||
		a.castling != b.castling ||
		a.enPassant != b.enPassant ||
		a.kings != b.kings ||
		a.halfmoveClock != b.halfmoveClock ||
		a.fullmoveNumber != b.fullmoveNumber ||
		a.key != b.key ||
		len(a.history) != len(b.history) {
		return false
	}
	for i := range a.history {
		if a.history[i] != b.history[i] {
			return false
		}
	}
	return true
}

func findMove(t *testing.T, p *Position, uci string) Move {
	t.Helper()
	m, err := p.ParseUCIMove(uci)
	if err != nil {
		t.Fatalf("move %s not found: %v", uci, err)
	}
	return m
}
