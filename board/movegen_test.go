package board

import (
	"reflect"
	"testing"
)

func TestStartPositionHasTwentyMoves(t *testing.T) {
	p := NewPosition()
	if got := len(p.GenerateMoves()); got != 20 {
		t.Fatalf("start position: got %d moves want 20", got)
	}
}

func TestItalianFixture(t *testing.T) {
	p := mustParse(t, fenItalian)
	moves := p.GenerateMoves()
	if len(moves) != 27 {
		t.Fatalf("legal moves: got %d want 27", len(moves))
	}
	has := func(uci string) bool {
		for _, m := range moves {
			if m.String() == uci {
				return true
			}
		}
		return false
	}
	if !has("a4c6") || !has("e1g1") {
		t.Fatalf("expected Bxc6 and O-O among %v", moves)
	}
	if has("a4f7") {
		t.Fatalf("bishop on a4 cannot reach f7")
	}
}

func TestLegalIsPseudoMinusSelfCheck(t *testing.T) {
	for _, fen := range append([]string{fenFoolsMate, fenStalemate}, suite...) {
		p := mustParse(t, fen)
		us := p.SideToMove()
		want := 0
		for _, m := range p.GeneratePseudoMoves() {
			p.MakeMove(m)
			if !p.InCheck(us) {
				want++
			}
			p.UnmakeMove()
		}
		legal := p.GenerateMoves()
		if len(legal) != want {
			t.Errorf("%s: got %d legal moves want %d", fen, len(legal), want)
		}
		for _, m := range legal {
			p.MakeMove(m)
			if p.InCheck(us) {
				t.Errorf("%s: %v leaves king attacked", fen, m)
			}
			p.UnmakeMove()
		}
	}
}

func TestPromotionExpandsToFourMoves(t *testing.T) {
	p := mustParse(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	var promos []PieceType
	for _, m := range p.GenerateMoves() {
		if m.From == A7 {
			promos = append(promos, m.Promotion)
		}
	}
	want := []PieceType{Queen, Rook, Bishop, Knight}
	if !reflect.DeepEqual(promos, want) {
		t.Fatalf("promotions: got %v want %v", promos, want)
	}
}

func TestCastlingThroughCheckRejected(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want bool
	}{
		{"free", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", true},
		{"crossing attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1g1", false},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", "e1c1", false},
		{"b-file attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", "e1c1", true},
		{"blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1c1", false},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.fen)
		_, err := p.ParseUCIMove(tt.move)
		if got := err == nil; got != tt.want {
			t.Errorf("%s: %s legal=%v want %v", tt.name, tt.move, got, tt.want)
		}
	}
}

func TestEnPassantOnlyForSideToMove(t *testing.T) {
	p := mustParse(t, fenEnPassant)
	found := false
	for _, m := range p.GenerateMoves() {
		if m.Flags&FlagEnPassant != 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("e5xf6 en passant missing")
	}

	// The c7 pawn also attacks d6 but it is not Black's turn.
	p = mustParse(t, "4k3/2p5/8/3pP3/8/8/8/4K3 w - d6 0 2")
	black := p.LegalMovesFrom(C7, nil)
	if len(black) != 2 {
		t.Fatalf("c7 pawn: got %v want c6 and c5", black)
	}
	for _, m := range black {
		if m.Flags&FlagEnPassant != 0 {
			t.Fatalf("unexpected en passant %v", m)
		}
	}
	white := p.LegalMovesFrom(E5, nil)
	if len(white) != 2 || white[0].Flags&FlagEnPassant == 0 {
		t.Fatalf("e5 pawn: got %v want exd6 then e6", white)
	}
}

func TestGenerationOrderDeterministic(t *testing.T) {
	p := mustParse(t, fenKiwipete)
	first := p.GenerateMoves()
	for i := 1; i < len(first); i++ {
		if first[i].From < first[i-1].From && !first[i].IsCastle() {
			t.Fatalf("origin squares out of order at %d: %v after %v", i, first[i], first[i-1])
		}
	}
	for i := 0; i < 3; i++ {
		if again := p.GenerateMoves(); !reflect.DeepEqual(first, again) {
			t.Fatalf("generation not deterministic")
		}
	}
}

func TestMoveIteratorMatchesSlice(t *testing.T) {
	for _, fen := range suite {
		p := mustParse(t, fen)
		want := p.GenerateMoves()
		var got []Move
		it := p.Moves(nil)
		for m, ok := it.Next(); ok; m, ok = it.Next() {
			got = append(got, m)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: iterator yielded %d moves, slice %d", fen, len(got), len(want))
		}
	}
}

func TestLegalMovesFromEitherSide(t *testing.T) {
	p := NewPosition()
	if got := len(p.LegalMovesFrom(B8, nil)); got != 2 {
		t.Fatalf("black knight b8 with white to move: got %d want 2", got)
	}
	if got := len(p.LegalMovesFrom(E2, nil)); got != 2 {
		t.Fatalf("e2 pawn: got %d want 2", got)
	}
	if got := len(p.LegalMovesFrom(E4, nil)); got != 0 {
		t.Fatalf("empty square: got %d want 0", got)
	}
	if p.SideToMove() != White || p.Ply() != 0 {
		t.Fatalf("position mutated")
	}
}
