package board

import "testing"

func TestCheckmateFoolsMate(t *testing.T) {
	p := mustParse(t, fenFoolsMate)
	if !p.InCheck(White) {
		t.Fatalf("expected White to be in check")
	}
	if p.HasLegalMoves() {
		t.Fatalf("expected no legal moves for White in mate")
	}
	if !p.InCheckmate() || p.InStalemate() {
		t.Fatalf("expected checkmate, not stalemate")
	}
	if !p.GameOver() {
		t.Fatalf("mate should end the game")
	}
}

func TestStalemate(t *testing.T) {
	p := mustParse(t, fenStalemate)
	if p.InCheck(Black) {
		t.Fatalf("expected Black not in check")
	}
	if !p.InStalemate() || p.InCheckmate() {
		t.Fatalf("expected stalemate for Black")
	}
	if !p.GameOver() {
		t.Fatalf("stalemate should end the game")
	}
}

func TestMateInOneMakeAndDetect(t *testing.T) {
	p := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	if p.GameOver() {
		t.Fatalf("game should not be over yet")
	}
	p.MakeMove(findMove(t, p, "g6g7"))
	if !p.InCheckmate() {
		t.Fatalf("expected checkmate after Qxg7")
	}
	p.UnmakeMove()
	if p.InCheck(Black) {
		t.Fatalf("undo left Black in check")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	p := mustParse(t, "4k3/8/8/3p4/8/2N5/8/R3K3 w - - 0 1")
	tests := []struct {
		by   Color
		sq   Square
		want bool
	}{
		{White, A8, true},  // rook up the a-file
		{White, D1, true},  // rook along the first rank
		{White, F1, true},  // king
		{White, D5, true},  // knight
		{White, B5, true},  // knight
		{White, H8, false}, // nothing reaches
		{Black, C4, true},  // pawn captures towards rank 1
		{Black, E4, true},
		{Black, D4, false}, // pawns do not attack straight ahead
		{Black, D7, true},  // king
		{White, NoSquare, false},
	}
	for _, tt := range tests {
		if got := p.IsSquareAttacked(tt.by, tt.sq); got != tt.want {
			t.Errorf("IsSquareAttacked(%v, %v): got %v want %v", tt.by, tt.sq, got, tt.want)
		}
	}
}
