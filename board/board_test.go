package board

import (
	"strings"
	"testing"
)

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		name       string
		sq         Square
		file, rank int
	}{
		{"a8", A8, 0, 7},
		{"h8", H8, 7, 7},
		{"a1", A1, 0, 0},
		{"h1", H1, 7, 0},
		{"e4", E4, 4, 3},
		{"d5", D5, 3, 4},
	}
	for _, tt := range tests {
		if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
			t.Errorf("%s: got file %d rank %d want %d %d", tt.name, tt.sq.File(), tt.sq.Rank(), tt.file, tt.rank)
		}
		if tt.sq.String() != tt.name {
			t.Errorf("String(): got %q want %q", tt.sq.String(), tt.name)
		}
		if MakeSquare(tt.file, tt.rank) != tt.sq {
			t.Errorf("MakeSquare(%d, %d): got %#x want %#x", tt.file, tt.rank, int(MakeSquare(tt.file, tt.rank)), int(tt.sq))
		}
		sq, err := ParseSquare(tt.name)
		if err != nil || sq != tt.sq {
			t.Errorf("ParseSquare(%q): got %v, %v", tt.name, sq, err)
		}
	}
}

func TestSquareOffBoard(t *testing.T) {
	for _, sq := range []Square{NoSquare, 0x08, 0x0F, 0x78, 0x80, -17, -33} {
		if sq.OnBoard() {
			t.Errorf("square %#x should be off board", int(sq))
		}
	}
	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) should fail", s)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			pc := MakePiece(c, pt)
			if pc.Type() != pt || pc.Color() != c {
				t.Errorf("MakePiece(%v, %d): got type %d color %v", c, pt, pc.Type(), pc.Color())
			}
			if got := pieceFromChar(pc.Char()); got != pc {
				t.Errorf("char round trip for %c: got %v", pc.Char(), got)
			}
		}
	}
	if MakePiece(Black, NoPieceType) != NoPiece {
		t.Fatalf("MakePiece with no type should be NoPiece")
	}
}

func TestNewPositionStart(t *testing.T) {
	p := NewPosition()
	if p.SideToMove() != White {
		t.Fatalf("white should move first")
	}
	if p.KingSquare(White) != E1 || p.KingSquare(Black) != E8 {
		t.Fatalf("king cache: got %v %v", p.KingSquare(White), p.KingSquare(Black))
	}
	if p.Castling() != AllCastling {
		t.Fatalf("castling: got %b want %b", p.Castling(), AllCastling)
	}
	if p.EnPassant() != NoSquare {
		t.Fatalf("unexpected en passant square %v", p.EnPassant())
	}
	if got := p.PieceAt(D1); got != MakePiece(White, Queen) {
		t.Fatalf("d1: got %c want Q", got.Char())
	}
	if got := p.PieceAt(0x08); got != NoPiece {
		t.Fatalf("off-board lookup should be empty")
	}
}

func TestClear(t *testing.T) {
	p := mustParse(t, fenItalian)
	p.Clear()
	for sq := A8; sq <= H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		if p.PieceAt(sq) != NoPiece {
			t.Fatalf("square %v not empty after Clear", sq)
		}
	}
	if p.Castling() != NoCastling || p.EnPassant() != NoSquare || p.Ply() != 0 {
		t.Fatalf("state not reset after Clear: %s", p.FEN())
	}
	if p.FEN() != "8/8/8/8/8/8/8/8 w - - 0 1" {
		t.Fatalf("FEN after Clear: got %q", p.FEN())
	}
	if !p.GameOver() {
		t.Fatalf("an empty board has no moves")
	}
}

func TestAscii(t *testing.T) {
	got := NewPosition().Ascii()
	want := strings.Join([]string{
		"   +------------------------+",
		" 8 | r  n  b  q  k  b  n  r |",
		" 7 | p  p  p  p  p  p  p  p |",
		" 6 | .  .  .  .  .  .  .  . |",
		" 5 | .  .  .  .  .  .  .  . |",
		" 4 | .  .  .  .  .  .  .  . |",
		" 3 | .  .  .  .  .  .  .  . |",
		" 2 | P  P  P  P  P  P  P  P |",
		" 1 | R  N  B  Q  K  B  N  R |",
		"   +------------------------+",
		"     a  b  c  d  e  f  g  h",
	}, "\n")
	if got != want {
		t.Fatalf("ascii mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := NewPosition()
	p.MakeMove(findMove(t, p, "e2e4"))
	c := p.Copy()
	c.MakeMove(findMove(t, c, "e7e5"))
	if p.Ply() != 1 || c.Ply() != 2 {
		t.Fatalf("ply: got %d and %d", p.Ply(), c.Ply())
	}
	c.UnmakeMove()
	if !samePosition(p, c) {
		t.Fatalf("copy diverged after undo")
	}
}
