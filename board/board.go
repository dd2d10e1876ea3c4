package board

import (
	"errors"
	"fmt"
)

// Color is the side owning a piece or having the move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a colorless piece kind. There are exactly six.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// promotionTypes lists the promotion targets in generation order.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// Char returns the lowercase FEN letter of the type.
func (pt PieceType) Char() byte {
	switch pt {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	case NoPieceType:
		return '.'
	default:
		panic(fmt.Sprintf("board: invalid piece type %d", pt))
	}
}

// Piece packs a type and a color. Black pieces carry the value 8 so that
// piece & 7 gives the type. NoPiece marks an empty cell.
type Piece uint8

const (
	NoPiece  Piece = 0
	blackBit Piece = 8
)

// MakePiece combines a color and a type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	p := Piece(pt)
	if c == Black {
		p |= blackBit
	}
	return p
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owner. NoPiece reports White.
func (p Piece) Color() Color {
	if p&blackBit != 0 {
		return Black
	}
	return White
}

// Char returns the FEN letter, uppercase for White.
func (p Piece) Char() byte {
	ch := p.Type().Char()
	if p != NoPiece && p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func pieceFromChar(ch byte) Piece {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return MakePiece(color, Pawn)
	case 'N':
		return MakePiece(color, Knight)
	case 'B':
		return MakePiece(color, Bishop)
	case 'R':
		return MakePiece(color, Rook)
	case 'Q':
		return MakePiece(color, Queen)
	case 'K':
		return MakePiece(color, King)
	default:
		return NoPiece
	}
}

// CastlingRights holds the four castling flags.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

func kingSide(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

func queenSide(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// Square is an index into the 0x88 board. Rank 8 comes first: a8 is 0x00,
// h1 is 0x77. Any index with sq&0x88 != 0 is off the board.
type Square int

const NoSquare Square = -1

const (
	A8 Square = iota + 0x00
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A7 Square = iota + 0x10
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A6 Square = iota + 0x20
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A5 Square = iota + 0x30
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A4 Square = iota + 0x40
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A3 Square = iota + 0x50
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A2 Square = iota + 0x60
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A1 Square = iota + 0x70
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// MakeSquare builds a square from a file (0 = a) and a rank (0 = rank 1).
func MakeSquare(file, rank int) Square { return Square((7-rank)<<4 | file) }

// OnBoard reports whether sq addresses one of the 64 real squares.
func (sq Square) OnBoard() bool { return sq&0x88 == 0 }

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq & 7) }

// Rank returns 0 for rank 1 through 7 for rank 8.
func (sq Square) Rank() int { return 7 - int(sq>>4) }

func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

var errBadSquare = errors.New("invalid square")

// ParseSquare converts algebraic coordinates like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", errBadSquare, s)
	}
	return MakeSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// castleKeep[sq] masks the castling rights that survive a move touching sq.
var castleKeep [128]CastlingRights

func init() {
	for i := range castleKeep {
		castleKeep[i] = AllCastling
	}
	castleKeep[E1] &^= WhiteKingSide | WhiteQueenSide
	castleKeep[H1] &^= WhiteKingSide
	castleKeep[A1] &^= WhiteQueenSide
	castleKeep[E8] &^= BlackKingSide | BlackQueenSide
	castleKeep[H8] &^= BlackKingSide
	castleKeep[A8] &^= BlackQueenSide
}
