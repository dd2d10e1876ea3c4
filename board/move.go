package board

import "strings"

// MoveFlag describes what kind of transition a move is. Flags combine: a
// capturing promotion carries FlagCapture|FlagPromotion.
type MoveFlag uint8

const (
	FlagNormal MoveFlag = 1 << iota
	FlagCapture
	FlagBigPawn
	FlagEnPassant
	FlagPromotion
	FlagKingCastle
	FlagQueenCastle
)

// Move is a pure description of a transition. Moves are only meaningful
// for the position they were generated from.
type Move struct {
	From      Square
	To        Square
	Piece     PieceType
	Captured  PieceType
	Promotion PieceType
	Flags     MoveFlag
}

// NullMove is the zero move returned when nothing was found.
var NullMove = Move{From: NoSquare, To: NoSquare}

func (m Move) IsNull() bool { return m.From == NoSquare || m.Piece == NoPieceType }

func (m Move) IsCapture() bool { return m.Flags&(FlagCapture|FlagEnPassant) != 0 }

func (m Move) IsCastle() bool { return m.Flags&(FlagKingCastle|FlagQueenCastle) != 0 }

// String renders coordinate notation as used by UCI, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		sb.WriteByte(m.Promotion.Char())
	}
	return sb.String()
}
