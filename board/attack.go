package board

// Direction offsets on the 0x88 board. Rank 8 is at the low indices, so
// -16 points towards rank 8.
var (
	knightOffsets = [8]Square{-18, -33, -31, -14, 18, 33, 31, 14}
	bishopOffsets = [4]Square{-17, -15, 17, 15}
	rookOffsets   = [4]Square{-16, 1, 16, -1}
	kingOffsets   = [8]Square{-17, -16, -15, 1, 17, 16, 15, -1}

	// pawnOffsets[color] = push, double push, capture, capture.
	pawnOffsets = [2][4]Square{
		{-16, -32, -17, -15},
		{16, 32, 17, 15},
	}
)

// pieceOffsets returns the step directions for a non-pawn type.
func pieceOffsets(pt PieceType) []Square {
	switch pt {
	case Knight:
		return knightOffsets[:]
	case Bishop:
		return bishopOffsets[:]
	case Rook:
		return rookOffsets[:]
	case Queen, King:
		return kingOffsets[:]
	case Pawn, NoPieceType:
		return nil
	default:
		panic("board: invalid piece type")
	}
}

// slides reports whether pt moves along rays rather than single steps.
func slides(pt PieceType) bool {
	switch pt {
	case Bishop, Rook, Queen:
		return true
	case Pawn, Knight, King, NoPieceType:
		return false
	default:
		panic("board: invalid piece type")
	}
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(by Color, sq Square) bool {
	if !sq.OnBoard() {
		return false
	}

	// A pawn attacks sq if sq is one of its capture targets.
	pawn := MakePiece(by, Pawn)
	for _, off := range pawnOffsets[by][2:] {
		if from := sq - off; from.OnBoard() && p.board[from] == pawn {
			return true
		}
	}

	knight := MakePiece(by, Knight)
	for _, off := range knightOffsets {
		if from := sq + off; from.OnBoard() && p.board[from] == knight {
			return true
		}
	}

	king := MakePiece(by, King)
	for _, off := range kingOffsets {
		if from := sq + off; from.OnBoard() && p.board[from] == king {
			return true
		}
	}

	queen := MakePiece(by, Queen)
	if p.rayHits(sq, rookOffsets[:], MakePiece(by, Rook), queen) {
		return true
	}
	return p.rayHits(sq, bishopOffsets[:], MakePiece(by, Bishop), queen)
}

// rayHits walks each direction from sq and reports whether the first piece
// met is a or b.
func (p *Position) rayHits(sq Square, dirs []Square, a, b Piece) bool {
	for _, off := range dirs {
		for s := sq + off; s.OnBoard(); s += off {
			pc := p.board[s]
			if pc == NoPiece {
				continue
			}
			if pc == a || pc == b {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether c's king is attacked.
func (p *Position) InCheck(c Color) bool {
	k := p.kings[c]
	if k == NoSquare {
		return false
	}
	return p.IsSquareAttacked(c.Opponent(), k)
}
