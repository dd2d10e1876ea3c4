package board

// Position is the mutable game state. It is not safe for concurrent use:
// make/unmake must nest strictly, so a Position belongs to one goroutine.
type Position struct {
	board [128]Piece

	sideToMove Color
	castling   CastlingRights

	// En passant target square, set after every double pawn push.
	enPassant Square

	// King square cache, indexed by Color.
	kings [2]Square

	halfmoveClock  int
	fullmoveNumber int

	key uint64

	history []undoState
}

// NewPosition returns the standard initial position.
func NewPosition() *Position {
	p, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return p
}

// Clear empties the board: no pieces, White to move, no castling rights.
func (p *Position) Clear() {
	*p = Position{
		sideToMove:     White,
		enPassant:      NoSquare,
		kings:          [2]Square{NoSquare, NoSquare},
		fullmoveNumber: 1,
	}
	p.key = p.ComputeHash()
}

func (p *Position) PieceAt(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return p.board[sq]
}

func (p *Position) SideToMove() Color { return p.sideToMove }

func (p *Position) KingSquare(c Color) Square { return p.kings[c] }

func (p *Position) EnPassant() Square { return p.enPassant }

func (p *Position) Castling() CastlingRights { return p.castling }

func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Hash returns the incrementally maintained Zobrist key.
func (p *Position) Hash() uint64 { return p.key }

// Ply returns the number of moves on the history stack.
func (p *Position) Ply() int { return len(p.history) }

// Copy returns a deep copy that shares nothing with p.
func (p *Position) Copy() *Position {
	c := *p
	c.history = append([]undoState(nil), p.history...)
	return &c
}

func (p *Position) putPiece(sq Square, pc Piece) {
	p.board[sq] = pc
	p.key ^= zobristPiece[pc][sq]
	if pc.Type() == King {
		p.kings[pc.Color()] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if pc != NoPiece {
		p.key ^= zobristPiece[pc][sq]
		p.board[sq] = NoPiece
	}
	return pc
}
