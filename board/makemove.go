package board

// undoState holds everything needed to reverse one move exactly.
type undoState struct {
	move           Move
	captured       Piece
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	kings          [2]Square
	halfmoveClock  int
	fullmoveNumber int
	key            uint64
}

// pawnPush is the single-step pawn offset for each color.
var pawnPush = [2]Square{-16, 16}

// MakeMove applies m and pushes a history entry. m must come from this
// position's generator; legality is not checked here.
func (p *Position) MakeMove(m Move) {
	moved := p.board[m.From]
	us := moved.Color()

	p.history = append(p.history, undoState{
		move:           m,
		sideToMove:     p.sideToMove,
		castling:       p.castling,
		enPassant:      p.enPassant,
		kings:          p.kings,
		halfmoveClock:  p.halfmoveClock,
		fullmoveNumber: p.fullmoveNumber,
		key:            p.key,
	})
	st := &p.history[len(p.history)-1]

	// The en passant victim sits behind the destination, not on it.
	if m.Flags&FlagEnPassant != 0 {
		st.captured = p.removePiece(m.To - pawnPush[us])
	} else {
		st.captured = p.removePiece(m.To)
	}

	p.removePiece(m.From)
	placed := moved
	if m.Promotion != NoPieceType {
		placed = MakePiece(us, m.Promotion)
	}
	p.putPiece(m.To, placed)

	switch {
	case m.Flags&FlagKingCastle != 0:
		p.putPiece(m.To-1, p.removePiece(m.To+1))
	case m.Flags&FlagQueenCastle != 0:
		p.putPiece(m.To+1, p.removePiece(m.To-2))
	}

	p.key ^= zobristCastle[p.castling]
	p.castling &= castleKeep[m.From] & castleKeep[m.To]
	p.key ^= zobristCastle[p.castling]

	if p.enPassant != NoSquare {
		p.key ^= zobristEnPassant[p.enPassant.File()]
	}
	p.enPassant = NoSquare
	if m.Flags&FlagBigPawn != 0 {
		p.enPassant = m.To - pawnPush[us]
		p.key ^= zobristEnPassant[p.enPassant.File()]
	}

	if moved.Type() == Pawn || st.captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}

	if p.sideToMove != us.Opponent() {
		p.key ^= zobristSide
	}
	p.sideToMove = us.Opponent()
}

// UnmakeMove pops the most recent history entry and restores the position.
// It panics when there is nothing to undo.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	if n == 0 {
		panic("board: UnmakeMove with empty history")
	}
	st := p.history[n-1]
	p.history = p.history[:n-1]
	m := st.move

	placed := p.board[m.To]
	moved := placed
	if m.Promotion != NoPieceType {
		moved = MakePiece(placed.Color(), Pawn)
	}
	p.board[m.To] = NoPiece
	p.board[m.From] = moved

	switch {
	case m.Flags&FlagEnPassant != 0:
		p.board[m.To-pawnPush[moved.Color()]] = st.captured
	case st.captured != NoPiece:
		p.board[m.To] = st.captured
	}

	switch {
	case m.Flags&FlagKingCastle != 0:
		p.board[m.To+1] = p.board[m.To-1]
		p.board[m.To-1] = NoPiece
	case m.Flags&FlagQueenCastle != 0:
		p.board[m.To-2] = p.board[m.To+1]
		p.board[m.To+1] = NoPiece
	}

	p.sideToMove = st.sideToMove
	p.castling = st.castling
	p.enPassant = st.enPassant
	p.kings = st.kings
	p.halfmoveClock = st.halfmoveClock
	p.fullmoveNumber = st.fullmoveNumber
	p.key = st.key
}

// legal reports whether m leaves the mover's king safe.
func (p *Position) legal(m Move) bool {
	us := p.board[m.From].Color()
	p.MakeMove(m)
	ok := !p.InCheck(us)
	p.UnmakeMove()
	return ok
}
