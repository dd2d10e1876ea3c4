package board

// secondRank is the pawn home rank for each color (0 = rank 1).
var secondRank = [2]int{1, 6}

// lastRank is the promotion rank for each color.
var lastRank = [2]int{7, 0}

// appendPawnMove adds a pawn move, expanding promotions into four moves.
func appendPawnMove(dst []Move, c Color, from, to Square, captured PieceType, flags MoveFlag) []Move {
	if to.Rank() != lastRank[c] {
		return append(dst, Move{From: from, To: to, Piece: Pawn, Captured: captured, Flags: flags})
	}
	flags = flags&^FlagNormal | FlagPromotion
	for _, pt := range promotionTypes {
		dst = append(dst, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: pt, Flags: flags})
	}
	return dst
}

// appendPieceMoves appends the pseudo-legal moves of the piece on from,
// castling excluded.
func (p *Position) appendPieceMoves(dst []Move, from Square, pc Piece) []Move {
	us := pc.Color()
	pt := pc.Type()

	if pt == Pawn {
		offs := &pawnOffsets[us]
		for _, off := range offs[2:] {
			to := from + off
			if !to.OnBoard() {
				continue
			}
			if target := p.board[to]; target != NoPiece && target.Color() != us {
				dst = appendPawnMove(dst, us, from, to, target.Type(), FlagCapture)
			} else if to == p.enPassant && us == p.sideToMove {
				dst = append(dst, Move{From: from, To: to, Piece: Pawn, Captured: Pawn, Flags: FlagEnPassant})
			}
		}

		to := from + offs[0]
		if to.OnBoard() && p.board[to] == NoPiece {
			dst = appendPawnMove(dst, us, from, to, NoPieceType, FlagNormal)
			to = from + offs[1]
			if from.Rank() == secondRank[us] && p.board[to] == NoPiece {
				dst = append(dst, Move{From: from, To: to, Piece: Pawn, Flags: FlagBigPawn})
			}
		}
		return dst
	}

	slider := slides(pt)
	for _, off := range pieceOffsets(pt) {
		for to := from + off; to.OnBoard(); to += off {
			target := p.board[to]
			if target != NoPiece {
				if target.Color() != us {
					dst = append(dst, Move{From: from, To: to, Piece: pt, Captured: target.Type(), Flags: FlagCapture})
				}
				break
			}
			dst = append(dst, Move{From: from, To: to, Piece: pt, Flags: FlagNormal})
			if !slider {
				break
			}
		}
	}
	return dst
}

// appendCastles appends the castling moves available to c. The king's
// square, the square it crosses and its destination must be unattacked.
func (p *Position) appendCastles(dst []Move, c Color) []Move {
	them := c.Opponent()
	from := p.kings[c]
	if from == NoSquare {
		return dst
	}
	if p.castling&kingSide(c) != 0 {
		to := from + 2
		if p.board[from+1] == NoPiece && p.board[to] == NoPiece &&
			!p.IsSquareAttacked(them, from) &&
			!p.IsSquareAttacked(them, from+1) &&
			!p.IsSquareAttacked(them, to) {
			dst = append(dst, Move{From: from, To: to, Piece: King, Flags: FlagKingCastle})
		}
	}
	if p.castling&queenSide(c) != 0 {
		to := from - 2
		if p.board[from-1] == NoPiece && p.board[from-2] == NoPiece && p.board[from-3] == NoPiece &&
			!p.IsSquareAttacked(them, from) &&
			!p.IsSquareAttacked(them, from-1) &&
			!p.IsSquareAttacked(them, to) {
			dst = append(dst, Move{From: from, To: to, Piece: King, Flags: FlagQueenCastle})
		}
	}
	return dst
}

// GeneratePseudoMovesInto appends the pseudo-legal moves of the side to move
// to dst[:0]: squares a8..h1 in order, castling last. Moves may leave the
// mover's king in check.
func (p *Position) GeneratePseudoMovesInto(dst []Move) []Move {
	dst = dst[:0]
	us := p.sideToMove
	for sq := A8; sq <= H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		if pc := p.board[sq]; pc != NoPiece && pc.Color() == us {
			dst = p.appendPieceMoves(dst, sq, pc)
		}
	}
	return p.appendCastles(dst, us)
}

// GeneratePseudoMoves returns the pseudo-legal moves in a new slice.
func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesInto(make([]Move, 0, 64))
}

// filterLegal keeps the moves of dst that survive make/test/unmake.
func (p *Position) filterLegal(dst []Move) []Move {
	n := 0
	for _, m := range dst {
		if p.legal(m) {
			dst[n] = m
			n++
		}
	}
	return dst[:n]
}

// GenerateMovesInto appends the legal moves of the side to move to dst[:0].
func (p *Position) GenerateMovesInto(dst []Move) []Move {
	return p.filterLegal(p.GeneratePseudoMovesInto(dst))
}

// GenerateMoves returns the legal moves in a new slice.
func (p *Position) GenerateMoves() []Move {
	return p.GenerateMovesInto(make([]Move, 0, 64))
}

// LegalMovesFrom appends to dst[:0] the legal moves of the piece on sq,
// whichever side owns it. En passant is only available to the side to move.
func (p *Position) LegalMovesFrom(sq Square, dst []Move) []Move {
	dst = dst[:0]
	pc := p.PieceAt(sq)
	if pc == NoPiece {
		return dst
	}
	dst = p.appendPieceMoves(dst, sq, pc)
	if pc.Type() == King {
		dst = p.appendCastles(dst, pc.Color())
	}
	return p.filterLegal(dst)
}

// MoveIterator yields legal moves one at a time. Pseudo-legal moves are
// generated up front; the legality test runs only as moves are requested.
// The position must be back in its original state on each call to Next.
type MoveIterator struct {
	pos   *Position
	moves []Move
	next  int
}

// Moves starts an iterator over the legal moves, using buf as storage.
func (p *Position) Moves(buf []Move) MoveIterator {
	return MoveIterator{pos: p, moves: p.GeneratePseudoMovesInto(buf)}
}

// Next returns the next legal move, or false when exhausted.
func (it *MoveIterator) Next() (Move, bool) {
	for it.next < len(it.moves) {
		m := it.moves[it.next]
		it.next++
		if it.pos.legal(m) {
			return m, true
		}
	}
	return NullMove, false
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var buf [64]Move
	it := p.Moves(buf[:0])
	_, ok := it.Next()
	return ok
}

// GameOver reports checkmate or stalemate. Draw rules are not considered.
func (p *Position) GameOver() bool { return !p.HasLegalMoves() }

// InCheckmate reports whether the side to move is mated.
func (p *Position) InCheckmate() bool {
	return p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}

// InStalemate reports whether the side to move has no moves and is not in check.
func (p *Position) InStalemate() bool {
	return !p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}
