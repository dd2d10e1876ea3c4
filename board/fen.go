package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN of the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidFEN}, args...)...)
}

// ParseFEN parses a FEN string. The half-move clock and full-move number
// may be omitted. Castling rights whose king or rook is not on its home
// square are dropped.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError("expected 4 to 6 fields, got %d", len(fields))
	}

	p := &Position{
		enPassant:      NoSquare,
		kings:          [2]Square{NoSquare, NoSquare},
		fullmoveNumber: 1,
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}
	var kingCount [2]int
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		prevDigit := false
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				if prevDigit {
					return nil, fenError("consecutive digits in rank %d", rank+1)
				}
				prevDigit = true
				file += int(ch - '0')
				continue
			}
			prevDigit = false
			pc := pieceFromChar(ch)
			if pc == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("too many squares in rank %d", rank+1)
			}
			if pc.Type() == Pawn && (rank == 0 || rank == 7) {
				return nil, fenError("pawn on rank %d", rank+1)
			}
			sq := MakeSquare(file, rank)
			p.board[sq] = pc
			if pc.Type() == King {
				kingCount[pc.Color()]++
				p.kings[pc.Color()] = sq
			}
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d does not describe 8 squares", rank+1)
		}
	}
	if kingCount[White] != 1 || kingCount[Black] != 1 {
		return nil, fenError("need exactly one king per side")
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fenError("side to move must be w or b, got %q", fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			var cr CastlingRights
			switch fields[2][i] {
			case 'K':
				cr = WhiteKingSide
			case 'Q':
				cr = WhiteQueenSide
			case 'k':
				cr = BlackKingSide
			case 'q':
				cr = BlackQueenSide
			default:
				return nil, fenError("bad castling field %q", fields[2])
			}
			if p.castling&cr != 0 {
				return nil, fenError("bad castling field %q", fields[2])
			}
			p.castling |= cr
		}
		p.castling &= p.supportedCastling()
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenError("bad en passant square %q", fields[3])
		}
		want := 5
		if p.sideToMove == Black {
			want = 2
		}
		if sq.Rank() != want {
			return nil, fenError("en passant square %s inconsistent with side to move", sq)
		}
		p.enPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenError("bad half-move clock %q", fields[4])
		}
		p.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenError("bad full-move number %q", fields[5])
		}
		p.fullmoveNumber = n
	}

	if p.InCheck(p.sideToMove.Opponent()) {
		return nil, fenError("side not to move is in check")
	}

	p.key = p.ComputeHash()
	return p, nil
}

// supportedCastling returns the rights backed by a king and rook at home.
func (p *Position) supportedCastling() CastlingRights {
	var cr CastlingRights
	wk, bk := MakePiece(White, King), MakePiece(Black, King)
	wr, br := MakePiece(White, Rook), MakePiece(Black, Rook)
	if p.board[E1] == wk {
		if p.board[H1] == wr {
			cr |= WhiteKingSide
		}
		if p.board[A1] == wr {
			cr |= WhiteQueenSide
		}
	}
	if p.board[E8] == bk {
		if p.board[H8] == br {
			cr |= BlackKingSide
		}
		if p.board[A8] == br {
			cr |= BlackQueenSide
		}
	}
	return cr
}

// FEN serializes the position.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[MakeSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())

	sb.WriteByte(' ')
	if p.castling == NoCastling {
		sb.WriteByte('-')
	} else {
		for _, f := range []struct {
			cr CastlingRights
			ch byte
		}{{WhiteKingSide, 'K'}, {WhiteQueenSide, 'Q'}, {BlackKingSide, 'k'}, {BlackQueenSide, 'q'}} {
			if p.castling&f.cr != 0 {
				sb.WriteByte(f.ch)
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}

// String renders the position as FEN.
func (p *Position) String() string { return p.FEN() }
