package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalMove is returned when a move string does not match a legal move.
var ErrIllegalMove = errors.New("illegal move")

// SAN renders m in standard algebraic notation, e.g. "Nf3", "exd5",
// "O-O", "e8=Q+". m must be legal in p. p is restored before returning.
func (p *Position) SAN(m Move) string {
	return p.san(m, p.GenerateMoves())
}

func (p *Position) san(m Move, legal []Move) string {
	var sb strings.Builder
	switch {
	case m.Flags&FlagKingCastle != 0:
		sb.WriteString("O-O")
	case m.Flags&FlagQueenCastle != 0:
		sb.WriteString("O-O-O")
	default:
		if m.Piece != Pawn {
			sb.WriteByte(m.Piece.Char() - ('a' - 'A'))
			sb.WriteString(disambiguator(m, legal))
		}
		if m.IsCapture() {
			if m.Piece == Pawn {
				sb.WriteByte('a' + byte(m.From.File()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != NoPieceType {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Char() - ('a' - 'A'))
		}
	}

	p.MakeMove(m)
	if p.InCheck(p.sideToMove) {
		if p.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	p.UnmakeMove()
	return sb.String()
}

// disambiguator returns the file, rank or full square needed to tell m
// apart from other legal moves of the same piece type to the same square.
func disambiguator(m Move, legal []Move) string {
	var ambiguities, sameRank, sameFile int
	for _, o := range legal {
		if o.Piece != m.Piece || o.From == m.From || o.To != m.To {
			continue
		}
		ambiguities++
		if o.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if o.From.File() == m.From.File() {
			sameFile++
		}
	}
	switch {
	case ambiguities == 0:
		return ""
	case sameRank > 0 && sameFile > 0:
		return m.From.String()
	case sameFile > 0:
		return m.From.String()[1:]
	default:
		return m.From.String()[:1]
	}
}

// SANs renders every move of moves; they must all be legal in p.
func (p *Position) SANs(moves []Move) []string {
	legal := p.GenerateMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = p.san(m, legal)
	}
	return out
}

func trimSAN(s string) string {
	s = strings.TrimRight(s, "+#!?")
	return strings.ReplaceAll(s, "0", "O")
}

// ParseSAN finds the legal move whose notation matches s. Check marks and
// annotation suffixes are ignored.
func (p *Position) ParseSAN(s string) (Move, error) {
	want := trimSAN(s)
	legal := p.GenerateMoves()
	for _, m := range legal {
		if trimSAN(p.san(m, legal)) == want {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("%w: %q in %s", ErrIllegalMove, s, p.FEN())
}

// ParseUCIMove finds the legal move written in coordinate notation.
func (p *Position) ParseUCIMove(s string) (Move, error) {
	s = strings.ToLower(s)
	for _, m := range p.GenerateMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("%w: %q in %s", ErrIllegalMove, s, p.FEN())
}
