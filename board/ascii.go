package board

import "strings"

// Ascii draws the board from White's side, uppercase for White pieces.
//
//	   +------------------------+
//	 8 | r  n  b  q  k  b  n  r |
//	 ...
//	   +------------------------+
//	     a  b  c  d  e  f  g  h
func (p *Position) Ascii() string {
	var sb strings.Builder
	sb.WriteString("   +------------------------+\n")
	for sq := A8; sq <= H1; sq++ {
		if sq.File() == 0 {
			sb.WriteByte(' ')
			sb.WriteByte('1' + byte(sq.Rank()))
			sb.WriteString(" |")
		}
		sb.WriteByte(' ')
		sb.WriteByte(p.board[sq].Char())
		sb.WriteByte(' ')
		if !(sq + 1).OnBoard() {
			sb.WriteString("|\n")
			sq += 8
		}
	}
	sb.WriteString("   +------------------------+\n")
	sb.WriteString("     a  b  c  d  e  f  g  h")
	return sb.String()
}
