package board

import "math/rand"

// Zobrist keys. Piece keys are indexed by the packed Piece value and the
// 0x88 square; off-board slots are never used.
var (
	zobristPiece     [16][128]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed keeps keys stable across runs.
	rnd := rand.New(rand.NewSource(0xB2A1))
	for pc := 1; pc < 16; pc++ {
		for sq := 0; sq < 128; sq++ {
			if Square(sq).OnBoard() {
				zobristPiece[pc][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeHash recomputes the Zobrist key from scratch.
func (p *Position) ComputeHash() uint64 {
	var key uint64
	for sq := A8; sq <= H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		if pc := p.board[sq]; pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.File()]
	}
	return key
}
