package engine

import (
	"math"

	"github.com/MSwiderski999/brainrotAI/board"
)

// Evaluator scores a position. Positive favours White.
type Evaluator interface {
	Evaluate(p *board.Position) float64
}

// KingValue is the material weight of the king. Kings are never captured,
// so it cancels out of material and only weights king mobility.
const KingValue = 0

// Weights holds the material value of each piece type, pawn = 10.
type Weights [7]float64

func DefaultWeights() Weights {
	return Weights{
		board.Pawn:   10,
		board.Knight: 30,
		board.Bishop: 35,
		board.Rook:   50,
		board.Queen:  90,
		board.King:   KingValue,
	}
}

// Piece-square tables from White's side, index 0 = a8, 63 = h1.
// Black reads them rotated by 180 degrees.
var pieceSquareTables = [7][64]float64{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, 5, 5, 5, 5, 5,
		1, 1, 2, 3, 3, 2, 1, 1,
		0.5, 0.5, 1, 2.5, 2.5, 1, 0.5, 0.5,
		0, 0, 0, 2, 2, 0, 0, 0,
		0.5, -0.5, -1, 0, 0, -1, -0.5, 0.5,
		0.5, 1, 1, -2, -2, 1, 1, 0.5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-5, -4, -3, -3, -3, -3, -4, -5,
		-4, -2, 0, 0, 0, 0, -2, -4,
		-3, 0, 1, 1.5, 1.5, 1, 0, -3,
		-3, 0.5, 1.5, 2, 2, 1.5, 0.5, -3,
		-3, 0, 1.5, 2, 2, 1.5, 0.5, -3,
		-3, 0.5, 1, 1.5, 1.5, 1, 0.5, -3,
		-4, -2, 0, 0.5, 0.5, 0, -2, -4,
		-5, -4, -3, -3, -3, -3, -4, -5,
	},
	board.Bishop: {
		-2, -1, -1, -1, -1, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0.5, 1, 1, 0.5, 0, -1,
		-1, 0.5, 0.5, 1, 1, 0.5, 0.5, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 1, 1, 1, 1, 1, 1, -1,
		-1, 0.5, 0, 0, 0, 0, 0.5, -1,
		-2, -1, -1, -1, -1, -1, -1, -2,
	},
	board.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0.5, 1, 1, 1, 1, 1, 1, 0.5,
		-0.5, 0, 0, 0, 0, 0, 0, -0.5,
		-0.5, 0, 0, 0, 0, 0, 0, -0.5,
		-0.5, 0, 0, 0, 0, 0, 0, -0.5,
		-0.5, 0, 0, 0, 0, 0, 0, -0.5,
		-0.5, 0, 0, 0, 0, 0, 0, -0.5,
		0, 0, 0, 0.5, 0.5, 0, 0, 0,
	},
	board.Queen: {
		-2, -1, -1, -0.5, -0.5, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0.5, 0.5, 0.5, 0.5, 0, -1,
		-0.5, 0, 0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
		0, 0, 0.5, 0.5, 0.5, 0.5, 0, 0,
		-1, 0, 0.5, 0.5, 0.5, 0.5, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-2, -1, -1, -0.5, -0.5, -1, -1, -2,
	},
	board.King: {
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-2, -3, -3, -4, -4, -3, -3, -2,
		-1, -2, -2, -2, -2, -2, -2, -1,
		2, 2, 0, 0, 0, 0, 2, 2,
		2, 3, 1, 0, 0, 1, 3, 2,
	},
}

// Scores are summed as integers in units of 1/scale points so that
// mirrored positions cancel exactly.
const scale = 10000

var psqtUnits [7][64]int64

func init() {
	for pt := range pieceSquareTables {
		for i, v := range pieceSquareTables[pt] {
			psqtUnits[pt][i] = int64(math.Round(v * scale))
		}
	}
}

// psqtIndex maps a square to its table slot from c's side.
func psqtIndex(sq board.Square, c board.Color) int {
	i := (7-sq.Rank())*8 + sq.File()
	if c == board.Black {
		return 63 - i
	}
	return i
}

// Terms splits a score into its components, each from White's side.
type Terms struct {
	Material   float64 `json:"material"`
	Positional float64 `json:"positional"`
	Mobility   float64 `json:"mobility"`
	Total      float64 `json:"total"`
}

// ClassicEvaluator sums material, piece-square bonuses and mobility.
type ClassicEvaluator struct {
	material [7]int64 // units
	mobility [7]int64 // units per legal move
}

// NewEvaluator builds an evaluator for the given piece values.
func NewEvaluator(w Weights) *ClassicEvaluator {
	e := &ClassicEvaluator{}
	for pt, v := range w {
		e.material[pt] = int64(math.Round(v * scale))
		// value / 100 points per move
		e.mobility[pt] = int64(math.Round(v * scale / 100))
	}
	return e
}

var defaultEvaluator = NewEvaluator(DefaultWeights())

// Evaluate scores p with the default weights.
func Evaluate(p *board.Position) float64 { return defaultEvaluator.Evaluate(p) }

func (e *ClassicEvaluator) Evaluate(p *board.Position) float64 {
	return e.Terms(p).Total
}

// Terms evaluates p and reports each component. p is used for make/unmake
// while counting mobility and is restored before returning.
func (e *ClassicEvaluator) Terms(p *board.Position) Terms {
	var material, positional, mobility int64
	var scratch [32]board.Move
	for sq := board.A8; sq <= board.H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		pc := p.PieceAt(sq)
		if pc == board.NoPiece {
			continue
		}
		pt, c := pc.Type(), pc.Color()
		sign := int64(1)
		if c == board.Black {
			sign = -1
		}
		moves := int64(len(p.LegalMovesFrom(sq, scratch[:0])))
		material += sign * e.material[pt]
		positional += sign * psqtUnits[pt][psqtIndex(sq, c)]
		mobility += sign * moves * e.mobility[pt]
	}
	return Terms{
		Material:   float64(material) / scale,
		Positional: float64(positional) / scale,
		Mobility:   float64(mobility) / scale,
		Total:      float64(material+positional+mobility) / scale,
	}
}
