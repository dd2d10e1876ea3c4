package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/MSwiderski999/brainrotAI/board"
	"github.com/MSwiderski999/brainrotAI/engine"
)

var ErrDepth = errors.New("depth out of range")

type PositionRequest struct {
	FEN string `json:"fen"`
}

type SearchRequest struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
}

type MoveInfo struct {
	UCI       string `json:"uci"`
	SAN       string `json:"san"`
	From      string `json:"from"`
	To        string `json:"to"`
	Capture   bool   `json:"capture"`
	Promotion string `json:"promotion,omitempty"`
}

// Status describes how the game stands for the side to move.
type Status struct {
	SideToMove string `json:"sideToMove"`
	InCheck    bool   `json:"inCheck"`
	Checkmate  bool   `json:"checkmate"`
	Stalemate  bool   `json:"stalemate"`
	GameOver   bool   `json:"gameOver"`
}

type MovesResult struct {
	FEN string `json:"fen"`
	Status
	Moves []MoveInfo `json:"moves"`
}

type EvalResult struct {
	FEN string `json:"fen"`
	Status
	Score float64      `json:"score"`
	Terms engine.Terms `json:"terms"`
}

type SearchResult struct {
	ID        string               `json:"id"`
	FEN       string               `json:"fen"`
	Depth     int                  `json:"depth"`
	Move      string               `json:"move"`
	SAN       string               `json:"san"`
	Score     float64              `json:"score"`
	Stats     engine.CutStatistics `json:"stats"`
	ElapsedMs int64                `json:"elapsedMs"`
}

// Analyzer answers position queries. Every call parses its own Position,
// so concurrent calls share nothing.
type Analyzer struct {
	maxDepth int
	timeout  time.Duration
	eval     *engine.ClassicEvaluator
	logger   *log.Logger
}

func NewAnalyzer(maxDepth int, timeout time.Duration, logger *log.Logger) *Analyzer {
	return &Analyzer{
		maxDepth: maxDepth,
		timeout:  timeout,
		eval:     engine.NewEvaluator(engine.DefaultWeights()),
		logger:   logger,
	}
}

func parse(fen string) (*board.Position, error) {
	if fen == "" {
		return board.NewPosition(), nil
	}
	return board.ParseFEN(fen)
}

func status(p *board.Position) Status {
	us := p.SideToMove()
	st := Status{
		SideToMove: us.String(),
		InCheck:    p.InCheck(us),
		Checkmate:  p.InCheckmate(),
		Stalemate:  p.InStalemate(),
	}
	st.GameOver = st.Checkmate || st.Stalemate
	return st
}

func (a *Analyzer) Moves(req PositionRequest) (MovesResult, error) {
	p, err := parse(req.FEN)
	if err != nil {
		return MovesResult{}, err
	}
	moves := p.GenerateMoves()
	res := MovesResult{FEN: p.FEN(), Status: status(p), Moves: make([]MoveInfo, len(moves))}
	for i, san := range p.SANs(moves) {
		m := moves[i]
		mi := MoveInfo{
			UCI:     m.String(),
			SAN:     san,
			From:    m.From.String(),
			To:      m.To.String(),
			Capture: m.IsCapture(),
		}
		if m.Promotion != board.NoPieceType {
			mi.Promotion = string(m.Promotion.Char())
		}
		res.Moves[i] = mi
	}
	return res, nil
}

func (a *Analyzer) Evaluate(req PositionRequest) (EvalResult, error) {
	p, err := parse(req.FEN)
	if err != nil {
		return EvalResult{}, err
	}
	terms := a.eval.Terms(p)
	return EvalResult{FEN: p.FEN(), Status: status(p), Score: terms.Total, Terms: terms}, nil
}

// Search runs one bounded search. progress, if set, receives every root
// move as it is finished, tagged with the search ID.
func (a *Analyzer) Search(ctx context.Context, req SearchRequest, progress func(id string, ri engine.RootInfo)) (SearchResult, error) {
	if req.Depth < 1 || req.Depth > a.maxDepth {
		return SearchResult{}, fmt.Errorf("%w: %d not in [1, %d]", ErrDepth, req.Depth, a.maxDepth)
	}
	p, err := parse(req.FEN)
	if err != nil {
		return SearchResult{}, err
	}

	id := uuid.New().String()
	opts := engine.Options{Evaluator: a.eval, Logger: a.logger}
	if progress != nil {
		opts.Progress = func(ri engine.RootInfo) { progress(id, ri) }
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	res, err := engine.NewSearcher(opts).FindBestMove(ctx, p, req.Depth)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		ID:        id,
		FEN:       p.FEN(),
		Depth:     res.Depth,
		Move:      res.Move.String(),
		SAN:       res.SAN,
		Score:     res.Score,
		Stats:     res.Stats,
		ElapsedMs: res.Elapsed.Milliseconds(),
	}, nil
}
