package engine

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/MSwiderski999/brainrotAI/board"
)

// ErrGameOver is returned when asked to search a position with no legal moves.
var ErrGameOver = errors.New("cannot perform search on concluded game")

// =============================================================================
// OPTIONS AND RESULTS
// =============================================================================

// Options configures a Searcher. The zero value uses the default evaluator.
type Options struct {
	Evaluator Evaluator

	// DisablePruning turns alpha-beta into plain negamax. The result is
	// the same; only the node count grows.
	DisablePruning bool

	// Progress, if set, is called after each root move is searched.
	Progress func(RootInfo)

	// Logger, if set, receives one summary line per search.
	Logger *log.Logger
}

// RootInfo reports a searched root move. Score is exact when the move
// became the new best; otherwise it is an upper bound.
type RootInfo struct {
	Index     int     `json:"index"`
	Total     int     `json:"total"`
	Move      string  `json:"move"`
	SAN       string  `json:"san"`
	Score     float64 `json:"score"`
	BestMove  string  `json:"bestMove"`
	BestSAN   string  `json:"bestSan"`
	BestScore float64 `json:"bestScore"`
	Nodes     uint64  `json:"nodes"`
}

// Result is the outcome of FindBestMove. Score is from the mover's side.
type Result struct {
	Move    board.Move
	SAN     string
	Score   float64
	Depth   int
	Stats   CutStatistics
	Elapsed time.Duration
}

// =============================================================================
// SEARCHER
// =============================================================================

// Searcher runs fixed-depth negamax searches. A Searcher and the Position
// it searches must not be shared between goroutines while a search runs.
type Searcher struct {
	opts  Options
	eval  Evaluator
	stats CutStatistics
	bufs  [][]board.Move
	done  <-chan struct{}
}

func NewSearcher(opts Options) *Searcher {
	s := &Searcher{opts: opts, eval: opts.Evaluator}
	if s.eval == nil {
		s.eval = defaultEvaluator
	}
	return s
}

// FindBestMove searches pos to depth plies and returns the best root move.
// The first move reaching the best score wins ties. pos is restored before
// returning. Cancelling ctx stops the search between sibling moves and
// returns ctx.Err().
func (s *Searcher) FindBestMove(ctx context.Context, pos *board.Position, depth int) (Result, error) {
	if pos.GameOver() {
		return Result{}, ErrGameOver
	}

	start := time.Now()
	s.stats = CutStatistics{}
	s.done = ctx.Done()
	s.bufs = make([][]board.Move, max(depth, 0)+1)

	color := 1.0
	if pos.SideToMove() == board.Black {
		color = -1
	}

	rootMoves := pos.GenerateMoves()
	var sans []string
	if s.opts.Progress != nil {
		sans = pos.SANs(rootMoves)
	}

	value := math.Inf(-1)
	best := board.NullMove
	bestUCI, bestSAN := "", ""
	for i, m := range rootMoves {
		if s.stopped() {
			return Result{}, ctx.Err()
		}
		beta := -value
		if s.opts.DisablePruning {
			beta = math.Inf(1)
		}
		pos.MakeMove(m)
		child, err := s.negamax(ctx, pos, depth-1, -color, math.Inf(-1), beta)
		pos.UnmakeMove()
		if err != nil {
			return Result{}, err
		}

		moveValue := -child
		if moveValue > value {
			value = moveValue
			best = m
			bestUCI = m.String()
			if sans != nil {
				bestSAN = sans[i]
			}
		}

		if s.opts.Progress != nil {
			s.opts.Progress(RootInfo{
				Index:     i + 1,
				Total:     len(rootMoves),
				Move:      m.String(),
				SAN:       sans[i],
				Score:     moveValue,
				BestMove:  bestUCI,
				BestSAN:   bestSAN,
				BestScore: value,
				Nodes:     s.stats.Nodes,
			})
		}
	}

	res := Result{Move: best, Score: value, Depth: depth, Stats: s.stats, Elapsed: time.Since(start)}
	if !best.IsNull() {
		res.SAN = pos.SAN(best)
	} else {
		res.Score = 0
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Printf("search depth=%d best=%s score=%.2f nodes=%d cutoffs=%d time=%v",
			depth, res.SAN, res.Score, res.Stats.Nodes, res.Stats.BetaCutoffs, res.Elapsed)
	}
	return res, nil
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() CutStatistics { return s.stats }

func (s *Searcher) stopped() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Searcher) bufFor(depth int) []board.Move {
	buf := s.bufs[depth]
	if buf == nil {
		buf = make([]board.Move, 0, 256)
		s.bufs[depth] = buf
	}
	return buf[:0]
}

// negamax returns the score of pos from color's side. Leaves and positions
// without legal moves are scored statically; there is no mate bonus.
func (s *Searcher) negamax(ctx context.Context, pos *board.Position, depth int, color, alpha, beta float64) (float64, error) {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.Leaves++
		return color * s.eval.Evaluate(pos), nil
	}

	value := math.Inf(-1)
	searched := 0
	it := pos.Moves(s.bufFor(depth))
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		if searched > 0 && s.stopped() {
			return 0, ctx.Err()
		}
		searched++

		pos.MakeMove(m)
		child, err := s.negamax(ctx, pos, depth-1, -color, -beta, -alpha)
		pos.UnmakeMove()
		if err != nil {
			return 0, err
		}

		if -child > value {
			value = -child
		}
		if value > alpha {
			alpha = value
		}
		if value >= beta && !s.opts.DisablePruning {
			s.stats.BetaCutoffs++
			break
		}
	}

	if searched == 0 {
		s.stats.Leaves++
		return color * s.eval.Evaluate(pos), nil
	}
	return value, nil
}

// FindBestMove searches pos with default options and returns the move in
// algebraic notation.
func FindBestMove(pos *board.Position, depth int) (string, error) {
	res, err := NewSearcher(Options{}).FindBestMove(context.Background(), pos, depth)
	if err != nil {
		return "", err
	}
	return res.SAN, nil
}
