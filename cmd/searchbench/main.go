package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MSwiderski999/brainrotAI/board"
	"github.com/MSwiderski999/brainrotAI/engine"
)

// suite is searched when no -fen is given.
var suite = []string{
	board.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"r1bqkb1r/1ppp1ppp/p1n2n2/4p3/B3P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
}

type job struct {
	index int
	fen   string
}

type outcome struct {
	job
	res engine.Result
}

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of times to search each position")
	fenFlag := flag.String("fen", "", "FEN to search (empty = built-in suite)")
	jobsFlag := flag.Int("jobs", runtime.NumCPU(), "positions searched in parallel")
	noPruning := flag.Bool("nopruning", false, "plain negamax without alpha-beta cutoffs")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}
	if *jobsFlag <= 0 {
		log.Fatalf("jobs must be positive, got %d", *jobsFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fens := suite
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}
	for _, fen := range fens {
		if _, err := board.ParseFEN(fen); err != nil {
			log.Fatalf("bad position: %v", err)
		}
	}

	fmt.Printf("searchbench: positions=%d depth=%d repeat=%d jobs=%d pruning=%v\n",
		len(fens), *depthFlag, *repeatFlag, *jobsFlag, !*noPruning)

	startAll := time.Now()
	results, err := runSuite(context.Background(), fens, *depthFlag, *repeatFlag, *jobsFlag,
		engine.Options{DisablePruning: *noPruning})
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	var nodes, cutoffs uint64
	for _, r := range results {
		nodes += r.res.Stats.Nodes
		cutoffs += r.res.Stats.BetaCutoffs
		fmt.Printf("#%d: bestmove %s score %.2f nodes %d cutoffs %d time=%v\n",
			r.index+1, r.res.SAN, r.res.Score, r.res.Stats.Nodes, r.res.Stats.BetaCutoffs, r.res.Elapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total: nodes %d cutoffs %d time %v nps %.0f\n",
		nodes, cutoffs, totalElapsed, float64(nodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}

// runSuite searches every position repeat times on a pool of workers.
// Results come back in input order. Each worker parses its own Position.
func runSuite(ctx context.Context, fens []string, depth, repeat, workers int, opts engine.Options) ([]outcome, error) {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job)
	results := make([]outcome, len(fens)*repeat)

	g.Go(func() error {
		defer close(jobs)
		for r := 0; r < repeat; r++ {
			for i, fen := range fens {
				select {
				case jobs <- job{index: r*len(fens) + i, fen: fen}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			s := engine.NewSearcher(opts)
			for j := range jobs {
				pos, err := board.ParseFEN(j.fen)
				if err != nil {
					return err
				}
				res, err := s.FindBestMove(ctx, pos, depth)
				if err != nil {
					return fmt.Errorf("%s: %w", j.fen, err)
				}
				results[j.index] = outcome{job: j, res: res}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
