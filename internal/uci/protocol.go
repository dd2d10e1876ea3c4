// Package uci speaks the Universal Chess Interface over a reader/writer pair.
package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/MSwiderski999/brainrotAI/board"
	"github.com/MSwiderski999/brainrotAI/engine"
)

const (
	defaultDepth = 4
	maxDepth     = 12
)

var errThinking = errors.New("search still running")

// Options configures a Protocol.
type Options struct {
	Name   string
	Author string
	Depth  int         // used by "go" without a depth; 0 means 4
	Logger *log.Logger // optional
}

// Protocol holds the engine state between commands. Searches run on their
// own goroutine so that "stop" can interrupt them.
type Protocol struct {
	opts     Options
	mu       sync.Mutex // guards w
	w        io.Writer
	pos      *board.Position
	depth    int
	pruning  bool
	cutStats bool

	cancel context.CancelFunc
	done   chan struct{}
}

func New(w io.Writer, opts Options) *Protocol {
	if opts.Name == "" {
		opts.Name = "brainrotAI"
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = defaultDepth
	}
	return &Protocol{
		opts:    opts,
		w:       w,
		pos:     board.NewPosition(),
		depth:   depth,
		pruning: true,
	}
}

// Run reads commands from r until "quit" or end of input. At end of input
// a running search is allowed to finish; "quit" stops it.
func (uci *Protocol) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		quit, err := uci.handle(ctx, sc.Text())
		if err != nil {
			uci.println("info string", err)
			if uci.opts.Logger != nil {
				uci.opts.Logger.Println(err)
			}
		}
		if quit {
			uci.stop()
			return nil
		}
	}
	uci.wait()
	return sc.Err()
}

func (uci *Protocol) println(a ...any) {
	uci.mu.Lock()
	defer uci.mu.Unlock()
	fmt.Fprintln(uci.w, a...)
}

func (uci *Protocol) printf(format string, a ...any) {
	uci.mu.Lock()
	defer uci.mu.Unlock()
	fmt.Fprintf(uci.w, format+"\n", a...)
}

func (uci *Protocol) thinking() bool {
	if uci.done == nil {
		return false
	}
	select {
	case <-uci.done:
		uci.done, uci.cancel = nil, nil
		return false
	default:
		return true
	}
}

func (uci *Protocol) stop() {
	if uci.cancel != nil {
		uci.cancel()
	}
	uci.wait()
}

func (uci *Protocol) wait() {
	if uci.done != nil {
		<-uci.done
		uci.done, uci.cancel = nil, nil
	}
}

func (uci *Protocol) handle(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	if uci.thinking() {
		switch name {
		case "stop":
			uci.stop()
			return false, nil
		case "isready":
			uci.println("readyok")
			return false, nil
		case "quit":
			return true, nil
		}
		return false, errThinking
	}

	switch name {
	case "uci":
		uci.println("id name", uci.opts.Name)
		if uci.opts.Author != "" {
			uci.println("id author", uci.opts.Author)
		}
		uci.printf("option name Depth type spin default %d min 1 max %d", uci.depth, maxDepth)
		uci.println("option name Pruning type check default true")
		uci.println("option name CutStats type check default false")
		uci.println("uciok")
	case "isready":
		uci.println("readyok")
	case "ucinewgame":
		uci.pos = board.NewPosition()
	case "stop":
	case "quit":
		return true, nil
	case "setoption":
		return false, uci.setOption(args)
	case "position":
		return false, uci.position(args)
	case "go":
		return false, uci.goCommand(ctx, args)
	case "d":
		uci.display()
	case "eval":
		uci.eval()
	case "perft":
		return false, uci.perft(args)
	default:
		return false, fmt.Errorf("unknown command: %s", line)
	}
	return false, nil
}

// setoption name <id> value <x>
func (uci *Protocol) setOption(args []string) error {
	if len(args) < 4 || !strings.EqualFold(args[0], "name") || !strings.EqualFold(args[2], "value") {
		return errors.New("invalid setoption arguments")
	}
	name, value := args[1], args[3]
	switch strings.ToLower(name) {
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil || d < 1 || d > maxDepth {
			return fmt.Errorf("invalid depth %q", value)
		}
		uci.depth = d
	case "pruning":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid pruning value %q", value)
		}
		uci.pruning = b
	case "cutstats":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid cutstats value %q", value)
		}
		uci.cutStats = b
	default:
		return fmt.Errorf("unhandled option %s", name)
	}
	return nil
}

// position startpos|fen <fen> [moves m1 m2 ...]
func (uci *Protocol) position(args []string) error {
	if len(args) == 0 {
		return errors.New("malformed position command")
	}
	movesIndex := slices.Index(args, "moves")
	rest := args[1:]
	if movesIndex >= 0 {
		rest = args[1:movesIndex]
	}

	var fen string
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = board.FENStartPos
	case "fen":
		fen = strings.Join(rest, " ")
	default:
		return errors.New("invalid position subcommand")
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 {
		for _, s := range args[movesIndex+1:] {
			m, err := pos.ParseUCIMove(strings.ToLower(s))
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			pos.MakeMove(m)
		}
	}
	uci.pos = pos
	return nil
}

// go [depth N]; clock limits are accepted and ignored.
func (uci *Protocol) goCommand(ctx context.Context, args []string) error {
	depth := uci.depth
	for i := 0; i < len(args); i++ {
		switch tok := strings.ToLower(args[i]); tok {
		case "infinite", "ponder":
		case "depth":
			if i+1 >= len(args) {
				return errors.New("malformed go command option depth")
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 1 {
				return fmt.Errorf("malformed go command option; could not convert depth %q", args[i])
			}
			depth = min(d, maxDepth)
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			i++
		default:
			uci.println("info string Unknown go subcommand", tok)
		}
	}

	if uci.pos.GameOver() {
		uci.println("info string", engine.ErrGameOver)
		uci.println("bestmove 0000")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	uci.cancel, uci.done = cancel, done
	go uci.think(ctx, done, depth)
	return nil
}

func (uci *Protocol) think(ctx context.Context, done chan<- struct{}, depth int) {
	defer close(done)

	var bestSoFar string
	s := engine.NewSearcher(engine.Options{
		DisablePruning: !uci.pruning,
		Logger:         uci.opts.Logger,
		Progress: func(ri engine.RootInfo) {
			bestSoFar = ri.BestMove
			uci.printf("info depth %d currmove %s currmovenumber %d nodes %d",
				depth, ri.Move, ri.Index, ri.Nodes)
		},
	})

	res, err := s.FindBestMove(ctx, uci.pos, depth)
	if err != nil {
		if bestSoFar == "" {
			bestSoFar = uci.pos.GenerateMoves()[0].String()
		}
		uci.println("info string search stopped:", err)
		uci.println("bestmove", bestSoFar)
		return
	}
	ms := res.Elapsed.Milliseconds()
	uci.printf("info depth %d score cp %d nodes %d time %d nps %d",
		res.Depth, centipawns(res.Score), res.Stats.Nodes, ms, res.Stats.Nodes*1000/uint64(ms+1))
	uci.println("bestmove", res.Move)
	if uci.cutStats {
		uci.mu.Lock()
		res.Stats.Dump(uci.w)
		uci.mu.Unlock()
	}
}

// centipawns converts a score in pawn = 10 units.
func centipawns(score float64) int {
	return int(math.Round(score * 10))
}

func (uci *Protocol) display() {
	uci.println(uci.pos.Ascii())
	uci.println("Fen:", uci.pos.FEN())
	uci.printf("Key: %016X", uci.pos.Hash())
}

func (uci *Protocol) eval() {
	t := engine.NewEvaluator(engine.DefaultWeights()).Terms(uci.pos)
	uci.printf("info string material %.2f positional %.2f mobility %.2f total %.2f",
		t.Material, t.Positional, t.Mobility, t.Total)
}

func (uci *Protocol) perft(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: perft <depth>")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("invalid perft depth %q", args[0])
	}
	start := time.Now()
	counts := make(map[string]uint64)
	var total uint64
	for m, n := range board.PerftDivide(uci.pos, depth) {
		counts[m.String()] = n
		total += n
	}
	keys := maps.Keys(counts)
	slices.Sort(keys)
	for _, k := range keys {
		uci.printf("%s: %d", k, counts[k])
	}
	uci.printf("Total: %d", total)
	uci.printf("info string perft %d took %v", depth, time.Since(start))
	return nil
}
