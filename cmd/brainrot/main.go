// Command brainrot prints the best move for a position.
//
//	brainrot [depth] [?fen]
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MSwiderski999/brainrotAI/board"
	"github.com/MSwiderski999/brainrotAI/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Error: insufficient arguments\nUsage: brainrot [depth] [?fen]")
		return 1
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		fmt.Fprintln(stderr, "Error: incorrect number format in argument [depth]")
		return 1
	}

	pos := board.NewPosition()
	if len(args) > 1 {
		// An unquoted FEN arrives split into fields.
		pos, err = board.ParseFEN(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	}

	fmt.Fprintf(stdout, "Starting position:\n%s\n", pos.Ascii())
	start := time.Now()
	best, err := engine.FindBestMove(pos, depth)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	fmt.Fprintf(stdout, "Best move: %s (took %.3fs)\n", best, time.Since(start).Seconds())
	return 0
}
