package main

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/MSwiderski999/brainrotAI/board"
)

// divideByName keys PerftDivide by coordinate notation.
func divideByName(pos *board.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for m, n := range board.PerftDivide(pos, depth) {
		counts[m.String()] = n
	}
	return counts
}

func oracleDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	counts := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		counts[m.String()] = oraclePerft(&b, depth-1)
		undo()
	}
	return counts
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		undo()
	}
	return nodes
}

// verifyDivide returns one line per root move whose count differs from
// dragontoothmg, sorted by move.
func verifyDivide(pos *board.Position, fen string, depth int) []string {
	got := divideByName(pos, depth)
	want := oracleDivide(fen, depth)

	names := maps.Keys(got)
	for name := range want {
		if _, ok := got[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var diffs []string
	for _, name := range names {
		g, gok := got[name]
		w, wok := want[name]
		switch {
		case !wok:
			diffs = append(diffs, fmt.Sprintf("%s: %d, not legal for dragontoothmg", name, g))
		case !gok:
			diffs = append(diffs, fmt.Sprintf("%s: missing, dragontoothmg %d", name, w))
		case g != w:
			diffs = append(diffs, fmt.Sprintf("%s: %d, dragontoothmg %d", name, g, w))
		}
	}
	return diffs
}
