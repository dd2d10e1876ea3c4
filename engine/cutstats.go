package engine

import (
	"fmt"
	"io"
)

// CutStatistics collects node and cutoff counts for one search.
type CutStatistics struct {
	Nodes       uint64 `json:"nodes"`
	Leaves      uint64 `json:"leaves"`
	BetaCutoffs uint64 `json:"betaCutoffs"`
}

// Dump writes the counters as UCI "info string" lines.
func (cs CutStatistics) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", cs.Nodes)
	fmt.Fprintf(w, "info string   Leaves: %d\n", cs.Leaves)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", cs.BetaCutoffs)
}
