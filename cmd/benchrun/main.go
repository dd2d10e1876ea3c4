package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// Usage: go run ./cmd/benchrun [-quick]
func main() {
	quick := flag.Bool("quick", false, "skip the deepest perft and search runs")
	flag.Parse()

	// BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	perftDepths := []string{"3", "4", "5"}
	if *quick {
		perftDepths = perftDepths[:2]
	}
	for _, d := range perftDepths {
		run("go", "run", "./cmd/perft", "-depth", d, "-label", "Initial")
	}
	run("go", "run", "./cmd/perft", "-fen", kiwipete, "-depth", "3", "-label", "Kiwipete")

	fmt.Println("\nSearch Performance:")
	depth := "4"
	if *quick {
		depth = "3"
	}
	run("go", "run", "./cmd/searchbench", "-depth", depth)
	run("go", "run", "./cmd/searchbench", "-depth", "3", "-nopruning")
	os.Exit(0)
}
