package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/MSwiderski999/brainrotAI/internal/uci"
)

const (
	name   = "brainrotAI"
	author = "MSwiderski999"
)

func main() {
	depth := flag.Int("depth", 4, "search depth used by go without a depth")
	quiet := flag.Bool("quiet", false, "do not log to stderr")
	flag.Parse()

	var logger *log.Logger
	if !*quiet {
		logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
		logger.Println(name, "RuntimeVersion", runtime.Version(), "GOARCH", runtime.GOARCH, "GOOS", runtime.GOOS)
	}

	protocol := uci.New(os.Stdout, uci.Options{
		Name:   name,
		Author: author,
		Depth:  *depth,
		Logger: logger,
	})
	if err := protocol.Run(context.Background(), os.Stdin); err != nil {
		log.Fatalf("uci: %v", err)
	}
}
