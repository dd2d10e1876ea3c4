package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MSwiderski999/brainrotAI/internal/server"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	maxDepth := flag.Int("max-depth", 5, "deepest search a client may request")
	timeout := flag.Duration("timeout", 10*time.Second, "time limit for one search")
	origins := flag.String("origins", "*", "comma separated CORS origins")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	app := server.New(server.Config{
		MaxDepth: *maxDepth,
		Timeout:  *timeout,
		Origins:  *origins,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Printf("listening on %s (max depth %d, timeout %v)", *addr, *maxDepth, *timeout)
		return app.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Println("shutting down")
		return app.ShutdownWithTimeout(5 * time.Second)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
