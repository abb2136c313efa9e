package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol16/utils"
)

var errInterrupted = errors.New("interrupted")

// waitForSignal returns errInterrupted on SIGINT/SIGTERM, or nil once ctx is done
func waitForSignal(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		return errors.Wrapf(errInterrupted, "received %s", sig)
	case <-ctx.Done():
		return nil
	}
}

func main() {
	configPath := flag.String("config", "", "optional JSON config file; built-in defaults are used when empty")
	flag.Parse()

	logger := utils.NewLogger(os.Stderr)

	config := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		config = loaded
	}

	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		logger.Warn("stdout is not a terminal, frames will contain raw clear-screen sequences")
	}

	g, err := initializeGame(config, os.Stdout, logger)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// the game runs on its own goroutine; whichever of it and the signal watcher finishes first stops the other
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer stop()
		return g.run(egCtx)
	})
	eg.Go(func() error {
		return waitForSignal(egCtx)
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, errInterrupted):
		logger.Infof("shutting down: %v", err)
	case err != nil:
		logger.Fatalf("%v | %s", err, g.stats.Summary())
	}
	logger.Info(g.stats.Summary())
}
