package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		config = utils.DefaultConfig()
	}

	sim, renderer, stats, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runGame(ctx, sim, renderer, stats, config.FrameInterval)
	})
	if err := eg.Wait(); err != nil {
		log.Fatalf("%+v", err)
	}

	displaySummary(os.Stderr, stats)
}
