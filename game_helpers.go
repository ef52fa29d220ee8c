package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sim, err := model.NewSimulation(
		config.Width,
		config.Height,
		model.NewSource(seed),
		model.WithWorkers(config.Workers),
	)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}

	return sim, model.NewTerminalRenderer(out), utils.NewStats(), nil
}

// runGame steps and renders one frame per interval until ctx is cancelled.
// Time spent stepping and rendering is not subtracted from the interval.
func runGame(
	ctx context.Context,
	sim *model.Simulation,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	interval time.Duration,
) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		sim.Step()
		if err := renderer.Render(sim.Snapshot()); err != nil {
			return errors.Wrapf(err, "[runGame] generation %d", sim.Generation())
		}
		stats.Update(sim.Generation(), sim.Population())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

// displaySummary shows the final stats once the loop has stopped
func displaySummary(w io.Writer, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.AveragePopulation)
}
