package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/render"
)

var traceEvery int

// traceCmd steps the part 1 search and draws its progress
var traceCmd = &cobra.Command{
	Use:   "trace [input]",
	Short: "Step through the part 1 search",
	Long: `Runs the part 1 search one dequeued square at a time.

With --every N the visited squares are drawn every N steps; the final
state and, when one exists, the path are always drawn.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

// runTrace drives a Stepper to completion
func runTrace(cmd *cobra.Command, args []string) error {
	cfg, hm, err := loadInput(cmd, args[0])
	if err != nil {
		return err
	}

	stepper, err := gridsearch.NewStepper(hm.Grid, hm.Start, gridsearch.At(hm.End), gridsearch.MaxClimb(cfg.MaxClimb))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var snapshot gridsearch.StepSnapshot
	for !snapshot.Done {
		snapshot = stepper.Step()
		if traceEvery > 0 && snapshot.StepIndex%traceEvery == 0 && !snapshot.Done {
			fmt.Fprintf(out, "step %d: at %v distance %d, frontier %d, visited %d\n",
				snapshot.StepIndex, snapshot.Current, snapshot.Distance, snapshot.FrontierSize, snapshot.VisitedCount)
			fmt.Fprint(out, render.Visited(hm, stepper.Visited(), snapshot.Current))
		}
	}

	logger.Debug("Trace finished",
		zap.Int("steps", snapshot.StepIndex),
		zap.Bool("found", snapshot.Found),
	)

	if !snapshot.Found {
		fmt.Fprint(out, render.Visited(hm, stepper.Visited(), snapshot.Current))
		return fmt.Errorf("no path from %v to %v after %d steps", hm.Start, hm.End, snapshot.StepIndex)
	}
	fmt.Fprintf(out, "found %v in %d steps after expanding %d squares\n", hm.End, snapshot.Distance, snapshot.StepIndex)
	fmt.Fprint(out, render.Path(hm, snapshot.Path))
	return nil
}
