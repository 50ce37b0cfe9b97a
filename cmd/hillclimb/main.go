package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/config"
	"github.com/pdrpinto/gridsearch/internal/heightmap"
	"github.com/pdrpinto/gridsearch/internal/render"
)

var (
	// Global flags
	verbose    bool
	configPath string
	workers    int
	reverse    bool
	showPath   bool

	// Configuration, loaded once in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd solves both questions for one heightmap
var rootCmd = &cobra.Command{
	Use:   "hillclimb [input]",
	Short: "Fewest steps up a heightmap",
	Long: `Reads a heightmap of letters a-z with a start (S) and end (E) marker and reports:
  Part 1: fewest steps from the start to the end
  Part 2: fewest steps from any lowest square to the end

Each step moves up, down, left or right and may climb at most max_climb
elevation levels (1 by default); descending is unrestricted.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSolve,
}

// solveCmd is the explicit form of the root command
var solveCmd = &cobra.Command{
	Use:   "solve [input]",
	Short: "Print the answers for both parts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Concurrent searches for part 2 (0 = one per CPU)")
	rootCmd.PersistentFlags().BoolVar(&reverse, "reverse", false, "Answer part 2 with one search backwards from the end")
	rootCmd.PersistentFlags().BoolVar(&showPath, "show-path", false, "Draw the heightmap with the part 1 path")

	traceCmd.Flags().IntVar(&traceEvery, "every", 0, "Draw the search state every N steps (0 = final state only)")

	rootCmd.AddCommand(solveCmd, traceCmd)
}

func newLogger(level string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = atomicLevel
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

// loadInput applies command line overrides to the loaded config and parses
// the heightmap at path.
func loadInput(cmd *cobra.Command, path string) (*config.Config, *heightmap.Heightmap, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("reverse") {
		cfg.Reverse = reverse
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	start, end := cfg.Markers()
	hm, err := heightmap.Parse(file, heightmap.Markers{Start: start, End: end})
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Parsed heightmap",
		zap.String("path", path),
		zap.Int("width", hm.Width),
		zap.Int("height", hm.Height),
		zap.Stringer("start", hm.Start),
		zap.Stringer("end", hm.End),
	)
	return cfg, hm, nil
}

// runSolve prints the answers for both parts
func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, hm, err := loadInput(cmd, args[0])
	if err != nil {
		return err
	}

	climb, err := hm.Climb(cfg.MaxClimb, gridsearch.WithLogger(logger))
	if err != nil {
		return err
	}
	if !climb.Found {
		return fmt.Errorf("no path from %v to %v", hm.Start, hm.End)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1: %d\n", climb.Steps)

	options := []gridsearch.Option{gridsearch.WithLogger(logger), gridsearch.WithWorkers(cfg.Workers)}
	if cfg.Reverse {
		options = append(options, gridsearch.WithReverseSearch())
	}
	nearest, err := hm.FewestFromLowest(ctx, cfg.MaxClimb, options...)
	if err != nil {
		return err
	}
	if !nearest.Found {
		return fmt.Errorf("no path from any lowest square to %v", hm.End)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2: %d\n", nearest.Steps)

	logger.Info("Solved heightmap",
		zap.Int("part1", climb.Steps),
		zap.Int("part2", nearest.Steps),
		zap.Stringer("nearest_source", nearest.Start),
		zap.Bool("reverse", cfg.Reverse),
	)

	if showPath {
		fmt.Fprint(cmd.OutOrStdout(), render.Path(hm, climb.Path))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
