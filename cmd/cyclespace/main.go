package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclespace/config"
)

var (
	// Version information (set by build flags)
	Version = "dev"

	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cyclespace",
		Short: "Synthesize a random graph and enumerate its cycle space",
		Long: `cyclespace builds a connected, undirected, weighted graph with minimum
degree 2, derives a fundamental cycle basis from a spanning tree grown at
node 1, and enumerates every cycle reachable by combining basis cycles.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			} else {
				logger.SetLevel(logrus.InfoLevel)
			}

			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				logger.WithError(err).Warn("Failed to load config, using defaults")
				cfg = config.Default()
			}
		},
		RunE: runGenerate,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./cyclespace.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cmd.Flags().Int("size", 0, "number of nodes (≥ 3)")
	cmd.Flags().Float64("density", 0, "edge probability in (0,1]")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().Int("workers", 0, "goroutines evaluating combinations")
	cmd.Flags().Int("max-cycles", 0, "stop after this many cycles (0 = unbounded)")
	cmd.Flags().String("format", "", "output format: text, yaml or json")
	cmd.Flags().Bool("walks", false, "recover a closed walk for every derived cycle")
	cmd.Flags().Bool("matrix", true, "print the adjacency table (text format)")

	return cmd
}

// applyFlags overrides configuration with every flag set on the command line.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("size") {
		if c.Graph.Size, err = flags.GetInt("size"); err != nil {
			return err
		}
	}
	if flags.Changed("density") {
		if c.Graph.Density, err = flags.GetFloat64("density"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if c.Graph.Seed, err = flags.GetInt64("seed"); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		if c.Enumerate.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("max-cycles") {
		if c.Enumerate.MaxCycles, err = flags.GetInt("max-cycles"); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if c.Output.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Changed("walks") {
		if c.Output.Walks, err = flags.GetBool("walks"); err != nil {
			return err
		}
	}
	if flags.Changed("matrix") {
		if c.Output.Matrix, err = flags.GetBool("matrix"); err != nil {
			return err
		}
	}

	return nil
}
