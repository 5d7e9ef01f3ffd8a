package cli

import (
	"fmt"

	"github.com/cyarp/commchar/internal/config"
	"github.com/cyarp/commchar/logging"
	"github.com/cyarp/commchar/plotting"
	"github.com/cyarp/commchar/results"
	"github.com/spf13/cobra"
)

var plotSweepCmd = &cobra.Command{
	Use:   "plot-sweep",
	Short: "Plot the results of a block size sweep.",
	Long: `The plot-sweep command reads every blkSizeBytes<N> directory below the input
directory and plots the harmonic average rate of each category against the block size.

Written files (given an output prefix):
  <prefix>_comm_sweep.pdf and .csv                average rate per block size
  <prefix>_comm_sweep_pts.pdf and .csv            the same, with every transfer (--plot-pts)
  <prefix>_comm_sweep_pts_subplt<N>.pdf           one chart per category (--plot-pts)
  <prefix>_comm_sweep_pts_subplt<N>_dutyCycle_*   duty cycles, if the reports carry them
  <prefix>_comm_sweep_duty_cycle.csv`,
	PreRunE: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.NewSweepPlotViper()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		return runPlotSweep(cfg, logging.New("sweep"))
	},
}

func init() {
	rootCmd.AddCommand(plotSweepCmd)

	addInputFlags(plotSweepCmd)
	plotSweepCmd.Flags().Bool("plot-pts", false, "plot every transfer and one chart per category")
}

func runPlotSweep(cfg *config.SweepPlotConfig, logger logging.Logger) error {
	sweep, err := results.LoadSweep(cfg.InputDir, cfg.Rules, results.SweepTolerance, logger)
	if err != nil {
		return fmt.Errorf("failed to load sweep: %w", err)
	}
	if len(sweep.Points) == 0 {
		return fmt.Errorf("no sweep points found in %s", cfg.InputDir)
	}
	logger.Infof("Loaded %d block sizes from %d to %d bytes",
		len(sweep.Points), sweep.BlockSizesBytes[0], sweep.BlockSizesBytes[len(sweep.BlockSizesBytes)-1])
	if cfg.OutputPrefix == "" {
		logger.Info("No output file prefix given, nothing written")
		return nil
	}
	opts := plotting.SweepOptions{Title: cfg.Title, YLim: cfg.YLim, Points: cfg.PlotPoints}
	if err := plotting.WriteSweep(sweep, cfg.Rules, opts, plotting.Files(cfg.OutputPrefix)); err != nil {
		return fmt.Errorf("failed to write sweep plots: %w", err)
	}
	return nil
}
