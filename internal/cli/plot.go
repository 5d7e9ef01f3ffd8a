package cli

import (
	"fmt"

	"github.com/cyarp/commchar/internal/config"
	"github.com/cyarp/commchar/logging"
	"github.com/cyarp/commchar/plotting"
	"github.com/cyarp/commchar/results"
	"github.com/spf13/cobra"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the results of a single characterization run.",
	Long: `The plot command reads every report in the input directory, checks that the
server and client rates of each FIFO transfer agree, and draws one bar per
transfer, grouped by category.

The chart is written to <output-file-prefix>_comm.pdf. Without an output prefix,
the results are only checked and summarized in the log.`,
	PreRunE: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.NewPlotViper()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		return runPlot(cfg, logging.New("plot"))
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	addInputFlags(plotCmd)
	plotCmd.Flags().Bool("avg-lines", false, "draw the average rate of each category")
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input-dir", "i", "", "directory containing the results")
	cmd.Flags().StringP("output-file-prefix", "o", "", "prefix of the output files (nothing is written if omitted)")
	cmd.Flags().StringSlice("ylim", nil, "y axis range as LOW,HIGH, e.g. --ylim 0,10 (two values, comma separated)")
	cmd.Flags().String("title", "", "title of the plot")
}

func runPlot(cfg *config.PlotConfig, logger logging.Logger) error {
	res, err := results.Load(cfg.InputDir, cfg.Rules)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	if len(res) == 0 {
		return fmt.Errorf("no results found in %s", cfg.InputDir)
	}
	if _, err := results.Check(res, results.DefaultTolerance, logger); err != nil {
		return err
	}
	for _, r := range res.Ordered(cfg.Rules) {
		s, err := results.Summarize(r)
		if err != nil {
			logger.Warnf("%s: %v", r.Name(), err)
			continue
		}
		logger.Infof("%s: %d trials, avg %.2f Gbps", s.Name, s.Trials, s.AvgGbps)
	}
	if cfg.OutputPrefix == "" {
		logger.Info("No output file prefix given, nothing written")
		return nil
	}
	opts := plotting.BarOptions{Title: cfg.Title, YLim: cfg.YLim, AvgLines: cfg.AvgLines}
	files := plotting.Files(cfg.OutputPrefix)
	if err := plotting.WriteBarChart(res, cfg.Rules, opts, files); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	logger.Infof("Wrote %s", files.Comm())
	return nil
}
