package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cyarp/commchar/internal/config"
	"github.com/cyarp/commchar/logging"
	"github.com/cyarp/commchar/results"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the rate statistics of a single characterization run.",
	Long: `The summary command prints one line per category of the input directory:
the number of transfers, the time weighted average rate, the minimum, maximum and
median rate, the interquartile range and the standard deviation. For FIFO categories,
the client side average rate is printed as well.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.NewPlotViper()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		res, err := results.Load(cfg.InputDir, cfg.Rules)
		if err != nil {
			return fmt.Errorf("failed to load results: %w", err)
		}
		if _, err := results.Check(res, results.DefaultTolerance, logging.New("summary")); err != nil {
			return err
		}
		return writeSummary(cmd.OutOrStdout(), res, cfg.Rules)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringP("input-dir", "i", "", "directory containing the results")
}

func writeSummary(w io.Writer, res results.Results, rules results.Rules) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tKind\tTrials\tAvg Gbps\tClient Avg Gbps\tMin Gbps\tMax Gbps\tMedian Gbps\tIQR Gbps\tStdDev Gbps")
	for _, r := range res.Ordered(rules) {
		if r.Len() == 0 {
			fmt.Fprintf(tw, "%s\t%v\t0\t-\t-\t-\t-\t-\t-\t-\n", r.Name(), r.Kind())
			continue
		}
		s, err := results.Summarize(r)
		if err != nil {
			return err
		}
		spread, err := results.RateSpread(r)
		if err != nil {
			return err
		}
		client := "-"
		if fifo, ok := r.(*results.FIFOResult); ok {
			avg, err := results.ClientAvgRate(fifo)
			if err != nil {
				return err
			}
			client = fmt.Sprintf("%.2f", avg)
		}
		fmt.Fprintf(tw, "%s\t%v\t%d\t%.2f\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			s.Name, s.Kind, s.Trials, s.AvgGbps, client, s.MinGbps, s.MaxGbps,
			spread.MedianGbps, spread.IQRGbps, spread.StdDevGbps)
	}
	return tw.Flush()
}
