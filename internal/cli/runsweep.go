package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cyarp/commchar/internal/config"
	"github.com/cyarp/commchar/logging"
	"github.com/cyarp/commchar/notify"
	"github.com/cyarp/commchar/sweeprun"
	"github.com/spf13/cobra"
)

var runSweepCmd = &cobra.Command{
	Use:   "run-sweep",
	Short: "Run the characterization harness over a range of block sizes.",
	Long: `The run-sweep command rebuilds and runs the characterization harness once per
block size and stores the reports of each point in <name>/blkSizeBytes<N>.
The sweep directory must not exist yet.

Progress and failures are posted to the Slack webhook in $SLACK_API_URL.
The sweep stops at the first failing command.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.NewRunViper()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runSweep(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(runSweepCmd)

	def := sweeprun.DefaultConfig()
	runSweepCmd.Flags().String("name", "", "name of the sweep output directory")
	runSweepCmd.Flags().Int("blk-size-start", def.BlockSizeStart, "first block size in units")
	runSweepCmd.Flags().Int("blk-size-end", def.BlockSizeEnd, "end of the block size range in units (exclusive)")
	runSweepCmd.Flags().Int("blk-size-step", def.BlockSizeStep, "block size step in units")
	runSweepCmd.Flags().Int("unit-size", def.UnitSize, "size of a unit in bytes")
	runSweepCmd.Flags().Int64("target-bytes", def.TargetBytes, "minimum number of bytes sent at every block size")
	runSweepCmd.Flags().Int("report-period", def.ReportPeriod, "number of block sizes between progress notifications")
	runSweepCmd.Flags().Bool("fifo-tests", def.FIFOTests, "run the FIFO tests")
	runSweepCmd.Flags().Bool("mem-tests", def.MemoryTests, "run the memory tests")
	runSweepCmd.Flags().String("build-script", def.BuildScript, "script that builds the harness")
	runSweepCmd.Flags().String("binary", def.Binary, "harness binary")
	runSweepCmd.Flags().String("collect-script", def.CollectScript, "script that collects the build artifacts into a point directory")
	runSweepCmd.Flags().String("report-prefix", def.ReportPrefix, "file name prefix of the reports")
}

func runSweep(ctx context.Context, cfg sweeprun.Config) error {
	logger := logging.New("runsweep")
	r := &sweeprun.Runner{
		Config:   cfg,
		Exec:     sweeprun.ShellExecutor{Stdout: os.Stdout, Stderr: os.Stderr},
		Notifier: notify.FromEnv(logging.New("notify")),
		Logger:   logger,
		Host:     sweeprun.DescribeHost(ctx),
	}
	return r.Run(ctx)
}
