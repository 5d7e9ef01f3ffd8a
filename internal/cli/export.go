package cli

import (
	"context"
	"fmt"

	"github.com/cyarp/commchar/internal/config"
	"github.com/cyarp/commchar/logging"
	"github.com/cyarp/commchar/results"
	"github.com/cyarp/commchar/store"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Store results in a SQL database.",
	Long: `The export command loads a results directory, or a sweep with --sweep, and stores
the per category summaries and every transfer rate under a new run in a sqlite3
or mysql database. Missing tables are created.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.NewExportViper()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		return runExport(cmd.Context(), cfg, logging.New("export"))
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("input-dir", "i", "", "directory containing the results")
	exportCmd.Flags().Bool("sweep", false, "the input directory is a block size sweep")
	exportCmd.Flags().String("db-driver", "sqlite3", "database driver (sqlite3 or mysql)")
	exportCmd.Flags().String("db", "", "data source name, e.g. results.db or user:pass@/commchar")
	exportCmd.Flags().String("name", "", "name of the run in the database (defaults to the input directory)")
}

func runExport(ctx context.Context, cfg *config.ExportConfig, logger logging.Logger) (err error) {
	db, err := store.OpenSQL(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	var runID int64
	if cfg.Sweep {
		sweep, err := results.LoadSweep(cfg.InputDir, cfg.Rules, results.SweepTolerance, logger)
		if err != nil {
			return fmt.Errorf("failed to load sweep: %w", err)
		}
		if runID, err = db.InsertSweep(ctx, cfg.Name, sweep); err != nil {
			return fmt.Errorf("failed to store sweep: %w", err)
		}
	} else {
		res, err := results.Load(cfg.InputDir, cfg.Rules)
		if err != nil {
			return fmt.Errorf("failed to load results: %w", err)
		}
		if _, err := results.Check(res, results.DefaultTolerance, logger); err != nil {
			return err
		}
		if runID, err = db.InsertResults(ctx, cfg.Name, res); err != nil {
			return fmt.Errorf("failed to store results: %w", err)
		}
	}
	n, err := db.CountRows(ctx, runID)
	if err != nil {
		return err
	}
	logger.Infof("Stored run %d (%s) with %d rows", runID, cfg.Name, n)
	return nil
}
