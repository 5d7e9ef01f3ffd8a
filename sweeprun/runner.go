package sweeprun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cyarp/commchar/logging"
	"github.com/cyarp/commchar/notify"
	"github.com/cyarp/commchar/results"
	"golang.org/x/time/rate"
)

// ErrOutputExists is returned when the sweep directory already exists.
var ErrOutputExists = errors.New("sweep output already exists")

// Runner executes a sweep.
type Runner struct {
	Config   Config
	Exec     Executor
	Notifier notify.Notifier
	Logger   logging.Logger
	// Host names the machine in notifications.
	Host string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func boolEnv(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Run creates the sweep directory and, for every point of the plan, rebuilds
// the harness, runs it into blkSizeBytes<N>/<prefix> and collects the build
// artifacts. A progress notification is sent for the first point and then
// every ReportPeriod points. The first failing command stops the sweep after
// a failure notification.
func (r *Runner) Run(ctx context.Context) error {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Name); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, cfg.Name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.Mkdir(cfg.Name, 0o755); err != nil {
		return fmt.Errorf("failed to create sweep directory: %w", err)
	}

	progress := rate.Sometimes{Every: cfg.ReportPeriod}
	var start time.Time
	for _, p := range Plan(cfg) {
		start = r.now()
		progress.Do(func() {
			r.Notifier.Notify(ctx, fmt.Sprintf(
				"*Laminar FIFO Characterize Starting*\nBlock Size: %d\nBlock Transactions: %d\nBytes Sent: %d\nHost: %s\nTime: %s",
				p.BlockSizeBytes, p.Transactions, p.BytesSent, r.Host, start.Format(time.RFC3339)))
		})

		dir := filepath.Join(cfg.Name, results.SweepDirName(p.BlockSizeBytes))
		env := []string{
			"FIFO_BLK_SIZE_CPLX_FLOAT=" + strconv.Itoa(p.BlockSize),
			"TRANSACTIONS_BLKS=" + strconv.FormatInt(p.Transactions, 10),
			"FIFO_TESTS=" + boolEnv(cfg.FIFOTests),
			"MEM_TESTS=" + boolEnv(cfg.MemoryTests),
		}
		if err := r.step(ctx, start, cfg.BuildScript, env); err != nil {
			return err
		}
		if err := os.Mkdir(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create point directory: %w", err)
		}
		if err := r.step(ctx, start, cfg.Binary+" "+filepath.Join(dir, cfg.ReportPrefix), nil); err != nil {
			return err
		}
		if err := r.step(ctx, start, cfg.CollectScript+" "+dir, nil); err != nil {
			return err
		}
		r.Logger.Infof("Finished block size %d bytes", p.BlockSizeBytes)
	}

	r.Notifier.Notify(ctx, fmt.Sprintf("*Laminar FIFO Characterize Finishing :white_check_mark:*\nHost: %s\nTime: %s",
		r.Host, start.Format(time.RFC3339)))
	return nil
}

// step runs one command and notifies about a failure.
func (r *Runner) step(ctx context.Context, start time.Time, cmd string, env []string) error {
	line := commandLine(cmd, env)
	r.Logger.Infof("Running: %s", line)
	err := r.Exec.Run(ctx, cmd, env)
	if err == nil {
		return nil
	}
	code := -1
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}
	r.Notifier.Notify(ctx, fmt.Sprintf("*Laminar FIFO Characterize Failed:x:*\nCMD: %s\nRtnCode: %d\nHost: %s\nTime: %s",
		line, code, r.Host, start.Format(time.RFC3339)))
	return fmt.Errorf("laminar FIFO characterize failed: %w", err)
}
