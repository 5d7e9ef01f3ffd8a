// Package sweeprun runs the characterization harness once per block size,
// rebuilding it for every point and collecting the reports into a sweep directory.
package sweeprun

import (
	"errors"
	"fmt"
)

// Config describes a block size sweep.
type Config struct {
	// Name is the sweep output directory. It must not exist yet.
	Name string

	// Block sizes are given in units of UnitSize bytes. BlockSizeEnd is exclusive.
	BlockSizeStart int
	BlockSizeEnd   int
	BlockSizeStep  int
	UnitSize       int

	// TargetBytes is the minimum number of bytes sent at every point.
	TargetBytes int64
	// ReportPeriod is the number of points between progress notifications.
	ReportPeriod int

	FIFOTests   bool
	MemoryTests bool

	BuildScript   string
	Binary        string
	CollectScript string
	// ReportPrefix is the file name prefix of the reports within a point directory.
	ReportPrefix string
}

// DefaultConfig returns the sweep used to characterize a machine: blocks from
// 32 bytes to 16 KiB in 32 byte steps of complex float units.
func DefaultConfig() Config {
	return Config{
		BlockSizeStart: 4,
		BlockSizeEnd:   2049,
		BlockSizeStep:  4,
		UnitSize:       8,
		TargetBytes:    1_000_000_000,
		ReportPeriod:   20,
		FIFOTests:      true,
		MemoryTests:    false,
		BuildScript:    "./build.sh",
		Binary:         "./commCharaterize",
		CollectScript:  "./collectResults.sh",
		ReportPrefix:   "report",
	}
}

// Validate checks that the sweep is well formed.
func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("sweep name is required")
	case c.BlockSizeStart <= 0:
		return fmt.Errorf("block size start must be positive, got %d", c.BlockSizeStart)
	case c.BlockSizeEnd <= c.BlockSizeStart:
		return fmt.Errorf("block size end %d must be greater than start %d", c.BlockSizeEnd, c.BlockSizeStart)
	case c.BlockSizeStep <= 0:
		return fmt.Errorf("block size step must be positive, got %d", c.BlockSizeStep)
	case c.UnitSize <= 0:
		return fmt.Errorf("unit size must be positive, got %d", c.UnitSize)
	case c.TargetBytes <= 0:
		return fmt.Errorf("target bytes must be positive, got %d", c.TargetBytes)
	case c.ReportPeriod <= 0:
		return fmt.Errorf("report period must be positive, got %d", c.ReportPeriod)
	case !c.FIFOTests && !c.MemoryTests:
		return errors.New("at least one of the FIFO and memory tests must be enabled")
	case c.BuildScript == "" || c.Binary == "" || c.CollectScript == "":
		return errors.New("build script, binary and collect script are required")
	case c.ReportPrefix == "":
		return errors.New("report prefix is required")
	}
	return nil
}

// Point is one block size of the sweep.
type Point struct {
	// BlockSize is in units.
	BlockSize      int
	BlockSizeBytes int
	// Transactions is the number of blocks sent to move at least TargetBytes.
	Transactions int64
	BytesSent    int64
}

// Plan returns the points of the sweep in execution order.
func Plan(c Config) []Point {
	var points []Point
	for blkSize := c.BlockSizeStart; blkSize < c.BlockSizeEnd; blkSize += c.BlockSizeStep {
		blkSizeBytes := blkSize * c.UnitSize
		transactions := (c.TargetBytes + int64(blkSizeBytes) - 1) / int64(blkSizeBytes)
		points = append(points, Point{
			BlockSize:      blkSize,
			BlockSizeBytes: blkSizeBytes,
			Transactions:   transactions,
			BytesSent:      transactions * int64(blkSizeBytes),
		})
	}
	return points
}
