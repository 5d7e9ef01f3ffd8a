// Package config holds the options of the commchar commands and loads them
// from viper and from cue category files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cyarp/commchar/plotting"
	"github.com/cyarp/commchar/results"
)

// PlotConfig holds the options of a single results directory plot.
type PlotConfig struct {
	// InputDir is the directory containing the report files.
	InputDir string
	// OutputPrefix is the prefix of the written files. Nothing is written if it is empty.
	OutputPrefix string
	YLim         plotting.Range
	Title        string
	// AvgLines draws the per category average rate on top of the bars.
	AvgLines bool
	Rules    results.Rules
}

// SweepPlotConfig holds the options of a block size sweep plot.
type SweepPlotConfig struct {
	// InputDir is the sweep root containing one blkSizeBytes directory per point.
	InputDir     string
	OutputPrefix string
	YLim         plotting.Range
	Title        string
	// PlotPoints also plots the individual transfers and the per category subplots.
	PlotPoints bool
	Rules      results.Rules
}

// ExportConfig holds the options of a database export.
type ExportConfig struct {
	InputDir string
	// Sweep treats InputDir as a sweep root instead of a single results directory.
	Sweep  bool
	Driver string
	DSN    string
	// Name identifies the run in the database. Defaults to InputDir.
	Name  string
	Rules results.Rules
}

func checkDir(dir string) error {
	if dir == "" {
		return errors.New("input directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input directory %s is not a directory", dir)
	}
	return nil
}

// Validate checks the plot options.
func (c *PlotConfig) Validate() error {
	if err := checkDir(c.InputDir); err != nil {
		return err
	}
	return c.YLim.Validate()
}

// Validate checks the sweep plot options.
func (c *SweepPlotConfig) Validate() error {
	if err := checkDir(c.InputDir); err != nil {
		return err
	}
	return c.YLim.Validate()
}

// Validate checks the export options.
func (c *ExportConfig) Validate() error {
	if err := checkDir(c.InputDir); err != nil {
		return err
	}
	if c.DSN == "" {
		return errors.New("database is required")
	}
	return nil
}

// ParseRange parses a y limit given as exactly two numbers, lowest first.
// An empty slice gives the automatic range.
func ParseRange(vals []string) (plotting.Range, error) {
	if len(vals) == 0 {
		return plotting.Range{}, nil
	}
	if len(vals) != 2 {
		return plotting.Range{}, fmt.Errorf("y limit needs two values, got %d", len(vals))
	}
	low, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return plotting.Range{}, fmt.Errorf("y limit: %w", err)
	}
	high, err := strconv.ParseFloat(vals[1], 64)
	if err != nil {
		return plotting.Range{}, fmt.Errorf("y limit: %w", err)
	}
	r := plotting.Range{Low: low, High: high}
	return r, r.Validate()
}
