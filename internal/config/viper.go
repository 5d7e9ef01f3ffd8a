package config

import (
	"github.com/cyarp/commchar/plotting"
	"github.com/cyarp/commchar/results"
	"github.com/cyarp/commchar/sweeprun"
	"github.com/spf13/viper"
)

// rules returns the category table named by the "categories" key,
// or the default table if no file is given.
func rules() (results.Rules, error) {
	if file := viper.GetString("categories"); file != "" {
		return LoadRules(file)
	}
	return results.DefaultRules(), nil
}

// NewPlotViper returns the plot options stored in viper.
func NewPlotViper() (*PlotConfig, error) {
	ylim, err := ParseRange(viper.GetStringSlice("ylim"))
	if err != nil {
		return nil, err
	}
	r, err := rules()
	if err != nil {
		return nil, err
	}
	cfg := &PlotConfig{
		InputDir:     viper.GetString("input-dir"),
		OutputPrefix: viper.GetString("output-file-prefix"),
		YLim:         ylim,
		Title:        viper.GetString("title"),
		AvgLines:     viper.GetBool("avg-lines"),
		Rules:        r,
	}
	if cfg.Title == "" {
		cfg.Title = plotting.DefaultTitle
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewSweepPlotViper returns the sweep plot options stored in viper.
func NewSweepPlotViper() (*SweepPlotConfig, error) {
	ylim, err := ParseRange(viper.GetStringSlice("ylim"))
	if err != nil {
		return nil, err
	}
	r, err := rules()
	if err != nil {
		return nil, err
	}
	cfg := &SweepPlotConfig{
		InputDir:     viper.GetString("input-dir"),
		OutputPrefix: viper.GetString("output-file-prefix"),
		YLim:         ylim,
		Title:        viper.GetString("title"),
		PlotPoints:   viper.GetBool("plot-pts"),
		Rules:        r,
	}
	if cfg.Title == "" {
		cfg.Title = plotting.DefaultSweepTitle
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewExportViper returns the export options stored in viper.
func NewExportViper() (*ExportConfig, error) {
	r, err := rules()
	if err != nil {
		return nil, err
	}
	cfg := &ExportConfig{
		InputDir: viper.GetString("input-dir"),
		Sweep:    viper.GetBool("sweep"),
		Driver:   viper.GetString("db-driver"),
		DSN:      viper.GetString("db"),
		Name:     viper.GetString("name"),
		Rules:    r,
	}
	if cfg.Name == "" {
		cfg.Name = cfg.InputDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewRunViper returns the sweep run options stored in viper. Unset keys keep
// the values of sweeprun.DefaultConfig.
func NewRunViper() (sweeprun.Config, error) {
	cfg := sweeprun.DefaultConfig()
	cfg.Name = viper.GetString("name")
	setInt := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	setString := func(key string, dst *string) {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	setBool := func(key string, dst *bool) {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}
	setInt("blk-size-start", &cfg.BlockSizeStart)
	setInt("blk-size-end", &cfg.BlockSizeEnd)
	setInt("blk-size-step", &cfg.BlockSizeStep)
	setInt("unit-size", &cfg.UnitSize)
	setInt("report-period", &cfg.ReportPeriod)
	if viper.IsSet("target-bytes") {
		cfg.TargetBytes = viper.GetInt64("target-bytes")
	}
	setBool("fifo-tests", &cfg.FIFOTests)
	setBool("mem-tests", &cfg.MemoryTests)
	setString("build-script", &cfg.BuildScript)
	setString("binary", &cfg.Binary)
	setString("collect-script", &cfg.CollectScript)
	setString("report-prefix", &cfg.ReportPrefix)
	return cfg, cfg.Validate()
}
