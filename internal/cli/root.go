// Package cli implements the commchar command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cyarp/commchar/internal/profiling"
	"github.com/cyarp/commchar/logging"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var (
	cfgFile      string
	stopProfiles func() error

	rootCmd = &cobra.Command{
		Use:   "commchar",
		Short: "A command-line utility for communication characterization results.",
		Long: `commchar plots, summarizes and exports the reports written by the
Laminar communication characterization harness.

Use 'commchar plot' for a single results directory and 'commchar plot-sweep'
for a block size sweep. 'commchar run-sweep' runs the harness once per block size
and collects the reports into a sweep directory.`,
		SilenceUsage:       true,
		PersistentPreRunE:  startProfiling,
		PersistentPostRunE: stopProfiling,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// post run hooks are skipped when a command fails
		_ = stopProfiling(rootCmd, nil)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.commchar.yaml)")

	rootCmd.PersistentFlags().String("log-level", "info", "sets the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSlice("log-pkgs", []string{}, "set the log level on a per-package basis.")
	rootCmd.PersistentFlags().String("categories", "", "cue file with the category table (defaults to the built-in table)")

	rootCmd.PersistentFlags().String("cpu-profile", "", "write a cpu profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a memory profile to this file")
	rootCmd.PersistentFlags().String("trace", "", "write an execution trace to this file")
	rootCmd.PersistentFlags().String("fgprof-profile", "", "write an fgprof profile to this file")

	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".commchar" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".commchar")
	}

	viper.SetEnvPrefix("commchar")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	cobra.CheckErr(logging.SetLogLevel(viper.GetString("log-level")))

	for _, packageLevel := range viper.GetStringSlice("log-pkgs") {
		parts := strings.Split(packageLevel, ":")
		if len(parts) != 2 {
			cobra.CheckErr("log-pkgs flag must be a comma-separated list of package:level strings")
		}
		cobra.CheckErr(logging.SetPackageLogLevel(parts[0], parts[1]))
	}
}

// bindFlags binds the local flags of the command being run. Commands share
// key names, so binding happens when the command runs rather than in init.
func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.LocalFlags())
}

func startProfiling(_ *cobra.Command, _ []string) (err error) {
	paths := profiling.Paths{
		CPU:    viper.GetString("cpu-profile"),
		Mem:    viper.GetString("mem-profile"),
		Trace:  viper.GetString("trace"),
		Fgprof: viper.GetString("fgprof-profile"),
	}
	if !paths.Enabled() {
		return nil
	}
	stopProfiles, err = profiling.Start(paths)
	if err != nil {
		return fmt.Errorf("failed to start profilers: %w", err)
	}
	return nil
}

func stopProfiling(_ *cobra.Command, _ []string) error {
	if stopProfiles == nil {
		return nil
	}
	stop := stopProfiles
	stopProfiles = nil
	if err := stop(); err != nil {
		return fmt.Errorf("failed to stop profilers: %w", err)
	}
	return nil
}
