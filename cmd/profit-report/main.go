// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profit-report CLI.
// profit-report reads knapsack solver logs and prints the best profit
// each run reported.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/profit-report/internal/extract"
	"github.com/pdiddy/profit-report/internal/logging"
	"github.com/pdiddy/profit-report/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from --verbose before any subcommand runs.
var logger = zap.NewNop()

// configErr records a config file that was named but could not be read.
var configErr error

// rootCmd is the base command for the profit-report CLI.
var rootCmd = &cobra.Command{
	Use:   "profit-report",
	Short: "Extract best-profit values from solver logs",
	Long: `profit-report scans the logs written by the knapsack heuristic solvers
(hill climbing, tabu search) and prints the value reported after
"the best profit is =" on each matching line, one per line, in file order.

Lines without the marker, and marker lines with nothing after it, produce
no output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./profit-report.yaml or ~/.config/profit-report/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "write diagnostics to stderr")
}

// bindConfig registers defaults and flag bindings with viper. It runs after
// every subcommand has declared its flags.
func bindConfig() {
	viper.SetDefault("log_file", types.DefaultLogFile)
	viper.SetDefault("marker", extract.Marker)
	viper.SetDefault("verbose", false)

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("marker", extractCmd.Flags().Lookup("marker"))
}

func initConfig() {
	configErr = nil

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profit-report")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profit-report"))
		}
	}

	viper.SetEnvPrefix("PROFIT_REPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// loadConfig returns the effective settings. Flags bound to viper take
// precedence over environment variables, then the config file, then defaults.
func loadConfig() types.Config {
	return types.Config{
		LogFile: viper.GetString("log_file"),
		Marker:  viper.GetString("marker"),
		Verbose: viper.GetBool("verbose"),
	}
}

func main() {
	bindConfig()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
