// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/profit-report/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [logs...]",
	Short: "Print the best profit reported in each solver log",
	Long: `Extract reads each log line by line and prints the trimmed text after
the first "the best profit is =" on every line that contains it. Values
are printed one per line, in file order, with no headers.

With no arguments the configured log file is read (default log.txt).
Use "-" to read standard input. A log that cannot be opened stops the
run with a non-zero exit status.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("marker", extract.Marker, "phrase that precedes the value on a report line")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.LogFile}
	}

	e := extract.New(
		extract.WithMarker(cfg.Marker),
		extract.WithStdin(cmd.InOrStdin()),
		extract.WithLogger(logger.Named("extract")),
	)

	_, err := e.Files(paths, cmd.OutOrStdout())
	return err
}
