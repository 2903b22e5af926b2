// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultLogFile is the log read by the extract command when no path is given.
const DefaultLogFile = "log.txt"

// Config holds the settings resolved from flags, environment variables and
// the config file. Field tags match the config file keys.
type Config struct {
	// LogFile is the solver log to scan when no file arguments are passed.
	LogFile string `json:"log_file" yaml:"log_file" mapstructure:"log_file"`

	// Marker is the phrase that precedes the value on a report line
	// (default "the best profit is =").
	Marker string `json:"marker" yaml:"marker" mapstructure:"marker"`

	// Verbose enables debug diagnostics on stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}
