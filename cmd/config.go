// Package cmd implements the command-line interface for clippanel.
package cmd

import "github.com/spf13/cobra"

// Config holds all application configuration
type Config struct {
	Verbose bool
	LogDir  string
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command) *Config {
	return &Config{
		Verbose: getBoolFlag(cmd, "verbose"),
		LogDir:  getStringFlag(cmd, "log-dir"),
	}
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

// getStringFlag retrieves a string flag, checking both local and persistent flags
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}
