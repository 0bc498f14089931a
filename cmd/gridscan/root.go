package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	configDir  string
	worldFile  string
	logLevel   string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "gridscan",
	Short: "Scan a grid world for resources",
	Long: `gridscan drives a robot over a square grid world and scans shaped
regions around it for the richest tile of a given content kind. Unknown
tiles cost energy to disclose; tiles already known are reused for free.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding gridscan.cfg.json")
	rootCmd.PersistentFlags().StringVar(&worldFile, "world", "", "world description file (default is world.file from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error), overrides logLevel from config")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "also write logs to stderr")
	rootCmd.SetVersionTemplate("gridscan {{.Version}} (built " + BuildDate + ")\n")
}
