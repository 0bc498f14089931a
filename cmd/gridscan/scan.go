package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <shape:extent> <kind>",
	Short: "Find the richest tile of a kind inside a shape around the robot",
	Example: `  gridscan scan area:5 coin --world world.yaml
  gridscan scan diagonal-star:2 tree`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, "scan "+strings.Join(args, " "))
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <shape:extent>",
	Short: "Show the cells and energy a scan would cost, without scanning",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, "plan "+args[0])
	},
}

// runOnce sets up the app, runs a single session command and tears down.
func runOnce(cmd *cobra.Command, line string) (err error) {
	a, err := newApp(cmd.Context())
	defer func() {
		if closeErr := a.Close(); err == nil {
			err = closeErr
		}
	}()
	if err != nil {
		return err
	}
	return a.run(cmd.OutOrStdout(), line)
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(planCmd)
}
