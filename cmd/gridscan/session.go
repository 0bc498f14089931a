package main

import (
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive session over one world",
	Long: `session reads one command per line from stdin and runs it against the
same world, so tiles disclosed by one scan are reused by the next. Type
help for the command list and quit to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		a, err := newApp(cmd.Context())
		defer func() {
			if closeErr := a.Close(); err == nil {
				err = closeErr
			}
		}()
		if err != nil {
			return err
		}

		a.log.Info().Int("size", a.world.Size()).Msg("Session started")
		err = a.session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		a.log.Info().Int("discovered", a.world.Discovered()).Msg("Session ended")
		return err
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
