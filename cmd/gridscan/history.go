package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gridscout/scanner/internal/database"
	gormstorage "github.com/gridscout/scanner/internal/storage/gorm"
	"github.com/gridscout/scanner/pkg/core"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var dumpsDir string

var historyCmd = &cobra.Command{
	Use:   "history [n]",
	Short: "List recorded scans",
	Long: `history lists the last n scans of the configured storage backend. With
--dumps it reads every SQLite dump (*.db) in a directory instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if dumpsDir != "" {
			return listDumps(cmd.OutOrStdout(), dumpsDir)
		}

		a, err := newApp(cmd.Context())
		defer func() {
			if closeErr := a.Close(); err == nil {
				err = closeErr
			}
		}()
		if err != nil {
			return err
		}

		line := "history"
		if len(args) == 1 {
			line += " " + args[0]
		}
		return a.run(cmd.OutOrStdout(), line)
	},
}

// listDumps prints the scans stored in each SQLite dump in dir.
func listDumps(out io.Writer, dir string) error {
	paths, err := database.GetBackupDBPaths(dir)
	if err != nil {
		return fmt.Errorf("failed to list dumps: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(out, "no dumps in %s\n", dir)
		return nil
	}

	var errs error
	for _, path := range paths {
		scans, err := readDump(path)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprintf(out, "%s: %d scans\n", filepath.Base(path), len(scans))
		for _, r := range scans {
			fmt.Fprintf(out, "  #%d %s %s from %s: %s\n", r.ID, r.Shape, r.Want, r.Agent, outcome(r))
		}
	}
	return errs
}

func readDump(path string) ([]core.ScanRecord, error) {
	db, err := database.GetSqliteDB(path)
	if err != nil {
		return nil, err
	}
	b := gormstorage.New(gormstorage.Dependencies{DB: db, Logger: zerolog.Nop()}, gormstorage.Config{})
	defer b.Close()

	if err := b.Init(); err != nil {
		return nil, err
	}
	return b.Scans()
}

func outcome(r core.ScanRecord) string {
	switch {
	case r.ErrorKind != "":
		return r.ErrorKind
	case r.Result != nil:
		return fmt.Sprintf("x%d at %s", r.Result.Quantity, r.Result.Coordinate)
	default:
		return "none"
	}
}

func init() {
	historyCmd.Flags().StringVar(&dumpsDir, "dumps", "", "read SQLite dumps from this directory instead of the storage backend")
	rootCmd.AddCommand(historyCmd)
}
