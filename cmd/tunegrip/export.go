package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tunegrip/internal/config"
	"tunegrip/internal/library"
	"tunegrip/internal/logging"
)

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	if err := logging.Init(config.Dir(), cfg.LogLevel); err != nil {
		color.Yellow("warning: %v", err)
	}
	defer logging.Close()

	db, err := library.OpenSQLite(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	tracks, err := db.Tracks(ctx)
	if err != nil {
		return fmt.Errorf("export from %s: %w", cfg.Database, err)
	}
	if err := library.SaveFile(args[0], tracks); err != nil {
		return err
	}

	logging.Info("library exported", "database", cfg.Database, "file", args[0], "tracks", len(tracks))
	color.Green("exported %d tracks to %s", len(tracks), args[0])
	return nil
}
