package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tunegrip/internal/config"
	"tunegrip/internal/library"
	"tunegrip/internal/logging"
)

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	if cfg.Database == "" {
		cfg.Database = config.DefaultConfig().Database
	}
	if err := logging.Init(config.Dir(), cfg.LogLevel); err != nil {
		color.Yellow("warning: %v", err)
	}
	defer logging.Close()

	tracks, err := library.LoadFile(args[0])
	if err != nil {
		return err
	}

	db, err := library.OpenSQLite(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Import(ctx, tracks); err != nil {
		return fmt.Errorf("import into %s: %w", cfg.Database, err)
	}
	count, err := db.Count(ctx)
	if err != nil {
		return err
	}

	logging.Info("library imported", "file", args[0], "database", cfg.Database, "imported", len(tracks), "total", count)
	color.Green("imported %d tracks into %s (%d total)", len(tracks), cfg.Database, count)
	return nil
}
