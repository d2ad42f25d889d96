package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tunegrip/internal/config"
)

// initConfig writes the default config to path, or to the user config file
// when path is empty. An existing file is kept unless force is set.
func initConfig(path string, force bool) (string, error) {
	svc := config.NewConfigServiceWithBus(nil, path)
	if _, err := os.Stat(svc.Path()); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return "", err
	}
	return svc.Path(), nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := initConfig(configPath, forceInit)
	if err != nil {
		return err
	}
	color.Green("wrote %s", path)
	return nil
}
