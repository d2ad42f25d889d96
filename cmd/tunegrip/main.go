package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	libraryPath string
	backend     string
	noColor     bool
	showPaths   bool
	forceInit   bool
)

var rootCmd = &cobra.Command{
	Use:   "tunegrip",
	Short: "Search a music library from the terminal",
	Long: "tunegrip searches a music library as you type and shows matching tracks " +
		"grouped by album, artist or composer.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var queryCmd = &cobra.Command{
	Use:   "query <terms...>",
	Short: "Print the results of one search and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

var importCmd = &cobra.Command{
	Use:   "import <library.yaml>",
	Short: "Import a YAML library into the SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <library.yaml>",
	Short: "Export the SQLite database to a YAML library",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tunegrip %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ./.tunegrip.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", "", "YAML library file, overrides the config")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "library backend: memory or sqlite")
	queryCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	queryCmd.Flags().BoolVar(&showPaths, "paths", false, "show the result path of every group and track")
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(queryCmd, importCmd, exportCmd, configCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}
