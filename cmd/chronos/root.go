package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/chronos"
	"github.com/aretw0/chronos/pkg/adapters/fs"
)

var (
	verbose  bool
	notePath string
	readOnly bool
	findUp   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "An hour-by-hour journal anchored to a clock face",
	Long: `Chronos keeps one note per hour of the day in a local JSON file.
Run "chronos clock" for the interactive dial, or use the other commands to
read and write notes from scripts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notePath, "file", "f", fs.DefaultFilename, "Notes file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write the notes file")
	rootCmd.PersistentFlags().BoolVar(&findUp, "find", false, "Search parent directories for the notes file")
}

// resolveNotesPath applies --find to --file.
func resolveNotesPath() string {
	if !findUp || filepath.IsAbs(notePath) {
		return notePath
	}
	cwd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}
	found, err := chronos.FindNotesFile(cwd, notePath)
	if err != nil {
		slog.Debug("notes file not found upwards, using working directory", "name", notePath)
		return notePath
	}
	return found
}

// openStore loads the store configured by the global flags.
func openStore() *chronos.Store {
	store, err := chronos.New(resolveNotesPath(),
		chronos.WithLogger(slog.Default()),
		chronos.WithReadOnly(readOnly),
		chronos.WithWatcherErrorHandler(func(err error) {
			slog.Error("watcher failed", "error", err)
		}),
	)
	if err != nil {
		fatal("Failed to open notes", err)
	}
	return store
}
