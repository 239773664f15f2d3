// Package cli implements the command-line interface for cubetimer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubetimer/internal/config"
	"github.com/SeamusWaldron/cubetimer/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	logFile string
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubetimer",
	Short: "Speedcubing timer",
	Long: `cubetimer - a terminal speedcubing timer.

Generates WCA-style random move scrambles, times solves from the keyboard
and keeps session history with averages in a local SQLite database.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubetimer/cubetimer.db)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads configuration and builds the logger. Flags win over the
// environment.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	return initLogger(cfg.Log.File)
}

func initLogger(file string) error {
	l, err := logging.New(cfg.Log.Level, file)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	return nil
}
