// Package cli implements the command-line interface for cubestate.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubestate/internal/config"
	"github.com/SeamusWaldron/cubestate/internal/log"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile   string
	dbPath    string
	statePath string
	logLevel  string
	noColor   bool

	cfg      config.Config
	closeLog func() error
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubestate",
	Short: "3x3 cube state engine",
	Long: `cubestate - A move-by-move 3x3 cube simulator with undo.

Turn faces, shuffle, and step back through every committed move. Sessions
and their full snapshot history are stored in SQLite, so a game can be
resumed from any shell.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog == nil {
			return nil
		}
		err := closeLog()
		closeLog = nil
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ~/.cubestate/config.yaml)")
	flags.StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubestate/cubestate.db)")
	flags.StringVar(&statePath, "state", "", "State file path (default: ~/.cubestate/state.json)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "Render the cube with letters only")
}

// setup loads configuration and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}

	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"db_path":    "db",
		"state_path": "state",
		"log_level":  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	cfg, err = config.Load(v, cfgFile, dir)
	if err != nil {
		return err
	}
	if noColor {
		cfg.Color = false
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.StatePath = expandHome(cfg.StatePath)

	closeLog, err = log.Init(log.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  cfg.LogLevel,
		File:   expandHome(cfg.LogFile),
	})
	if err != nil {
		return err
	}

	log.Debug(log.CatCLI, "Configuration loaded", "db", cfg.DBPath, "state", cfg.StatePath)
	return nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
