package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/topomirror/internal/config"
	"github.com/katalvlaran/topomirror/internal/logger"
)

var (
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// cfg is loaded by initRuntime before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "topomirror",
	Short: "Mirror mesh geometry across a topological seam",
	Long: `topomirror mirrors one half of a polygon mesh onto the other using
topology instead of world-space positions. Starting from a seam edge, matching
faces are discovered by a dual breadth-first walk, paired into a component
mapping, and transformed in place. Works on vertex positions or on UVs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"path to a topomirror.yaml (default: auto-discover)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"override logging.level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "",
		"override logging.log_file")
}

// initRuntime loads the config, applies logging flag overrides and
// builds the global logger. Flags beat the file, the file beats the
// defaults.
func initRuntime(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Logging.Level = flagLogLevel
	}
	if flagLogFile != "" {
		loaded.Logging.LogFile = flagLogFile
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
}
