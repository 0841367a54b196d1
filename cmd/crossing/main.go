// crossing is a terminal rendition of the Bug Crossing arcade game.
//
// Usage:
//
//	crossing list               - List available variants
//	crossing play <variant>     - Play a variant
//	crossing menu               - Pick variants interactively
//	crossing characters         - Show the selectable characters
//	crossing config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write diagnostics to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-crossing/internal/game"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Game flags shared by play and menu
	flagConfig     string
	flagDifficulty string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - get across the road without being eaten",
	Long: `Bug Crossing is a terminal arcade game: walk your character across
three stone lanes full of bugs and reach the water.

Available commands:
  list        - Show all variants
  play        - Play a specific variant
  menu        - Interactive variant picker
  characters  - Show the selectable characters
  config      - Print the default configuration

Examples:
  crossing list
  crossing play classic
  crossing play deluxe --difficulty hard
  crossing menu --log-file crossing.log --log-level debug`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points the logger at --log-file. The terminal belongs to the
// game, so without a file nothing is logged.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger = log.NewWithOptions(io.Discard, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	if flagLogFile == "" {
		return nil
	}

	f, err := tea.LogToFileWith(flagLogFile, "crossing", logger)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	return nil
}

// runtimeConfig builds the platform settings from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadGameConfig loads the YAML configuration and applies --difficulty.
func loadGameConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	logger.Debug("config loaded", "path", flagConfig, "difficulty", string(preset))
	return cfg, nil
}

// addGameFlags registers the flags shared by commands that start a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}
