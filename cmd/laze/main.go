// laze is a first-person maze explorer for the terminal. Every exit leads
// into a bigger maze.
//
// Usage:
//
//	laze list              - List available modes
//	laze play [mode]       - Play a mode (default: laze)
//	laze menu              - Start menu to pick modes interactively
//	laze serve             - Start SSH server for remote play
//	laze web               - Start HTTP leaderboard API
//	laze scores <mode>     - Show high scores and best runs for a mode
//	laze gen               - Print a generated maze
//	laze config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.laze/scores.db, or $LAZE_DB)
//	--debug         - Verbose logging (to ~/.laze/laze.log while playing)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-laze/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-laze/internal/games/laze"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	// Defaults that depend on the environment are bound after .env is read.
	registerFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "laze",
	Short: "Laze - a first-person maze explorer for your terminal",
	Long: `Laze drops you at the entrance of a randomly carved maze. Find the
exit on the far side and the next maze is bigger.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  web      - Start the HTTP leaderboard API
  scores   - View high scores and best runs
  gen      - Print a generated maze
  config   - Print the effective game config

Examples:
  laze play
  laze play laze_daily
  laze menu
  laze serve --ssh :2222
  laze web --http :8080
  laze gen --width 21 --height 11 --seed 7 --solve`,
	SilenceUsage: true,
}

func registerFlags() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db",
		config.EnvOr(config.EnvDBPath, "~/.laze/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	registerPlayFlags(playCmd)
	registerPlayFlags(menuCmd)
	registerPlayFlags(serveCmd)
	registerPlayFlags(configCmd)
	registerServeFlags()
	registerWebFlags()
	registerGenFlags()

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(configCmd)
}

// newServerLogger returns a stderr logger for long-running servers.
func newServerLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newGameLogger returns the logger used while Bubble Tea owns the terminal.
// Without --debug it discards everything; with it, output goes to
// ~/.laze/laze.log. The returned closer is never nil.
func newGameLogger() (*log.Logger, io.Closer) {
	if !flagDebug {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no home directory for debug log: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	path := filepath.Join(home, ".laze", "laze.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "laze",
		Level:           log.DebugLevel,
	})
	return logger, f
}
