package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-laze/internal/config"
	"github.com/vovakirdan/tui-laze/internal/core"
	"github.com/vovakirdan/tui-laze/internal/games/laze"
	"github.com/vovakirdan/tui-laze/internal/platform/tui"
	"github.com/vovakirdan/tui-laze/internal/registry"
	"github.com/vovakirdan/tui-laze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: laze).

Modes:
  laze        - Endless: every exit opens a bigger maze
  laze_daily  - Daily: today's maze, the same for everyone

Controls:
  W/S or Up/Down     - Move forward/back (Shift to run)
  A/D                - Strafe
  Left/Right or H/L  - Turn
  J/K                - Look down/up
  Space              - Jump
  Tab/M              - Toggle minimap
  F                  - Toggle hint path
  P/Esc              - Pause
  G                  - Give up (while paused)
  R                  - Restart (after game over)
  B                  - Back (while paused or after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at 7x7, grow by 2
  normal - Start at 11x11, grow by 4
  hard   - Start at 21x21, grow by 6
  fixed  - Never grow, stay at the config's start size

Examples:
  laze play
  laze play laze_daily
  laze play --difficulty hard
  laze play --seed 42
  laze play --config ./my-laze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", config.EnvOr(config.EnvConfig, ""), "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the game package before
// any instance is created.
func applyGameFlags() {
	laze.SetConfigPath(flagConfig)
	laze.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig builds a RuntimeConfig sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   playerName(),
	}
}

// playerName is the local account name recorded with each run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return config.EnvOr("USER", "player")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "laze"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'laze list' to see available modes.")
		os.Exit(1)
	}

	logger, logFile := newGameLogger()
	defer logFile.Close()

	applyGameFlags()
	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if lg, ok := game.(*laze.Game); ok {
		if err := lg.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Run ended on error: %v\n", err)
		}
	}
}
