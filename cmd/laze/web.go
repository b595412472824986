package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-laze/internal/config"
	"github.com/vovakirdan/tui-laze/internal/storage"
	"github.com/vovakirdan/tui-laze/internal/web"
)

var (
	flagHTTPAddr string
	flagBaseURL  string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP leaderboard API",
	Long: `Serve the leaderboard and a maze generator over HTTP.

Endpoints (under --base, default /api):
  GET /v1/games                 - Modes with aggregate stats
  GET /v1/scores/:mode          - Top scores for a mode (?limit=)
  GET /v1/scores/:mode/best     - Best runs for a mode
  GET /v1/runs/recent           - Most recent runs
  GET /v1/runs/:id              - One run by its uuid
  GET /v1/maze                  - Generate a maze
                                  (?width=&height=&seed=&solve=&format=json|text)

Examples:
  laze web
  laze web --http :9000
  curl 'localhost:8080/api/v1/maze?width=21&height=11&format=text&solve=true'`,
	Run: runWeb,
}

func registerWebFlags() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", config.EnvOr(config.EnvHTTPAddr, ":8080"), "HTTP server address (host:port)")
	webCmd.Flags().StringVar(&flagBaseURL, "base", "/api", "Base URL for API routes")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger := newServerLogger("laze-http")
	if !flagDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	router := web.NewRouter(web.Config{
		Addr:    flagHTTPAddr,
		BaseURL: flagBaseURL,
		Logger:  logger,
		Controllers: []web.Controller{
			web.NewGamesController(store),
			web.NewScoresController(store),
			web.NewRunsController(store),
			web.NewMazeController(),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := router.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		store.Close()
		os.Exit(1)
	}
}
