package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microgames/internal/api"
	"github.com/vovakirdan/microgames/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP score API",
	Long: `Serve scores over HTTP and push new ones to WebSocket clients.

Endpoints:
  GET  /api/test            - Health message
  GET  /api/games           - Games with their best score
  GET  /api/scores/:game    - Top scores (?limit=N)
  POST /api/scores/:game    - Record {"score": N}
  GET  /api/stats           - Per-game statistics
  GET  /ws                  - Live score feed

Examples:
  microgames api
  microgames api --addr :9000 --db ./scores.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", api.DefaultConfig().Address, "HTTP listen address")
}

func runAPI(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server := api.NewServer(api.Config{Address: flagAPIAddr, Store: store})
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}
