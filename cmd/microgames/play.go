package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/games/breakout"
	"github.com/vovakirdan/microgames/internal/games/pong"
	"github.com/vovakirdan/microgames/internal/games/snake"
	"github.com/vovakirdan/microgames/internal/games/tetris"
	"github.com/vovakirdan/microgames/internal/platform/tui"
	"github.com/vovakirdan/microgames/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  Space       - Fire / hard drop / launch
  C           - Hold piece (tetris)
  Enter       - Start
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Difficulty options (pong, breakout):
  easy, normal, hard

Examples:
  microgames play snake
  microgames play pong --difficulty hard
  microgames play breakout --difficulty easy
  microgames play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'microgames list' to see available games.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "pong":
		pong.SetConfigPath(flagConfig)
		pong.SetDifficultyPreset(flagDifficulty)
	case "tetris":
		tetris.SetConfigPath(flagConfig)
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc, closeServices := openServices()
	runErr := tui.Run(game, svc, runtimeConfig())
	closeServices()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
