// microgames is a terminal arcade with Snake, Pong, Tetris and Breakout.
//
// Usage:
//
//	microgames list              - List available games
//	microgames play <game>       - Play a game
//	microgames menu              - Start menu to pick games interactively
//	microgames serve             - Start SSH server for remote play
//	microgames api               - Start the HTTP score API
//	microgames scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--sound         - Play sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/microgames/internal/games/breakout"
	_ "github.com/vovakirdan/microgames/internal/games/pong"
	_ "github.com/vovakirdan/microgames/internal/games/snake"
	_ "github.com/vovakirdan/microgames/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagSound  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "microgames",
	Short: "MicroGames - four classic arcade games in your terminal",
	Long: `MicroGames brings Snake, Pong, Tetris and Breakout to the terminal,
with local high scores, SSH play and an HTTP score API.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  api      - Start the HTTP score API
  scores   - View high scores

Set ARCADE_API_URL to show the API status in the menu.

Examples:
  microgames list
  microgames play tetris
  microgames menu --sound
  microgames serve --ssh :2222 --http :8080
  microgames scores snake`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
}
