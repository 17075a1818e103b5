package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microgames/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game picker",
	Long: `Open the interactive menu. Pick a game with the arrows and Enter,
press Tab for the scoreboard, and B to come back from a paused or finished game.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	svc, closeServices := openServices()
	err := tui.RunSession(svc, runtimeConfig())
	closeServices()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
