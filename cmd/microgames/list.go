package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/microgames/internal/registry"
	"github.com/vovakirdan/microgames/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game with its ID and, when the scores database opens, its best score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	best := map[string]int{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if scores, err := store.BestScores(); err == nil {
			best = scores
		}
		store.Close()
	}

	t := cliTable("ID", "Title", "Best")
	for _, g := range registry.List() {
		t.Row(g.ID, g.Title, strconv.Itoa(best[g.ID]))
	}
	fmt.Println(t)
	fmt.Println("Run 'microgames play <id>' to play a game.")
}

// cliTable is the bordered table style shared by the CLI listings.
func cliTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
