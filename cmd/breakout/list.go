package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with how often it was played and its best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional, a missing database just leaves the columns empty
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	idLen, titleLen := 2, 5
	for _, g := range games {
		idLen = max(idLen, len(g.ID))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %6s  %6s\n", idLen, "ID", titleLen, "Title", "Played", "Best")
	fmt.Printf("  %-*s  %-*s  %6s  %6s\n", idLen, "--", titleLen, "-----", "------", "----")

	for _, g := range games {
		played, best := "-", "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprint(st.GamesCount)
			best = fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %6s  %6s\n", idLen, g.ID, titleLen, g.Title, played, best)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <id>' to play a game.")
}
