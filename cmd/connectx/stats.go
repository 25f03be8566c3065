package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/storage"
)

var flagStatsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show results of finished games",
	Long: `Display per-variant totals of finished games and the most recent results.
Results are kept by the sqlite and postgres stores only.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 10, "Number of recent results to show")
}

func runStats(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	rec, ok := store.(storage.ResultRecorder)
	if !ok {
		store.Close()
		fail("stats need the sqlite or postgres store")
	}

	stats, err := rec.Stats()
	if err != nil {
		store.Close()
		fail("retrieving stats: %v", err)
	}

	if len(stats) == 0 {
		fmt.Println("No finished games yet.")
		return
	}

	maxVariantLen := 7 // "Variant" header
	for _, s := range stats {
		maxVariantLen = max(maxVariantLen, len(s.Variant))
	}

	fmt.Printf("  %-*s  %5s  %5s  %5s  %5s  %9s  %s\n", maxVariantLen, "Variant", "Games", "A", "B", "Draws", "Avg moves", "Last played")
	fmt.Printf("  %-*s  %5s  %5s  %5s  %5s  %9s  %s\n", maxVariantLen, "-------", "-----", "-", "-", "-----", "---------", "-----------")
	for _, s := range stats {
		fmt.Printf("  %-*s  %5d  %5d  %5d  %5d  %9.1f  %s\n",
			maxVariantLen, s.Variant, s.Games, s.WinsA, s.WinsB, s.Draws, s.AvgMoves,
			s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	if flagStatsRecent <= 0 {
		return
	}
	recent, err := rec.RecentResults(flagStatsRecent)
	if err != nil {
		logger.Warn("could not load recent results", "err", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, r := range recent {
		fmt.Printf("  %s  %-20s  winner %-4s  %d moves\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.SaveName, r.Winner, r.Moves)
	}
}
