package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/games/garden"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
	"github.com/vovakirdan/tui-garden/internal/ranking"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

var (
	flagScoresTUI     bool
	flagScoresClear   bool
	flagScoresRanking string
	flagScoresFile    string
	flagScoresConfig  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best-time ranking",
	Long: `Display the best times recorded by winning rounds.

Examples:
  garden scores
  garden scores --tui
  garden scores --ranking json --ranking-file ./ranking.json
  garden scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the ranking in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded time")
	scoresCmd.Flags().StringVar(&flagScoresRanking, "ranking", "", "Ranking backend: sqlite, json (default from config)")
	scoresCmd.Flags().StringVar(&flagScoresFile, "ranking-file", "", "Path to the JSON ranking file")
	scoresCmd.Flags().StringVar(&flagScoresConfig, "config", "", "Path to custom game config YAML")
}

func runScores(_ *cobra.Command, _ []string) {
	gcfg, err := config.LoadGarden(flagScoresConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}

	store, closeStore, err := openRanking(gcfg.Ranking, rankingOptions{
		backend: flagScoresRanking,
		file:    flagScoresFile,
		dbPath:  flagDBPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ranking: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	if flagScoresClear {
		if err := clearRanking(store); err != nil {
			closeStore()
			fmt.Fprintf(os.Stderr, "Error clearing ranking: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Ranking cleared.")
		return
	}

	entries, err := store.LoadEntries()
	if err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error retrieving ranking: %v\n", err)
		os.Exit(1)
	}
	entries = ranking.NewBoard(gcfg.Ranking.TopN, entries).Entries()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(entries, width, height); err != nil {
			closeStore()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRanking(entries)
	if db, ok := store.(*storage.Store); ok {
		if stats, err := db.GetStats(); err == nil && stats.Entries > 0 {
			fmt.Printf("Best: %s by %s  (average %s over %d)\n",
				garden.FormatTime(stats.BestMs), stats.BestName,
				garden.FormatTime(int64(stats.AvgMs)), stats.Entries)
		}
	}
}

func printRanking(entries []ranking.Entry) {
	fmt.Println("Best Times - Forgotten Garden")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No times recorded yet.")
		fmt.Println()
		fmt.Println("Play 'garden play' and collect every orb to set the first time!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %s\n", "Rank", "Name", "Time")
	fmt.Printf("  %-4s  %-12s  %s\n", "----", "----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-12s  %s\n", i+1, e.Name, garden.FormatTime(e.TimeMs))
	}
	fmt.Println()
}

func clearRanking(store ranking.Store) error {
	if db, ok := store.(*storage.Store); ok {
		return db.Clear()
	}
	return store.SaveEntries(nil)
}
