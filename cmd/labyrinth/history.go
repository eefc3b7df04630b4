package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryMode  string
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived rounds",
	Long: `List the most recent archived mazes. Every generated maze is stored
with its mode, difficulty, size and seed, so it can be replayed later
with 'labyrinth replay <id>'. An ID prefix is enough.

Examples:
  labyrinth history
  labyrinth history --limit 5
  labyrinth history --mode race
  labyrinth history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of rounds to show")
	historyCmd.Flags().StringVar(&flagHistoryMode, "mode", "", "Only show one mode: standard, race, infinite")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all archived rounds")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Round history cleared.")
		return nil
	}

	var modeID string
	if flagHistoryMode != "" {
		mode, err := labyrinth.ParseMode(flagHistoryMode)
		if err != nil {
			return err
		}
		modeID = labyrinth.IDForMode(mode)
	}

	rounds, err := store.RecentRoundsForMode(modeID, flagHistoryLimit)
	if err != nil {
		return err
	}
	total, err := store.CountRounds(modeID)
	if err != nil {
		return err
	}

	if len(rounds) == 0 {
		fmt.Println("No rounds archived yet.")
		fmt.Println()
		fmt.Println("Play 'labyrinth play' to start the history!")
		return nil
	}

	header := color.New(color.Bold)
	idColor := color.New(color.FgCyan)
	dim := color.New(color.Faint)

	header.Printf("  %-8s  %-14s  %-8s  %-7s  %-20s  %s\n", "ID", "Mode", "Tier", "Size", "Seed", "Date")
	fmt.Printf("  %-8s  %-14s  %-8s  %-7s  %-20s  %s\n", "--", "----", "----", "----", "----", "----")
	for _, r := range rounds {
		fmt.Printf("  %s  %-14s  %-8s  %-7s  %-20d  %s\n",
			idColor.Sprintf("%-8s", shortID(r.ID)),
			r.Mode,
			r.Tier,
			fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			r.Seed,
			dim.Sprint(r.CreatedAt.Local().Format("2006-01-02 15:04")),
		)
	}

	fmt.Println()
	fmt.Printf("Showing %d of %d rounds.\n", len(rounds), total)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
