package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorslide/internal/puzzle/levels"
	"github.com/vovakirdan/colorslide/internal/registry"
	"github.com/vovakirdan/colorslide/internal/session"
	"github.com/vovakirdan/colorslide/internal/storage"
)

var (
	flagRecordsPack  string
	flagRecordsLimit int
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show the best runs",
	Long: `Without a level, prints a summary row per level of the pack.
With a level (1-based number or ID), prints its best runs ranked by
moves, then time.

Examples:
  colorslide records
  colorslide records 2
  colorslide records classic-02 --limit 20
  colorslide records 2 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().StringVar(&flagRecordsPack, "pack", levels.ClassicPack, "Level pack")
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete the records instead of showing them")
}

func runRecords(_ *cobra.Command, args []string) {
	if !registry.Exists(flagRecordsPack) {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", flagRecordsPack)
		fmt.Fprintln(os.Stderr, "Run 'colorslide list' to see available packs.")
		os.Exit(1)
	}

	levelID := ""
	if len(args) == 1 {
		lvls, err := registry.Load(flagRecordsPack)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		idx, err := resolveLevel(lvls, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levelID = lvls[idx].ID()
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRecordsClear:
		err = clearRecords(store, levelID)
	case levelID == "":
		err = printPackStats(store)
	default:
		err = printBestRuns(store, levelID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearRecords(store *storage.Store, levelID string) error {
	n, err := store.ClearRuns(flagRecordsPack, levelID)
	if err != nil {
		return err
	}
	target := registry.Title(flagRecordsPack)
	if levelID != "" {
		target = levelID
	}
	fmt.Printf("Deleted %d runs for %s.\n", n, target)
	logger.Info("records cleared", "pack", flagRecordsPack, "level", levelID, "runs", n)
	return nil
}

func printPackStats(store *storage.Store) error {
	stats, err := store.LevelStats(flagRecordsPack)
	if err != nil {
		return err
	}

	fmt.Printf("Records - %s\n", registry.Title(flagRecordsPack))
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'colorslide play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-14s  %-4s  %-5s  %-8s  %s\n", "Level", "Runs", "Moves", "Time", "Last played")
	fmt.Printf("  %-14s  %-4s  %-5s  %-8s  %s\n", "-----", "----", "-----", "----", "-----------")
	for _, s := range stats {
		fmt.Printf("  %-14s  %-4d  %-5d  %-8s  %s\n",
			s.LevelID, s.Runs, s.BestMoves,
			session.FormatElapsed(s.BestElapsed),
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printBestRuns(store *storage.Store, levelID string) error {
	runs, err := store.BestRuns(flagRecordsPack, levelID, flagRecordsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "Rank", "Player", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-8s  %s\n",
			i+1, player, r.Moves,
			session.FormatElapsed(r.Elapsed),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
