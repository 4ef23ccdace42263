package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/scores"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best scores and run history",
	Long: `Display the best score per difficulty and recent run history.

With a difficulty argument, shows the top 10 runs for that difficulty.
With --board, opens the interactive run history browser instead.

Examples:
  flappy scores
  flappy scores hard
  flappy scores --board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive run history browser")
}

func runScores(cmd *cobra.Command, args []string) {
	best := scores.Load(flagScoresPath)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if boardErr := tui.RunScoreboard(store, best, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	if len(args) == 1 {
		d, ok := config.ParseDifficulty(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, medium, hard, extreme)\n", args[0])
			os.Exit(1)
		}
		printDifficulty(store, best, d)
		return
	}

	printOverview(store, best)
}

// printOverview prints one summary line per difficulty.
func printOverview(store *storage.Store, best *scores.Table) {
	fmt.Println("Best scores")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Difficulty", "Best", "Runs", "Avg", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "----------", "----", "----", "---", "-----------")

	for _, d := range config.All() {
		runs, avg, last := "-", "-", "-"
		if store != nil {
			if stats, err := store.Stats(d.Key()); err == nil && stats.Count > 0 {
				runs = fmt.Sprintf("%d", stats.Count)
				avg = fmt.Sprintf("%.1f", stats.AvgScore)
				last = stats.LastPlayed.Format("2006-01-02 15:04")
			}
		}
		fmt.Printf("  %-10s  %-6d  %-6s  %-8s  %s\n", d.Name(), best.Get(d), runs, avg, last)
	}
}

// printDifficulty prints the top runs for one difficulty.
func printDifficulty(store *storage.Store, best *scores.Table, d config.Difficulty) {
	fmt.Printf("Run history - %s (best %d)\n", d.Name(), best.Get(d))
	fmt.Println()

	if store == nil {
		fmt.Println("No run database available.")
		return
	}

	runs, err := store.TopRuns(d.Key(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play --difficulty %s' to get on the board!\n", d.Key())
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
