// flappy is a side-scrolling arcade game for the terminal.
//
// Usage:
//
//	flappy play              - Play the game
//	flappy scores            - Show best scores and run history
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set run history database path (default: ~/.flappy/runs.db)
//	--scores <path> - Set high score file path (default: ~/.flappy/highscores.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/scores"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a terminal bird that should not touch the pipes",
	Long: `Flappy is a side-scrolling arcade game played entirely in the terminal.

Tap to keep the bird airborne, thread the gaps between pipes, and chase
a separate best score on each of the four difficulties.

Available commands:
  play     - Play the game
  scores   - View best scores and run history
  serve    - Start SSH server for remote play

Examples:
  flappy play
  flappy play --difficulty hard
  flappy scores
  flappy serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", scores.DefaultPath, "Path to high score file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
