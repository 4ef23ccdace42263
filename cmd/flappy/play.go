package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/game"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/scores"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W  - Flap (also starts a run from the menu)
  1-4         - Pick difficulty in the menu
  P/Esc       - Pause
  R           - Restart (after game over)
  H           - Toggle hitbox display
  I           - Toggle invincibility
  S           - Toggle slow motion
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --difficulty extreme
  flappy play --config ./my-tuning.yaml
  flappy play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselect difficulty: easy, medium, hard, extreme")
}

func runPlay(cmd *cobra.Command, args []string) {
	tune, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	best := scores.Load(flagScoresPath)
	g := game.New(cfg, tune, best)

	if flagDifficulty != "" {
		d, ok := config.ParseDifficulty(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, medium, hard, extreme)\n", flagDifficulty)
			os.Exit(1)
		}
		g.SetDifficulty(d)
	}

	// Run history is optional; the game works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
