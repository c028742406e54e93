package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorslide/internal/platform/tui"
	"github.com/vovakirdan/colorslide/internal/puzzle/levels"
	"github.com/vovakirdan/colorslide/internal/registry"
)

var flagPlayPack string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Opens the level picker, or goes straight to a level when one is given.

The level is a 1-based number within the pack or a level ID.

Controls:
  Arrows / WASD / HJKL - Slide all tokens
  Mouse drag           - Swipe in the drag direction
  R                    - Reset the level
  P / Space            - Pause
  N / Enter            - Next level once solved
  Esc                  - Back to the level picker
  Q                    - Quit

Examples:
  colorslide play
  colorslide play 3
  colorslide play classic-04
  colorslide play 1 --pack custom --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayPack, "pack", levels.ClassicPack, "Level pack to play")
}

func runPlay(_ *cobra.Command, args []string) {
	if !registry.Exists(flagPlayPack) {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", flagPlayPack)
		fmt.Fprintln(os.Stderr, "Run 'colorslide list' to see available packs.")
		os.Exit(1)
	}

	opts := tui.StartOptions{Pack: flagPlayPack}
	if len(args) == 1 {
		lvls, err := registry.Load(flagPlayPack)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		idx, err := resolveLevel(lvls, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Level = idx
		opts.Play = true
	}

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	// Logs on stderr would tear the alternate screen.
	playLogger := logger
	if flagLogFile == "" {
		playLogger = log.New(io.Discard)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: records disabled: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	env := tui.Env{
		Store:  store,
		Logger: playLogger,
		Config: runtimeConfig(width, height),
		Player: os.Getenv("USER"),
	}

	if err := tui.Run(env, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
