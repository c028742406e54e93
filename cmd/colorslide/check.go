package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/puzzle/levels"
	"github.com/vovakirdan/colorslide/internal/registry"
)

var (
	flagCheckMaxStates int
	flagCheckStrict    bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate levels and prove them solvable",
	Long: `Parses and validates level files, then searches each for a shortest
solution. Without arguments every registered pack is checked.

Files that fail to parse or validate make the command exit non-zero.
Unsolvable levels are reported; with --strict they fail the check too.

Examples:
  colorslide check
  colorslide check ./my-levels/*.yaml
  colorslide check --strict --max-states 500000 level.yaml`,
	Run: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&flagCheckMaxStates, "max-states", puzzle.DefaultMaxStates, "Solver search limit per level")
	checkCmd.Flags().BoolVar(&flagCheckStrict, "strict", false, "Treat unsolvable levels as failures")
}

type checkTarget struct {
	source string
	level  *puzzle.Level
	err    error
}

func runCheck(_ *cobra.Command, args []string) {
	var targets []checkTarget
	if len(args) > 0 {
		loader := levels.NewLoader("", logger)
		for _, path := range args {
			lvl, err := loader.LoadFile(path)
			targets = append(targets, checkTarget{source: path, level: lvl.Level, err: err})
		}
	} else {
		for _, p := range registry.List() {
			lvls, err := registry.Load(p.ID)
			if err != nil {
				targets = append(targets, checkTarget{source: p.ID, err: err})
				continue
			}
			for _, lvl := range lvls {
				targets = append(targets, checkTarget{source: p.ID, level: lvl})
			}
		}
	}

	failed := 0
	for _, t := range targets {
		if t.err != nil {
			fmt.Printf("FAIL  %s: %v\n", t.source, t.err)
			failed++
			continue
		}

		sol, err := puzzle.Solve(t.level, flagCheckMaxStates)
		switch {
		case err == nil:
			fmt.Printf("ok    %s/%s  %d moves  (%d layouts)\n", t.source, t.level.ID(), len(sol.Moves), sol.Explored)
		case errors.Is(err, puzzle.ErrUnsolvable), errors.Is(err, puzzle.ErrSearchLimit):
			fmt.Printf("WARN  %s/%s: %v\n", t.source, t.level.ID(), err)
			if flagCheckStrict {
				failed++
			}
		default:
			fmt.Printf("FAIL  %s/%s: %v\n", t.source, t.level.ID(), err)
			failed++
		}
	}

	fmt.Println()
	fmt.Printf("%d checked, %d failed\n", len(targets), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
