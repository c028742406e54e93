package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/puzzle/levels"
	"github.com/vovakirdan/colorslide/internal/registry"
)

var (
	flagSolvePack      string
	flagSolveMaxStates int
	flagSolveShow      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Print the shortest solution of a level",
	Long: `Finds a shortest move sequence with a breadth-first search.

The level is a 1-based number within the pack, a level ID, or a path to a
YAML level file.

Examples:
  colorslide solve 2
  colorslide solve classic-03 --show
  colorslide solve ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolvePack, "pack", levels.ClassicPack, "Level pack to search for the level")
	solveCmd.Flags().IntVar(&flagSolveMaxStates, "max-states", puzzle.DefaultMaxStates, "Solver search limit")
	solveCmd.Flags().BoolVar(&flagSolveShow, "show", false, "Print the board after every move")
}

func runSolve(_ *cobra.Command, args []string) {
	lvl, err := solveTarget(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sol, err := puzzle.Solve(lvl, flagSolveMaxStates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", lvl.ID(), err)
		os.Exit(1)
	}

	fmt.Printf("%s %q: %d moves (%d layouts explored)\n", lvl.ID(), lvl.Name(), len(sol.Moves), sol.Explored)
	if len(sol.Moves) > 0 {
		fmt.Println(sol)
	}

	if !flagSolveShow {
		return
	}
	e := puzzle.NewEngine(lvl)
	fmt.Println()
	fmt.Println(e)
	for _, d := range sol.Moves {
		if _, err := e.Move(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n%s\n%s\n", d, e)
	}
}

// solveTarget resolves a level file path or a level in the selected pack.
func solveTarget(ref string) (*puzzle.Level, error) {
	ext := strings.ToLower(filepath.Ext(ref))
	if ext == ".yaml" || ext == ".yml" {
		lvl, err := levels.NewLoader("", logger).LoadFile(ref)
		if err != nil {
			return nil, err
		}
		return lvl.Level, nil
	}

	lvls, err := registry.Load(flagSolvePack)
	if err != nil {
		return nil, err
	}
	idx, err := resolveLevel(lvls, ref)
	if err != nil {
		return nil, err
	}
	return lvls[idx], nil
}
