package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorslide/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List level packs and their levels",
	Long:  `Shows every registered level pack with its levels in play order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	for _, p := range packs {
		lvls, err := registry.Load(p.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		fmt.Printf("%s (%s)\n", p.Title, p.ID)
		fmt.Println()

		// Calculate column widths
		maxIDLen := 2 // "ID" header
		for _, lvl := range lvls {
			maxIDLen = max(maxIDLen, len(lvl.ID()))
		}

		fmt.Printf("  %3s  %-*s  %-4s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
		fmt.Printf("  %3s  %-*s  %-4s  %s\n", "-", maxIDLen, "--", "----", "----")
		for i, lvl := range lvls {
			size := fmt.Sprintf("%dx%d", lvl.Size(), lvl.Size())
			fmt.Printf("  %3d  %-*s  %-4s  %s\n", i+1, maxIDLen, lvl.ID(), size, lvl.Name())
		}
		fmt.Println()
	}

	fmt.Println("Run 'colorslide play [number] --pack <id>' to play.")
}
