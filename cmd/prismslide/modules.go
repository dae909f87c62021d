package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prismslide/internal/catalog"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List catalogue modules",
	Long:  `Shows the modules available for assembling a board.`,
	Run:   runModules,
}

func runModules(cmd *cobra.Command, args []string) {
	modules, err := catalog.Load(flagModules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(modules) == 0 {
		fmt.Println("No modules in the catalogue.")
		return
	}

	fmt.Println("Catalogue modules:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modules {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %-12s  %s\n", maxIDLen, "ID", "Color", "Gap corner", "Goals")
	fmt.Printf("  %-*s  %-8s  %-12s  %s\n", maxIDLen, "--", "-----", "----------", "-----")

	// Print modules
	for _, m := range modules {
		goals := 0
		for _, face := range m.Faces {
			goals += len(face.Goals)
		}
		fmt.Printf("  %-*s  %-8s  %-12s  %d\n", maxIDLen, m.ID, m.Color, m.GapCorner, goals)
	}

	fmt.Println()
	fmt.Println("Run 'prismslide play' to start a game.")
}
