package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prismslide/internal/platform/tui"
	"github.com/vovakirdan/prismslide/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded solves",
	Long: `Display recorded solves for the current board arrangement.

By default the shortest solves for the configured board are shown.
Use --recent for the latest solves across all arrangements, or
--browse for an interactive table.

Examples:
  prismslide history
  prismslide history --recent --limit 5
  prismslide history --browse`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show most recent solves instead of best")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of solves to show")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse solves in an interactive table")
}

func runHistory(cmd *cobra.Command, args []string) {
	b, _, _, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sig := b.Signature()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", openErr)
			os.Exit(1)
		}
		defer store.Close()

		if runErr := tui.RunHistory(store, sig, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var records []storage.SolveRecord
	if flagRecent {
		records, err = store.RecentSolves(flagLimit)
		fmt.Println("Recent solves")
	} else {
		records, err = store.BestSolves(sig, flagLimit)
		fmt.Printf("Best solves - %s\n", sig)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'prismslide solve <color> <goal> --save' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-16s  %-7s  %-10s  %s\n", "Rank", "Target", "Goal", "Slides", "States", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-7s  %-10s  %s\n", "----", "------", "----", "------", "------", "----")

	// Print solves
	for i, rec := range records {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-16s  %-7d  %-10d  %s\n", i+1, rec.Target, rec.GoalID, rec.Actions, rec.States, dateStr)
	}
}
