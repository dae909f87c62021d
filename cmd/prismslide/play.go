package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prismslide/internal/platform/tui"
	"github.com/vovakirdan/prismslide/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Play the puzzle interactively.

Controls:
  Arrows     - Slide the selected token
  Tab/S-Tab  - Select next/previous token
  G          - Cycle the target goal
  H          - Ask the solver for a hint
  R          - Reset the board
  Q/Ctrl+C   - Quit

Wins are recorded in the solves database when they take at least two
slides, matching the solver's rules.

Examples:
  prismslide play
  prismslide play --config ./my-setup.yaml
  prismslide play --modules ./my-modules.yaml`,
	Run: runPlayCmd,
}

func runPlayCmd(cmd *cobra.Command, args []string) {
	b, tokens, cfg, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the initial layout
	width, height := 80, 40 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}

	runErr := tui.RunPlay(b, tokens, maxStates(cfg), store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running play screen: %v\n", runErr)
		os.Exit(1)
	}
}
