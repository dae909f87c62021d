package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prismslide/internal/board"
	"github.com/vovakirdan/prismslide/internal/solver"
	"github.com/vovakirdan/prismslide/internal/storage"
)

var flagSave bool

var solveCmd = &cobra.Command{
	Use:   "solve <color> <goal>",
	Short: "Find a minimal slide sequence",
	Long: `Search for the shortest slide sequence that brings the token of the
given color onto the goal cell. Any token may be slid along the way;
the sequence is minimal in total slides across all tokens.

The goal is either a goal ID from the catalogue or x,y coordinates.
A solution needs at least two slides: puzzles whose target would reach
the goal in a single slide are solved by a longer detour instead.

Examples:
  prismslide solve red red-circle
  prismslide solve blue 4,12
  prismslide solve yellow wild-spiral --save`,
	Args: cobra.ExactArgs(2),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSave, "save", false, "Record the solution in the solves database")
}

func runSolve(cmd *cobra.Command, args []string) {
	color, ok := board.ParseColor(args[0])
	if !ok || color == board.ColorAny {
		fmt.Fprintf(os.Stderr, "Error: unknown color %q (red, green, blue, yellow)\n", args[0])
		os.Exit(1)
	}

	b, tokens, cfg, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	goal, err := parseGoal(b, args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !goal.Accepts(color) {
		fmt.Fprintf(os.Stderr, "Error: goal %s is a %s goal, not %s\n", args[1], goal.Color, color)
		os.Exit(1)
	}

	result, err := solver.Solve(b, tokens, color, goal.Pos, solver.Options{MaxStates: maxStates(cfg)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(result.Actions) == 0 {
		fmt.Printf("The %s token is already on (%d,%d); nothing to solve.\n", color, goal.Pos.X, goal.Pos.Y)
		return
	}

	fmt.Printf("Solved in %d slides (%d states, %s):\n", len(result.Actions), result.StatesExplored, result.Elapsed)
	fmt.Println()
	for i, action := range result.Actions {
		fmt.Printf("  %2d. %s\n", i+1, action)
	}

	if flagSave {
		saveSolution(b, color, goal, result)
	}
}

// saveSolution records a solver result in the database.
func saveSolution(b *board.Board, color board.Color, goal board.Goal, result *solver.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		return
	}
	defer store.Close()

	lines := make([]string, len(result.Actions))
	for i, action := range result.Actions {
		lines[i] = action.String()
	}

	_, err = store.SaveSolve(storage.SolveRecord{
		BoardSig:  b.Signature(),
		Target:    color.String(),
		GoalID:    goal.ID,
		Actions:   len(result.Actions),
		Moves:     strings.Join(lines, "\n"),
		States:    result.StatesExplored,
		ElapsedMS: result.Elapsed.Milliseconds(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save solve: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Saved to solve history.")
}
