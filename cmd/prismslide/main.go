// prismslide is a sliding-token puzzle played on a board assembled from
// four rotated modules.
//
// Usage:
//
//	prismslide solve <color> <goal>  - Find a minimal slide sequence
//	prismslide play                  - Play interactively in the terminal
//	prismslide serve                 - Start SSH server for remote play
//	prismslide modules               - List catalogue modules
//	prismslide history               - Show recorded solves
//
// Global flags:
//
//	--modules <path>     - Custom module catalogue YAML
//	--config <path>      - Custom game config YAML
//	--db <path>          - Solves database path (default: ~/.prismslide/solves.db)
//	--max-states <n>     - Search ceiling on explored joint states
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagModules   string
	flagConfig    string
	flagDBPath    string
	flagMaxStates int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prismslide",
	Short: "Prismslide - a sliding-token puzzle in your terminal",
	Long: `Prismslide assembles a 16x16 board from four rotated 8x8 modules and
slides colored tokens across it. Tokens run until they hit a wall, the
sealed center, or another token; colored refractors bend their path by
90 degrees. A puzzle is solved by bringing a token of the goal's color
onto the goal cell in at least two slides.

Available commands:
  solve    - Find a minimal slide sequence for a goal
  play     - Play interactively in the terminal
  serve    - Start SSH server for remote play
  modules  - List catalogue modules
  history  - View recorded solves

Examples:
  prismslide solve red red-circle
  prismslide solve blue 4,12
  prismslide play
  prismslide serve --ssh :2222
  prismslide history --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagModules, "modules", "", "Path to custom module catalogue YAML")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.prismslide/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().IntVar(&flagMaxStates, "max-states", 0, "Search state ceiling (0 = config value)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(historyCmd)
}
