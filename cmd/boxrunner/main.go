// boxrunner is a terminal side-scrolling runner: jump and fast-fall past
// an endless stream of accelerating obstacles.
//
// Usage:
//
//	boxrunner play            - Play in the current terminal
//	boxrunner serve           - Start SSH server for remote play
//	boxrunner scores          - Print high scores
//	boxrunner board           - Interactive high score screen
//	boxrunner sim             - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.boxrunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxrunner",
	Short: "Box Runner - jump past obstacles in your terminal",
	Long: `Box Runner is an endless terminal runner. A box sprints along the
ground while obstacles slide in from the right, a little faster every
tick. Jump over them, fast-fall to land early, and survive as long as
you can. Score is the number of ticks you stay alive.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - Print high scores
  board    - Interactive high score screen
  sim      - Run the simulation headless

Examples:
  boxrunner play
  boxrunner play --seed 42
  boxrunner serve --ssh :2222
  boxrunner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxrunner/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simCmd)
}
