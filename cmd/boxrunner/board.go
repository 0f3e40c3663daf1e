package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxrunner/internal/platform/tui"
	"github.com/vovakirdan/boxrunner/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive high score screen",
	Long: `Open the interactive high score table.

Examples:
  boxrunner board
  boxrunner board --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunScoreboard(store, gameID, "Box Runner", width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
