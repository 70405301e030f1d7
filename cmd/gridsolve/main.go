// Command gridsolve is the CLI front end for the puzzle engine and its
// sibling tools: logic-grid solving, Sudoku generation/solving, and
// knight's-tour and magic-square construction.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridsolve",
		Short: "Solve logic-grid puzzles and run its sibling tools",
	}
	root.AddCommand(newSolveCommand())
	root.AddCommand(newSudokuCommand())
	root.AddCommand(newKnightsTourCommand())
	root.AddCommand(newMagicSquareCommand())
	return root
}
