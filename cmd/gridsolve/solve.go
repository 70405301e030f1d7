package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gridlogic/pkg/gridlogic"
)

func newSolveCommand() *cobra.Command {
	var puzzlePath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a logic-grid puzzle described by a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(puzzlePath)
			if err != nil {
				return fmt.Errorf("reading puzzle file: %w", err)
			}
			puzzle, err := gridlogic.ParsePuzzle(data)
			if err != nil {
				return err
			}
			result, err := gridlogic.NewSolver().Solve(puzzle)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&puzzlePath, "puzzle", "", "path to a JSON puzzle file")
	cmd.MarkFlagRequired("puzzle")
	return cmd
}

func printResult(cmd *cobra.Command, result gridlogic.Result) {
	for _, line := range result.Lines() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
