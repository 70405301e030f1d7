package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gridlogic/internal/sudoku"
)

func newSudokuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Generate or solve Sudoku puzzles",
	}
	cmd.AddCommand(newSudokuGenerateCommand())
	cmd.AddCommand(newSudokuSolveCommand())
	return cmd
}

func newSudokuGenerateCommand() *cobra.Command {
	var clueCount int
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more uniquely-solvable Sudoku puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			ctx := context.Background()
			if count <= 1 {
				gen := sudoku.NewGenerator(rand.New(rand.NewSource(seed)))
				board, solution, err := gen.Generate(ctx, clueCount)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), board.String())
				fmt.Fprintln(cmd.OutOrStdout(), "---")
				fmt.Fprint(cmd.OutOrStdout(), solution.String())
				return nil
			}
			puzzles, err := sudoku.GenerateBatch(ctx, count, clueCount, seed)
			if err != nil {
				return err
			}
			for i, p := range puzzles {
				fmt.Fprintf(cmd.OutOrStdout(), "puzzle %d:\n", i)
				fmt.Fprint(cmd.OutOrStdout(), p.Board.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&clueCount, "clues", sudoku.DefaultClueCount, "number of clues to leave in the generated puzzle")
	cmd.Flags().IntVar(&count, "count", 1, "number of puzzles to generate concurrently")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func newSudokuSolveCommand() *cobra.Command {
	var boardPath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Sudoku puzzle from an 81-character grid file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(boardPath)
			if err != nil {
				return fmt.Errorf("reading board file: %w", err)
			}
			board, err := sudoku.ParseBoard(string(data))
			if err != nil {
				return err
			}
			solved, err := sudoku.New(sudoku.Options{}).Solve(cmd.Context(), board)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), solved.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&boardPath, "board", "", "path to an 81-character Sudoku grid")
	cmd.MarkFlagRequired("board")
	return cmd
}
