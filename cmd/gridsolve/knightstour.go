package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gridlogic/internal/knighttour"
)

func newKnightsTourCommand() *cobra.Command {
	var size int
	var startRow, startCol int

	cmd := &cobra.Command{
		Use:   "knights-tour",
		Short: "Find a knight's tour of an N x N board",
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := knighttour.Find(size, knighttour.Square{Row: startRow, Col: startCol})
			if err != nil {
				return err
			}
			grid := tour.Board(size)
			for _, row := range grid {
				for _, v := range row {
					fmt.Fprintf(cmd.OutOrStdout(), "%3d", v)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 8, "board size")
	cmd.Flags().IntVar(&startRow, "start-row", 0, "starting row")
	cmd.Flags().IntVar(&startCol, "start-col", 0, "starting column")
	return cmd
}
