package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gridlogic/internal/magicsquare"
)

// symmetries maps the --symmetry flag's accepted values to the
// transform each one applies. "none" is handled separately since it
// has no corresponding function.
var symmetries = map[string]func(magicsquare.Square) magicsquare.Square{
	"rotate90":     magicsquare.Rotate90,
	"rotate180":    magicsquare.Rotate180,
	"rotate270":    magicsquare.Rotate270,
	"horizontal":   magicsquare.ReflectHorizontal,
	"vertical":     magicsquare.ReflectVertical,
	"main-diag":    magicsquare.ReflectMainDiagonal,
	"anti-diag":    magicsquare.ReflectAntiDiagonal,
}

func newMagicSquareCommand() *cobra.Command {
	var size int
	var symmetry string

	cmd := &cobra.Command{
		Use:   "magic-square",
		Short: "Construct an odd-order magic square",
		RunE: func(cmd *cobra.Command, args []string) error {
			sq, err := magicsquare.New(size)
			if err != nil {
				return err
			}
			if symmetry != "" && symmetry != "none" {
				transform, ok := symmetries[symmetry]
				if !ok {
					return fmt.Errorf("magic-square: unknown --symmetry %q", symmetry)
				}
				sq = transform(sq)
			}
			fmt.Fprint(cmd.OutOrStdout(), sq.String())
			ok, sum := magicsquare.Verify(sq)
			fmt.Fprintf(cmd.OutOrStdout(), "magic sum: %d (valid: %v)\n", sum, ok)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 5, "square size (odd, >= 3)")
	cmd.Flags().StringVar(&symmetry, "symmetry", "none",
		"symmetry to apply before printing: none, rotate90, rotate180, rotate270, horizontal, vertical, main-diag, anti-diag")
	return cmd
}
