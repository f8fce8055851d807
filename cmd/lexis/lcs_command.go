package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexis/lcs"
)

func newLCSCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "lcs <left> <right>",
		Short: "Longest common subsequence of two strings",
		Long: `Compute one longest common subsequence of the two arguments, its
length and the LCS edit distance (insertions + deletions).

The subsequence is reconstructed in linear memory; ties between equally
long subsequences break deterministically.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right := args[0], args[1]
			sub := lcs.LongestString(left, right)

			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, sub)

				return nil
			}

			fmt.Fprintf(out, "subsequence: %q\n", sub)
			fmt.Fprintf(out, "length:      %d\n", lcs.LengthString(left, right))
			fmt.Fprintf(out, "distance:    %d\n", lcs.DistanceString(left, right))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the subsequence")

	return cmd
}
