package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexis/hamming"
	"github.com/katalvlaran/lexis/jaro"
	"github.com/katalvlaran/lexis/lcs"
	"github.com/katalvlaran/lexis/levenshtein"
	"github.com/katalvlaran/lexis/similarity"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Show every metric for a pair of strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right := args[0], args[1]
			bigrams := similarity.Shingles(2)

			rows := [][]string{
				{"Levenshtein distance", strconv.Itoa(levenshtein.Distance(left, right))},
				{"Levenshtein similarity", formatScore(levenshtein.Similarity(left, right))},
				{"OSA distance", strconv.Itoa(levenshtein.OSA(left, right))},
				{"Damerau-Levenshtein distance", strconv.Itoa(levenshtein.Damerau(left, right))},
				{"LCS length", strconv.Itoa(lcs.LengthString(left, right))},
				{"LCS distance", strconv.Itoa(lcs.DistanceString(left, right))},
				{"Jaro similarity", formatScore(jaro.Similarity(left, right))},
				{"Jaro-Winkler similarity", formatScore(jaro.WinklerSimilarity(left, right))},
				{"Jaccard (bigrams)", formatScore(similarity.Jaccard(left, right, bigrams))},
				{"Sørensen-Dice (bigrams)", formatScore(similarity.SorensenDice(left, right, bigrams))},
				{"Cosine (bigrams)", formatScore(similarity.Cosine(left, right, bigrams))},
				{"Hamming distance", hammingCell(left, right)},
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Metric", "Value"}, rows))

			return nil
		},
	}
}

func hammingCell(left, right string) string {
	d, err := hamming.Distance(left, right)
	if errors.Is(err, hamming.ErrLengthMismatch) {
		return "n/a (lengths differ)"
	}

	return strconv.Itoa(d)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
