package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexis",
		Short: "String metrics and text escaping from the command line",
		Long: `lexis exposes the library's string algorithms for quick inspection:
edit distances, fuzzy similarity scores, longest common subsequences and
XML/JSON escaping.

Examples:
  lexis compare kitten sitting     # every metric for one pair
  lexis lcs ABCBDAB BDCABA         # subsequence, length and distance
  lexis escape --format xml 'a<b'  # escape arguments
  cat doc.json | lexis escape --format json --unescape`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newCompareCommand(),
		newLCSCommand(),
		newEscapeCommand(),
	)

	return cmd
}
