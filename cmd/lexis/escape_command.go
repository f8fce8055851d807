package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexis/translate"
)

func newEscapeCommand() *cobra.Command {
	var (
		format   string
		unescape bool
	)

	cmd := &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape or unescape text for XML or JSON",
		Long: `Escape the arguments (or stdin when none are given) for embedding in
an XML document or a JSON string literal.

Examples:
  lexis escape --format xml 'fish & chips'
  lexis escape --format json "line1
line2"
  cat escaped.txt | lexis escape --format json --unescape`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pickTranslator(format, unescape)
			if err != nil {
				return err
			}

			in := strings.Join(args, " ")
			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				in = string(raw)
			}

			fmt.Fprintln(cmd.OutOrStdout(), translate.String(t, in))

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "xml", "target format: xml or json")
	cmd.Flags().BoolVarP(&unescape, "unescape", "u", false, "reverse the escaping")

	return cmd
}

func pickTranslator(format string, unescape bool) (translate.Translator, error) {
	switch format {
	case "xml":
		if unescape {
			return translate.UnescapeXML, nil
		}

		return translate.EscapeXML, nil
	case "json":
		if unescape {
			return translate.UnescapeJSON, nil
		}

		return translate.EscapeJSON, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want xml or json)", format)
	}
}
