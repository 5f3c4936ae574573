package cmd

import (
	"fmt"

	"github.com/alexiusacademia/wellvol/internal/wellcase"
	"github.com/spf13/cobra"
)

var exampleFormat string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example case file",
	Long: `Print a complete example case file to use as a starting point.

Segments may give id/od/drift directly or name a catalog size. Numbers
can be written with a comma decimal separator or grouped with spaces
("3277,5", "4 065").

Examples:
  wellvol example > well.yaml
  wellvol example --format json > well.json`,
	Run: runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVar(&exampleFormat, "format", "yaml", "Output format (yaml or json)")
}

func runExample(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	format := wellcase.Format(exampleFormat)
	if format != wellcase.FormatYAML && format != wellcase.FormatJSON {
		fmt.Fprintf(out, "Error: unknown format %q (yaml or json)\n", exampleFormat)
		return
	}

	data, err := wellcase.Marshal(wellcase.Example(), format)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(out, string(data))
}
