package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/wellvol/internal/catalog"
	"github.com/alexiusacademia/wellvol/internal/report"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [casing|tubing|drillpipe]",
	Short: "List the tubular sizes known to case files",
	Long: `List the casing, tubing and drill-pipe sizes that a case file can
reference by label through the "size" field.

Examples:
  wellvol catalog
  wellvol catalog tubing`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(catalog.Casing), string(catalog.Tubing), string(catalog.DrillPipe)},
	Run:       runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	kinds := []catalog.Kind{catalog.Casing, catalog.Tubing, catalog.DrillPipe}
	if len(args) == 1 {
		kind := catalog.Kind(args[0])
		if catalog.Sizes(kind) == nil {
			fmt.Fprintf(out, "Error: unknown catalog %q (casing, tubing or drillpipe)\n", args[0])
			return
		}
		kinds = []catalog.Kind{kind}
	}

	f := report.NewFormatter(lang)
	for _, kind := range kinds {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s SIZES:\n", kindTitle(kind))
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Size\tOD\tID\tDrift\tWeight (lb/ft)\tCapacity (L/m)\n")
		fmt.Fprintf(w, "  ────\t──\t──\t─────\t──────────────\t──────────────\n")
		for _, t := range catalog.Sizes(kind) {
			weight := "-"
			if t.Weight > 0 {
				weight = f.Sprintf("%.1f", t.Weight)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				t.Label, f.Diameter(t.OD), f.Diameter(t.ID), f.Diameter(t.Drift),
				weight, f.Sprintf("%.2f", t.Capacity()))
		}
		w.Flush()
	}
	fmt.Fprintln(out)
}

func kindTitle(kind catalog.Kind) string {
	switch kind {
	case catalog.Tubing:
		return "TUBING"
	case catalog.DrillPipe:
		return "DRILL PIPE"
	}
	return "CASING"
}
