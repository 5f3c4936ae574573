package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/wellvol/internal/diagram"
	"github.com/alexiusacademia/wellvol/internal/log"
	"github.com/alexiusacademia/wellvol/internal/report"
	"github.com/alexiusacademia/wellvol/internal/well"
	"github.com/alexiusacademia/wellvol/internal/wellcase"
	"github.com/spf13/cobra"
)

var (
	calcFile        string
	calcPOI         float64
	calcNoPOI       bool
	calcSubtractEOD bool
	calcShowDiagram bool
	calcExportFile  string
	calcJSON        bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the volume of a well case",
	Long: `Compute the fluid volume of a well described in a YAML or JSON case file.

Where strings overlap, the narrowest one owns the depth so no interval
is counted twice. With a point of interest (plug) the volume is split
above and below it. When tubing or drill pipe is run, the casing volume
is broken down into string bore, annulus, open casing and steel.

Examples:
  wellvol calc --file well.yaml
  wellvol calc -f well.yaml --poi 2950 --diagram
  wellvol calc -f well.json --subtract-eod -o schematic.png
  wellvol calc -f well.yaml --json`,
	Run: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcFile, "file", "f", "", "Path to case file (yaml or json) [required]")
	calcCmd.MarkFlagRequired("file")

	// Computation options
	calcCmd.Flags().Float64Var(&calcPOI, "poi", 0, "Point of interest depth in m (overrides the case plug)")
	calcCmd.Flags().BoolVar(&calcNoPOI, "no-poi", false, "Ignore the point of interest")
	calcCmd.Flags().BoolVar(&calcSubtractEOD, "subtract-eod", false, "Subtract inner string steel displacement from the volume")

	// Output options
	calcCmd.Flags().BoolVar(&calcShowDiagram, "diagram", false, "Show ASCII well schematic")
	calcCmd.Flags().StringVarP(&calcExportFile, "output", "o", "", "Export schematic to file (png, svg, pdf)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the result as JSON")
}

func runCalc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	c, err := wellcase.LoadFromFile(calcFile)
	if err != nil {
		fmt.Fprintf(out, "Error loading case: %v\n", err)
		return
	}

	segments, opts := c.Input()
	if cmd.Flags().Changed("poi") {
		opts.PlugEnabled = true
		opts.PlugDepth = calcPOI
	}
	if calcNoPOI {
		opts.PlugEnabled = false
	}
	if calcSubtractEOD {
		opts.SubtractEOD = true
	}

	res := well.Compute(segments, opts)
	log.Debugw("computed well volume",
		"case", c.Name,
		"segments", len(segments),
		"total", res.TotalVolume,
		"warnings", len(res.Warnings))

	if calcJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(out, "Error encoding result: %v\n", err)
		}
		return
	}

	r := report.New(out, lang)
	r.Title("Well volume calculation")
	if c.Name != "" {
		fmt.Fprintf(out, "  Case: %s\n", c.Name)
	}
	if c.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", c.Description)
	}
	fmt.Fprintln(out)

	r.Full(segments, res)

	if calcShowDiagram {
		fmt.Fprint(out, diagram.DrawASCIIWell(res, diagram.DefaultRows))
		fmt.Fprintln(out)
	}

	if calcExportFile != "" {
		if err := diagram.ExportWellDiagram(res, c.Name, calcExportFile); err != nil {
			fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
			return
		}
		fmt.Fprintf(out, "  Schematic exported to %s\n\n", calcExportFile)
	}
}
