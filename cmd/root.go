package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/wellvol/internal/log"
	"github.com/alexiusacademia/wellvol/internal/version"
	"github.com/spf13/cobra"
)

var (
	debug bool
	lang  string
)

var rootCmd = &cobra.Command{
	Use:   "wellvol",
	Short: "Well volume calculator",
	Long: `wellvol - Well Schematic Volume Calculator

A CLI tool that computes fluid volumes of a well described as
concentric casings, liners, tubing and open hole.

This tool helps drilling and completion engineers:
  - Compute the well volume without double counting overlapping strings
  - Split the volume above and below a point of interest (plug)
  - Break the volume down around tubing or drill pipe
    (string bore, annulus, open casing, steel)
  - Draw the schematic in the terminal or export it to png, svg or pdf`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   wellvol v%-47s║\n", version.Version)
		fmt.Println("  ║   Well Schematic Volume Calculator                        ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Computes fluid volumes of casings, liners, tubing and open hole")
		fmt.Println("  from a YAML or JSON case file.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Overlap-aware casing volume (narrowest string owns each depth)")
		fmt.Println("    • Volume split at a point of interest")
		fmt.Println("    • Tubing and drill-pipe bore, annulus and steel breakdown")
		fmt.Println("    • ASCII schematic and png/svg/pdf export")
		fmt.Println()
		fmt.Println("  Use 'wellvol --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "Language tag for number formatting (e.g. en, de, fr)")
}
