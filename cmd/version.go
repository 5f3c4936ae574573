package cmd

import (
	"fmt"

	"github.com/alexiusacademia/wellvol/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wellvol",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wellvol v%s\n", version.Version)
		fmt.Println("Well Schematic Volume Calculator")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
