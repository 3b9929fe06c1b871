package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "girder",
	Short: "Reinforced concrete beam optimization to IS 456:2000",
	Long: `girder - cost optimization and rebar detailing for RC beams

Commands:
  optimize   Search widths, depths and grades for the cheapest
             code-compliant singly reinforced section
  rebar      Suggest a bottom/top/stirrup configuration for one beam
  beamline   Optimize rebar across a line of beams from an XLSX file

All calculations follow IS 456:2000 (Limit State Method).`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
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
}
