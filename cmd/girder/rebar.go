package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	rebar "Girder/internal/calc/premium/rebar"
	"github.com/spf13/cobra"
)

var (
	rebarWidth float64
	rebarDepth float64
	rebarMu    float64
	rebarVu    float64
	rebarFck   float64
	rebarFy    float64
	rebarCover float64
)

var rebarCmd = &cobra.Command{
	Use:   "rebar",
	Short: "Suggest a rebar configuration for one beam",
	Long: `Pick bottom bars, hanger bars and stirrups for a rectangular beam
from section size and factored demands, using the simplified lever-arm
steel estimate with a 10% margin.

Example:
  girder rebar -b 300 --depth 500 -m 120 --vu 90`,
	Run: runRebar,
}

func init() {
	rootCmd.AddCommand(rebarCmd)

	rebarCmd.Flags().Float64VarP(&rebarWidth, "width", "b", 0, "Beam width (mm) [required]")
	rebarCmd.Flags().Float64Var(&rebarDepth, "depth", 0, "Beam overall depth (mm) [required]")
	rebarCmd.Flags().Float64VarP(&rebarMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	rebarCmd.Flags().Float64Var(&rebarVu, "vu", 0, "Factored shear Vu (kN)")
	rebarCmd.Flags().Float64Var(&rebarFck, "fck", 25, "Concrete grade fck (MPa)")
	rebarCmd.Flags().Float64Var(&rebarFy, "fy", 500, "Steel grade fy (MPa)")
	rebarCmd.Flags().Float64VarP(&rebarCover, "cover", "c", 40, "Clear cover (mm)")

	rebarCmd.MarkFlagRequired("width")
	rebarCmd.MarkFlagRequired("depth")
	rebarCmd.MarkFlagRequired("mu")
}

func runRebar(cmd *cobra.Command, args []string) {
	sug := rebar.Suggest(rebar.SuggestInput{
		BMM:     rebarWidth,
		DMM:     rebarDepth,
		MuKNm:   rebarMu,
		VuKN:    rebarVu,
		FckMPa:  rebarFck,
		FyMPa:   rebarFy,
		CoverMM: rebarCover,
	})
	if sug == nil {
		fmt.Println("Error: geometry is infeasible (cover leaves no effective depth)")
		return
	}

	fmt.Println()
	fmt.Println("REBAR SUGGESTION - IS 456:2000")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bottom layer 1:\t%d - φ%.0f mm\n", sug.Bottom1Count, sug.Bottom1DiaMM)
	if sug.Bottom2Count > 0 {
		fmt.Fprintf(w, "  Bottom layer 2:\t%d - φ%.0f mm\n", sug.Bottom2Count, sug.Bottom2DiaMM)
	}
	fmt.Fprintf(w, "  Top (hangers):\t%d - φ%.0f mm\n", sug.TopCount, sug.TopDiaMM)
	fmt.Fprintf(w, "  Stirrups:\tφ%.0f @ %.0f mm c/c\n", sug.StirrupDiaMM, sug.StirrupSpacingMM)
	fmt.Fprintf(w, "  Ast required:\t%.0f mm²\n", sug.AstRequiredMM2)
	fmt.Fprintf(w, "  Ast provided:\t%.0f mm²\n", sug.AstProvidedMM2)
	fmt.Fprintf(w, "  Constructability:\t%.0f / 100\n", sug.ConstructabilityScore)
	w.Flush()
	fmt.Println()
}
