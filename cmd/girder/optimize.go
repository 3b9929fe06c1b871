package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	costopt "Girder/internal/calc/premium/costopt"
	"github.com/spf13/cobra"
)

var (
	optSpan  float64
	optMu    float64
	optVu    float64
	optCover float64
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the cheapest code-compliant beam section",
	Long: `Enumerate the width/depth/grade search grid, design each candidate
as a singly reinforced section per IS 456:2000 and report the cheapest
compliant one with ranked alternatives.

Examples:
  girder optimize --span 6000 --mu 150 --vu 100
  girder optimize --span 7200 --mu 220 --vu 140 --cover 50`,
	Run: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().Float64Var(&optSpan, "span", 0, "Clear span (mm) [required]")
	optimizeCmd.Flags().Float64VarP(&optMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	optimizeCmd.Flags().Float64Var(&optVu, "vu", 0, "Factored shear Vu (kN)")
	optimizeCmd.Flags().Float64VarP(&optCover, "cover", "c", 40, "Clear cover (mm)")

	optimizeCmd.MarkFlagRequired("span")
	optimizeCmd.MarkFlagRequired("mu")
}

func runOptimize(cmd *cobra.Command, args []string) {
	res, err := costopt.Optimize(costopt.Input{
		SpanMM:  optSpan,
		MuKNm:   optMu,
		VuKN:    optVu,
		CoverMM: optCover,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	opt := res.Optimal
	fmt.Println()
	fmt.Println("COST OPTIMIZATION - IS 456:2000")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%.0f x %.0f mm\n", opt.BMM, opt.DMM)
	fmt.Fprintf(w, "  Materials:\tM%.0f / Fe%.0f\n", opt.FckMPa, opt.FyMPa)
	if opt.Design != nil {
		fmt.Fprintf(w, "  Ast required:\t%.0f mm² (pt = %.2f%%)\n", opt.Design.AstRequiredMM2, opt.Design.PtPercent)
	}
	if opt.Cost != nil {
		fmt.Fprintf(w, "  Total cost:\t%.0f\n", opt.Cost.TotalCost)
	}
	fmt.Fprintf(w, "  Baseline cost:\t%.0f\n", res.BaselineCost)
	fmt.Fprintf(w, "  Savings:\t%.0f (%.1f%%)\n", res.SavingsAbs, res.SavingsPercent)
	fmt.Fprintf(w, "  Candidates:\t%d evaluated, %d valid\n", res.CandidatesEvaluated, res.CandidatesValid)
	w.Flush()

	if len(res.Alternatives) > 0 {
		fmt.Println()
		fmt.Println("ALTERNATIVES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Section\tGrade\tTotal\n")
		for _, alt := range res.Alternatives {
			fmt.Fprintf(w, "  %.0f x %.0f\tM%.0f\t%.0f\n", alt.BMM, alt.DMM, alt.FckMPa, alt.Cost.TotalCost)
		}
		w.Flush()
	}
	fmt.Println()
}
