package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	costopt "Girder/internal/calc/premium/costopt"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Design  costopt.Input `json:"design"`
}

type Handler struct{}

// Generate runs the cost optimizer and renders the result as a one-page
// PDF design summary.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := costopt.Optimize(input.Design)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam Cost Optimization Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Demands")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Span: %.0f mm    Mu: %.1f kN-m    Vu: %.1f kN",
		input.Design.SpanMM, input.Design.MuKNm, input.Design.VuKN))
	pdf.Ln(10)

	opt := res.Optimal
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Optimal section (IS 456:2000)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%.0f x %.0f mm, M%.0f / Fe%.0f", opt.BMM, opt.DMM, opt.FckMPa, opt.FyMPa))
	pdf.Ln(6)
	if opt.Design != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Ast required: %.0f mm2 (pt = %.2f%%)", opt.Design.AstRequiredMM2, opt.Design.PtPercent))
		pdf.Ln(6)
	}
	if opt.Cost != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Total cost: %.0f (concrete %.0f, steel %.0f, formwork %.0f, labour %.0f)",
			opt.Cost.TotalCost, opt.Cost.ConcreteCost, opt.Cost.SteelCost, opt.Cost.FormworkCost, opt.Cost.LabourCost))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Savings vs span/12 baseline: %.0f (%.1f%%)", res.SavingsAbs, res.SavingsPercent))
	pdf.Ln(10)

	if len(res.Alternatives) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Alternatives")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, alt := range res.Alternatives {
			pdf.Cell(0, 6, fmt.Sprintf("%.0f x %.0f mm, M%.0f: total %.0f",
				alt.BMM, alt.DMM, alt.FckMPa, alt.Cost.TotalCost))
			pdf.Ln(6)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam-optimization.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
