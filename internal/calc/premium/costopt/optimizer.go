package costopt

import (
	"fmt"
	"sort"
	"time"

	cost "Girder/internal/calc/cost"
	flexure "Girder/internal/calc/flexure"
	is456 "Girder/internal/is456"
)

// SearchGrid bounds the enumeration. Depths are derived from the span and
// clamped to [MinDepthMM, MaxDepthMM); the default reproduces the documented
// search space (widths 230/300/400, M25/M30, Fe500).
type SearchGrid struct {
	WidthsMM       []float64 `json:"widths_mm"`
	DepthStepMM    float64   `json:"depth_step_mm"`
	MinDepthMM     float64   `json:"min_depth_mm"`
	MaxDepthMM     float64   `json:"max_depth_mm"`
	ConcreteGrades []float64 `json:"concrete_grades"`
	SteelGrades    []float64 `json:"steel_grades"`
}

func DefaultGrid() SearchGrid {
	return SearchGrid{
		WidthsMM:       []float64{230, 300, 400},
		DepthStepMM:    50,
		MinDepthMM:     300,
		MaxDepthMM:     900,
		ConcreteGrades: []float64{25, 30},
		SteelGrades:    []float64{500},
	}
}

// Depths enumerates overall depths between span/20 and span/8 within the
// grid clamps.
func (g SearchGrid) Depths(spanMM float64) []float64 {
	lo := g.MinDepthMM
	if spanMM/20 > lo {
		lo = spanMM / 20
	}
	hi := g.MaxDepthMM
	if spanMM/8 < hi {
		hi = spanMM / 8
	}
	var depths []float64
	for d := lo; d < hi; d += g.DepthStepMM {
		depths = append(depths, d)
	}
	return depths
}

func (g SearchGrid) maxConcreteGrade() float64 {
	max := 0.0
	for _, fck := range g.ConcreteGrades {
		if fck > max {
			max = fck
		}
	}
	return max
}

// Candidate is one evaluated (b, D, fck, fy) combination. Candidates are
// never mutated after construction.
type Candidate struct {
	BMM           float64         `json:"b_mm"`
	DMM           float64         `json:"d_mm"`
	DEffMM        float64         `json:"d_eff_mm"`
	FckMPa        float64         `json:"fck_mpa"`
	FyMPa         float64         `json:"fy_mpa"`
	Design        *flexure.Result `json:"design,omitempty"`
	Cost          *cost.Breakdown `json:"cost,omitempty"`
	IsValid       bool            `json:"is_valid"`
	FailureReason string          `json:"failure_reason,omitempty"`
}

type Input struct {
	SpanMM  float64       `json:"span_mm"`
	MuKNm   float64       `json:"mu_knm"`
	VuKN    float64       `json:"vu_kn"`
	CoverMM float64       `json:"cover_mm"`
	Profile *cost.Profile `json:"profile,omitempty"`
	Grid    *SearchGrid   `json:"grid,omitempty"`
}

type Result struct {
	Optimal             Candidate   `json:"optimal_candidate"`
	BaselineCost        float64     `json:"baseline_cost"`
	SavingsAbs          float64     `json:"savings_abs"`
	SavingsPercent      float64     `json:"savings_percent"`
	Alternatives        []Candidate `json:"alternatives"`
	CandidatesEvaluated int         `json:"candidates_evaluated"`
	CandidatesValid     int         `json:"candidates_valid"`
	ElapsedMS           float64     `json:"elapsed_ms"`
}

// Optimize finds the cheapest code-compliant singly reinforced section for
// the given factored demands. Per-cell infeasibility is recorded on the
// candidate and skipped; an error is returned only when the whole grid is
// infeasible, so callers never price a nonexistent design.
func Optimize(in Input) (Result, error) {
	start := time.Now()

	if in.SpanMM <= 0 {
		return Result{}, fmt.Errorf("invalid span: %.0f mm", in.SpanMM)
	}
	if in.MuKNm < 0 || in.VuKN < 0 {
		return Result{}, fmt.Errorf("invalid demands: Mu=%.1f kN-m, Vu=%.1f kN", in.MuKNm, in.VuKN)
	}
	if in.CoverMM <= 0 {
		in.CoverMM = 40
	}
	grid := DefaultGrid()
	if in.Grid != nil {
		grid = *in.Grid
	}
	if len(grid.WidthsMM) == 0 || len(grid.ConcreteGrades) == 0 || len(grid.SteelGrades) == 0 || grid.DepthStepMM <= 0 {
		return Result{}, fmt.Errorf("empty search grid")
	}

	maxFck := grid.maxConcreteGrade()
	depths := grid.Depths(in.SpanMM)

	var all []Candidate
	for _, b := range grid.WidthsMM {
		for _, D := range depths {
			d := flexure.EffectiveDepth(D, in.CoverMM)

			// Quick necessary-condition checks before expanding the
			// grade cross product.
			if d <= 0 || in.SpanMM/d < 8 || in.SpanMM/d > 20 {
				all = append(all, Candidate{
					BMM: b, DMM: D, DEffMM: d, FckMPa: maxFck, FyMPa: grid.SteelGrades[0],
					FailureReason: fmt.Sprintf("span/d=%.1f outside [8, 20]", safeRatio(in.SpanMM, d)),
				})
				continue
			}
			if is456.MuLim(b, d, maxFck, grid.SteelGrades[0])/1e6 < in.MuKNm {
				all = append(all, Candidate{
					BMM: b, DMM: D, DEffMM: d, FckMPa: maxFck, FyMPa: grid.SteelGrades[0],
					FailureReason: fmt.Sprintf("Mu=%.1f kN-m needs doubly reinforced design even at M%.0f", in.MuKNm, maxFck),
				})
				continue
			}

			for _, fck := range grid.ConcreteGrades {
				for _, fy := range grid.SteelGrades {
					all = append(all, evaluate(in, b, D, d, fck, fy))
				}
			}
		}
	}

	var valid []Candidate
	for _, c := range all {
		if c.IsValid {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return Result{}, fmt.Errorf("no feasible section in the search grid for span=%.0f mm, Mu=%.1f kN-m", in.SpanMM, in.MuKNm)
	}

	// Ascending total cost; enumeration order breaks ties.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Cost.TotalCost < valid[j].Cost.TotalCost
	})

	res := Result{
		Optimal:             valid[0],
		CandidatesEvaluated: len(all),
		CandidatesValid:     len(valid),
	}
	for i := 1; i < len(valid) && i <= 3; i++ {
		res.Alternatives = append(res.Alternatives, valid[i])
	}

	res.BaselineCost = baselineCost(in)
	if res.BaselineCost <= 0 {
		// Baseline infeasible after all fallbacks: report zero savings
		// instead of comparing against a broken design.
		res.BaselineCost = res.Optimal.Cost.TotalCost
	}
	res.SavingsAbs = res.BaselineCost - res.Optimal.Cost.TotalCost
	if res.SavingsAbs < 0 {
		res.SavingsAbs = 0
	}
	if res.BaselineCost > 0 {
		res.SavingsPercent = 100 * res.SavingsAbs / res.BaselineCost
	}

	res.ElapsedMS = float64(time.Since(start).Microseconds()) / 1000.0
	return res, nil
}

func evaluate(in Input, b, D, d, fck, fy float64) Candidate {
	c := Candidate{BMM: b, DMM: D, DEffMM: d, FckMPa: fck, FyMPa: fy}

	design, err := flexure.Calculate(flexure.Input{
		BMM: b, DMM: D, CoverMM: in.CoverMM, FckMPa: fck, FyMPa: fy, MuKNm: in.MuKNm,
	})
	if err != nil {
		c.FailureReason = err.Error()
		return c
	}
	c.Design = &design
	if !design.IsSafe {
		c.FailureReason = design.Status
		return c
	}

	// Cl 26.5.1.1 steel percentage bounds.
	minPt := is456.MinSteelPercent(fy)
	if design.PtPercent < minPt || design.PtPercent > is456.MaxSteelPercent {
		c.FailureReason = fmt.Sprintf("steel %.2f%% outside [%.2f, %.2f]", design.PtPercent, minPt, is456.MaxSteelPercent)
		return c
	}

	// Shear sanity: the section must at least stay under tau_c,max.
	if in.VuKN > 0 && in.VuKN*1000/(b*d) > is456.TauCMax(fck) {
		c.FailureReason = fmt.Sprintf("shear stress %.2f MPa exceeds tau_c,max", in.VuKN*1000/(b*d))
		return c
	}

	breakdown, err := cost.Calculate(cost.Input{
		BMM: b, DMM: D, SpanMM: in.SpanMM, AstMM2: design.AstRequiredMM2, FckMPa: fck, Profile: in.Profile,
	})
	if err != nil {
		c.FailureReason = err.Error()
		return c
	}
	c.Cost = &breakdown
	c.IsValid = true
	return c
}

// baselineCost prices the conservative rule-of-thumb section (b=300,
// D=span/12, M25) with bounded fallbacks: M30, then D=span/10 at M30.
// Returns 0 when every fallback is infeasible.
func baselineCost(in Input) float64 {
	attempts := []struct {
		depth float64
		fck   float64
	}{
		{in.SpanMM / 12, 25},
		{in.SpanMM / 12, 30},
		{in.SpanMM / 10, 30},
	}
	fy := 500.0
	for _, a := range attempts {
		design, err := flexure.Calculate(flexure.Input{
			BMM: 300, DMM: a.depth, CoverMM: in.CoverMM, FckMPa: a.fck, FyMPa: fy, MuKNm: in.MuKNm,
		})
		if err != nil || !design.IsSafe || design.AstRequiredMM2 <= 0 {
			continue
		}
		breakdown, err := cost.Calculate(cost.Input{
			BMM: 300, DMM: a.depth, SpanMM: in.SpanMM, AstMM2: design.AstRequiredMM2, FckMPa: a.fck, Profile: in.Profile,
		})
		if err != nil {
			continue
		}
		return breakdown.TotalCost
	}
	return 0
}

func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
