package flexure

import (
	"fmt"
	"math"

	is456 "Girder/internal/is456"
)

// Assumed stirrup and main bar sizes used to estimate the effective depth
// before the final bar arrangement is known.
const (
	assumedStirrupMM = 8.0
	assumedBarMM     = 20.0
)

type Input struct {
	BMM     float64 `json:"b_mm"`
	DMM     float64 `json:"d_mm"` // overall depth
	CoverMM float64 `json:"cover_mm"`
	FckMPa  float64 `json:"fck_mpa"`
	FyMPa   float64 `json:"fy_mpa"`
	MuKNm   float64 `json:"mu_knm"`
}

type Result struct {
	EffectiveDepthMM float64 `json:"effective_depth_mm"`
	MuLimKNm         float64 `json:"mu_lim_knm"`
	AstRequiredMM2   float64 `json:"ast_required_mm2"`
	AstMinMM2        float64 `json:"ast_min_mm2"`
	AstMaxMM2        float64 `json:"ast_max_mm2"`
	XuMM             float64 `json:"xu_mm"`
	XuMaxMM          float64 `json:"xu_max_mm"`
	PtPercent        float64 `json:"pt_percent"`
	IsSafe           bool    `json:"is_safe"`
	Status           string  `json:"status"`
}

// EffectiveDepth estimates d from the overall depth and clear cover using
// the assumed stirrup and bar sizes.
func EffectiveDepth(dOverallMM, coverMM float64) float64 {
	return dOverallMM - coverMM - assumedStirrupMM - assumedBarMM/2.0
}

// Calculate designs a singly reinforced rectangular section per
// IS 456:2000 Annex G-1.1. A section that cannot carry Mu as singly
// reinforced is reported via IsSafe/Status, not as an error; errors are
// reserved for inputs that make no geometric or material sense.
func Calculate(in Input) (Result, error) {
	if in.BMM <= 0 || in.DMM <= 0 {
		return Result{}, fmt.Errorf("invalid section: b=%.0f mm, D=%.0f mm", in.BMM, in.DMM)
	}
	if in.FckMPa <= 0 || in.FyMPa <= 0 {
		return Result{}, fmt.Errorf("invalid materials: fck=%.1f, fy=%.1f", in.FckMPa, in.FyMPa)
	}
	if in.MuKNm < 0 {
		return Result{}, fmt.Errorf("invalid moment: Mu=%.2f kN-m", in.MuKNm)
	}
	if in.CoverMM <= 0 {
		in.CoverMM = 40
	}

	d := EffectiveDepth(in.DMM, in.CoverMM)
	if d <= 0 {
		return Result{}, fmt.Errorf("cover %.0f mm leaves no effective depth in D=%.0f mm", in.CoverMM, in.DMM)
	}

	res := Result{
		EffectiveDepthMM: d,
		MuLimKNm:         is456.MuLim(in.BMM, d, in.FckMPa, in.FyMPa) / 1e6,
		XuMaxMM:          is456.XuMaxRatio(in.FyMPa) * d,
		AstMinMM2:        is456.MinSteelPercent(in.FyMPa) / 100.0 * in.BMM * d,
		AstMaxMM2:        is456.MaxSteelPercent / 100.0 * in.BMM * in.DMM,
	}

	muNmm := in.MuKNm * 1e6
	if muNmm > res.MuLimKNm*1e6 {
		res.IsSafe = false
		res.Status = fmt.Sprintf("section inadequate: Mu=%.1f kN-m exceeds Mu,lim=%.1f kN-m, doubly reinforced design required", in.MuKNm, res.MuLimKNm)
		return res, nil
	}

	// Annex G-1.1(b): Ast = 0.5*fck/fy * (1 - sqrt(1 - 4.6*Mu/(fck*b*d^2))) * b*d
	term := 1 - 4.6*muNmm/(in.FckMPa*in.BMM*d*d)
	if term < 0 {
		term = 0
	}
	ast := 0.5 * in.FckMPa / in.FyMPa * (1 - math.Sqrt(term)) * in.BMM * d
	if ast < res.AstMinMM2 {
		ast = res.AstMinMM2
	}

	res.AstRequiredMM2 = ast
	res.XuMM = 0.87 * in.FyMPa * ast / (0.36 * in.FckMPa * in.BMM)
	res.PtPercent = 100 * ast / (in.BMM * d)
	res.IsSafe = true
	res.Status = "OK: singly reinforced, under-reinforced section"
	if res.PtPercent > is456.MaxSteelPercent {
		res.IsSafe = false
		res.Status = fmt.Sprintf("steel percentage %.2f exceeds the 4.0 limit of Cl 26.5.1.1", res.PtPercent)
	}
	return res, nil
}
