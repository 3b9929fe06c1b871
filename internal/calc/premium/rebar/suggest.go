package rebar

import (
	"math"

	shear "Girder/internal/calc/shear"
	is456 "Girder/internal/is456"
)

// Provisional sizes used for the effective-depth estimate before the final
// bar arrangement is known.
const (
	provisionalStirrupMM = 8.0
	provisionalBarMM     = 16.0

	// Margin over the simplified lever-arm steel requirement.
	steelMargin = 1.10
)

type SuggestInput struct {
	BMM              float64   `json:"b_mm"`
	DMM              float64   `json:"d_mm"` // overall depth
	MuKNm            float64   `json:"mu_knm"`
	VuKN             float64   `json:"vu_kn"`
	FckMPa           float64   `json:"fck_mpa"`
	FyMPa            float64   `json:"fy_mpa"`
	CoverMM          float64   `json:"cover_mm"`
	BarDiameters     []float64 `json:"bar_diameters,omitempty"`
	StirrupDiameters []float64 `json:"stirrup_diameters,omitempty"`
	StirrupSpacings  []float64 `json:"stirrup_spacings,omitempty"`
}

type Suggestion struct {
	Bottom1DiaMM          float64 `json:"bottom_layer1_dia"`
	Bottom1Count          int     `json:"bottom_layer1_count"`
	Bottom2DiaMM          float64 `json:"bottom_layer2_dia"`
	Bottom2Count          int     `json:"bottom_layer2_count"`
	TopDiaMM              float64 `json:"top_dia"`
	TopCount              int     `json:"top_count"`
	StirrupDiaMM          float64 `json:"stirrup_dia_mm"`
	StirrupSpacingMM      float64 `json:"stirrup_spacing_mm"`
	AstRequiredMM2        float64 `json:"ast_required_mm2"`
	AstProvidedMM2        float64 `json:"ast_provided_mm2"`
	EffectiveDepthMM      float64 `json:"effective_depth_mm"`
	ConstructabilityScore float64 `json:"constructability_score"`
}

// Suggest produces a complete bottom/top/stirrup configuration from section
// size and factored demands, using a simplified lever-arm steel estimate
// with a 10% margin instead of the full flexure solver. It returns nil for
// geometrically impossible inputs (effective depth <= 0) so batch callers
// can skip such beams.
func Suggest(in SuggestInput) *Suggestion {
	if in.FckMPa <= 0 {
		in.FckMPa = 25
	}
	if in.FyMPa <= 0 {
		in.FyMPa = 500
	}
	if in.CoverMM <= 0 {
		in.CoverMM = 40
	}

	d := in.DMM - in.CoverMM - provisionalStirrupMM - provisionalBarMM/2
	if d <= 0 || in.BMM <= 0 {
		return nil
	}

	ast := requiredSteel(in.BMM, d, in.MuKNm, in.FyMPa)

	arr, _ := selectFrom(in.BarDiameters, ast, in.BMM, in.CoverMM, provisionalStirrupMM, 2)

	sug := &Suggestion{
		Bottom1DiaMM:     arr.DiaMM,
		Bottom1Count:     arr.Layer1Count,
		AstRequiredMM2:   ast,
		AstProvidedMM2:   arr.AreaProvidedMM2,
		EffectiveDepthMM: d,
	}
	if arr.Layer2Count > 0 {
		sug.Bottom2DiaMM = arr.DiaMM
		sug.Bottom2Count = arr.Layer2Count
	}

	// Nominal hanger bars on top; matched to the bottom diameter when the
	// bottom bars are small enough to double as hangers.
	sug.TopCount = 2
	sug.TopDiaMM = arr.DiaMM
	if sug.TopDiaMM > 16 {
		sug.TopDiaMM = 12
	}

	pt := 0.0
	if in.BMM*d > 0 {
		pt = 100 * arr.AreaProvidedMM2 / (in.BMM * d)
	}
	st := shear.SelectStirrups(in.BMM, d, in.VuKN, in.FckMPa, in.FyMPa, pt, shear.Options{
		Diameters: in.StirrupDiameters,
		Spacings:  in.StirrupSpacings,
	})
	sug.StirrupDiaMM = st.DiaMM
	sug.StirrupSpacingMM = st.SpacingMM

	sug.ConstructabilityScore = score(arr, sug.TopDiaMM, st.SpacingMM)
	return sug
}

// requiredSteel is the simplified moment-of-resistance estimate: lever arm
// 0.9d, 10% margin, floored at the Cl 26.5.1.1(a) minimum.
func requiredSteel(bMM, dMM, muKNm, fy float64) float64 {
	ast := 0.0
	if fy > 0 && dMM > 0 {
		ast = steelMargin * muKNm * 1e6 / (0.87 * fy * 0.9 * dMM)
	}
	astMin := is456.MinSteelPercent(fy) / 100.0 * bMM * dMM
	return math.Max(ast, astMin)
}

// score rates the configuration 0-100: fewer bars and a single layer score
// high, matched top/bottom diameters and wide stirrup spacing add a little.
func score(arr Arrangement, topDia, stirrupSpacing float64) float64 {
	s := 100.0
	if arr.Count > 4 {
		s -= 4 * float64(arr.Count-4)
	}
	if arr.Layers > 1 {
		s -= 15
	}
	if topDia == arr.DiaMM {
		s += 5
	} else {
		s -= 5
	}
	s += (stirrupSpacing - 150) / 15
	return math.Min(100, math.Max(0, s))
}
